package validator

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid input", func(t *testing.T) {
		assert.NoError(t, v.Validate(&sample{Email: "a@b.co", Password: "secret1"}))
	})

	t.Run("reports every failing field", func(t *testing.T) {
		err := v.Validate(&sample{Email: "nope"})
		require.Error(t, err)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.Equal(t, "Email must be a valid email; Password is required", httpErr.Message)
	})

	t.Run("min length", func(t *testing.T) {
		err := v.Validate(&sample{Email: "a@b.co", Password: "abc"})

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, "Password must be at least 6 characters long", httpErr.Message)
	})
}
