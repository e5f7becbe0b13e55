package handler

import (
	"net/http"
	"testing"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	mockusecase "blog/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newUserTestServer(t *testing.T) (*echo.Echo, *mockusecase.MockProfileUsecase) {
	t.Helper()

	uc := mockusecase.NewMockProfileUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	e := newTestEcho()
	e.GET("/user/profile", h.GetProfile, authenticatedAs(t, ownerID))
	e.GET("/health", HealthCheck)

	return e, uc
}

func TestUserHandler_GetProfile(t *testing.T) {
	t.Run("returns caller", func(t *testing.T) {
		e, uc := newUserTestServer(t)
		uc.EXPECT().GetProfile(mock.Anything, ownerID).Return(&entity.User{
			ID:               ownerID,
			Email:            "owner@example.com",
			Name:             "Owner",
			Provider:         entity.ProviderTypeGoogle,
			IsActive:         true,
			SubscriptionType: entity.SubscriptionFree,
		}, nil).Once()

		rec := doRequest(e, http.MethodGet, "/user/profile", "", true)

		assertStatus(t, rec, http.StatusOK)
		got := decodeData[userResponse](t, rec)
		assert.Equal(t, "owner@example.com", got.Email)
		assert.Equal(t, "google", got.Provider)
		assert.Equal(t, "FREE", got.SubscriptionType)
	})

	t.Run("unknown caller", func(t *testing.T) {
		e, uc := newUserTestServer(t)
		uc.EXPECT().GetProfile(mock.Anything, ownerID).Return(nil, errors.Wrap(domainerrors.ErrNotFound, "user not found")).Once()

		rec := doRequest(e, http.MethodGet, "/user/profile", "", true)

		assertStatus(t, rec, http.StatusNotFound)
	})

	t.Run("anonymous", func(t *testing.T) {
		e, _ := newUserTestServer(t)

		rec := doRequest(e, http.MethodGet, "/user/profile", "", false)

		assertStatus(t, rec, http.StatusUnauthorized)
	})
}

func TestHealthCheck(t *testing.T) {
	e, _ := newUserTestServer(t)

	rec := doRequest(e, http.MethodGet, "/health", "", false)

	assertStatus(t, rec, http.StatusOK)
	assert.Equal(t, "ok", decodeData[map[string]string](t, rec)["status"])
}
