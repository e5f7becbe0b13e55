package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"blog/config"
	"blog/internal/delivery/api/response"
	"blog/internal/domain/entity"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type googleLoginRequest struct {
	Credential string `json:"credential" validate:"required"`
}

type facebookLoginRequest struct {
	AuthToken string `json:"authToken" validate:"required"`
}

// AuthHandler serves registration and every login flow.
type AuthHandler struct {
	uc          usecase.AuthUsecase
	logger      *slog.Logger
	redirectURL string
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger, cfg *config.Config) *AuthHandler {
	h := &AuthHandler{uc: uc, logger: logger}
	if cfg.GoogleOAuth != nil {
		h.redirectURL = cfg.GoogleOAuth.RedirectURL
	}

	return h
}

// Register creates a local account and signs it in.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, tokenResponse{AccessToken: output.AccessToken})
}

// Login signs in with email and password.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.PasswordLogin(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokenResponse{AccessToken: output.AccessToken})
}

// GoogleLogin exchanges a Google ID token for an access token. When a frontend
// redirect is configured the token is handed over as ?token= instead of JSON.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req googleLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.OAuthLogin(c.Request().Context(), usecase.OAuthLoginInput{
		Provider: entity.ProviderTypeGoogle,
		Token:    req.Credential,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if h.redirectURL == "" {
		return response.Success(c, http.StatusOK, tokenResponse{AccessToken: output.AccessToken})
	}

	target, err := withToken(h.redirectURL, output.AccessToken)
	if err != nil {
		return errors.Wrap(err, "invalid google redirect url")
	}

	return c.Redirect(http.StatusFound, target)
}

// FacebookLogin exchanges a Facebook access token for an access token.
func (h *AuthHandler) FacebookLogin(c echo.Context) error {
	var req facebookLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.OAuthLogin(c.Request().Context(), usecase.OAuthLoginInput{
		Provider: entity.ProviderTypeFacebook,
		Token:    req.AuthToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokenResponse{AccessToken: output.AccessToken})
}

func withToken(rawURL, token string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.WithStack(err)
	}

	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
