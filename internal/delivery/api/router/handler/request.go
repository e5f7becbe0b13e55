// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"
	"time"

	"blog/internal/delivery/api/middleware"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindAndValidate decodes the body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(req); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if msg, ok := httpErr.Message.(string); ok {
				return domainerrors.ErrValidationFailed.WithDetails(msg)
			}
		}

		return errors.WithStack(err)
	}

	return nil
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id must be a positive integer")
	}

	return id, nil
}

func callerID(c echo.Context) (int64, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return 0, domainerrors.ErrAuthorizationFailed.WithDetails("user id missing from context")
	}

	return userID, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type userResponse struct {
	ID               int64      `json:"id"`
	Email            string     `json:"email"`
	Name             string     `json:"name"`
	Provider         string     `json:"provider,omitempty"`
	ProfileImageLink string     `json:"profile_image_link,omitempty"`
	IsActive         bool       `json:"is_active"`
	SubscriptionType string     `json:"subscription_type"`
	SubscriptionEnd  *time.Time `json:"subscription_end,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func toUserResponse(user *entity.User) *userResponse {
	if user == nil {
		return nil
	}

	return &userResponse{
		ID:               user.ID,
		Email:            user.Email,
		Name:             user.Name,
		Provider:         user.Provider.String(),
		ProfileImageLink: user.ProfileImageLink,
		IsActive:         user.IsActive,
		SubscriptionType: string(user.SubscriptionType),
		SubscriptionEnd:  user.SubscriptionEnd,
		CreatedAt:        user.CreatedAt,
	}
}

type postResponse struct {
	ID         int64         `json:"id"`
	Title      string        `json:"title"`
	Image      string        `json:"image,omitempty"`
	Content    string        `json:"content"`
	Category   string        `json:"category"`
	UserID     int64         `json:"user_id"`
	User       *userResponse `json:"user,omitempty"`
	IsActive   bool          `json:"is_active"`
	IsTrending bool          `json:"is_trending"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

func toPostResponse(post *entity.Post) *postResponse {
	return &postResponse{
		ID:         post.ID,
		Title:      post.Title,
		Image:      post.Image,
		Content:    post.Content,
		Category:   post.Category,
		UserID:     post.UserID,
		User:       toUserResponse(post.User),
		IsActive:   post.IsActive,
		IsTrending: post.IsTrending,
		CreatedAt:  post.CreatedAt,
		UpdatedAt:  post.UpdatedAt,
	}
}

func toPostResponses(posts []*entity.Post) []*postResponse {
	out := make([]*postResponse, 0, len(posts))
	for _, post := range posts {
		out = append(out, toPostResponse(post))
	}

	return out
}
