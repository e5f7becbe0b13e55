package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"blog/internal/delivery/api/response"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type createPostRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"required"`
	Image    string `json:"image" validate:"omitempty,url"`
}

type updatePostRequest struct {
	Title      *string `json:"title" validate:"omitnil,min=1"`
	Content    *string `json:"content" validate:"omitnil,min=1"`
	Category   *string `json:"category" validate:"omitnil,min=1"`
	Image      *string `json:"image"`
	IsActive   *bool   `json:"isActive"`
	IsTrending *bool   `json:"isTrending"`
}

// PostHandler holds dependencies for post-related handlers.
type PostHandler struct {
	uc     usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{uc: uc, logger: logger}
}

// Create publishes a post for the authenticated caller.
func (h *PostHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.uc.Create(c.Request().Context(), userID, usecase.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Image:    req.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPostResponse(post))
}

// ListMine returns the authenticated caller's active posts.
func (h *PostHandler) ListMine(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	posts, err := h.uc.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostResponses(posts))
}

// ListTrending returns active posts by trending flag. A missing flag means trending.
func (h *PostHandler) ListTrending(c echo.Context) error {
	isTrending := true
	if raw := c.QueryParam("isTrending"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("isTrending must be a boolean")
		}
		isTrending = parsed
	}

	posts, err := h.uc.ListTrending(c.Request().Context(), isTrending)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostResponses(posts))
}

// Get returns a single post with its author.
func (h *PostHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	post, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostResponse(post))
}

// Update applies a partial update to a post owned by the caller.
func (h *PostHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.uc.Update(c.Request().Context(), userID, id, usecase.UpdatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		Image:      req.Image,
		IsActive:   req.IsActive,
		IsTrending: req.IsTrending,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostResponse(post))
}

// Delete removes a post owned by the caller.
func (h *PostHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), userID, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
