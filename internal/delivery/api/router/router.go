// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"blog/internal/delivery/api/middleware"
	"blog/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	PostHandler    *handler.PostHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	postHandler    *handler.PostHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		postHandler:    params.PostHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/registration", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/google-login", r.authHandler.GoogleLogin)
		authGroup.POST("/facebook-login", r.authHandler.FacebookLogin)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
	}

	// Post routes; reads by id and the trending feed are public
	postsGroup := e.Group("/posts")
	{
		postsGroup.POST("/add", r.postHandler.Create, r.authMiddleware.Authenticate)
		postsGroup.GET("/list", r.postHandler.ListMine, r.authMiddleware.Authenticate)
		postsGroup.GET("/trending", r.postHandler.ListTrending)
		postsGroup.GET("/:id", r.postHandler.Get)
		postsGroup.PATCH("/:id", r.postHandler.Update, r.authMiddleware.Authenticate)
		postsGroup.DELETE("/:id", r.postHandler.Delete, r.authMiddleware.Authenticate)
	}
}
