// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"inmomarket/internal/delivery/http/middleware"
	"inmomarket/internal/delivery/http/router/handler"
	"inmomarket/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler        *handler.UserHandler
	PublicationHandler *handler.PublicationHandler
	VisitHandler       *handler.VisitHandler
	FavoriteHandler    *handler.FavoriteHandler
	ReportHandler      *handler.ReportHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler        *handler.UserHandler
	publicationHandler *handler.PublicationHandler
	visitHandler       *handler.VisitHandler
	favoriteHandler    *handler.FavoriteHandler
	reportHandler      *handler.ReportHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:        params.UserHandler,
		publicationHandler: params.PublicationHandler,
		visitHandler:       params.VisitHandler,
		favoriteHandler:    params.FavoriteHandler,
		reportHandler:      params.ReportHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// User routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
	}

	// Publication routes. The home feed and detail views are public,
	// publishing and the owner listing require authentication.
	publicationGroup := e.Group("/publications")
	{
		publicationGroup.GET("", r.publicationHandler.ListHome)
		publicationGroup.GET("/my-publications", r.publicationHandler.ListMine, r.authMiddleware.Authenticate)
		publicationGroup.GET("/:id", r.publicationHandler.GetByID)
		publicationGroup.POST("", r.publicationHandler.Create, r.authMiddleware.Authenticate)
	}

	// Visit routes all require authentication
	visitGroup := e.Group("/visits")
	visitGroup.Use(r.authMiddleware.Authenticate)
	{
		visitGroup.POST("/request", r.visitHandler.Schedule)
		visitGroup.GET("/my-visits", r.visitHandler.ListRequested)
		visitGroup.GET("/my-property-visits", r.visitHandler.ListReceived)
		visitGroup.PUT("/:id/accept", r.visitHandler.Accept)
		visitGroup.PUT("/:id/reject", r.visitHandler.Reject)
		visitGroup.PUT("/:id/cancel", r.visitHandler.Cancel)
		visitGroup.GET("/notifications", r.visitHandler.Notifications)
		visitGroup.PUT("/notifications/mark-read", r.visitHandler.MarkNotificationsRead)
	}

	// Favorite routes all require authentication
	favoriteGroup := e.Group("/favorites")
	favoriteGroup.Use(r.authMiddleware.Authenticate)
	{
		favoriteGroup.POST("", r.favoriteHandler.Add)
		favoriteGroup.DELETE("/:publicationId", r.favoriteHandler.Remove)
		favoriteGroup.GET("/my-favorites", r.favoriteHandler.ListMine)
	}

	// Report routes: submission for any authenticated user, review for admins
	reportGroup := e.Group("/reports")
	reportGroup.Use(r.authMiddleware.Authenticate)
	{
		reportGroup.POST("", r.reportHandler.Submit)

		adminGroup := reportGroup.Group("/admin")
		adminGroup.Use(r.authMiddleware.RequireRole(string(entity.RoleAdmin)))
		{
			adminGroup.GET("/all", r.reportHandler.ListAll)
			adminGroup.PUT("/:id/resolve", r.reportHandler.Resolve)
		}
	}
}
