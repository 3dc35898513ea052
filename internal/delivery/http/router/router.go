// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ideaforge/internal/delivery/http/middleware"
	"ideaforge/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler          *handler.AuthHandler
	ProjectHandler       *handler.ProjectHandler
	CollaborationHandler *handler.CollaborationHandler
	CommentHandler       *handler.CommentHandler
	NotificationHandler  *handler.NotificationHandler
	TransactionHandler   *handler.TransactionHandler
	AuthMiddleware       *middleware.AuthMiddleware
	ErrorMiddleware      *middleware.ErrorMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler          *handler.AuthHandler
	projectHandler       *handler.ProjectHandler
	collaborationHandler *handler.CollaborationHandler
	commentHandler       *handler.CommentHandler
	notificationHandler  *handler.NotificationHandler
	transactionHandler   *handler.TransactionHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:          params.AuthHandler,
		projectHandler:       params.ProjectHandler,
		collaborationHandler: params.CollaborationHandler,
		commentHandler:       params.CommentHandler,
		notificationHandler:  params.NotificationHandler,
		transactionHandler:   params.TransactionHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes: profile bootstrap and the auth provider's signup webhook
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/create-profile", r.authHandler.CreateProfile)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
		authGroup.POST("/webhook", r.authHandler.SignupWebhook, r.authMiddleware.VerifyWebhookSecret)
	}

	// Project routes: public reads run behind optional authentication so
	// owners can see their private rows
	projectGroup := e.Group("/projects")
	{
		projectGroup.POST("", r.projectHandler.CreateProject, r.authMiddleware.Authenticate)
		projectGroup.GET("/public", r.projectHandler.ListPublicProjects)
		projectGroup.GET("/user/:userId", r.projectHandler.ListUserProjects, r.authMiddleware.Authenticate)
		projectGroup.GET("/:id", r.projectHandler.GetProject, r.authMiddleware.OptionalAuthenticate)
	}

	// Collaboration request routes
	collaborationGroup := e.Group("/collaborations")
	collaborationGroup.Use(r.authMiddleware.Authenticate)
	{
		collaborationGroup.POST("/request", r.collaborationHandler.RequestCollaboration)
		collaborationGroup.POST("/respond", r.collaborationHandler.RespondToRequest)
		collaborationGroup.GET("/user/:userId", r.collaborationHandler.ListUserCollaborations)
	}

	// Comment routes
	commentGroup := e.Group("/comments")
	{
		commentGroup.POST("", r.commentHandler.CreateComment, r.authMiddleware.Authenticate)
		commentGroup.GET("/:projectId", r.commentHandler.ListProjectComments, r.authMiddleware.OptionalAuthenticate)
	}

	// Notification routes
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationGroup.POST("", r.notificationHandler.CreateNotification)
		notificationGroup.GET("/user/:userId", r.notificationHandler.ListUserNotifications)
		notificationGroup.POST("/mark-read", r.notificationHandler.MarkRead)
	}

	// Transaction routes
	transactionGroup := e.Group("/transactions")
	transactionGroup.Use(r.authMiddleware.Authenticate)
	{
		transactionGroup.POST("/create", r.transactionHandler.CreateTransaction)
		transactionGroup.POST("/update", r.transactionHandler.UpdateTransaction)
		transactionGroup.GET("/user/:userId", r.transactionHandler.ListUserTransactions)
	}
}
