// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vaultd/internal/delivery/http/middleware"
	"vaultd/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CredentialHandler *handler.CredentialHandler
	OAuthHandler      *handler.OAuthHandler
	RefreshHandler    *handler.RefreshHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	credentialHandler *handler.CredentialHandler
	oauthHandler      *handler.OAuthHandler
	refreshHandler    *handler.RefreshHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		credentialHandler: params.CredentialHandler,
		oauthHandler:      params.OAuthHandler,
		refreshHandler:    params.RefreshHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Internal gateway used by automation callers. Every route requires the
	// internal token or a service-account JWT.
	internalGroup := api.Group("/internal")
	internalGroup.Use(r.authMiddleware.Authenticate)
	{
		internalGroup.GET("/credentials/:userId/:serviceName", r.credentialHandler.GetCredentials)
		internalGroup.GET("/connections/:userId", r.credentialHandler.ListConnections)
		internalGroup.GET("/connection-status/:connectionId", r.credentialHandler.ConnectionStatus)
		internalGroup.POST("/connections", r.credentialHandler.StoreConnection)
		internalGroup.PATCH("/connections/:connectionId/tokens", r.credentialHandler.UpdateTokens)
		internalGroup.DELETE("/connections/:connectionId", r.credentialHandler.Deactivate)
		internalGroup.POST("/refresh-tokens", r.refreshHandler.RefreshDueConnections)
	}

	// OAuth flow. The callback stays public: providers redirect the user's
	// browser there without any internal credential.
	oauthGroup := api.Group("/oauth")
	{
		oauthGroup.GET("/callback/:service", r.oauthHandler.Callback)

		connectGroup := oauthGroup.Group("")
		connectGroup.Use(r.authMiddleware.Authenticate)
		{
			connectGroup.GET("/connect/:service", r.oauthHandler.Connect)
			connectGroup.POST("/app", r.oauthHandler.UpsertApplication)
			connectGroup.GET("/apps", r.oauthHandler.ListApplications)
		}
	}
}
