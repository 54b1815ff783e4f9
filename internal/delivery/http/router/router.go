// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"advisor/config"
	"advisor/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config            *config.Config
	InfoHandler       *handler.InfoHandler
	MetabolicsHandler *handler.MetabolicsHandler
	TestHandler       *handler.TestHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg               *config.Config
	infoHandler       *handler.InfoHandler
	metabolicsHandler *handler.MetabolicsHandler
	testHandler       *handler.TestHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:               params.Config,
		infoHandler:       params.InfoHandler,
		metabolicsHandler: params.MetabolicsHandler,
		testHandler:       params.TestHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Service metadata and health check endpoints
	e.GET("/", r.infoHandler.Root)
	e.GET("/health", handler.HealthCheck)

	// Metabolic estimate routes
	metabolicsGroup := e.Group("/metabolics")
	{
		metabolicsGroup.POST("", r.metabolicsHandler.ComputeMetabolics)
	}

	// Test routes for middleware validation, disabled unless configured
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
			testGroup.GET("/request-id", r.testHandler.TestRequestID)
		}
	}
}
