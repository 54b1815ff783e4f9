package handler

import (
	"net/http"

	"advisor/config"
	"advisor/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// Version is the reported service version.
const Version = "1.0.0"

// InfoHandler serves service metadata endpoints.
type InfoHandler struct {
	cfg *config.Config
}

// NewInfoHandler is the constructor for InfoHandler
func NewInfoHandler(cfg *config.Config) *InfoHandler {
	return &InfoHandler{
		cfg: cfg,
	}
}

// Root describes the service and its endpoints.
func (h *InfoHandler) Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"service": h.cfg.Env.ServiceName,
		"version": Version,
		"endpoints": map[string]string{
			"/metabolics": "POST - Compute BMR and daily calorie needs from a fitness profile",
			"/health":     "GET - Health check endpoint",
		},
	}, "Welcome to the Fitness Advisor API")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
