// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"advisor/internal/delivery/http/response"
	"advisor/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MetabolicsHandlerParams holds dependencies for MetabolicsHandler, injected by Fx.
type MetabolicsHandlerParams struct {
	fx.In

	MetabolicsUC usecase.MetabolicsUsecase
	Logger       *slog.Logger
}

// MetabolicsHandler holds dependencies for metabolic estimate handlers
type MetabolicsHandler struct {
	metabolicsUC usecase.MetabolicsUsecase
	logger       *slog.Logger
}

// NewMetabolicsHandler is the constructor for MetabolicsHandler
func NewMetabolicsHandler(params MetabolicsHandlerParams) *MetabolicsHandler {
	return &MetabolicsHandler{
		metabolicsUC: params.MetabolicsUC,
		logger:       params.Logger,
	}
}

// ComputeMetabolicsRequest represents the request body for a metabolic estimate.
// Domain constraints (positive figures, enum membership, age range) are
// enforced by the usecase layer so rejections always name the offending field.
type ComputeMetabolicsRequest struct {
	Age           int     `json:"age"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Sex           string  `json:"sex"`
	ActivityLevel string  `json:"activity_level"`
	Goals         string  `json:"goals,omitempty" validate:"omitempty,max=500"`
}

// ComputeMetabolics handles computing BMR, daily calorie need and goal targets
func (h *MetabolicsHandler) ComputeMetabolics(c echo.Context) error {
	var req ComputeMetabolicsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid metabolics input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.ComputeMetabolicsInput{
		Age:           req.Age,
		Weight:        req.Weight,
		Height:        req.Height,
		Sex:           req.Sex,
		ActivityLevel: req.ActivityLevel,
		Goals:         req.Goals,
	}

	report, err := h.metabolicsUC.ComputeMetabolics(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "Metabolic estimate computed successfully")
}
