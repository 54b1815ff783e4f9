package handler

import (
	"net/http"

	deliverycontext "advisor/internal/delivery/context"
	"advisor/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// TestHandler handles test endpoints for middleware validation
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	}, "Public endpoint test successful")
}

// TestRequestID tests the request ID middleware by echoing the ID assigned
// to the current request.
func (h *TestHandler) TestRequestID(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"request_id": deliverycontext.GetRequestID(c),
	}, "Request ID middleware test successful")
}
