package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/steward-ai/steward/pkg/services"
)

// ErrorResponse is the error envelope every non-2xx response carries.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// apiError writes the error envelope and terminates the handler.
func apiError(c *echo.Context, status int, kind, message string) error {
	return c.JSON(status, &ErrorResponse{Error: kind, Message: message})
}

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(c *echo.Context, err error) error {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return apiError(c, http.StatusBadRequest, "validation_error", validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return apiError(c, http.StatusNotFound, "not_found", "resource not found")
	}
	if errors.Is(err, services.ErrInvalidTransition) {
		return apiError(c, http.StatusConflict, "invalid_transition", err.Error())
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return apiError(c, http.StatusConflict, "duplicate", "resource already exists")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return apiError(c, http.StatusInternalServerError, "internal", "internal server error")
}
