// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/pinkoot/AI-Assistant/internal/errors"
)

// ErrorResponse represents a structured error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Classify maps a domain error to an HTTP status code and a stable error code.
// Unknown errors are internal.
func Classify(err error) (int, string) {
	switch {
	case apperrors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid_input"
	case apperrors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case apperrors.Is(err, apperrors.ErrUnavailable):
		return http.StatusServiceUnavailable, "unavailable"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// HandleErrorGin maps domain errors to HTTP status codes and writes an ErrorResponse.
// Internal error details are logged but never sent.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	statusCode, code := Classify(err)
	response := ErrorResponse{Error: code, Message: err.Error()}
	if statusCode == http.StatusInternalServerError {
		response.Message = "An internal error occurred"
	}

	logRequestError(c, logger, statusCode, code, err)
	c.JSON(statusCode, response)
}

// HandlePlainErrorGin writes {"error": <message>} with the status Classify picks. This is
// the shape protocol clients look for: a top-level "error" key holding readable text.
func HandlePlainErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	statusCode, code := Classify(err)
	message := err.Error()
	if statusCode == http.StatusInternalServerError {
		message = "internal error"
	}

	logRequestError(c, logger, statusCode, code, err)
	c.JSON(statusCode, gin.H{"error": message})
}

// HandleBadRequestGin writes a 400 Bad Request response for malformed parameters.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "bad_request",
		Message: err.Error(),
	})
}

func logRequestError(c *gin.Context, logger *slog.Logger, statusCode int, code string, err error) {
	if logger == nil {
		return
	}

	level := slog.LevelWarn
	if statusCode >= http.StatusInternalServerError {
		level = slog.LevelError
	}

	logger.Log(c.Request.Context(), level, "request failed",
		slog.Int("status_code", statusCode),
		slog.String("error_code", code),
		slog.Any("error", err),
	)
}
