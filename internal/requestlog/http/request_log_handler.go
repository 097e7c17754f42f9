// Package http exposes the request journal over HTTP and records mirror traffic into it.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pinkoot/AI-Assistant/internal/httputil"
	"github.com/pinkoot/AI-Assistant/internal/requestlog/http/dto"
	requestLogUseCase "github.com/pinkoot/AI-Assistant/internal/requestlog/usecase"
)

// RequestLogHandler handles HTTP requests for the request journal.
type RequestLogHandler struct {
	requestLogUseCase requestLogUseCase.RequestLogUseCase
	logger            *slog.Logger
}

// NewRequestLogHandler creates a new request log handler.
func NewRequestLogHandler(
	requestLogUseCase requestLogUseCase.RequestLogUseCase,
	logger *slog.Logger,
) *RequestLogHandler {
	return &RequestLogHandler{
		requestLogUseCase: requestLogUseCase,
		logger:            logger,
	}
}

// ListHandler returns journal entries newest first.
// GET /v1/request-logs?offset=0&limit=50
func (h *RequestLogHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	logs, err := h.requestLogUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRequestLogsToListResponse(logs))
}
