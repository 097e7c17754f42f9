package http

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	requestLogDomain "github.com/pinkoot/AI-Assistant/internal/requestlog/domain"
	requestLogUseCase "github.com/pinkoot/AI-Assistant/internal/requestlog/usecase"
)

const (
	requestDataKey  = "requestlog.request_data"
	responseDataKey = "requestlog.response_data"
	recordTimeout   = 5 * time.Second
)

// SetRequestData attaches the decoded request parameters (JSON text) to the journal entry.
func SetRequestData(c *gin.Context, data string) {
	c.Set(requestDataKey, data)
}

// SetResponseData attaches the response body (JSON text) to the journal entry.
func SetResponseData(c *gin.Context, data string) {
	c.Set(responseDataKey, data)
}

// JournalMiddleware writes one RequestLog per request after the handler finishes.
// Failures to record are logged and never change the response.
func JournalMiddleware(useCase requestLogUseCase.RequestLogUseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		entry := &requestLogDomain.RequestLog{
			RequestID:    requestid.Get(c),
			Method:       c.Request.Method,
			Path:         c.Request.URL.Path,
			RequestData:  c.GetString(requestDataKey),
			ResponseData: c.GetString(responseDataKey),
			StatusCode:   c.Writer.Status(),
			UserAgent:    c.Request.UserAgent(),
			ClientIP:     c.ClientIP(),
			DurationMs:   time.Since(start).Milliseconds(),
		}

		// The client may already be gone; the journal write must not depend on it.
		ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), recordTimeout)
		defer cancel()

		if err := useCase.Record(ctx, entry); err != nil {
			logger.Error("failed to record request log",
				slog.String("path", entry.Path),
				slog.Any("error", err),
			)
		}
	}
}
