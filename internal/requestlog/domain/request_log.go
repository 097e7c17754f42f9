// Package domain defines the request journal entity.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/pinkoot/AI-Assistant/internal/errors"
)

// ErrInvalidRetention indicates a negative retention period.
var ErrInvalidRetention = errors.Wrap(errors.ErrInvalidInput, "retention days must not be negative")

// RequestLog records one request served by the mirror. RequestData holds the decoded
// parameters and ResponseData the encoded response body, both as JSON text; either is
// empty when the request failed before that stage.
type RequestLog struct {
	ID           uuid.UUID
	RequestID    string
	Method       string
	Path         string
	RequestData  string
	ResponseData string
	StatusCode   int
	UserAgent    string
	ClientIP     string
	DurationMs   int64
	CreatedAt    time.Time
}
