// Package usecase implements the request journal: recording mirror traffic, listing it,
// and pruning old entries.
package usecase

import (
	"context"
	"time"

	requestLogDomain "github.com/pinkoot/AI-Assistant/internal/requestlog/domain"
)

// RequestLogRepository defines the persistence interface for RequestLog entities.
type RequestLogRepository interface {
	Create(ctx context.Context, log *requestLogDomain.RequestLog) error
	List(ctx context.Context, offset, limit int) ([]*requestLogDomain.RequestLog, error)
	DeleteOlderThan(ctx context.Context, olderThan time.Time) (int64, error)
}

// RequestLogUseCase defines the journal operations used by the HTTP layer and the CLI.
type RequestLogUseCase interface {
	// Record stores log, assigning a UUIDv7 ID and the current UTC time.
	Record(ctx context.Context, log *requestLogDomain.RequestLog) error

	// List returns entries newest first.
	List(ctx context.Context, offset, limit int) ([]*requestLogDomain.RequestLog, error)

	// DeleteOlderThan removes entries older than days. With dryRun the deletion is rolled
	// back and only its count is reported.
	DeleteOlderThan(ctx context.Context, days int, dryRun bool) (int64, error)
}
