package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pinkoot/AI-Assistant/internal/database"
	apperrors "github.com/pinkoot/AI-Assistant/internal/errors"
	requestLogDomain "github.com/pinkoot/AI-Assistant/internal/requestlog/domain"
)

type requestLogUseCase struct {
	txManager database.TxManager
	repo      RequestLogRepository
}

func (r *requestLogUseCase) Record(ctx context.Context, log *requestLogDomain.RequestLog) error {
	log.ID = uuid.Must(uuid.NewV7())
	log.CreatedAt = time.Now().UTC()

	if err := r.repo.Create(ctx, log); err != nil {
		return apperrors.Wrap(err, "failed to record request log")
	}
	return nil
}

func (r *requestLogUseCase) List(
	ctx context.Context,
	offset, limit int,
) ([]*requestLogDomain.RequestLog, error) {
	logs, err := r.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list request logs")
	}
	return logs, nil
}

// DeleteOlderThan computes the cutoff as now minus days, in UTC. The delete always runs
// in a transaction so a dry run reports the exact row count the real one would remove.
func (r *requestLogUseCase) DeleteOlderThan(ctx context.Context, days int, dryRun bool) (int64, error) {
	if days < 0 {
		return 0, requestLogDomain.ErrInvalidRetention
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	var count int64
	err := r.txManager.WithTx(ctx, func(ctx context.Context) error {
		deleted, err := r.repo.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			return err
		}
		count = deleted
		if dryRun {
			return database.ErrRollback
		}
		return nil
	})
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete request logs")
	}
	return count, nil
}

// NewRequestLogUseCase creates a new RequestLogUseCase backed by repo.
func NewRequestLogUseCase(txManager database.TxManager, repo RequestLogRepository) RequestLogUseCase {
	return &requestLogUseCase{txManager: txManager, repo: repo}
}
