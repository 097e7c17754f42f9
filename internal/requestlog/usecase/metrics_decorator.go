package usecase

import (
	"context"

	"github.com/pinkoot/AI-Assistant/internal/metrics"
	requestLogDomain "github.com/pinkoot/AI-Assistant/internal/requestlog/domain"
)

type requestLogUseCaseWithMetrics struct {
	next    RequestLogUseCase
	metrics metrics.BusinessMetrics
}

// NewRequestLogUseCaseWithMetrics instruments every journal operation under the
// "requestlog" domain.
func NewRequestLogUseCaseWithMetrics(useCase RequestLogUseCase, m metrics.BusinessMetrics) RequestLogUseCase {
	return &requestLogUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (r *requestLogUseCaseWithMetrics) timer(operation string) *metrics.Timer {
	return metrics.Start(r.metrics, "requestlog", operation)
}

func (r *requestLogUseCaseWithMetrics) Record(ctx context.Context, log *requestLogDomain.RequestLog) error {
	t := r.timer("request_log_record")
	err := r.next.Record(ctx, log)
	t.Stop(ctx, err)
	return err
}

func (r *requestLogUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) ([]*requestLogDomain.RequestLog, error) {
	t := r.timer("request_log_list")
	logs, err := r.next.List(ctx, offset, limit)
	t.Stop(ctx, err)
	return logs, err
}

func (r *requestLogUseCaseWithMetrics) DeleteOlderThan(ctx context.Context, days int, dryRun bool) (int64, error) {
	t := r.timer("request_log_delete")
	count, err := r.next.DeleteOlderThan(ctx, days, dryRun)
	t.Stop(ctx, err)
	return count, err
}
