package metrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Status labels attached to every business measurement.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusStale   = "stale"
)

// BusinessMetrics records counts and latencies of use case operations. Domains in use are
// "protocol" (pipeline actions and mirror endpoints) and "requestlog".
type BusinessMetrics interface {
	RecordOperation(ctx context.Context, domain, operation, status string)
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)
}

type otelBusinessMetrics struct {
	operations metric.Int64Counter
	latency    metric.Float64Histogram
}

// NewBusinessMetrics registers <namespace>_operations_total and
// <namespace>_operation_duration_seconds on a meter named after namespace.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operations, err := meter.Int64Counter(
		namespace+"_operations_total",
		metric.WithDescription("Use case operations by domain, operation and outcome"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	latency, err := meter.Float64Histogram(
		namespace+"_operation_duration_seconds",
		metric.WithDescription("Use case operation latency"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return &otelBusinessMetrics{operations: operations, latency: latency}, nil
}

func operationLabels(domain, operation, status string) metric.MeasurementOption {
	return metric.WithAttributeSet(attribute.NewSet(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	))
}

func (b *otelBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operations.Add(ctx, 1, operationLabels(domain, operation, status))
}

func (b *otelBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.latency.Record(ctx, duration.Seconds(), operationLabels(domain, operation, status))
}

// Classify maps an operation error to its status label. Errors matching one of stale are
// expected outcomes of superseded work and are not counted as failures.
func Classify(err error, stale ...error) string {
	if err == nil {
		return StatusSuccess
	}
	for _, target := range stale {
		if errors.Is(err, target) {
			return StatusStale
		}
	}
	return StatusError
}

// Timer measures one operation between Start and Stop.
type Timer struct {
	metrics   BusinessMetrics
	domain    string
	operation string
	stale     []error
	started   time.Time
}

// Start begins timing operation under domain.
func Start(m BusinessMetrics, domain, operation string, stale ...error) *Timer {
	return &Timer{
		metrics:   m,
		domain:    domain,
		operation: operation,
		stale:     stale,
		started:   time.Now(),
	}
}

// Stop records both the count and the latency of the operation, labelled with Classify(err).
func (t *Timer) Stop(ctx context.Context, err error) {
	status := Classify(err, t.stale...)
	t.metrics.RecordOperation(ctx, t.domain, t.operation, status)
	t.metrics.RecordDuration(ctx, t.domain, t.operation, time.Since(t.started), status)
}

type discardMetrics struct{}

// NewNoOpBusinessMetrics returns a BusinessMetrics that drops every measurement.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return discardMetrics{}
}

func (discardMetrics) RecordOperation(context.Context, string, string, string) {}

func (discardMetrics) RecordDuration(context.Context, string, string, time.Duration, string) {}
