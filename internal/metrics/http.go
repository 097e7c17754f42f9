package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// unmatchedRoute labels requests no route matched, so probes for unknown endpoints cannot
// grow label cardinality.
const unmatchedRoute = "unmatched"

type httpInstruments struct {
	requests     metric.Int64Counter
	latency      metric.Float64Histogram
	responseSize metric.Int64Histogram
}

func newHTTPInstruments(meter metric.Meter, namespace string) (*httpInstruments, error) {
	requests, err := meter.Int64Counter(
		namespace+"_http_requests_total",
		metric.WithDescription("HTTP requests by method, route and status code"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	latency, err := meter.Float64Histogram(
		namespace+"_http_request_duration_seconds",
		metric.WithDescription("HTTP request latency"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	responseSize, err := meter.Int64Histogram(
		namespace+"_http_response_size_bytes",
		metric.WithDescription("HTTP response body size"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	return &httpInstruments{requests: requests, latency: latency, responseSize: responseSize}, nil
}

func (h *httpInstruments) observe(ctx context.Context, c *gin.Context, elapsed time.Duration) {
	labels := metric.WithAttributeSet(attribute.NewSet(
		attribute.String("method", c.Request.Method),
		attribute.String("path", sanitizePath(c.FullPath())),
		attribute.String("status_code", strconv.Itoa(c.Writer.Status())),
	))

	h.requests.Add(ctx, 1, labels)
	h.latency.Record(ctx, elapsed.Seconds(), labels)
	if size := c.Writer.Size(); size > 0 {
		h.responseSize.Record(ctx, int64(size), labels)
	}
}

// HTTPMetricsMiddleware records request count, latency and response size labelled by the
// matched route pattern rather than the raw path. Falls back to a pass-through handler
// when the instruments cannot be registered.
func HTTPMetricsMiddleware(meterProvider metric.MeterProvider, namespace string) gin.HandlerFunc {
	instruments, err := newHTTPInstruments(meterProvider.Meter(namespace), namespace)
	if err != nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		instruments.observe(c.Request.Context(), c, time.Since(started))
	}
}

// HTTPMiddleware is HTTPMetricsMiddleware bound to this provider.
func (p *Provider) HTTPMiddleware() gin.HandlerFunc {
	return HTTPMetricsMiddleware(p.meterProvider, p.namespace)
}

func sanitizePath(fullPath string) string {
	if fullPath == "" {
		return unmatchedRoute
	}
	return fullPath
}
