// Package metrics exposes OpenTelemetry instruments through a Prometheus registry: use
// case operation counters and latencies plus per-route HTTP metrics.
package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

// Provider owns a private Prometheus registry fed by an OpenTelemetry meter provider.
// The namespace prefixes every instrument and is reported as service.name in target_info.
type Provider struct {
	namespace     string
	meterProvider *sdkmetric.MeterProvider
	exporter      *promexporter.Exporter
	registry      *prometheus.Registry
}

func NewProvider(namespace string) (*Provider, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(promexporter.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	return &Provider{
		namespace: namespace,
		meterProvider: sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(exporter),
			sdkmetric.WithResource(resource.NewSchemaless(attribute.String("service.name", namespace))),
		),
		exporter: exporter,
		registry: registry,
	}, nil
}

// Namespace returns the metric name prefix.
func (p *Provider) Namespace() string {
	return p.namespace
}

// Handler serves the registry in the Prometheus exposition format, OpenMetrics included.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

func (p *Provider) MeterProvider() *sdkmetric.MeterProvider {
	return p.meterProvider
}

// BusinessMetrics creates the use case instruments on this provider.
func (p *Provider) BusinessMetrics() (BusinessMetrics, error) {
	return NewBusinessMetrics(p.meterProvider, p.namespace)
}

// Shutdown flushes and stops the meter provider. Safe on a zero Provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.meterProvider == nil {
		return nil
	}
	return p.meterProvider.Shutdown(ctx)
}
