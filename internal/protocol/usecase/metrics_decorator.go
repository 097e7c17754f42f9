package usecase

import (
	"context"

	"github.com/pinkoot/AI-Assistant/internal/metrics"
	protocolDomain "github.com/pinkoot/AI-Assistant/internal/protocol/domain"
)

const metricsDomain = "protocol"

type pipelineWithMetrics struct {
	next    Pipeline
	metrics metrics.BusinessMetrics
}

// NewPipelineWithMetrics counts and times every action as "request_<action>". Superseded
// results are reported as stale.
func NewPipelineWithMetrics(p Pipeline, m metrics.BusinessMetrics) Pipeline {
	return &pipelineWithMetrics{
		next:    p,
		metrics: m,
	}
}

func (p *pipelineWithMetrics) Execute(
	ctx context.Context,
	req *protocolDomain.Request,
) (*protocolDomain.Result, error) {
	timer := metrics.Start(p.metrics, metricsDomain, "request_"+string(req.Action), protocolDomain.ErrStaleResult)
	result, err := p.next.Execute(ctx, req)
	timer.Stop(ctx, err)
	return result, err
}

type mirrorUseCaseWithMetrics struct {
	next    MirrorUseCase
	metrics metrics.BusinessMetrics
}

// NewMirrorUseCaseWithMetrics counts and times every mirror request as "mirror_<endpoint>".
func NewMirrorUseCaseWithMetrics(m MirrorUseCase, bm metrics.BusinessMetrics) MirrorUseCase {
	return &mirrorUseCaseWithMetrics{
		next:    m,
		metrics: bm,
	}
}

func (m *mirrorUseCaseWithMetrics) Handle(
	ctx context.Context,
	endpoint, rawQuery, signature string,
) (*MirrorResponse, error) {
	timer := metrics.Start(m.metrics, metricsDomain, "mirror_"+endpoint)
	resp, err := m.next.Handle(ctx, endpoint, rawQuery, signature)
	timer.Stop(ctx, err)
	return resp, err
}
