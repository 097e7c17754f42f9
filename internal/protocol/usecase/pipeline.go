package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	cipherDomain "github.com/pinkoot/AI-Assistant/internal/cipher/domain"
	protocolDomain "github.com/pinkoot/AI-Assistant/internal/protocol/domain"
	protocolService "github.com/pinkoot/AI-Assistant/internal/protocol/service"
)

// PipelineConfig holds the static inputs of the pipeline.
type PipelineConfig struct {
	Key         cipherDomain.Key
	MapProvider string
}

type pipeline struct {
	cfg         PipelineConfig
	codec       protocolService.ParameterCodec
	signer      protocolService.Signer
	transport   Transport
	collector   MetadataCollector
	locator     Locator
	renderer    Renderer
	reporter    ErrorReporter
	generations *generationTracker
	logger      *slog.Logger
}

// NewPipeline creates the request pipeline.
func NewPipeline(
	cfg PipelineConfig,
	codec protocolService.ParameterCodec,
	signer protocolService.Signer,
	transport Transport,
	collector MetadataCollector,
	locator Locator,
	renderer Renderer,
	reporter ErrorReporter,
	logger *slog.Logger,
) Pipeline {
	return &pipeline{
		cfg:         cfg,
		codec:       codec,
		signer:      signer,
		transport:   transport,
		collector:   collector,
		locator:     locator,
		renderer:    renderer,
		reporter:    reporter,
		generations: newGenerationTracker(),
		logger:      logger,
	}
}

// Execute runs the request. Every failure that belongs to the newest request of its
// slot goes to the error reporter; failures of superseded requests are dropped.
func (p *pipeline) Execute(ctx context.Context, req *protocolDomain.Request) (*protocolDomain.Result, error) {
	if err := req.Validate(); err != nil {
		p.reporter.ReportError(ctx, req.Action, err)
		return nil, err
	}

	spec, err := protocolDomain.LookupAction(req.Action)
	if err != nil {
		p.reporter.ReportError(ctx, req.Action, err)
		return nil, err
	}

	token := p.generations.Next(spec.Slot)
	requestID := uuid.Must(uuid.NewV7()).String()
	logger := p.logger.With(
		slog.String("request_id", requestID),
		slog.String("action", string(spec.Action)),
	)

	metadata, coords, err := p.gather(ctx, spec, req)
	if err != nil {
		return nil, p.fail(ctx, spec, token, logger, err)
	}

	params := protocolDomain.BuildParams(spec, req, coords, p.cfg.MapProvider, metadata)
	encrypted := p.codec.EncryptRequest(params)

	signature, err := p.signer.Sign(p.cfg.Key, encrypted)
	if err != nil {
		return nil, p.fail(ctx, spec, token, logger, fmt.Errorf("failed to sign request: %w", err))
	}

	logger.Debug("sending request",
		slog.String("endpoint", spec.Endpoint),
		slog.Int("params", encrypted.Len()),
	)

	response, err := p.transport.Get(ctx, spec.Endpoint, encrypted, signature)
	if err != nil {
		return nil, p.fail(ctx, spec, token, logger, err)
	}

	if msg, ok := response.ErrorMessage(); ok {
		return nil, p.fail(ctx, spec, token, logger, &protocolDomain.ServerError{Message: msg})
	}

	result := protocolDomain.NewResult(spec.Action, requestID, p.codec.DecryptResponse(response))

	if !p.generations.IsCurrent(spec.Slot, token) {
		logger.Info("discarding superseded result", slog.String("slot", string(spec.Slot)))
		return nil, protocolDomain.ErrStaleResult
	}

	if err := p.renderer.Render(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to render result: %w", err)
	}
	return result, nil
}

// gather collects metadata and, when the action needs them, coordinates concurrently.
func (p *pipeline) gather(
	ctx context.Context,
	spec protocolDomain.ActionSpec,
	req *protocolDomain.Request,
) (*protocolDomain.Params, *protocolDomain.Coordinates, error) {
	var (
		metadata *protocolDomain.Params
		coords   *protocolDomain.Coordinates
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		m, err := p.collector.Collect(gctx)
		if err != nil {
			return fmt.Errorf("failed to collect metadata: %w", err)
		}
		metadata = m
		return nil
	})

	if spec.NeedsLocation {
		if req.Location != nil {
			c := *req.Location
			coords = &c
		} else {
			g.Go(func() error {
				c, err := p.locator.Locate(gctx)
				if err != nil {
					return err
				}
				coords = &c
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return metadata, coords, nil
}

func (p *pipeline) fail(
	ctx context.Context,
	spec protocolDomain.ActionSpec,
	token uint64,
	logger *slog.Logger,
	err error,
) error {
	if !p.generations.IsCurrent(spec.Slot, token) {
		logger.Info("discarding superseded failure", slog.Any("error", err))
		return protocolDomain.ErrStaleResult
	}

	logger.Error("request failed", slog.Any("error", err))
	p.reporter.ReportError(ctx, spec.Action, err)
	return err
}
