package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	cipherDomain "github.com/pinkoot/AI-Assistant/internal/cipher/domain"
	cipherService "github.com/pinkoot/AI-Assistant/internal/cipher/service"
	"github.com/pinkoot/AI-Assistant/internal/collector"
	protocolHTTP "github.com/pinkoot/AI-Assistant/internal/protocol/http"
	protocolService "github.com/pinkoot/AI-Assistant/internal/protocol/service"
	"github.com/pinkoot/AI-Assistant/internal/protocol/transport"
	protocolUseCase "github.com/pinkoot/AI-Assistant/internal/protocol/usecase"
)

type protocolComponents struct {
	key           cipherDomain.Key
	kmsService    cipherService.KMSService
	codec         protocolService.ParameterCodec
	signer        protocolService.Signer
	transport     *transport.HTTPTransport
	collector     *collector.Collector
	locator       *collector.GeoLocator
	mirrorUseCase protocolUseCase.MirrorUseCase
	mirrorHandler *protocolHTTP.MirrorHandler

	keyInit           sync.Once
	kmsServiceInit    sync.Once
	codecInit         sync.Once
	signerInit        sync.Once
	transportInit     sync.Once
	collectorInit     sync.Once
	locatorInit       sync.Once
	mirrorUseCaseInit sync.Once
	mirrorHandlerInit sync.Once
}

// Key returns the protocol key, loaded once per process from PROTOCOL_KEY or from a
// KMS-wrapped ciphertext.
func (c *Container) Key(ctx context.Context) (cipherDomain.Key, error) {
	c.protocol.keyInit.Do(func() {
		key, err := c.initKey(ctx)
		c.setInit("key", err)
		c.protocol.key = key
	})
	if err := c.initError("key"); err != nil {
		return cipherDomain.Key{}, err
	}
	return c.protocol.key, nil
}

// KMSService returns the KMS service used to unwrap the protocol key.
func (c *Container) KMSService() cipherService.KMSService {
	c.protocol.kmsServiceInit.Do(func() {
		c.protocol.kmsService = cipherService.NewKMSService()
	})
	return c.protocol.kmsService
}

// Codec returns the parameter codec. An unusable key does not fail here: the codec
// fails open and logs on every call.
func (c *Container) Codec(ctx context.Context) protocolService.ParameterCodec {
	c.protocol.codecInit.Do(func() {
		c.protocol.codec = protocolService.NewParameterCodec(c.keyOrZero(ctx), c.Logger())
	})
	return c.protocol.codec
}

// Signer returns the HMAC signer.
func (c *Container) Signer() protocolService.Signer {
	c.protocol.signerInit.Do(func() {
		c.protocol.signer = protocolService.NewHMACSigner()
	})
	return c.protocol.signer
}

// Transport returns the backend HTTP transport.
func (c *Container) Transport() *transport.HTTPTransport {
	c.protocol.transportInit.Do(func() {
		c.protocol.transport = transport.NewHTTPTransport(
			c.config.BackendURL,
			c.config.HTTPTimeout,
			collector.UserAgent(Version),
			c.Logger(),
		)
	})
	return c.protocol.transport
}

// Collector returns the client metadata collector.
func (c *Container) Collector() *collector.Collector {
	c.protocol.collectorInit.Do(func() {
		c.protocol.collector = collector.NewCollector(
			collector.NewIPLookup(c.config.IPLookupURL, c.config.HTTPTimeout),
			collector.LocalDeviceInfo(Version),
			c.Logger(),
		)
	})
	return c.protocol.collector
}

// Locator returns the IP geolocation collaborator.
func (c *Container) Locator() *collector.GeoLocator {
	c.protocol.locatorInit.Do(func() {
		c.protocol.locator = collector.NewGeoLocator(c.config.GeolocationURL, c.config.HTTPTimeout)
	})
	return c.protocol.locator
}

// NewPipeline assembles a request pipeline that renders through r. It is not cached:
// each CLI invocation picks its own output format.
func (c *Container) NewPipeline(
	ctx context.Context,
	r interface {
		protocolUseCase.Renderer
		protocolUseCase.ErrorReporter
	},
) (protocolUseCase.Pipeline, error) {
	bm, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for pipeline: %w", err)
	}

	pipeline := protocolUseCase.NewPipeline(
		protocolUseCase.PipelineConfig{
			Key:         c.keyOrZero(ctx),
			MapProvider: c.config.MapProvider,
		},
		c.Codec(ctx),
		c.Signer(),
		c.Transport(),
		c.Collector(),
		c.Locator(),
		r,
		r,
		c.Logger(),
	)

	return protocolUseCase.NewPipelineWithMetrics(pipeline, bm), nil
}

// MirrorUseCase returns the loopback mirror. Unlike the pipeline it needs a usable key:
// a mirror that cannot verify signatures would reject every request.
func (c *Container) MirrorUseCase(ctx context.Context) (protocolUseCase.MirrorUseCase, error) {
	c.protocol.mirrorUseCaseInit.Do(func() {
		useCase, err := c.initMirrorUseCase(ctx)
		c.setInit("mirrorUseCase", err)
		c.protocol.mirrorUseCase = useCase
	})
	if err := c.initError("mirrorUseCase"); err != nil {
		return nil, err
	}
	return c.protocol.mirrorUseCase, nil
}

// MirrorHandler returns the HTTP handler for the mirror endpoints.
func (c *Container) MirrorHandler() (*protocolHTTP.MirrorHandler, error) {
	c.protocol.mirrorHandlerInit.Do(func() {
		handler, err := c.initMirrorHandler()
		c.setInit("mirrorHandler", err)
		c.protocol.mirrorHandler = handler
	})
	if err := c.initError("mirrorHandler"); err != nil {
		return nil, err
	}
	return c.protocol.mirrorHandler, nil
}

func (c *Container) initKey(ctx context.Context) (cipherDomain.Key, error) {
	loader := cipherService.NewKeyLoader(cipherService.KeyLoaderConfig{
		Plaintext:  c.config.ProtocolKey,
		KeyURI:     c.config.ProtocolKeyURI,
		Ciphertext: c.config.ProtocolKeyCiphertext,
	}, c.KMSService(), c.Logger())

	key, err := loader.Load(ctx)
	if err != nil {
		return cipherDomain.Key{}, fmt.Errorf("failed to load protocol key: %w", err)
	}
	return key, nil
}

// keyOrZero returns the zero Key when loading fails, so the codec fails open.
func (c *Container) keyOrZero(ctx context.Context) cipherDomain.Key {
	key, err := c.Key(ctx)
	if err != nil {
		c.Logger().Error("protocol key unavailable, requests will be sent unencrypted",
			slog.Any("error", err),
		)
		return cipherDomain.Key{}
	}
	return key
}

func (c *Container) initMirrorUseCase(ctx context.Context) (protocolUseCase.MirrorUseCase, error) {
	key, err := c.Key(ctx)
	if err != nil {
		return nil, err
	}

	bm, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for mirror use case: %w", err)
	}

	useCase := protocolUseCase.NewMirrorUseCase(key, c.Codec(ctx), c.Signer(), c.Logger())
	return protocolUseCase.NewMirrorUseCaseWithMetrics(useCase, bm), nil
}

func (c *Container) initMirrorHandler() (*protocolHTTP.MirrorHandler, error) {
	useCase, err := c.MirrorUseCase(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get mirror use case for mirror handler: %w", err)
	}
	return protocolHTTP.NewMirrorHandler(useCase, c.Logger()), nil
}
