package usecase

import (
	"context"
	"fmt"
	"log/slog"

	cipherDomain "github.com/pinkoot/AI-Assistant/internal/cipher/domain"
	protocolDomain "github.com/pinkoot/AI-Assistant/internal/protocol/domain"
	protocolService "github.com/pinkoot/AI-Assistant/internal/protocol/service"
)

// MirrorResponse is the outcome of a verified mirror request.
type MirrorResponse struct {
	Spec    protocolDomain.ActionSpec
	Decoded *protocolDomain.Params
	Body    protocolDomain.Node
}

type mirrorUseCase struct {
	key    cipherDomain.Key
	codec  protocolService.ParameterCodec
	signer protocolService.Signer
	logger *slog.Logger
}

// NewMirrorUseCase creates the mirror. It checks the signature over the parameters as
// received, decodes them, and answers with the same parameters re-encoded in order.
func NewMirrorUseCase(
	key cipherDomain.Key,
	codec protocolService.ParameterCodec,
	signer protocolService.Signer,
	logger *slog.Logger,
) MirrorUseCase {
	return &mirrorUseCase{
		key:    key,
		codec:  codec,
		signer: signer,
		logger: logger,
	}
}

// Handle returns ErrUnknownAction, ErrMalformedQuery, the signature errors, or
// ErrDecryptionFailed.
func (m *mirrorUseCase) Handle(
	ctx context.Context,
	endpoint, rawQuery, signature string,
) (*MirrorResponse, error) {
	spec, err := protocolDomain.LookupEndpoint(endpoint)
	if err != nil {
		return nil, err
	}

	params, err := protocolDomain.ParseQuery(rawQuery)
	if err != nil {
		return nil, err
	}

	if err := m.signer.Verify(m.key, params, signature); err != nil {
		return nil, err
	}

	decoded, err := m.codec.DecodeParams(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", protocolDomain.ErrDecryptionFailed, err)
	}

	m.logger.DebugContext(ctx, "mirror request verified",
		slog.String("endpoint", spec.Endpoint),
		slog.Int("params", decoded.Len()),
	)

	return &MirrorResponse{
		Spec:    spec,
		Decoded: decoded,
		Body:    m.codec.EncryptResponse(protocolDomain.ParamsNode(decoded)),
	}, nil
}
