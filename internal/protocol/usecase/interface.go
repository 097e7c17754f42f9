// Package usecase implements the request pipeline and the loopback mirror that answers it.
package usecase

import (
	"context"

	protocolDomain "github.com/pinkoot/AI-Assistant/internal/protocol/domain"
)

// Transport performs one signed round trip to the backend.
type Transport interface {
	Get(
		ctx context.Context,
		endpoint string,
		params *protocolDomain.Params,
		signature string,
	) (protocolDomain.Node, error)
}

// MetadataCollector returns the user metadata merged into every parameter map.
type MetadataCollector interface {
	Collect(ctx context.Context) (*protocolDomain.Params, error)
}

// Locator resolves the user's coordinates.
type Locator interface {
	Locate(ctx context.Context) (protocolDomain.Coordinates, error)
}

// Renderer routes a result to its display slot.
type Renderer interface {
	Render(ctx context.Context, result *protocolDomain.Result) error
}

// ErrorReporter shows a failure to the user.
type ErrorReporter interface {
	ReportError(ctx context.Context, action protocolDomain.Action, err error)
}

// Pipeline runs one user action end to end: gather, encode, sign, send, decode, route.
type Pipeline interface {
	// Execute returns ErrStaleResult when a newer request for the same display slot was
	// issued while this one was in flight; such results are never rendered.
	Execute(ctx context.Context, req *protocolDomain.Request) (*protocolDomain.Result, error)
}

// MirrorUseCase verifies, decodes, and echoes requests the way the paired backend does.
type MirrorUseCase interface {
	Handle(ctx context.Context, endpoint, rawQuery, signature string) (*MirrorResponse, error)
}
