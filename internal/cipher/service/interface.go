// Package service provides the substitution cipher and protocol key loading.
package service

import (
	"context"

	cipherDomain "github.com/pinkoot/AI-Assistant/internal/cipher/domain"
)

// Cipher defines a reversible text transform driven by a shared key.
type Cipher interface {
	// Encode lower-cases text and shifts every alphabet character forward by the key.
	Encode(text string) (string, error)
	// Decode reverses Encode for the same key.
	Decode(text string) (string, error)
}

// KMSService opens keepers for wrapped protocol keys.
type KMSService interface {
	// OpenKeeper opens a keeper for the given URI.
	// Returns an error if the KMS provider URI is invalid or connection fails.
	OpenKeeper(ctx context.Context, keyURI string) (cipherDomain.KMSKeeper, error)
}

// KeyLoader resolves the protocol key once at startup.
type KeyLoader interface {
	Load(ctx context.Context) (cipherDomain.Key, error)
}
