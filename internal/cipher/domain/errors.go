package domain

import (
	"github.com/pinkoot/AI-Assistant/internal/errors"
)

// Cipher error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors so callers can
// classify them with errors.Is. Cipher failures never reach the end user of
// the client: the parameter codec catches them and falls back to the original data.
var (
	// ErrInvalidKey indicates the key is empty after normalization or contains a
	// character outside the alphabet.
	ErrInvalidKey = errors.Wrap(errors.ErrInvalidInput, "invalid key")

	// ErrEncodingFailure indicates a value could not be encoded.
	ErrEncodingFailure = errors.Wrap(errors.ErrInvalidInput, "encoding failure")

	// ErrDecodingFailure indicates a value could not be decoded.
	ErrDecodingFailure = errors.Wrap(errors.ErrInvalidInput, "decoding failure")

	// ErrKeyNotConfigured indicates neither a plaintext key nor a KMS-wrapped key is set.
	ErrKeyNotConfigured = errors.Wrap(errors.ErrInvalidInput, "protocol key not configured")
)
