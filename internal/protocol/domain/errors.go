package domain

import (
	"fmt"

	"github.com/pinkoot/AI-Assistant/internal/errors"
)

// Protocol error definitions.
var (
	// ErrSignatureMissing indicates a request arrived without an X-HMAC-Signature header.
	ErrSignatureMissing = errors.Wrap(errors.ErrUnauthorized, "signature missing")

	// ErrSignatureInvalid indicates the signature does not match the request parameters.
	ErrSignatureInvalid = errors.Wrap(errors.ErrUnauthorized, "signature invalid")

	// ErrUnsupportedShape indicates a value the codec cannot stringify.
	ErrUnsupportedShape = errors.Wrap(errors.ErrInvalidInput, "unsupported value shape")

	// ErrMalformedQuery indicates a query string that cannot be percent-decoded.
	ErrMalformedQuery = errors.Wrap(errors.ErrInvalidInput, "malformed query")

	// ErrMalformedResponse indicates a response body that is not JSON.
	ErrMalformedResponse = errors.Wrap(errors.ErrUnavailable, "malformed response")

	// ErrTransportFailure indicates the server could not be reached or answered non-2xx.
	ErrTransportFailure = errors.Wrap(errors.ErrUnavailable, "transport failure")

	// ErrServerSignaled indicates the server answered with a top-level "error" key.
	ErrServerSignaled = errors.New("server signaled error")

	// ErrStaleResult indicates a newer request for the same display slot superseded
	// this one, so its result was discarded.
	ErrStaleResult = errors.New("stale result")

	// ErrUnknownAction indicates an action or endpoint outside the catalog.
	ErrUnknownAction = errors.Wrap(errors.ErrNotFound, "unknown action")

	// ErrLocationUnavailable indicates coordinates were required but could not be found.
	ErrLocationUnavailable = errors.Wrap(errors.ErrUnavailable, "location unavailable")

	// ErrDecryptionFailed indicates the server could not decode a request's parameters.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "request decryption failed")
)

// TransportError describes a failed round trip. StatusCode is zero when no response
// was received.
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

// Error returns "transport failure: <status>: <body>" or the network error.
func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("transport failure: %v", e.Err)
	}
	if e.Body == "" {
		return fmt.Sprintf("transport failure: status %d", e.StatusCode)
	}
	return fmt.Sprintf("transport failure: status %d: %s", e.StatusCode, e.Body)
}

// Unwrap exposes ErrTransportFailure and the underlying network error.
func (e *TransportError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTransportFailure}
	}
	return []error{ErrTransportFailure, e.Err}
}

// ServerError carries the plaintext message of a server-signaled error.
type ServerError struct {
	Message string
}

// Error returns the server's message verbatim.
func (e *ServerError) Error() string {
	return e.Message
}

// Unwrap returns ErrServerSignaled.
func (e *ServerError) Unwrap() error {
	return ErrServerSignaled
}
