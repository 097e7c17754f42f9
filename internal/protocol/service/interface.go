// Package service provides the protocol's signing and parameter codec services.
package service

import (
	cipherDomain "github.com/pinkoot/AI-Assistant/internal/cipher/domain"
	protocolDomain "github.com/pinkoot/AI-Assistant/internal/protocol/domain"
)

// Signer computes and checks request signatures.
type Signer interface {
	// Sign returns the lowercase hex HMAC-SHA256 of the canonical JSON of params.
	Sign(key cipherDomain.Key, params *protocolDomain.Params) (string, error)

	// Verify returns ErrSignatureMissing for an empty signature and ErrSignatureInvalid
	// when it does not match params.
	Verify(key cipherDomain.Key, params *protocolDomain.Params, signature string) error
}

// ParameterCodec applies the cipher to parameter maps and response trees.
//
// The Encrypt/Decrypt methods are fail-open: on any failure they log and return the
// input unchanged. The Encode/Decode methods are strict and return the error.
type ParameterCodec interface {
	EncryptRequest(params *protocolDomain.Params) *protocolDomain.Params
	DecryptResponse(node protocolDomain.Node) protocolDomain.Node
	EncryptResponse(node protocolDomain.Node) protocolDomain.Node

	EncodeParams(params *protocolDomain.Params) (*protocolDomain.Params, error)
	DecodeParams(params *protocolDomain.Params) (*protocolDomain.Params, error)
}
