package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	cipherDomain "github.com/pinkoot/AI-Assistant/internal/cipher/domain"
	protocolDomain "github.com/pinkoot/AI-Assistant/internal/protocol/domain"
)

type hmacSigner struct{}

// NewHMACSigner creates a signer that MACs the compact, insertion-ordered JSON text
// of a parameter map with HMAC-SHA256, keyed by the raw protocol key bytes.
func NewHMACSigner() Signer {
	return &hmacSigner{}
}

func (s *hmacSigner) mac(key cipherDomain.Key, params *protocolDomain.Params) ([]byte, error) {
	if params == nil {
		params = protocolDomain.NewParams()
	}
	canonical, err := params.CanonicalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize params: %w", err)
	}

	secret := key.Secret()
	defer zero(secret)

	mac := hmac.New(sha256.New, secret)
	mac.Write(canonical)
	return mac.Sum(nil), nil
}

// Sign returns the 64-character lowercase hex signature.
func (s *hmacSigner) Sign(key cipherDomain.Key, params *protocolDomain.Params) (string, error) {
	sum, err := s.mac(key, params)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum), nil
}

// Verify compares signatures in constant time. Hex case is ignored.
func (s *hmacSigner) Verify(key cipherDomain.Key, params *protocolDomain.Params, signature string) error {
	if signature == "" {
		return protocolDomain.ErrSignatureMissing
	}

	provided, err := hex.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("%w: not hex encoded", protocolDomain.ErrSignatureInvalid)
	}

	expected, err := s.mac(key, params)
	if err != nil {
		return fmt.Errorf("failed to compute expected signature: %w", err)
	}

	if !hmac.Equal(provided, expected) {
		return protocolDomain.ErrSignatureInvalid
	}
	return nil
}

// zero overwrites key material once the MAC is computed.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
