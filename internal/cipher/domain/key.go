package domain

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Key is the shared secret of the protocol. The cipher walks its normalized form; the
// signature is keyed with the secret exactly as configured.
//
// The same secret drives both the cipher and the HMAC, and it ships inside client code.
// Neither layer is security-bearing; the coupling is kept for wire compatibility with
// the paired backend.
type Key struct {
	secret string
	runes  []rune
}

// NewKey normalizes raw (lower-cased, spaces removed) and validates the result against
// the default alphabet. Returns ErrInvalidKey when raw is empty, normalizes to nothing,
// or contains a character the cipher cannot shift by.
func NewKey(raw string) (Key, error) {
	if raw == "" {
		return Key{}, fmt.Errorf("%w: key cannot be empty", ErrInvalidKey)
	}

	normalized := strings.ReplaceAll(LowerCase(raw), " ", "")
	if normalized == "" {
		return Key{}, fmt.Errorf("%w: key is empty after normalization", ErrInvalidKey)
	}

	runes := []rune(normalized)
	for _, r := range runes {
		if !defaultIndex.Contains(r) {
			return Key{}, fmt.Errorf("%w: character %q is outside the alphabet", ErrInvalidKey, r)
		}
	}

	return Key{
		secret: raw,
		runes:  runes,
	}, nil
}

// MustKey is like NewKey but panics on error. Intended for tests and constants.
func MustKey(raw string) Key {
	k, err := NewKey(raw)
	if err != nil {
		panic(err)
	}
	return k
}

// IsZero reports whether k was never constructed.
func (k Key) IsZero() bool {
	return len(k.runes) == 0
}

// Len returns the number of characters in the normalized key.
func (k Key) Len() int {
	return len(k.runes)
}

// At returns the normalized key character under cursor, wrapping modulo the key length.
func (k Key) At(cursor int) rune {
	return k.runes[cursor%len(k.runes)]
}

// Normalized returns the lower-cased, space-free key the cipher walks.
func (k Key) Normalized() string {
	return string(k.runes)
}

// Secret returns the key as configured, used verbatim as HMAC key material.
func (k Key) Secret() []byte {
	return []byte(k.secret)
}

// String masks the key so it never lands in logs.
func (k Key) String() string {
	return "Key(****)"
}

// LowerCase applies full Unicode lower-case mapping, matching the mapping browsers use
// for String.prototype.toLowerCase.
func LowerCase(s string) string {
	return cases.Lower(language.Und).String(s)
}

// KMSKeeper decrypts key material held by an external key management service.
// *secrets.Keeper from gocloud.dev satisfies it.
type KMSKeeper interface {
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}
