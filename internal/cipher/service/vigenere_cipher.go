package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	cipherDomain "github.com/pinkoot/AI-Assistant/internal/cipher/domain"
)

type vigenereCipher struct {
	key   cipherDomain.Key
	index *cipherDomain.AlphabetIndex
}

// NewVigenereCipher creates a Vigenère-style substitution cipher over the default
// alphabet. Characters outside the alphabet are copied through and do not advance the
// key cursor, in both directions. Returns ErrInvalidKey for a zero key.
func NewVigenereCipher(key cipherDomain.Key) (Cipher, error) {
	if key.IsZero() {
		return nil, fmt.Errorf("%w: key cannot be empty", cipherDomain.ErrInvalidKey)
	}
	return &vigenereCipher{
		key:   key,
		index: cipherDomain.DefaultAlphabetIndex(),
	}, nil
}

// NewVigenereCipherFromString normalizes raw into a key and builds the cipher.
func NewVigenereCipherFromString(raw string) (Cipher, error) {
	key, err := cipherDomain.NewKey(raw)
	if err != nil {
		return nil, err
	}
	return NewVigenereCipher(key)
}

// Encode shifts every alphabet character of the lower-cased text forward by the key
// character under the cursor.
func (c *vigenereCipher) Encode(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", fmt.Errorf("%w: text is not valid UTF-8", cipherDomain.ErrEncodingFailure)
	}
	return c.transform(text, 1), nil
}

// Decode shifts every alphabet character of the lower-cased text back by the key
// character under the cursor.
func (c *vigenereCipher) Decode(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", fmt.Errorf("%w: text is not valid UTF-8", cipherDomain.ErrDecodingFailure)
	}
	return c.transform(text, -1), nil
}

// transform walks the lower-cased text once. direction is 1 to encode and -1 to decode.
func (c *vigenereCipher) transform(text string, direction int) string {
	lowered := cipherDomain.LowerCase(text)

	var b strings.Builder
	b.Grow(len(lowered))

	cursor := 0
	for _, r := range lowered {
		pos, ok := c.index.PositionOf(r)
		if !ok {
			b.WriteRune(r)
			continue
		}

		// Key characters are validated against the alphabet at construction.
		shift, _ := c.index.PositionOf(c.key.At(cursor))
		b.WriteRune(c.index.IndexOf(pos + direction*shift))
		cursor = (cursor + 1) % c.key.Len()
	}

	return b.String()
}
