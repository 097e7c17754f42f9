package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Params is an insertion-ordered map of scalar parameters. Iteration order is the
// order keys were first set, which is also the order the server sees them and the
// order the signature covers.
type Params struct {
	keys   []string
	values map[string]Value
}

// NewParams returns an empty parameter map.
func NewParams() *Params {
	return &Params{values: make(map[string]Value)}
}

// Set stores v under key. Re-setting an existing key replaces the value and keeps the
// original position.
func (p *Params) Set(key string, v Value) *Params {
	if p.values == nil {
		p.values = make(map[string]Value)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = v
	return p
}

// SetString is shorthand for Set(key, StringValue(s)).
func (p *Params) SetString(key, s string) *Params {
	return p.Set(key, StringValue(s))
}

// Get returns the value stored under key.
func (p *Params) Get(key string) (Value, bool) {
	if p == nil {
		return Value{}, false
	}
	v, ok := p.values[key]
	return v, ok
}

// Has reports whether key is present.
func (p *Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Keys returns the keys in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Len returns the number of keys.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Each calls fn for every key in insertion order.
func (p *Params) Each(fn func(key string, v Value)) {
	if p == nil {
		return
	}
	for _, key := range p.keys {
		fn(key, p.values[key])
	}
}

// Merge sets every entry of other onto p, in other's order, like an object spread.
func (p *Params) Merge(other *Params) *Params {
	other.Each(func(key string, v Value) {
		p.Set(key, v)
	})
	return p
}

// Clone returns a copy of p.
func (p *Params) Clone() *Params {
	return NewParams().Merge(p)
}

// Equal reports whether p and other hold the same entries in the same order.
func (p *Params) Equal(other *Params) bool {
	if p.Len() != other.Len() {
		return false
	}
	for i, key := range p.Keys() {
		if other.keys[i] != key {
			return false
		}
		if !p.values[key].Equal(other.values[key]) {
			return false
		}
	}
	return true
}

// QueryString serializes p as application/x-www-form-urlencoded in insertion order,
// matching URLSearchParams: spaces become '+', '*' stays literal, '~' is escaped.
func (p *Params) QueryString() string {
	var b strings.Builder
	p.Each(func(key string, v Value) {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(formEscape(key))
		b.WriteByte('=')
		b.WriteString(formEscape(v.String()))
	})
	return b.String()
}

func formEscape(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "~", "%7E")
	return strings.ReplaceAll(escaped, "%2A", "*")
}

// ParseQuery parses a raw query string into string parameters, preserving the order in
// which keys first appear. Later duplicates of a key are ignored.
func ParseQuery(rawQuery string) (*Params, error) {
	params := NewParams()
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid query key %q", ErrMalformedQuery, rawKey)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid query value for %q", ErrMalformedQuery, key)
		}
		if params.Has(key) {
			continue
		}
		params.SetString(key, value)
	}
	return params, nil
}

// CanonicalJSON returns the compact JSON text of p exactly as JSON.stringify renders a
// plain object: insertion order, no whitespace, no HTML escaping, non-ASCII kept
// verbatim, and non-finite numbers as null.
func (p *Params) CanonicalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range p.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONValue(&buf, p.values[key]); err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler using the canonical form.
func (p *Params) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("{}"), nil
	}
	return p.CanonicalJSON()
}

func writeJSONValue(buf *bytes.Buffer, v Value) error {
	switch v.kind {
	case KindString:
		return writeJSONString(buf, v.str)
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			buf.WriteString("null")
			return nil
		}
		buf.WriteString(FormatNumber(v.num))
	case KindBool, KindNull:
		buf.WriteString(v.String())
	default:
		return ErrUnsupportedShape
	}
	return nil
}

// writeJSONString quotes s the way JSON.stringify does. encoding/json escapes U+2028
// and U+2029 unconditionally, so the string is encoded around those runes and they are
// written back literally.
func writeJSONString(buf *bytes.Buffer, s string) error {
	buf.WriteByte('"')
	start := 0
	for i, r := range s {
		if r != '\u2028' && r != '\u2029' {
			continue
		}
		if err := writeJSONSegment(buf, s[start:i]); err != nil {
			return err
		}
		buf.WriteRune(r)
		start = i + utf8.RuneLen(r)
	}
	if err := writeJSONSegment(buf, s[start:]); err != nil {
		return err
	}
	buf.WriteByte('"')
	return nil
}

func writeJSONSegment(buf *bytes.Buffer, s string) error {
	if s == "" {
		return nil
	}
	var seg bytes.Buffer
	enc := json.NewEncoder(&seg)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode appends a newline; strip it along with the surrounding quotes.
	quoted := bytes.TrimSuffix(seg.Bytes(), []byte("\n"))
	buf.Write(quoted[1 : len(quoted)-1])
	return nil
}
