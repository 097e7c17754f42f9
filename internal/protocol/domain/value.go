// Package domain defines the protocol's parameter maps, response trees, actions, and errors.
package domain

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the scalar type held by a Value.
type Kind int

const (
	// KindInvalid is the zero Kind; a Value{} carries no data and cannot be encoded.
	KindInvalid Kind = iota
	KindNull
	KindString
	KindNumber
	KindBool
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Value is a scalar parameter or response value.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
}

// StringValue returns a string Value.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// NumberValue returns a number Value.
func NumberValue(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// IntValue returns a number Value holding an integer.
func IntValue(n int) Value {
	return Value{kind: KindNumber, num: float64(n)}
}

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// NullValue returns the null Value.
func NullValue() Value {
	return Value{kind: KindNull}
}

// Kind returns the scalar type of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsValid reports whether v was built by one of the constructors.
func (v Value) IsValid() bool {
	return v.kind != KindInvalid
}

// Str returns the raw string of a string Value and false for other kinds.
func (v Value) Str() (string, bool) {
	return v.str, v.kind == KindString
}

// Num returns the number of a number Value and false for other kinds.
func (v Value) Num() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Bool returns the boolean of a bool Value and false for other kinds.
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// String renders v the way the browser client's String(value) does: strings as-is,
// "null", "true"/"false", and numbers in ECMAScript Number-to-String form.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return FormatNumber(v.num)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNull:
		return "null"
	default:
		return ""
	}
}

// Equal reports whether v and other hold the same kind and data.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindNumber:
		return v.num == other.num || (math.IsNaN(v.num) && math.IsNaN(other.num))
	case KindBool:
		return v.b == other.b
	default:
		return true
	}
}

// FormatNumber formats n as ECMAScript's Number::toString does: shortest round-trip
// digits, plain notation for 1e-6 <= |n| < 1e21, exponent notation otherwise.
func FormatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0"
	}

	abs := math.Abs(n)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}

	// Go renders "1e+21" and "1.5e-07"; ECMAScript drops exponent zero padding.
	s := strconv.FormatFloat(n, 'e', -1, 64)
	mantissa, exponent, _ := strings.Cut(s, "e")
	sign := exponent[:1]
	digits := strings.TrimLeft(exponent[1:], "0")
	return mantissa + "e" + sign + digits
}
