// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"
	"unicode/utf8"

	validation "github.com/jellydator/validation"

	apperrors "github.com/pinkoot/AI-Assistant/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// CoordinateRange validates a float64 lies in [Min, Max].
type CoordinateRange struct {
	Name string
	Min  float64
	Max  float64
}

// Validate checks the coordinate bounds. Non-float values are rejected.
func (c CoordinateRange) Validate(value interface{}) error {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case *float64:
		if v == nil {
			return nil
		}
		f = *v
	default:
		return validation.NewError("validation_coordinate_type", c.Name+" must be a number")
	}

	if f < c.Min || f > c.Max {
		return validation.NewError(
			"validation_coordinate_range",
			c.Name+" is out of range",
		)
	}
	return nil
}

// Latitude validates a latitude in degrees.
var Latitude = CoordinateRange{Name: "latitude", Min: -90, Max: 90}

// Longitude validates a longitude in degrees.
var Longitude = CoordinateRange{Name: "longitude", Min: -180, Max: 180}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// ValidUTF8 validates that a string is well-formed UTF-8.
var ValidUTF8 = validation.NewStringRuleWithError(
	utf8.ValidString,
	validation.NewError("validation_utf8", "must be valid UTF-8"),
)

// KeyValuePair validates a "key=value" argument with a non-empty key.
var KeyValuePair = validation.NewStringRuleWithError(
	func(s string) bool {
		key, _, found := strings.Cut(s, "=")
		return found && key != ""
	},
	validation.NewError("validation_key_value", "must be in key=value form"),
)
