package domain

import (
	"strings"
	"unicode"

	validation "github.com/jellydator/validation"

	customValidation "github.com/pinkoot/AI-Assistant/internal/validation"
)

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Validate checks both coordinates are in range.
func (c Coordinates) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Latitude, customValidation.Latitude),
		validation.Field(&c.Longitude, customValidation.Longitude),
	)
}

// Request is one user-initiated call: an action plus the inputs the user supplied.
// Query is the search text, or the city for a manual weather lookup. Location, when
// nil, is resolved by the locator for actions that need coordinates.
type Request struct {
	Action   Action
	Query    string
	Location *Coordinates
}

// Validate checks the request against its action's requirements.
func (r *Request) Validate() error {
	spec, err := LookupAction(r.Action)
	if err != nil {
		return err
	}

	err = validation.ValidateStruct(r,
		validation.Field(&r.Query,
			validation.When(spec.NeedsQuery, validation.Required, customValidation.NotBlank),
			customValidation.ValidUTF8,
		),
		validation.Field(&r.Location),
	)
	return customValidation.WrapValidationError(err)
}

// NormalizeCity trims the city and capitalizes its first letter, lower-casing the rest.
func NormalizeCity(city string) string {
	city = strings.TrimSpace(city)
	if city == "" {
		return ""
	}
	runes := []rune(strings.ToLower(city))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// BuildParams assembles the parameter map for spec in wire order: the action's own
// parameters first, then every metadata entry.
func BuildParams(spec ActionSpec, req *Request, coords *Coordinates, mapProvider string, metadata *Params) *Params {
	params := NewParams()

	switch {
	case spec.Action == ActionWeather:
		city := NormalizeCity(req.Query)
		if city == "" {
			params.Set("q", NullValue())
		} else {
			params.SetString("q", city)
		}
	case spec.NeedsLocation:
		params.Set("lat", NumberValue(coords.Latitude))
		params.Set("lon", NumberValue(coords.Longitude))
		if mapProvider != "" {
			params.SetString("map_provider", mapProvider)
		}
		if spec.NeedsQuery {
			params.SetString("query", strings.TrimSpace(req.Query))
		}
	default:
		params.SetString("query", strings.TrimSpace(req.Query))
		if spec.Exact {
			params.Set("exact", BoolValue(true))
		}
	}

	return params.Merge(metadata)
}
