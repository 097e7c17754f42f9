package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	validation "github.com/jellydator/validation"

	protocolDomain "github.com/pinkoot/AI-Assistant/internal/protocol/domain"
	protocolUseCase "github.com/pinkoot/AI-Assistant/internal/protocol/usecase"
	customValidation "github.com/pinkoot/AI-Assistant/internal/validation"
)

var searchKinds = map[string]protocolDomain.Action{
	"products": protocolDomain.ActionSearchProducts,
	"food":     protocolDomain.ActionSearchFood,
	"web":      protocolDomain.ActionSearchWeb,
	"places":   protocolDomain.ActionSearchPlaces,
	"exact":    protocolDomain.ActionSearchExact,
}

var placeKinds = map[string]protocolDomain.Action{
	"restaurants": protocolDomain.ActionFindRestaurants,
	"hotels":      protocolDomain.ActionFindHotels,
	"places":      protocolDomain.ActionFindPlaces,
}

// Location holds optional --lat/--lon flags. Set is false when neither flag was given.
type Location struct {
	Set       bool
	Latitude  float64
	Longitude float64
}

func (l Location) coordinates() *protocolDomain.Coordinates {
	if !l.Set {
		return nil
	}
	return &protocolDomain.Coordinates{Latitude: l.Latitude, Longitude: l.Longitude}
}

// WeatherRequest builds a weather request. An empty city selects auto mode.
func WeatherRequest(city string) *protocolDomain.Request {
	return &protocolDomain.Request{Action: protocolDomain.ActionWeather, Query: city}
}

// SearchRequest builds a search request for kind (products, food, web, places, exact).
func SearchRequest(kind, query string) (*protocolDomain.Request, error) {
	action, err := lookupKind(searchKinds, kind)
	if err != nil {
		return nil, err
	}
	return &protocolDomain.Request{Action: action, Query: query}, nil
}

// PlacesRequest builds a nearby lookup for kind (restaurants, hotels, places). Only
// "places" takes a query.
func PlacesRequest(kind, query string, loc Location) (*protocolDomain.Request, error) {
	action, err := lookupKind(placeKinds, kind)
	if err != nil {
		return nil, err
	}
	if action != protocolDomain.ActionFindPlaces {
		query = ""
	}
	return &protocolDomain.Request{Action: action, Query: query, Location: loc.coordinates()}, nil
}

// AddressRequest builds a reverse geocoding request.
func AddressRequest(loc Location) *protocolDomain.Request {
	return &protocolDomain.Request{Action: protocolDomain.ActionAddress, Location: loc.coordinates()}
}

func lookupKind(kinds map[string]protocolDomain.Action, kind string) (protocolDomain.Action, error) {
	allowed := make([]any, 0, len(kinds))
	for k := range kinds {
		allowed = append(allowed, k)
	}
	if err := validation.Validate(kind, validation.Required, validation.In(allowed...)); err != nil {
		return "", customValidation.WrapValidationError(fmt.Errorf("kind: %w", err))
	}
	return kinds[kind], nil
}

// RunAction executes req through pipeline. The pipeline renders both results and
// failures; the returned error only sets the exit status.
func RunAction(
	ctx context.Context,
	pipeline protocolUseCase.Pipeline,
	logger *slog.Logger,
	req *protocolDomain.Request,
) error {
	logger.Debug("executing action", slog.String("action", string(req.Action)))

	if _, err := pipeline.Execute(ctx, req); err != nil {
		if errors.Is(err, protocolDomain.ErrStaleResult) {
			return nil
		}
		return fmt.Errorf("%s failed: %w", req.Action, err)
	}
	return nil
}
