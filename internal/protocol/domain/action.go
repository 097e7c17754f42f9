package domain

import "fmt"

// Action names one user-facing operation of the client.
type Action string

const (
	ActionWeather         Action = "weather"
	ActionSearchProducts  Action = "search_products"
	ActionSearchFood      Action = "search_food"
	ActionSearchWeb       Action = "search_web"
	ActionSearchPlaces    Action = "search_places"
	ActionSearchExact     Action = "search_exact"
	ActionFindRestaurants Action = "find_restaurants"
	ActionFindHotels      Action = "find_hotels"
	ActionFindPlaces      Action = "find_places"
	ActionAddress         Action = "get_address"
)

// Slot is a display area. A result only lands in its slot while its request is the
// newest one issued for that slot.
type Slot string

const (
	SlotWeather Slot = "weather"
	SlotSearch  Slot = "search"
	SlotResult  Slot = "result"
)

// ActionSpec describes how an action is sent: the endpoint path and which parameters
// lead the map, in order, before the user metadata.
type ActionSpec struct {
	Action        Action
	Endpoint      string
	Slot          Slot
	NeedsQuery    bool
	NeedsLocation bool
	Exact         bool
}

var catalog = []ActionSpec{
	{Action: ActionWeather, Endpoint: "get_weather", Slot: SlotWeather},
	{Action: ActionSearchProducts, Endpoint: "search_products", Slot: SlotSearch, NeedsQuery: true},
	{Action: ActionSearchFood, Endpoint: "search_food", Slot: SlotSearch, NeedsQuery: true},
	{Action: ActionSearchWeb, Endpoint: "search_web", Slot: SlotSearch, NeedsQuery: true},
	{Action: ActionSearchPlaces, Endpoint: "search_exact", Slot: SlotResult, NeedsQuery: true, Exact: true},
	{Action: ActionSearchExact, Endpoint: "search_exact", Slot: SlotResult, NeedsQuery: true, Exact: true},
	{Action: ActionFindRestaurants, Endpoint: "find_restaurants", Slot: SlotResult, NeedsLocation: true},
	{Action: ActionFindHotels, Endpoint: "find_hotels", Slot: SlotResult, NeedsLocation: true},
	{Action: ActionFindPlaces, Endpoint: "find_places", Slot: SlotResult, NeedsQuery: true, NeedsLocation: true},
	{Action: ActionAddress, Endpoint: "get_address", Slot: SlotResult, NeedsLocation: true},
}

// Actions returns the action catalog.
func Actions() []ActionSpec {
	out := make([]ActionSpec, len(catalog))
	copy(out, catalog)
	return out
}

// LookupAction returns the spec for action.
func LookupAction(action Action) (ActionSpec, error) {
	for _, spec := range catalog {
		if spec.Action == action {
			return spec, nil
		}
	}
	return ActionSpec{}, fmt.Errorf("%w: %q", ErrUnknownAction, action)
}

// LookupEndpoint returns the first action served by endpoint.
func LookupEndpoint(endpoint string) (ActionSpec, error) {
	for _, spec := range catalog {
		if spec.Endpoint == endpoint {
			return spec, nil
		}
	}
	return ActionSpec{}, fmt.Errorf("%w: endpoint %q", ErrUnknownAction, endpoint)
}

// Endpoints returns every distinct endpoint in catalog order.
func Endpoints() []string {
	seen := make(map[string]bool)
	var endpoints []string
	for _, spec := range catalog {
		if seen[spec.Endpoint] {
			continue
		}
		seen[spec.Endpoint] = true
		endpoints = append(endpoints, spec.Endpoint)
	}
	return endpoints
}
