package collector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	apperrors "github.com/pinkoot/AI-Assistant/internal/errors"
	protocolDomain "github.com/pinkoot/AI-Assistant/internal/protocol/domain"
)

// maxLookupBody bounds lookup service responses.
const maxLookupBody = 64 << 10

// ErrLookupFailed indicates a lookup service was unreachable or answered unusably.
var ErrLookupFailed = apperrors.Wrap(apperrors.ErrUnavailable, "lookup failed")

// IPLookup resolves the client's public IP address from an ipify-style JSON service.
type IPLookup struct {
	url    string
	client *http.Client
}

// NewIPLookup creates an IP lookup against url, e.g. https://api.ipify.org?format=json.
func NewIPLookup(url string, timeout time.Duration) *IPLookup {
	return &IPLookup{url: url, client: &http.Client{Timeout: timeout}}
}

// PublicIP returns the "ip" field of the lookup response.
func (l *IPLookup) PublicIP(ctx context.Context) (string, error) {
	body, err := fetchJSON(ctx, l.client, l.url)
	if err != nil {
		return "", err
	}
	ip := gjson.GetBytes(body, "ip")
	if !ip.Exists() || ip.String() == "" {
		return "", fmt.Errorf("%w: response has no ip", ErrLookupFailed)
	}
	return ip.String(), nil
}

// GeoLocator resolves approximate coordinates from an ip-api-style JSON service.
type GeoLocator struct {
	url    string
	client *http.Client
}

// NewGeoLocator creates a locator against url, e.g. http://ip-api.com/json.
func NewGeoLocator(url string, timeout time.Duration) *GeoLocator {
	return &GeoLocator{url: url, client: &http.Client{Timeout: timeout}}
}

// Locate returns the coordinates of the client's IP address. Returns
// ErrLocationUnavailable when the service fails or reports a non-success status.
func (g *GeoLocator) Locate(ctx context.Context) (protocolDomain.Coordinates, error) {
	body, err := fetchJSON(ctx, g.client, g.url)
	if err != nil {
		return protocolDomain.Coordinates{}, fmt.Errorf("%w: %w", protocolDomain.ErrLocationUnavailable, err)
	}

	fields := gjson.GetManyBytes(body, "status", "lat", "lon", "message")
	if fields[0].String() != "success" {
		return protocolDomain.Coordinates{}, fmt.Errorf(
			"%w: status %q %s", protocolDomain.ErrLocationUnavailable, fields[0].String(), fields[3].String(),
		)
	}
	if fields[1].Type != gjson.Number || fields[2].Type != gjson.Number {
		return protocolDomain.Coordinates{}, fmt.Errorf(
			"%w: response has no coordinates", protocolDomain.ErrLocationUnavailable,
		)
	}

	return protocolDomain.Coordinates{
		Latitude:  fields[1].Float(),
		Longitude: fields[2].Float(),
	}, nil
}

func fetchJSON(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrLookupFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxLookupBody))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: response is not valid JSON", ErrLookupFailed)
	}
	return body, nil
}
