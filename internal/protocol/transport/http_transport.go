// Package transport sends encrypted, signed requests to the backend over HTTP.
package transport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	protocolDomain "github.com/pinkoot/AI-Assistant/internal/protocol/domain"
)

// SignatureHeader carries the hex HMAC of the request parameters.
const SignatureHeader = "X-HMAC-Signature"

// maxErrorBody bounds how much of a non-2xx body is kept in a TransportError.
const maxErrorBody = 4096

// maxResponseBody bounds a successful response body.
const maxResponseBody = 10 << 20

// HTTPTransport issues a single GET per request. Retries are left to the caller.
type HTTPTransport struct {
	baseURL   string
	userAgent string
	client    *http.Client
	logger    *slog.Logger
}

// NewHTTPTransport creates a transport rooted at baseURL with a per-request timeout.
func NewHTTPTransport(baseURL string, timeout time.Duration, userAgent string, logger *slog.Logger) *HTTPTransport {
	return &HTTPTransport{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
		logger:    logger,
	}
}

// URL returns the request URL for endpoint and params, with the query in map order.
func (t *HTTPTransport) URL(endpoint string, params *protocolDomain.Params) string {
	u := t.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	if query := params.QueryString(); query != "" {
		u += "?" + query
	}
	return u
}

// Get sends GET <base>/<endpoint>?<params> with the signature header and parses the
// JSON body. Network failures and non-2xx statuses return a *TransportError.
func (t *HTTPTransport) Get(
	ctx context.Context,
	endpoint string,
	params *protocolDomain.Params,
	signature string,
) (protocolDomain.Node, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.URL(endpoint, params), nil)
	if err != nil {
		return protocolDomain.Node{}, &protocolDomain.TransportError{Err: err}
	}
	req.Header.Set(SignatureHeader, signature)
	req.Header.Set("Accept", "application/json")
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}

	start := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		return protocolDomain.Node{}, &protocolDomain.TransportError{Err: err}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			t.logger.Error("failed to close response body", slog.Any("error", closeErr))
		}
	}()

	t.logger.Debug("backend request completed",
		slog.String("endpoint", endpoint),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return protocolDomain.Node{}, &protocolDomain.TransportError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return protocolDomain.Node{}, &protocolDomain.TransportError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("failed to read response body: %w", err),
		}
	}

	return protocolDomain.ParseNode(body)
}
