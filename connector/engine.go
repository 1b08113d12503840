package connector

import (
	"context"
	"io"
	"net/http"
	"time"
)

// Exchange describes one prepared HTTP exchange handed to an Engine.
// URL building, header/param merging, and auth application have already
// happened by the time an Engine sees it.
type Exchange struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE, etc).
	Method string
	// URL is the fully resolved request URL.
	URL string
	// Params are query parameters to encode onto the URL.
	Params map[string]string
	// Headers are the request headers.
	Headers map[string]string
	// Body is the encoded request body, or nil.
	Body io.Reader
	// Timeout bounds the whole exchange.
	Timeout time.Duration
}

// RawResponse is the unnormalized result of an exchange.
type RawResponse struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers, flattened to single values.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// Engine executes prepared HTTP exchanges. Implementations own the
// transport: TLS, connection reuse, and everything below the request
// line. Transport-level failures are returned as-is; the connector
// never reclassifies them.
type Engine interface {
	Execute(ctx context.Context, ex Exchange) (*RawResponse, error)
	Close() error
}

// netEngine is the default Engine, backed by net/http.
type netEngine struct {
	client *http.Client
}

func newNetEngine() *netEngine {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	return &netEngine{
		client: &http.Client{Transport: transport},
	}
}

// Execute sends the exchange over net/http. The timeout is applied per
// call through the context rather than http.Client.Timeout so that each
// exchange can carry its own bound.
func (e *netEngine) Execute(ctx context.Context, ex Exchange) (*RawResponse, error) {
	if ex.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ex.Timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, ex.Method, ex.URL, ex.Body)
	if err != nil {
		return nil, NewConfigError("create request: " + err.Error())
	}

	if len(ex.Params) > 0 {
		q := httpReq.URL.Query()
		for k, v := range ex.Params {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	for k, v := range ex.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &RawResponse{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}, nil
}

// Close releases idle connections held by the engine.
func (e *netEngine) Close() error {
	e.client.CloseIdleConnections()
	return nil
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
