package connector

import (
	"context"
	"fmt"
	"net/http"
)

// TypedResponse wraps a response with a decoded body of type T.
type TypedResponse[T any] struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers is a snapshot of the response headers.
	Headers map[string]string
	// Data is the decoded response body.
	Data T
}

// GetJSON performs a GET request and decodes the JSON response into type T.
func GetJSON[T any](c *Connector, ctx context.Context, endpoint string, opts ...RequestOption) (*TypedResponse[T], error) {
	return doTyped[T](c, ctx, http.MethodGet, endpoint, nil, opts...)
}

// PostJSON performs a POST request with a JSON body and decodes the response into type T.
func PostJSON[T any](c *Connector, ctx context.Context, endpoint string, body any, opts ...RequestOption) (*TypedResponse[T], error) {
	return doTyped[T](c, ctx, http.MethodPost, endpoint, body, opts...)
}

// doTyped executes a request and decodes the normalized body into T.
func doTyped[T any](c *Connector, ctx context.Context, method, endpoint string, body any, opts ...RequestOption) (*TypedResponse[T], error) {
	req := Request{
		Method:   method,
		Endpoint: endpoint,
		JSON:     body,
	}
	for _, opt := range opts {
		opt(&req)
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		// Non-success responses still carry a normalized payload; decode
		// it best-effort so callers can inspect structured error bodies.
		if resp != nil && resp.Body.IsStructured() {
			var data T
			if decErr := resp.Body.Decode(&data); decErr == nil {
				return &TypedResponse[T]{
					StatusCode: resp.StatusCode,
					Headers:    resp.Headers,
					Data:       data,
				}, err
			}
		}
		return nil, err
	}

	var data T
	if resp.Body.Raw() != "" {
		if err := resp.Body.Decode(&data); err != nil {
			return nil, fmt.Errorf("connector: decode response: %w", err)
		}
	}

	return &TypedResponse[T]{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Data:       data,
	}, nil
}
