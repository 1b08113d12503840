// Package connector provides a thin, reusable HTTP client wrapper for
// calling external JSON APIs. It centralizes base-URL joining, default
// headers and query parameters, authentication-scheme application,
// timeout handling, and response normalization (JSON-or-text) with
// error classification for non-success status codes.
//
// Transport concerns (TLS, connection reuse, retries, rate limiting)
// are out of scope and belong to the underlying Engine or the host
// application.
//
// # Basic Usage
//
//	conn, err := connector.New(connector.Config{
//	    BaseURL: "https://api.example.com",
//	    Timeout: 20 * time.Second,
//	    Auth:    connector.BearerAuth("my-token"),
//	})
//	if err != nil {
//	    return err
//	}
//	defer conn.Close()
//
//	resp, err := conn.Get(ctx, "/v1/things", connector.WithParam("limit", "10"))
//	if err != nil {
//	    return err
//	}
//	data, err := resp.JSON()
//
// # Non-success responses
//
// By default a non-2xx status is returned as a *ResponseError alongside
// the normalized Response. Pass WithRaiseForStatus(false) to receive the
// Response with a nil error and check the status code yourself.
package connector
