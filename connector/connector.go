package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/apiconnect/logger"
)

const tracerName = "github.com/kbukum/apiconnect/connector"

// Request describes one outbound API call.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE, etc).
	Method string
	// Endpoint is joined with the connector's BaseURL, or used verbatim
	// when it is already an absolute URL.
	Endpoint string
	// Headers are request-specific headers merged over the defaults.
	Headers map[string]string
	// Params are request-specific query parameters merged over the defaults.
	Params map[string]string
	// JSON is a value marshalled as the application/json request body.
	JSON any
	// Data is a raw request body: io.Reader, []byte, string, or *MultipartBody.
	Data any
	// Timeout overrides the connector's default timeout for this call.
	Timeout time.Duration
}

// RequestOption configures a single request.
type RequestOption func(*Request)

// WithHeader adds a header to the request.
func WithHeader(key, value string) RequestOption {
	return func(r *Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string)
		}
		r.Headers[key] = value
	}
}

// WithParam adds a query parameter to the request.
func WithParam(key, value string) RequestOption {
	return func(r *Request) {
		if r.Params == nil {
			r.Params = make(map[string]string)
		}
		r.Params[key] = value
	}
}

// WithTimeout overrides the default timeout for the request.
func WithTimeout(d time.Duration) RequestOption {
	return func(r *Request) {
		r.Timeout = d
	}
}

// WithData sets a raw request body (io.Reader, []byte, string, or *MultipartBody).
func WithData(data any) RequestOption {
	return func(r *Request) {
		r.Data = data
	}
}

// Connector issues API calls and normalizes their responses. It is safe
// for concurrent use as long as the configured Engine is; the default
// net/http engine is.
type Connector struct {
	config         Config
	engine         Engine
	log            *logger.Logger
	raiseForStatus bool

	closeOnce sync.Once
	closeErr  error
}

// Option configures a Connector.
type Option func(*Connector)

// WithEngine replaces the default net/http engine.
func WithEngine(e Engine) Option {
	return func(c *Connector) {
		if e != nil {
			c.engine = e
		}
	}
}

// WithLogger attaches a logger for per-request debug logging.
func WithLogger(l *logger.Logger) Option {
	return func(c *Connector) {
		c.log = l
	}
}

// WithRaiseForStatus controls whether non-2xx responses are returned as
// errors. Enabled by default; when disabled, callers receive the
// normalized Response and must check the status code themselves.
func WithRaiseForStatus(enabled bool) Option {
	return func(c *Connector) {
		c.raiseForStatus = enabled
	}
}

// New creates a new Connector with the given configuration.
func New(cfg Config, opts ...Option) (*Connector, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Connector{
		config:         cfg,
		raiseForStatus: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.engine == nil {
		c.engine = newNetEngine()
	}
	return c, nil
}

// GetConfig returns a snapshot of the connector's configuration. The
// header and parameter maps are copies, so mutating them does not
// affect the stored defaults.
func (c *Connector) GetConfig() Config {
	cfg := c.config
	cfg.Headers = copyMap(c.config.Headers)
	cfg.Params = copyMap(c.config.Params)
	return cfg
}

// Do performs an API call and returns the normalized response.
//
// Non-2xx responses are returned together with a *ResponseError when
// raise-for-status is enabled. Transport-level failures from the engine
// are propagated unmodified.
func (c *Connector) Do(ctx context.Context, req Request) (*Response, error) {
	url := c.buildURL(req.Endpoint)

	headers, params, err := c.config.Auth.Apply(
		c.config.MergedHeaders(req.Headers),
		c.config.MergedParams(req.Params),
	)
	if err != nil {
		return nil, err
	}

	if c.config.RequestID {
		setIfAbsent(headers, "X-Request-Id", uuid.New().String())
	}

	var span trace.Span
	if c.config.Trace {
		ctx, span = otel.Tracer(tracerName).Start(ctx, "HTTP "+req.Method,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("http.request.method", req.Method),
				attribute.String("url.full", url),
			),
		)
		defer span.End()
		injectTraceContext(ctx, headers)
	}

	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, err
	}
	if body != nil && contentType != "" {
		setIfAbsent(headers, "Content-Type", contentType)
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = c.config.Timeout
	}

	start := time.Now()
	raw, err := c.engine.Execute(ctx, Exchange{
		Method:  req.Method,
		URL:     url,
		Params:  params,
		Headers: headers,
		Body:    body,
		Timeout: timeout,
	})
	if err != nil {
		if span != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		if c.log != nil {
			c.log.Error("request failed", logger.Fields(
				"method", req.Method,
				"url", url,
				"error", err.Error(),
			))
		}
		return nil, err
	}

	resp := &Response{
		StatusCode: raw.StatusCode,
		Headers:    raw.Headers,
		Body:       normalizeBody(raw.Body),
	}

	if span != nil {
		span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	}
	if c.log != nil {
		c.log.Debug("request completed", logger.Fields(
			"method", req.Method,
			"url", url,
			"status", resp.StatusCode,
			"duration_ms", time.Since(start).Milliseconds(),
		))
	}

	if c.raiseForStatus {
		if respErr := Classify(resp.StatusCode, resp.Headers, resp.Body); respErr != nil {
			if span != nil {
				span.SetStatus(codes.Error, respErr.Message)
			}
			return resp, respErr
		}
	}

	return resp, nil
}

// Get performs a GET request against endpoint.
func (c *Connector) Get(ctx context.Context, endpoint string, opts ...RequestOption) (*Response, error) {
	req := Request{Method: http.MethodGet, Endpoint: endpoint}
	for _, opt := range opts {
		opt(&req)
	}
	return c.Do(ctx, req)
}

// Post performs a POST request against endpoint. A non-nil body is sent
// as the JSON request body; use WithData for raw payloads.
func (c *Connector) Post(ctx context.Context, endpoint string, body any, opts ...RequestOption) (*Response, error) {
	req := Request{Method: http.MethodPost, Endpoint: endpoint, JSON: body}
	for _, opt := range opts {
		opt(&req)
	}
	return c.Do(ctx, req)
}

// Close releases the engine's connection resources. It is idempotent
// and safe to call from deferred cleanup paths; failures are logged and
// returned, never panicked.
func (c *Connector) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.engine.Close()
		if c.closeErr != nil && c.log != nil {
			c.log.Warn("close failed", logger.Fields("error", c.closeErr.Error()))
		}
	})
	return c.closeErr
}

// buildURL resolves endpoint against the configured base URL. Absolute
// endpoints pass through verbatim; relative ones are joined with exactly
// one slash regardless of leading/trailing slashes on either side.
func (c *Connector) buildURL(endpoint string) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	return strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(endpoint, "/")
}

// encodeBody converts the request body into an io.Reader and content type.
func encodeBody(req Request) (io.Reader, string, error) {
	if req.JSON != nil && req.Data != nil {
		return nil, "", NewConfigError("request cannot carry both a JSON body and raw data")
	}

	if req.JSON != nil {
		data, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, "", NewConfigError("encode json body: " + err.Error())
		}
		return bytes.NewReader(data), "application/json", nil
	}

	switch v := req.Data.(type) {
	case nil:
		return nil, "", nil
	case io.Reader:
		return v, "", nil
	case []byte:
		return bytes.NewReader(v), "", nil
	case string:
		return strings.NewReader(v), "text/plain", nil
	case *MultipartBody:
		return v.encode()
	default:
		return nil, "", NewConfigError("unsupported data type for request body")
	}
}

// injectTraceContext merges the W3C trace context headers into headers
// without overwriting keys the caller already set.
func injectTraceContext(ctx context.Context, headers map[string]string) {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for k, v := range carrier {
		setIfAbsent(headers, k, v)
	}
}
