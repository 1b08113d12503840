package connector

import (
	"fmt"
	"time"
)

const defaultTimeout = 10 * time.Second

// Config configures a Connector.
type Config struct {
	// Name identifies the connector in logs and lifecycle summaries.
	Name string `yaml:"name" mapstructure:"name"`

	// BaseURL is the root URL prepended to relative endpoints.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required"`

	// Timeout is the default request timeout. Defaults to 10s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers applied to every request unless overridden.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Params are default query parameters applied to every request unless overridden.
	Params map[string]string `yaml:"params" mapstructure:"params"`

	// Auth configures authentication applied to all requests.
	Auth *AuthConfig `yaml:"-" mapstructure:"-"`

	// RequestID injects an X-Request-Id header (if absent) into every request.
	RequestID bool `yaml:"request_id" mapstructure:"request_id"`

	// Trace wraps each request in an OpenTelemetry span and injects the
	// W3C trace context headers. Requires a tracer provider to be
	// configured by the host application.
	Trace bool `yaml:"trace" mapstructure:"trace"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("connector: base_url is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("connector: timeout must be positive")
	}
	return nil
}

// MergedHeaders returns a new map holding the default headers overlaid by
// override. Override keys win on collision. The stored defaults are never
// mutated; a nil override returns an exact copy of the defaults.
func (c *Config) MergedHeaders(override map[string]string) map[string]string {
	merged := copyMap(c.Headers)
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

// MergedParams returns a new map holding the default query parameters
// overlaid by override, with the same semantics as MergedHeaders.
func (c *Config) MergedParams(override map[string]string) map[string]string {
	merged := copyMap(c.Params)
	for k, v := range override {
		merged[k] = v
	}
	return merged
}
