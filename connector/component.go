package connector

import (
	"context"

	"github.com/kbukum/apiconnect/component"
)

// Component wraps a Connector with lifecycle management so it can be
// registered with a component.Registry. The connector is created lazily
// in Start and closed in Stop.
type Component struct {
	connector *Connector
	config    Config
	opts      []Option
}

// compile-time assertions
var _ component.Component = (*Component)(nil)
var _ component.Describable = (*Component)(nil)

// NewComponent creates a new connector component.
func NewComponent(cfg Config, opts ...Option) *Component {
	return &Component{config: cfg, opts: opts}
}

// Name returns the component name.
func (c *Component) Name() string {
	if c.config.Name != "" {
		return c.config.Name
	}
	return "connector"
}

// Start builds the connector.
func (c *Component) Start(_ context.Context) error {
	conn, err := New(c.config, c.opts...)
	if err != nil {
		return err
	}
	c.connector = conn
	return nil
}

// Stop closes the connector and releases its connection resources.
func (c *Component) Stop(_ context.Context) error {
	if c.connector != nil {
		return c.connector.Close()
	}
	return nil
}

// Health reports whether the connector has been started.
func (c *Component) Health(_ context.Context) component.Health {
	status := component.StatusHealthy
	if c.connector == nil {
		status = component.StatusUnhealthy
	}
	return component.Health{
		Name:   c.Name(),
		Status: status,
	}
}

// Describe returns the component description.
func (c *Component) Describe() component.Description {
	return component.Description{
		Name:    c.Name(),
		Type:    "api-connector",
		Details: c.config.BaseURL,
	}
}

// Connector returns the underlying connector. Must be called after Start.
func (c *Component) Connector() *Connector {
	return c.connector
}
