package component

import "context"

// HealthStatus represents the health state of a component.
type HealthStatus string

const (
	StatusHealthy   HealthStatus = "healthy"
	StatusUnhealthy HealthStatus = "unhealthy"
)

// Health holds health information for a component.
type Health struct {
	Name    string       `json:"name"`
	Status  HealthStatus `json:"status"`
	Message string       `json:"message,omitempty"`
}

// Component represents a lifecycle-managed resource such as an API
// connector. Implementations acquire their resources in Start and
// release them in Stop.
type Component interface {
	// Name returns the unique name of the component for registration.
	Name() string

	// Start acquires and initializes the component's resources.
	Start(ctx context.Context) error

	// Stop releases the component's resources. It must be safe to call
	// from deferred cleanup paths.
	Stop(ctx context.Context) error

	// Health returns the current health status of the component.
	Health(ctx context.Context) Health
}

// Description holds summary information about a component.
type Description struct {
	// Name is the human-readable display name.
	Name string
	// Type categorizes the component, e.g. "api-connector".
	Type string
	// Details is a human-readable one-liner, e.g. the base URL.
	Details string
}

// Describable is optionally implemented by components that can
// self-report what they are and how they are configured.
type Describable interface {
	Describe() Description
}
