// Package component defines lifecycle interfaces for managed resources
// and a registry that starts them in registration order and stops them
// in reverse order.
//
// The connector package provides a Component implementation so an API
// connector can be managed alongside the rest of an application's
// resources.
package component
