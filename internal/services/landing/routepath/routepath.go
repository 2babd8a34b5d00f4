// Package routepath centralizes landing server route paths.
package routepath

const (
	Root         = "/"
	Health       = "/health"
	Liveness     = "/healthz"
	Metrics      = "/metrics"
	StaticPrefix = "/static/"
)
