package ports

import "context"

// HealthChecker is one dependency reported by GET /health.
type HealthChecker interface {
	// Ping returns nil when the dependency can serve requests.
	Ping(ctx context.Context) error
	Name() string
}
