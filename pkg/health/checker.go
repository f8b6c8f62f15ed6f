// Package health exposes the liveness and readiness probes of the POS
// bridge. Readiness aggregates dependency checks so the load balancer
// stops routing terminal traffic while Postgres or the dispatch queue
// is unreachable.
package health

import (
	"context"
	"time"
)

// DefaultTimeout bounds a single readiness sweep.
const DefaultTimeout = 5 * time.Second

// Status is the reported state of one dependency.
type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Result is the outcome of a single dependency check.
type Result struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Checker probes one dependency of the service.
type Checker interface {
	// Name identifies the dependency in the readiness response.
	Name() string
	// Check probes the dependency within the context deadline.
	Check(ctx context.Context) Result
}
