package health

import (
	"context"
	"sync"
	"time"
)

// Registry holds the dependency checkers of the service.
type Registry struct {
	checkers []Checker
}

func NewRegistry(checkers ...Checker) *Registry {
	return &Registry{checkers: checkers}
}

// CheckResult is one named check of a readiness sweep. LatencyMS records
// how long the probe took, so a slow dependency shows up before it
// starts failing.
type CheckResult struct {
	Name      string `json:"name"`
	Status    Status `json:"status"`
	Message   string `json:"message,omitempty"`
	LatencyMS int64  `json:"latency_ms"`
}

// ReadinessResponse is the aggregated readiness sweep. Status is down
// when any dependency is down.
type ReadinessResponse struct {
	Status Status        `json:"status"`
	Checks []CheckResult `json:"checks,omitempty"`
}

// CheckAll probes every registered dependency in parallel.
func (r *Registry) CheckAll(ctx context.Context) ReadinessResponse {
	if len(r.checkers) == 0 {
		return ReadinessResponse{Status: StatusUp}
	}

	results := make([]CheckResult, len(r.checkers))
	var wg sync.WaitGroup

	for i, checker := range r.checkers {
		wg.Add(1)
		go func(idx int, c Checker) {
			defer wg.Done()
			start := time.Now()
			res := c.Check(ctx)
			results[idx] = CheckResult{
				Name:      c.Name(),
				Status:    res.Status,
				Message:   res.Message,
				LatencyMS: time.Since(start).Milliseconds(),
			}
		}(i, checker)
	}

	wg.Wait()

	overall := StatusUp
	for _, res := range results {
		if res.Status == StatusDown {
			overall = StatusDown
			break
		}
	}

	return ReadinessResponse{Status: overall, Checks: results}
}
