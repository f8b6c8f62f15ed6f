package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name  string
	err   error
	delay time.Duration
}

func (s stubChecker) Name() string { return s.name }

func (s stubChecker) Check(_ context.Context) Result {
	time.Sleep(s.delay)
	if s.err != nil {
		return Result{Status: StatusDown, Message: s.err.Error()}
	}
	return Result{Status: StatusUp}
}

func TestRegistry_CheckAll(t *testing.T) {
	ctx := context.Background()

	t.Run("empty registry is up", func(t *testing.T) {
		resp := NewRegistry().CheckAll(ctx)

		assert.Equal(t, StatusUp, resp.Status)
		assert.Empty(t, resp.Checks)
	})

	t.Run("all dependencies up", func(t *testing.T) {
		resp := NewRegistry(
			stubChecker{name: "postgres"},
			stubChecker{name: "kafka"},
		).CheckAll(ctx)

		assert.Equal(t, StatusUp, resp.Status)
		require.Len(t, resp.Checks, 2)
		assert.Equal(t, "postgres", resp.Checks[0].Name)
		assert.Equal(t, StatusUp, resp.Checks[1].Status)
	})

	t.Run("one failing dependency flips readiness", func(t *testing.T) {
		resp := NewRegistry(
			stubChecker{name: "postgres"},
			stubChecker{name: "kafka", err: errors.New("all brokers unreachable")},
		).CheckAll(ctx)

		assert.Equal(t, StatusDown, resp.Status)
		assert.Equal(t, StatusDown, resp.Checks[1].Status)
		assert.Equal(t, "all brokers unreachable", resp.Checks[1].Message)
	})

	t.Run("records per-check latency", func(t *testing.T) {
		resp := NewRegistry(
			stubChecker{name: "postgres", delay: 20 * time.Millisecond},
		).CheckAll(ctx)

		require.Len(t, resp.Checks, 1)
		assert.GreaterOrEqual(t, resp.Checks[0].LatencyMS, int64(20))
	})
}
