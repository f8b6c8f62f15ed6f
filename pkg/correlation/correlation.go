// Package correlation threads a correlation ID from the POS terminal
// request through order creation, the dispatch queue, and the delivery
// attempt, so one order's trail can be followed across processes.
package correlation

import (
	"context"

	"github.com/google/uuid"
)

// HeaderName is the HTTP header carrying the correlation ID.
const HeaderName = "X-Correlation-ID"

// KafkaHeaderName is the Kafka message header carrying the correlation
// ID. It matches HeaderName so a trace survives the hop through the
// dispatch queue.
const KafkaHeaderName = "X-Correlation-ID"

type contextKey struct{}

// FromContext returns the correlation ID, or "" when none was set.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}

// WithID stores the correlation ID in the context.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// NewID mints a fresh correlation ID for requests that arrive without
// one.
func NewID() string {
	return uuid.New().String()
}
