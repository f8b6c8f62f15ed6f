package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PosBridge/internal/domain/order"
	"PosBridge/internal/messaging"
	"PosBridge/pkg/logger"
)

// mockPublisher captures the last published envelope for assertions.
type mockPublisher struct {
	lastEnvelope messaging.Envelope
	published    int
	publishErr   error
}

func (m *mockPublisher) Publish(_ context.Context, env messaging.Envelope) error {
	m.lastEnvelope = env
	m.published++
	return m.publishErr
}

func (m *mockPublisher) Close() error {
	return nil
}

func enabledConfig() *order.SessionConfig {
	return &order.SessionConfig{
		ID:       5,
		Name:     "Main Floor",
		Endpoint: "https://pos.example.com/orders",
		Enabled:  true,
	}
}

func TestAsyncTrigger(t *testing.T) {
	l := logger.New("error")

	t.Run("queues dispatch keyed by session", func(t *testing.T) {
		mockPub := &mockPublisher{}
		trigger := NewAsyncTrigger(mockPub, l)

		o := order.Order{ID: 42, Reference: "Order 00042-001-0001", SessionID: 9}

		ok := trigger.TriggerDispatch(context.Background(), o, enabledConfig())

		require.True(t, ok)
		assert.Equal(t, 1, mockPub.published)
		assert.Equal(t, "9", mockPub.lastEnvelope.Key)
		assert.Equal(t, EventTypeOrderFinalized, mockPub.lastEnvelope.Type)

		var req DispatchRequest
		require.NoError(t, json.Unmarshal(mockPub.lastEnvelope.Payload, &req))
		assert.Equal(t, int64(42), req.OrderID)
	})

	t.Run("missing config is a failure without queue traffic", func(t *testing.T) {
		mockPub := &mockPublisher{}
		trigger := NewAsyncTrigger(mockPub, l)

		ok := trigger.TriggerDispatch(context.Background(), order.Order{ID: 1}, nil)

		assert.False(t, ok)
		assert.Zero(t, mockPub.published)
	})

	t.Run("disabled config succeeds without queue traffic", func(t *testing.T) {
		mockPub := &mockPublisher{}
		trigger := NewAsyncTrigger(mockPub, l)

		cfg := enabledConfig()
		cfg.Enabled = false

		ok := trigger.TriggerDispatch(context.Background(), order.Order{ID: 1}, cfg)

		assert.True(t, ok)
		assert.Zero(t, mockPub.published)
	})

	t.Run("empty endpoint is a failure without queue traffic", func(t *testing.T) {
		mockPub := &mockPublisher{}
		trigger := NewAsyncTrigger(mockPub, l)

		cfg := enabledConfig()
		cfg.Endpoint = ""

		ok := trigger.TriggerDispatch(context.Background(), order.Order{ID: 1}, cfg)

		assert.False(t, ok)
		assert.Zero(t, mockPub.published)
	})

	t.Run("publish failure reported as not dispatched", func(t *testing.T) {
		mockPub := &mockPublisher{publishErr: errors.New("broker down")}
		trigger := NewAsyncTrigger(mockPub, l)

		ok := trigger.TriggerDispatch(context.Background(), order.Order{ID: 1, SessionID: 2}, enabledConfig())

		assert.False(t, ok)
	})
}
