// Package dispatch provides the two delivery trigger modes: sync calls the
// dispatcher in-process, async hands the order off to a Kafka topic.
package dispatch

import (
	"context"

	"PosBridge/internal/domain/order"
)

// SyncTrigger dispatches in-process, blocking order creation until the
// delivery attempt finishes.
type SyncTrigger struct {
	dispatcher *order.Dispatcher
}

func NewSyncTrigger(dispatcher *order.Dispatcher) *SyncTrigger {
	return &SyncTrigger{dispatcher: dispatcher}
}

func (t *SyncTrigger) TriggerDispatch(ctx context.Context, o order.Order, cfg *order.SessionConfig) bool {
	return t.dispatcher.Dispatch(ctx, o, cfg)
}
