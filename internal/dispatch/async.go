package dispatch

import (
	"context"
	"strconv"

	"PosBridge/internal/domain/order"
	"PosBridge/internal/messaging"
	"PosBridge/pkg/logger"
)

// EventTypeOrderFinalized is the envelope type of queued dispatch requests.
const EventTypeOrderFinalized = "order.finalized"

// DispatchRequest is the payload of a queued dispatch request. The consumer
// re-loads the order and config, so the ID is all it needs.
type DispatchRequest struct {
	OrderID int64 `json:"order_id"`
}

// AsyncTrigger queues the dispatch on Kafka instead of delivering inline.
// The short-circuit cases that never reach the wire are answered here so a
// disabled or unconfigured shop produces no queue traffic.
type AsyncTrigger struct {
	publisher messaging.Publisher
	logger    *logger.Logger
}

func NewAsyncTrigger(publisher messaging.Publisher, l *logger.Logger) *AsyncTrigger {
	return &AsyncTrigger{publisher: publisher, logger: l}
}

func (t *AsyncTrigger) TriggerDispatch(ctx context.Context, o order.Order, cfg *order.SessionConfig) bool {
	if cfg == nil {
		return false
	}
	if !cfg.Enabled {
		return true
	}
	if cfg.Endpoint == "" {
		return false
	}

	envelope, err := messaging.NewEnvelope(
		strconv.FormatInt(o.SessionID, 10),
		EventTypeOrderFinalized,
		DispatchRequest{OrderID: o.ID},
	)
	if err != nil {
		t.logger.ErrorCtx(ctx, "Failed to build dispatch envelope for order %s: %v", o.Reference, err)
		return false
	}

	if err := t.publisher.Publish(ctx, envelope); err != nil {
		t.logger.ErrorCtx(ctx, "Failed to queue dispatch for order %s: %v", o.Reference, err)
		return false
	}

	return true
}
