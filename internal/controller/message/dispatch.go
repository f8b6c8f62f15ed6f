package message

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"PosBridge/internal/controller/apperror"
	"PosBridge/internal/dispatch"
	"PosBridge/internal/domain/order"
	"PosBridge/internal/messaging"
	"PosBridge/pkg/logger"
)

// DispatchMessageController handles queued dispatch requests from Kafka.
// It must be wired with an order service that delivers inline, otherwise
// requests would loop back to the queue.
type DispatchMessageController struct {
	logger  *logger.Logger
	service *order.OrderService
}

// NewDispatchMessageController creates a new dispatch message controller.
func NewDispatchMessageController(l *logger.Logger, s *order.OrderService) *DispatchMessageController {
	return &DispatchMessageController{
		logger:  l,
		service: s,
	}
}

// HandleMessage processes a single queued dispatch request.
func (c *DispatchMessageController) HandleMessage(ctx context.Context, key, value []byte) error {
	var env messaging.Envelope
	if err := json.Unmarshal(value, &env); err != nil {
		c.logger.Error("Failed to unmarshal envelope: key=%s error=%v", string(key), err)
		return fmt.Errorf("unmarshal envelope: %w", err)
	}

	c.logger.Debug("Processing dispatch request: event_id=%s key=%s type=%s",
		env.EventID, env.Key, env.Type)

	var req dispatch.DispatchRequest
	if err := json.Unmarshal(env.Payload, &req); err != nil {
		c.logger.Error("Failed to unmarshal dispatch request: event_id=%s error=%v", env.EventID, err)
		return fmt.Errorf("unmarshal dispatch request: %w", err)
	}

	sent, err := c.service.Resend(ctx, req.OrderID)
	if err != nil {
		// The order was deleted between enqueue and consume; nothing to retry.
		if errors.Is(err, apperror.ErrOrderNotFound) {
			c.logger.Warn("Dispatch request for missing order ignored: event_id=%s order_id=%d",
				env.EventID, req.OrderID)
			return nil
		}

		c.logger.Error("Failed to process dispatch request: event_id=%s order_id=%d error=%v",
			env.EventID, req.OrderID, err)
		return err
	}

	c.logger.Info("Dispatch request processed: event_id=%s order_id=%d sent=%t",
		env.EventID, req.OrderID, sent)

	return nil
}
