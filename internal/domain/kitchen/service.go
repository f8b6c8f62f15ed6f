package kitchen

import (
	"context"
	"fmt"
	"slices"

	"PosBridge/internal/controller/apperror"
	"PosBridge/internal/domain/order"
	"PosBridge/internal/messaging"
	"PosBridge/pkg/logger"
)

// statusEventType is the envelope type for kitchen broadcasts.
const statusEventType = "kitchen.order_status"

// KitchenRepo is the persistence surface the kitchen workflow needs. The
// Postgres order repository satisfies it.
type KitchenRepo interface {
	// ListBoardOrders returns non-cancelled orders of a shop, newest first.
	ListBoardOrders(ctx context.Context, shopID int64, limit int) ([]order.Order, error)
	GetOrder(ctx context.Context, id int64) (order.Order, error)
	GetSessionConfig(ctx context.Context, sessionID int64) (*order.SessionConfig, error)
	UpdateKitchenStatus(ctx context.Context, orderID int64, status order.KitchenStatus) error
}

// KitchenService drives the kitchen-screen workflow: board listing, status
// updates and realtime broadcast of status changes.
type KitchenService struct {
	repo      KitchenRepo
	publisher messaging.Publisher
	logger    *logger.Logger
}

func NewKitchenService(repo KitchenRepo, publisher messaging.Publisher, l *logger.Logger) *KitchenService {
	return &KitchenService{repo: repo, publisher: publisher, logger: l}
}

// Board returns the kitchen screen state for one shop.
func (s *KitchenService) Board(ctx context.Context, shopID int64) (Board, error) {
	orders, err := s.repo.ListBoardOrders(ctx, shopID, boardLimit)
	if err != nil {
		return Board{}, fmt.Errorf("list board orders for shop %d: %w", shopID, err)
	}
	return buildBoard(shopID, orders), nil
}

// UpdateStatus validates and persists a kitchen status change, then
// broadcasts it to the shop's screens. Broadcast is best effort: a publish
// failure is logged but does not undo the status change.
func (s *KitchenService) UpdateStatus(ctx context.Context, orderID int64, rawStatus string) (StatusUpdate, error) {
	status := order.KitchenStatus(rawStatus)
	if !slices.Contains(order.KitchenStatuses, status) {
		return StatusUpdate{}, fmt.Errorf("%w: %s", apperror.ErrInvalidKitchenStatus, rawStatus)
	}

	o, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return StatusUpdate{}, fmt.Errorf("load order %d: %w", orderID, err)
	}

	if err := s.repo.UpdateKitchenStatus(ctx, orderID, status); err != nil {
		return StatusUpdate{}, fmt.Errorf("update kitchen status: %w", err)
	}

	s.broadcast(ctx, o, status)

	return StatusUpdate{OrderID: orderID, NewStatus: status}, nil
}

func (s *KitchenService) broadcast(ctx context.Context, o order.Order, status order.KitchenStatus) {
	shopID := o.SessionID
	if cfg, err := s.repo.GetSessionConfig(ctx, o.SessionID); err == nil && cfg != nil {
		shopID = cfg.ID
	}

	event := StatusEvent{
		OrderID:      o.ID,
		PosReference: o.Reference,
		OrderStatus:  status,
		ShopID:       shopID,
	}

	envelope, err := messaging.NewEnvelope(fmt.Sprintf("pos_kitchen_%d", shopID), statusEventType, event)
	if err != nil {
		s.logger.ErrorCtx(ctx, "Failed to build kitchen status envelope for order %s: %v", o.Reference, err)
		return
	}

	if err := s.publisher.Publish(ctx, envelope); err != nil {
		s.logger.ErrorCtx(ctx, "Failed to broadcast kitchen status for order %s: %v", o.Reference, err)
	}
}
