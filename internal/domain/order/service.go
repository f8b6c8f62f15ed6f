package order

import (
	"context"
	"fmt"

	"PosBridge/pkg/logger"
)

// DispatchTrigger hands a created order to the dispatch pipeline. The sync
// implementation dispatches inline; the kafka implementation enqueues the
// order for a consumer worker.
type DispatchTrigger interface {
	TriggerDispatch(ctx context.Context, o Order, cfg *SessionConfig) bool
}

type OrderService struct {
	orderRepo OrderRepo
	trigger   DispatchTrigger
	logger    *logger.Logger
}

func NewOrderService(orderRepo OrderRepo, trigger DispatchTrigger, l *logger.Logger) *OrderService {
	return &OrderService{orderRepo: orderRepo, trigger: trigger, logger: l}
}

func (s *OrderService) GetOrder(ctx context.Context, id int64) (Order, error) {
	return s.orderRepo.GetOrder(ctx, id)
}

// CreateFromBatch persists a client-submitted batch of orders, one
// transaction per order, and triggers dispatch for every order that was not
// created as a draft. A dispatch failure never aborts the batch; the
// outcome lands on the individual order.
func (s *OrderService) CreateFromBatch(ctx context.Context, drafts []Draft, asDraft bool) ([]Order, error) {
	created := make([]Order, 0, len(drafts))
	for _, d := range drafts {
		var o Order
		err := s.orderRepo.InTransaction(ctx, func(tx TxOrderRepo) error {
			var err error
			o, err = tx.CreateOrder(ctx, d)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("create order %s: %w", d.Reference, err)
		}
		created = append(created, o)
	}

	for _, o := range created {
		if asDraft || o.State == StateDraft {
			continue
		}
		s.dispatchCreated(ctx, o)
	}

	return created, nil
}

// Create persists a single order and dispatches it right away when its
// state is already finalized.
func (s *OrderService) Create(ctx context.Context, d Draft) (Order, error) {
	var o Order
	err := s.orderRepo.InTransaction(ctx, func(tx TxOrderRepo) error {
		var err error
		o, err = tx.CreateOrder(ctx, d)
		return err
	})
	if err != nil {
		return Order{}, fmt.Errorf("create order %s: %w", d.Reference, err)
	}

	if o.State.Finalized() {
		s.dispatchCreated(ctx, o)
	}

	return o, nil
}

// Resend re-runs dispatch for an existing order. There is no api_sent
// guard: re-sending an already delivered order sends it again.
func (s *OrderService) Resend(ctx context.Context, orderID int64) (bool, error) {
	o, err := s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		return false, fmt.Errorf("load order %d: %w", orderID, err)
	}
	return s.dispatch(ctx, o), nil
}

// ResendByReference looks an order up by its POS reference and re-runs
// dispatch for it.
func (s *OrderService) ResendByReference(ctx context.Context, reference string) (bool, error) {
	o, err := s.orderRepo.GetOrderByReference(ctx, reference)
	if err != nil {
		return false, fmt.Errorf("load order %s: %w", reference, err)
	}
	return s.dispatch(ctx, o), nil
}

// dispatchCreated is the creation-path variant of dispatch: any failure is
// absorbed so order creation always succeeds regardless of the external API.
func (s *OrderService) dispatchCreated(ctx context.Context, o Order) {
	_ = s.dispatch(ctx, o)
}

func (s *OrderService) dispatch(ctx context.Context, o Order) bool {
	cfg, err := s.orderRepo.GetSessionConfig(ctx, o.SessionID)
	if err != nil {
		s.logger.ErrorCtx(ctx, "Failed to load session config for order %s: %v", o.Reference, err)
		return false
	}
	return s.trigger.TriggerDispatch(ctx, o, cfg)
}
