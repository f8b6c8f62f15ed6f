package order

import "context"

//go:generate mockgen -source repo_port.go -destination mock_order_repo.go -package order

type OrderRepo interface {
	TxOrderRepo
	InTransaction(ctx context.Context, fn func(repo TxOrderRepo) error) error
}

type TxOrderRepo interface {
	GetOrder(ctx context.Context, id int64) (Order, error)
	GetOrderByReference(ctx context.Context, reference string) (Order, error)

	// GetSessionConfig resolves the POS config behind a session. A missing
	// session or config yields (nil, nil), not an error.
	GetSessionConfig(ctx context.Context, sessionID int64) (*SessionConfig, error)

	CreateOrder(ctx context.Context, draft Draft) (Order, error)
	RecordDispatchOutcome(ctx context.Context, orderID int64, sent bool, response string) error
}
