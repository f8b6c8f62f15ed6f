package order_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"PosBridge/internal/controller/apperror"
	"PosBridge/internal/domain/order"
	"PosBridge/pkg/postgres"
)

// PgOrderRepo is the main repository
type PgOrderRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgOrderRepo(pg *postgres.Postgres) *PgOrderRepo {
	return &PgOrderRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

func (r *PgOrderRepo) InTransaction(ctx context.Context, fn func(repo order.TxOrderRepo) error) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		txRepo := &repo{db: tx, builder: r.pg.Builder}
		return fn(txRepo)
	})
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func (r *repo) GetOrder(ctx context.Context, id int64) (order.Order, error) {
	sql, args, err := r.selectOrders().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return order.Order{}, fmt.Errorf("build order query: %w", err)
	}

	return r.getOne(ctx, sql, args)
}

func (r *repo) GetOrderByReference(ctx context.Context, reference string) (order.Order, error) {
	sql, args, err := r.selectOrders().
		Where(squirrel.Eq{"pos_reference": reference}).
		ToSql()
	if err != nil {
		return order.Order{}, fmt.Errorf("build order query: %w", err)
	}

	return r.getOne(ctx, sql, args)
}

func (r *repo) getOne(ctx context.Context, sql string, args []interface{}) (order.Order, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return order.Order{}, fmt.Errorf("query order: %w", err)
	}
	defer rows.Close()

	orders, err := parseOrderRows(rows)
	if err != nil {
		return order.Order{}, err
	}
	if len(orders) == 0 {
		return order.Order{}, apperror.ErrOrderNotFound
	}

	o := orders[0]
	lines, err := r.loadLines(ctx, []int64{o.ID})
	if err != nil {
		return order.Order{}, err
	}
	o.Lines = lines[o.ID]
	if o.Lines == nil {
		o.Lines = []order.Line{}
	}

	return o, nil
}

func (r *repo) GetSessionConfig(ctx context.Context, sessionID int64) (*order.SessionConfig, error) {
	sql, args, err := r.builder.
		Select("c.id", "c.name", "c.api_endpoint", "c.api_enabled", "c.api_timeout_seconds").
		From("pos_configs c").
		Join("pos_sessions s ON s.config_id = c.id").
		Where(squirrel.Eq{"s.id": sessionID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build session config query: %w", err)
	}

	var cfg order.SessionConfig
	row := r.db.QueryRow(ctx, sql, args...)
	err = row.Scan(&cfg.ID, &cfg.Name, &cfg.Endpoint, &cfg.Enabled, &cfg.TimeoutSeconds)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session config: %w", err)
	}

	return &cfg, nil
}

func (r *repo) CreateOrder(ctx context.Context, draft order.Draft) (order.Order, error) {
	row := toOrderRow(draft)

	sql, args, err := r.builder.Insert("pos_orders").
		Columns("pos_reference", "session_id", "partner_id", "partner_name",
			"date_order", "amount_total", "amount_tax", "amount_paid", "amount_return",
			"state", "table_id", "order_status").
		Values(row.Reference, row.SessionID, row.PartnerID, row.PartnerName,
			row.OrderedAt, row.AmountTotal, row.AmountTax, row.AmountPaid, row.AmountReturn,
			row.State, row.TableID, row.OrderStatus).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return order.Order{}, fmt.Errorf("build insert query: %w", err)
	}

	o := draftToOrder(draft)
	err = r.db.QueryRow(ctx, sql, args...).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if postgres.IsPgErrorUniqueViolation(err) {
			return order.Order{}, apperror.ErrDuplicateReference
		}
		return order.Order{}, fmt.Errorf("create order: %w", err)
	}

	if err := r.insertLines(ctx, o.ID, draft.Lines); err != nil {
		return order.Order{}, err
	}

	lines, err := r.loadLines(ctx, []int64{o.ID})
	if err != nil {
		return order.Order{}, err
	}
	o.Lines = lines[o.ID]
	if o.Lines == nil {
		o.Lines = []order.Line{}
	}

	return o, nil
}

func (r *repo) insertLines(ctx context.Context, orderID int64, lines []order.LineDraft) error {
	if len(lines) == 0 {
		return nil
	}

	insert := r.builder.Insert("pos_order_lines").
		Columns("order_id", "product_id", "product_name", "qty",
			"price_unit", "price_subtotal", "price_subtotal_incl", "discount", "note", "line_no")
	for i, l := range lines {
		insert = insert.Values(orderID, l.ProductID, l.ProductName, l.Qty,
			l.PriceUnit, l.PriceSubtotal, l.PriceSubtotalIncl, l.Discount, l.Note, i+1)
	}

	sql, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build insert lines query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert order lines: %w", err)
	}
	return nil
}

func (r *repo) RecordDispatchOutcome(ctx context.Context, orderID int64, sent bool, response string) error {
	sql, args, err := r.builder.Update("pos_orders").
		Set("api_sent", sent).
		Set("api_response", response).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": orderID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build dispatch outcome query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("record dispatch outcome: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrOrderNotFound
	}
	return nil
}

// ListBoardOrders returns the orders a kitchen screen of the given config
// shows: not cancelled, newest first, capped by limit.
func (r *repo) ListBoardOrders(ctx context.Context, shopID int64, limit int) ([]order.Order, error) {
	sql, args, err := r.selectOrders().
		Join("pos_sessions s ON s.id = o.session_id").
		Where(squirrel.Eq{"s.config_id": shopID}).
		Where(squirrel.NotEq{"o.state": order.StateCancel}).
		OrderBy("o.date_order DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build board query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query board orders: %w", err)
	}
	defer rows.Close()

	orders, err := parseOrderRows(rows)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	lines, err := r.loadLines(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Lines = lines[orders[i].ID]
		if orders[i].Lines == nil {
			orders[i].Lines = []order.Line{}
		}
	}

	return orders, nil
}

func (r *repo) UpdateKitchenStatus(ctx context.Context, orderID int64, status order.KitchenStatus) error {
	sql, args, err := r.builder.Update("pos_orders").
		Set("order_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": orderID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build kitchen status query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update kitchen status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrOrderNotFound
	}
	return nil
}

func (r *repo) selectOrders() squirrel.SelectBuilder {
	return r.builder.
		Select("o.id", "o.pos_reference", "o.session_id", "o.partner_id", "o.partner_name",
			"o.date_order", "o.amount_total", "o.amount_tax", "o.amount_paid", "o.amount_return",
			"o.state", "o.table_id", "o.order_status", "o.api_sent", "o.api_response",
			"o.created_at", "o.updated_at").
		From("pos_orders o")
}

func (r *repo) loadLines(ctx context.Context, orderIDs []int64) (map[int64][]order.Line, error) {
	sql, args, err := r.builder.
		Select("id", "order_id", "product_id", "product_name", "qty",
			"price_unit", "price_subtotal", "price_subtotal_incl", "discount", "note").
		From("pos_order_lines").
		Where(squirrel.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "line_no").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lines query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query order lines: %w", err)
	}
	defer rows.Close()

	return parseLineRows(rows)
}
