package order_repo

import (
	"fmt"

	"github.com/jackc/pgx/v5"

	"PosBridge/internal/domain/order"
)

func parseOrderRows(rows pgx.Rows) ([]order.Order, error) {
	var orders []order.Order
	for rows.Next() {
		var o order.Order
		var partnerID *int64
		var partnerName *string
		var rawState, rawKitchenStatus string

		err := rows.Scan(&o.ID, &o.Reference, &o.SessionID, &partnerID, &partnerName,
			&o.OrderedAt, &o.AmountTotal, &o.AmountTax, &o.AmountPaid, &o.AmountReturn,
			&rawState, &o.TableID, &rawKitchenStatus, &o.APISent, &o.APIResponse,
			&o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}

		o.State = order.State(rawState)
		o.KitchenStatus = order.KitchenStatus(rawKitchenStatus)
		if partnerID != nil {
			p := order.Partner{ID: *partnerID}
			if partnerName != nil {
				p.Name = *partnerName
			}
			o.Partner = &p
		}

		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

func parseLineRows(rows pgx.Rows) (map[int64][]order.Line, error) {
	lines := make(map[int64][]order.Line)
	for rows.Next() {
		var l order.Line
		var orderID int64

		err := rows.Scan(&l.ID, &orderID, &l.ProductID, &l.ProductName, &l.Qty,
			&l.PriceUnit, &l.PriceSubtotal, &l.PriceSubtotalIncl, &l.Discount, &l.Note)
		if err != nil {
			return nil, fmt.Errorf("scan line row: %w", err)
		}

		lines[orderID] = append(lines[orderID], l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate line rows: %w", err)
	}

	return lines, nil
}
