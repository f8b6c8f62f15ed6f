package order_repo

import (
	"time"

	"github.com/shopspring/decimal"

	"PosBridge/internal/domain/order"
)

// orderRow mirrors the pos_orders columns the insert path writes.
type orderRow struct {
	Reference    string
	SessionID    int64
	PartnerID    *int64
	PartnerName  *string
	OrderedAt    *time.Time
	AmountTotal  decimal.Decimal
	AmountTax    decimal.Decimal
	AmountPaid   decimal.Decimal
	AmountReturn decimal.Decimal
	State        string
	TableID      *int64
	OrderStatus  string
}

func toOrderRow(d order.Draft) orderRow {
	row := orderRow{
		Reference:    d.Reference,
		SessionID:    d.SessionID,
		OrderedAt:    d.OrderedAt,
		AmountTotal:  d.AmountTotal,
		AmountTax:    d.AmountTax,
		AmountPaid:   d.AmountPaid,
		AmountReturn: d.AmountReturn,
		State:        string(d.State),
		TableID:      d.TableID,
		OrderStatus:  string(order.KitchenCooking),
	}
	if d.Partner != nil {
		row.PartnerID = &d.Partner.ID
		row.PartnerName = &d.Partner.Name
	}
	return row
}

// draftToOrder builds the in-memory order the insert path returns; ID and
// timestamps come back from the database.
func draftToOrder(d order.Draft) order.Order {
	return order.Order{
		Reference:     d.Reference,
		SessionID:     d.SessionID,
		Partner:       d.Partner,
		OrderedAt:     d.OrderedAt,
		AmountTotal:   d.AmountTotal,
		AmountTax:     d.AmountTax,
		AmountPaid:    d.AmountPaid,
		AmountReturn:  d.AmountReturn,
		State:         d.State,
		TableID:       d.TableID,
		KitchenStatus: order.KitchenCooking,
	}
}
