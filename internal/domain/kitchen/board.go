package kitchen

import (
	"time"

	"PosBridge/internal/domain/order"
)

// boardLimit caps how many orders a kitchen screen loads at once.
const boardLimit = 500

// BoardLine is one order line as rendered on the kitchen screen. Quantities
// and prices are floats for the screen protocol, matching the dispatch
// payload convention.
type BoardLine struct {
	ID          int64   `json:"id"`
	OrderID     int64   `json:"order_id"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Qty         float64 `json:"qty"`
	PriceUnit   float64 `json:"price_unit"`
	Note        string  `json:"note"`
}

// BoardOrder is one order as rendered on the kitchen screen, lines inlined.
type BoardOrder struct {
	ID           int64      `json:"id"`
	PosReference string     `json:"pos_reference"`
	DateOrder    *time.Time `json:"date_order"`
	OrderStatus  string     `json:"order_status"`
	State        string     `json:"state"`
	TableID      *int64     `json:"table_id"`
	ShopID       int64      `json:"shop_id"`
	Lines        []BoardLine `json:"lines"`
}

// Board is the full kitchen screen state for one shop. OrderLines repeats
// every line in a flat list because the screen renders both groupings.
// Both slices are always non-nil.
type Board struct {
	Orders     []BoardOrder `json:"orders"`
	OrderLines []BoardLine  `json:"order_lines"`
}

// StatusUpdate is the result of a kitchen status change.
type StatusUpdate struct {
	OrderID   int64               `json:"order_id"`
	NewStatus order.KitchenStatus `json:"new_status"`
}

// StatusEvent is broadcast to kitchen screens when an order's status changes.
type StatusEvent struct {
	OrderID      int64               `json:"order_id"`
	PosReference string              `json:"pos_reference"`
	OrderStatus  order.KitchenStatus `json:"order_status"`
	ShopID       int64               `json:"shop_id"`
}

func buildBoard(shopID int64, orders []order.Order) Board {
	board := Board{
		Orders:     make([]BoardOrder, 0, len(orders)),
		OrderLines: make([]BoardLine, 0),
	}

	for _, o := range orders {
		bo := BoardOrder{
			ID:           o.ID,
			PosReference: o.Reference,
			DateOrder:    o.OrderedAt,
			OrderStatus:  string(o.KitchenStatus),
			State:        string(o.State),
			TableID:      o.TableID,
			ShopID:       shopID,
			Lines:        make([]BoardLine, 0, len(o.Lines)),
		}

		for _, line := range o.Lines {
			bl := BoardLine{
				ID:          line.ID,
				OrderID:     o.ID,
				ProductID:   line.ProductID,
				ProductName: line.ProductName,
				Qty:         line.Qty.InexactFloat64(),
				PriceUnit:   line.PriceUnit.InexactFloat64(),
				Note:        line.Note,
			}
			bo.Lines = append(bo.Lines, bl)
			board.OrderLines = append(board.OrderLines, bl)
		}

		board.Orders = append(board.Orders, bo)
	}

	return board
}
