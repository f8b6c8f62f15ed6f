package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// SessionConfig is the per-deployment POS configuration controlling whether
// and where finalized orders are forwarded.
type SessionConfig struct {
	ID             int64
	Name           string
	Endpoint       string
	Enabled        bool
	TimeoutSeconds int
}

// State is the host-defined order lifecycle state. The dispatcher only
// distinguishes draft/cancel from everything else.
type State string

const (
	StateDraft    State = "draft"
	StatePaid     State = "paid"
	StateDone     State = "done"
	StateInvoiced State = "invoiced"
	StateCancel   State = "cancel"
)

// Finalized reports whether orders in this state are forwarded to the
// external API.
func (s State) Finalized() bool {
	return s != StateDraft && s != StateCancel
}

// KitchenStatus is the kitchen-screen workflow status. The raw values match
// the POS client protocol: "draft" renders as Cooking, "waiting" as Ready.
type KitchenStatus string

const (
	KitchenCooking   KitchenStatus = "draft"
	KitchenReady     KitchenStatus = "waiting"
	KitchenCancelled KitchenStatus = "cancel"
)

var KitchenStatuses = []KitchenStatus{KitchenCooking, KitchenReady, KitchenCancelled}

type Partner struct {
	ID   int64
	Name string
}

type Order struct {
	ID            int64
	Reference     string
	SessionID     int64
	Partner       *Partner
	OrderedAt     *time.Time
	AmountTotal   decimal.Decimal
	AmountTax     decimal.Decimal
	AmountPaid    decimal.Decimal
	AmountReturn  decimal.Decimal
	State         State
	TableID       *int64
	KitchenStatus KitchenStatus
	Lines         []Line

	// Dispatch outcome. APISent is true only after a confirmed 2xx
	// delivery; a failed attempt leaves it false with the error recorded
	// in APIResponse.
	APISent     bool
	APIResponse *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Line is an order line. Immutable once created as far as the dispatch
// pipeline is concerned.
type Line struct {
	ID                int64
	ProductID         int64
	ProductName       string
	Qty               decimal.Decimal
	PriceUnit         decimal.Decimal
	PriceSubtotal     decimal.Decimal
	PriceSubtotalIncl decimal.Decimal
	Discount          decimal.Decimal
	Note              string
}

// Draft is the input for order creation, before IDs are assigned.
type Draft struct {
	Reference    string
	SessionID    int64
	Partner      *Partner
	OrderedAt    *time.Time
	AmountTotal  decimal.Decimal
	AmountTax    decimal.Decimal
	AmountPaid   decimal.Decimal
	AmountReturn decimal.Decimal
	State        State
	TableID      *int64
	Lines        []LineDraft
}

type LineDraft struct {
	ProductID         int64
	ProductName       string
	Qty               decimal.Decimal
	PriceUnit         decimal.Decimal
	PriceSubtotal     decimal.Decimal
	PriceSubtotalIncl decimal.Decimal
	Discount          decimal.Decimal
	Note              string
}
