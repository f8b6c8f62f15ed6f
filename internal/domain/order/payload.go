package order

import "time"

// Payload is the wire format sent to the external order API. Field names
// and shape are part of the API contract and must not change.
type Payload struct {
	OrderID      int64         `json:"order_id"`
	PosReference string        `json:"pos_reference"`
	SessionID    int64         `json:"session_id"`
	PartnerID    *int64        `json:"partner_id"`
	PartnerName  *string       `json:"partner_name"`
	DateOrder    *string       `json:"date_order"`
	AmountTotal  float64       `json:"amount_total"`
	AmountTax    float64       `json:"amount_tax"`
	AmountPaid   float64       `json:"amount_paid"`
	AmountReturn float64       `json:"amount_return"`
	State        string        `json:"state"`
	TableID      *int64        `json:"table_id"`
	Lines        []LinePayload `json:"lines"`
}

type LinePayload struct {
	ProductID         int64   `json:"product_id"`
	ProductName       string  `json:"product_name"`
	Qty               float64 `json:"qty"`
	PriceUnit         float64 `json:"price_unit"`
	PriceSubtotal     float64 `json:"price_subtotal"`
	PriceSubtotalIncl float64 `json:"price_subtotal_incl"`
	Discount          float64 `json:"discount"`
	Note              string  `json:"note"`
}

// BuildPayload flattens an order into the external API shape. Monetary and
// quantity values are emitted as floats regardless of how they are stored;
// the external contract accepts the resulting precision.
func BuildPayload(o Order) Payload {
	p := Payload{
		OrderID:      o.ID,
		PosReference: o.Reference,
		SessionID:    o.SessionID,
		AmountTotal:  o.AmountTotal.InexactFloat64(),
		AmountTax:    o.AmountTax.InexactFloat64(),
		AmountPaid:   o.AmountPaid.InexactFloat64(),
		AmountReturn: o.AmountReturn.InexactFloat64(),
		State:        string(o.State),
		TableID:      o.TableID,
		Lines:        make([]LinePayload, 0, len(o.Lines)),
	}

	if o.Partner != nil {
		p.PartnerID = &o.Partner.ID
		p.PartnerName = &o.Partner.Name
	}
	if o.OrderedAt != nil {
		formatted := o.OrderedAt.Format(time.RFC3339)
		p.DateOrder = &formatted
	}

	for _, line := range o.Lines {
		p.Lines = append(p.Lines, LinePayload{
			ProductID:         line.ProductID,
			ProductName:       line.ProductName,
			Qty:               line.Qty.InexactFloat64(),
			PriceUnit:         line.PriceUnit.InexactFloat64(),
			PriceSubtotal:     line.PriceSubtotal.InexactFloat64(),
			PriceSubtotalIncl: line.PriceSubtotalIncl.InexactFloat64(),
			Discount:          line.Discount.InexactFloat64(),
			Note:              line.Note,
		})
	}

	return p
}
