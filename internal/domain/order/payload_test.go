package order

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPayload(t *testing.T) {
	t.Run("wire field names match the API contract", func(t *testing.T) {
		when := time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)
		tableID := int64(4)
		o := Order{
			ID:           42,
			Reference:    "Order 00042-001-0001",
			SessionID:    7,
			Partner:      &Partner{ID: 11, Name: "Walk-in"},
			OrderedAt:    &when,
			AmountTotal:  decimal.NewFromFloat(21.5),
			AmountTax:    decimal.NewFromFloat(1.5),
			AmountPaid:   decimal.NewFromFloat(25),
			AmountReturn: decimal.NewFromFloat(3.5),
			State:        StatePaid,
			TableID:      &tableID,
			Lines: []Line{
				{
					ProductID:         3,
					ProductName:       "Margherita",
					Qty:               decimal.NewFromInt(2),
					PriceUnit:         decimal.NewFromFloat(10),
					PriceSubtotal:     decimal.NewFromFloat(20),
					PriceSubtotalIncl: decimal.NewFromFloat(21.5),
					Discount:          decimal.NewFromFloat(5),
					Note:              "extra basil",
				},
			},
		}

		raw, err := json.Marshal(BuildPayload(o))
		require.NoError(t, err)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(raw, &fields))

		for _, name := range []string{
			"order_id", "pos_reference", "session_id", "partner_id", "partner_name",
			"date_order", "amount_total", "amount_tax", "amount_paid", "amount_return",
			"state", "table_id", "lines",
		} {
			assert.Contains(t, fields, name)
		}
		assert.Len(t, fields, 13)

		assert.Equal(t, "2026-03-14T12:30:00Z", fields["date_order"])
		assert.Equal(t, "Walk-in", fields["partner_name"])
		assert.Equal(t, float64(4), fields["table_id"])
		assert.InDelta(t, 21.5, fields["amount_total"], 0.0001)

		lines := fields["lines"].([]any)
		require.Len(t, lines, 1)
		line := lines[0].(map[string]any)
		for _, name := range []string{
			"product_id", "product_name", "qty", "price_unit",
			"price_subtotal", "price_subtotal_incl", "discount", "note",
		} {
			assert.Contains(t, line, name)
		}
		assert.Len(t, line, 8)
		assert.InDelta(t, 5.0, line["discount"], 0.0001)
	})

	t.Run("missing partner, date and table serialize as null", func(t *testing.T) {
		raw, err := json.Marshal(BuildPayload(Order{ID: 1, Reference: "X", SessionID: 2}))
		require.NoError(t, err)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(raw, &fields))

		assert.Nil(t, fields["partner_id"])
		assert.Nil(t, fields["partner_name"])
		assert.Nil(t, fields["date_order"])
		assert.Nil(t, fields["table_id"])
	})

	t.Run("lines are always an array and keep their order", func(t *testing.T) {
		p := BuildPayload(Order{ID: 1})
		assert.NotNil(t, p.Lines)
		assert.Empty(t, p.Lines)

		o := Order{ID: 1, Lines: []Line{
			{ProductID: 1, ProductName: "first"},
			{ProductID: 2, ProductName: "second"},
			{ProductID: 3, ProductName: "third"},
		}}
		p = BuildPayload(o)
		require.Len(t, p.Lines, 3)
		assert.Equal(t, "first", p.Lines[0].ProductName)
		assert.Equal(t, "second", p.Lines[1].ProductName)
		assert.Equal(t, "third", p.Lines[2].ProductName)
	})
}
