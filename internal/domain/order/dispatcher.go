package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"PosBridge/pkg/logger"
	"PosBridge/pkg/metrics"
)

// defaultTimeout is used when the session config carries no usable timeout.
const defaultTimeout = 30 * time.Second

// ErrDeliveryFailed marks transport-level delivery failures: connection
// errors, timeouts and non-2xx responses. Deliverer implementations wrap it
// so the dispatcher can tell a failed delivery from an unexpected error.
var ErrDeliveryFailed = errors.New("delivery failed")

// Deliverer performs the HTTP POST of a payload to the external API and
// returns the raw response body on success.
type Deliverer interface {
	Deliver(ctx context.Context, endpoint string, timeout time.Duration, payload Payload) (string, error)
}

// DispatchOutcomeRepo persists the dispatch outcome fields on an order.
// These two fields are the only mutation the dispatcher performs.
type DispatchOutcomeRepo interface {
	RecordDispatchOutcome(ctx context.Context, orderID int64, sent bool, response string) error
}

// AuditSink indexes dispatch attempts for observability. Implementations
// must tolerate being called concurrently; errors are logged, not returned.
type AuditSink interface {
	IndexDispatch(ctx context.Context, entry DispatchAudit) error
}

// DispatchAudit is one dispatch attempt as seen by the audit sink.
type DispatchAudit struct {
	OrderID   int64         `json:"order_id"`
	Reference string        `json:"pos_reference"`
	Endpoint  string        `json:"endpoint"`
	Delivered bool          `json:"delivered"`
	Response  string        `json:"response"`
	Duration  time.Duration `json:"duration_ns"`
	At        time.Time     `json:"at"`
}

type dispatchOutcome int

const (
	outcomeDelivered dispatchOutcome = iota
	outcomeDeliveryFailed
	outcomeUnexpected
)

func (o dispatchOutcome) String() string {
	switch o {
	case outcomeDelivered:
		return "delivered"
	case outcomeDeliveryFailed:
		return "delivery_failed"
	default:
		return "unexpected_error"
	}
}

// deliveryResult is the explicit outcome of one delivery attempt. Failures
// are values, not propagated errors: a dispatch failure must never abort
// the order-creation flow that triggered it.
type deliveryResult struct {
	outcome  dispatchOutcome
	response string
}

// Dispatcher forwards finalized orders to the external API configured on
// the order's POS session and records the outcome on the order.
type Dispatcher struct {
	deliverer Deliverer
	outcomes  DispatchOutcomeRepo
	audit     AuditSink // optional
	logger    *logger.Logger
}

// NewDispatcher creates a dispatcher. audit may be nil.
func NewDispatcher(deliverer Deliverer, outcomes DispatchOutcomeRepo, audit AuditSink, l *logger.Logger) *Dispatcher {
	return &Dispatcher{
		deliverer: deliverer,
		outcomes:  outcomes,
		audit:     audit,
		logger:    l,
	}
}

// Dispatch sends the order to the configured endpoint and reports whether
// delivery was confirmed. Early exits, in order:
//
//   - no session config: false, nothing written
//   - integration disabled: true, nothing written (not an error)
//   - no endpoint configured: false, nothing written
//
// Otherwise the outcome is written to the order's api_sent/api_response
// fields whether delivery succeeded or not.
func (d *Dispatcher) Dispatch(ctx context.Context, o Order, cfg *SessionConfig) bool {
	if cfg == nil {
		d.logger.WarnCtx(ctx, "No session or config found for order %s", o.Reference)
		return false
	}

	if !cfg.Enabled {
		d.logger.InfoCtx(ctx, "API integration disabled for POS config %s", cfg.Name)
		return true
	}

	if cfg.Endpoint == "" {
		d.logger.WarnCtx(ctx, "No API endpoint configured for POS config %s", cfg.Name)
		return false
	}

	start := time.Now()
	res := d.deliver(ctx, o, cfg)
	elapsed := time.Since(start)

	metrics.DispatchTotal.WithLabelValues(res.outcome.String()).Inc()
	metrics.DispatchDuration.WithLabelValues(res.outcome.String()).Observe(elapsed.Seconds())

	sent := res.outcome == outcomeDelivered
	if err := d.outcomes.RecordDispatchOutcome(ctx, o.ID, sent, res.response); err != nil {
		d.logger.ErrorCtx(ctx, "Failed to record dispatch outcome for order %s: %v", o.Reference, err)
	}

	if d.audit != nil {
		entry := DispatchAudit{
			OrderID:   o.ID,
			Reference: o.Reference,
			Endpoint:  cfg.Endpoint,
			Delivered: sent,
			Response:  res.response,
			Duration:  elapsed,
			At:        start.UTC(),
		}
		if err := d.audit.IndexDispatch(ctx, entry); err != nil {
			d.logger.WarnCtx(ctx, "Failed to index dispatch audit for order %s: %v", o.Reference, err)
		}
	}

	return sent
}

func (d *Dispatcher) deliver(ctx context.Context, o Order, cfg *SessionConfig) deliveryResult {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	body, err := d.deliverer.Deliver(ctx, cfg.Endpoint, timeout, BuildPayload(o))
	if err == nil {
		d.logger.InfoCtx(ctx, "Order %s successfully sent to API", o.Reference)
		return deliveryResult{outcome: outcomeDelivered, response: body}
	}

	if errors.Is(err, ErrDeliveryFailed) {
		msg := fmt.Sprintf("Failed to send order %s to API: %v", o.Reference, err)
		d.logger.ErrorCtx(ctx, "%s", msg)
		return deliveryResult{outcome: outcomeDeliveryFailed, response: msg}
	}

	msg := fmt.Sprintf("Unexpected error sending order %s to API: %v", o.Reference, err)
	d.logger.ErrorCtx(ctx, "%s", msg)
	return deliveryResult{outcome: outcomeUnexpected, response: msg}
}
