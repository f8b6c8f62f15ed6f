package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Envelope is the wire frame for the service's events: queued dispatch
// requests and kitchen status broadcasts. Key drives partitioning, so
// events of one session or shop stay ordered.
type Envelope struct {
	EventID   string          `json:"event_id"`
	Key       string          `json:"key"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewEnvelope wraps payload in an envelope with a fresh event ID.
func NewEnvelope(key, msgType string, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}

	return Envelope{
		EventID:   uuid.New().String(),
		Key:       key,
		Type:      msgType,
		Payload:   data,
		Timestamp: time.Now().UTC(),
	}, nil
}

// Publisher sends envelopes to the broker.
type Publisher interface {
	Publish(ctx context.Context, envelope Envelope) error
	Close() error
}

// MessageHandler processes one raw message. A non-nil error leaves the
// offset uncommitted.
type MessageHandler func(ctx context.Context, key, value []byte) error

// Worker pulls messages from the broker and feeds them to a handler.
type Worker interface {
	Start(ctx context.Context, handler MessageHandler) error
	Close() error
}
