package messaging

import "context"

// NopPublisher drops every message. Used when no broker is configured and
// broadcasts are best effort anyway.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Envelope) error { return nil }

func (NopPublisher) Close() error { return nil }
