package audit

import "context"

// Publisher delivers audit events to the configured sink.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close()
}

// Noop discards events. Used when no Kafka brokers are configured.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
func (Noop) Close()                               {}
