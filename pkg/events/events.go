// Package events publishes post-commit transaction notifications. Consumers
// (e.g. the credit-score worker) react to completed movements without ever
// touching ledger invariants; a lost event loses a notification, never
// money.
package events

import (
	"context"

	"github.com/ibiri/banking/pkg/api"
)

// EventType names a kind of transaction event.
type EventType string

// TransactionCompleted is published after a movement commits.
const TransactionCompleted EventType = "transaction.completed"

// TransactionEvent is the message body placed on the queue.
type TransactionEvent struct {
	Type        EventType        `json:"type"`
	Transaction *api.Transaction `json:"transaction"`
}

// Publisher defines the interface for emitting transaction events.
type Publisher interface {
	// Publish emits one event. Implementations must not be relied on for
	// correctness: callers treat failures as log-and-continue.
	Publish(ctx context.Context, event TransactionEvent) error
}

// NoOpPublisher discards all events. Used when no queue is configured and in
// tests.
type NoOpPublisher struct{}

// Make sure we conform to the interface
var _ Publisher = (*NoOpPublisher)(nil)

// Publish discards the event.
func (p *NoOpPublisher) Publish(ctx context.Context, event TransactionEvent) error {
	return nil
}
