package ports

import (
	"context"
	"time"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
)

// OutboxMessage is a domain event serialised for relay.
type OutboxMessage struct {
	ID          kernel.UUID
	Name        string
	AggregateID kernel.UUID
	Payload     []byte
	OccurredAt  time.Time
	PublishedAt *time.Time
}

// OutboxRepository stores domain events in the same transaction as the state
// change that raised them.
type OutboxRepository interface {
	Add(ctx context.Context, events ...kernel.DomainEvent) error

	// GetUnpublished returns up to limit messages oldest first, skipping rows
	// another relay has locked.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error

	// DeletePublishedBefore returns the number of purged messages.
	DeletePublishedBefore(ctx context.Context, before time.Time) (int64, error)
}

// EventPublisher delivers outbox messages to the outside world.
type EventPublisher interface {
	Publish(ctx context.Context, msgs ...OutboxMessage) error
}
