package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate. Events are collected by the
// unit of work on commit and stored in the outbox together with the state change.
type DomainEvent interface {
	EventID() UUID
	EventName() string
	AggregateID() UUID
	OccurredAt() time.Time
}
