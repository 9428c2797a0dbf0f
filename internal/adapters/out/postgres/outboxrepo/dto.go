// Package outboxrepo stores domain events for asynchronous relay.
package outboxrepo

import (
	"encoding/json"
	"time"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/ports"

	"github.com/google/uuid"
)

// MessageDTO is one outbox row. Unpublished rows are found through the
// partial index on occurred_at.
type MessageDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(100);not null"`
	AggregateID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Payload     json.RawMessage `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time       `gorm:"not null;index:idx_outbox_messages_pending,where:published_at IS NULL"`
	PublishedAt *time.Time      `gorm:"index"`
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

func fromEvent(e kernel.DomainEvent) (MessageDTO, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return MessageDTO{}, err
	}

	return MessageDTO{
		ID:          e.EventID().Bytes(),
		Name:        e.EventName(),
		AggregateID: e.AggregateID().Bytes(),
		Payload:     payload,
		OccurredAt:  e.OccurredAt(),
	}, nil
}

func toMessage(dto MessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          id,
		Name:        dto.Name,
		AggregateID: aggregateID,
		Payload:     []byte(dto.Payload),
		OccurredAt:  dto.OccurredAt,
		PublishedAt: dto.PublishedAt,
	}, nil
}
