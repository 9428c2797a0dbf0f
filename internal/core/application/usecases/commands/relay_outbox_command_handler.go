package commands

import (
	"context"
	"fmt"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/ports"
)

// RelayOutboxCommandHandler moves committed domain events to the publisher.
// Messages are locked while published and marked only after Publish succeeds,
// so a failed publish leaves them for the next run (at-least-once delivery).
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	now        Clock
}

func NewRelayOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
	now Clock,
) *RelayOutboxCommandHandler {
	return &RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        now,
	}
}

func (h *RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.OutboxRepository()
	msgs, err := outbox.GetUnpublished(ctx, cmd.Batch())
	if err != nil {
		return err
	}

	if len(msgs) == 0 {
		return uow.Commit(ctx)
	}

	if err = h.publisher.Publish(ctx, msgs...); err != nil {
		return fmt.Errorf("publish %d outbox messages: %w", len(msgs), err)
	}

	ids := make([]kernel.UUID, 0, len(msgs))
	for _, m := range msgs {
		ids = append(ids, m.ID)
	}

	if err = outbox.MarkPublished(ctx, ids, h.now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
