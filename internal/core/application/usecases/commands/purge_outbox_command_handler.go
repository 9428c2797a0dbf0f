package commands

import (
	"context"
)

type PurgeOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	now        Clock
}

func NewPurgeOutboxCommandHandler(uowFactory OutboxUoWFactory, now Clock) *PurgeOutboxCommandHandler {
	return &PurgeOutboxCommandHandler{uowFactory: uowFactory, now: now}
}

func (h *PurgeOutboxCommandHandler) Handle(ctx context.Context, cmd PurgeOutboxCommand) error {
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

	if _, err := uow.OutboxRepository().DeletePublishedBefore(ctx, h.now().Add(-cmd.Retention())); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
