package commands

import (
	"context"
)

// ChangeOrderStatusCommandHandler advances an order under a row lock.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	now        Clock
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, now Clock) *ChangeOrderStatusCommandHandler {
	return &ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	orders := uow.OrderRepository()
	o, err := orders.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Advance(cmd.Status(), h.now()); err != nil {
		return err
	}

	if err = orders.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
