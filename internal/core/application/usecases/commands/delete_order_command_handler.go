package commands

import (
	"context"
)

// DeleteOrderCommandHandler removes an order with its lines and details in any status.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        Clock
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory, now Clock) *DeleteOrderCommandHandler {
	return &DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	o.Discard(h.now())
	if err = orders.Delete(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
