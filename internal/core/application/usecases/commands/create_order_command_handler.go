package commands

import (
	"context"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/order"
)

// CreateOrderCommandHandler places an order: it resolves the customer and
// contact info by natural key, checks the lines against the catalog, and
// stores the order in Processing, all in one transaction.
type CreateOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	now        Clock
}

func NewCreateOrderCommandHandler(uowFactory PlacementUoWFactory, now Clock) *CreateOrderCommandHandler {
	return &CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle persists nothing unless every rule passes.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	lines, err := assembleLines(ctx, uow.PizzaRepository(), cmd.Lines())
	if err != nil {
		return err
	}

	directory := NewCustomerDirectory(uow.CustomerRepository(), uow.ContactInfoRepository())
	c, err := directory.ResolveCustomer(ctx, cmd.CustomerName())
	if err != nil {
		return err
	}

	phone := ""
	if p := cmd.Phone(); p != nil {
		phone = *p
	}
	info, err := directory.ResolveContactInfo(ctx, c, cmd.Address(), phone)
	if err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), info.ID(), lines, h.now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
