package commands

import (
	"context"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/order"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/services"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"
)

// ReplaceOrderCommandHandler rebuilds an order in place. The order row is
// locked first so concurrent replaces of one order serialize; the customer is
// renamed and the contact info re-addressed rather than recreated, unless the
// new address and phone already exist for the customer, in which case the
// order moves to that contact info.
type ReplaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	reviser    services.OrderReviser
	now        Clock
}

func NewReplaceOrderCommandHandler(uowFactory PlacementUoWFactory, now Clock) *ReplaceOrderCommandHandler {
	return &ReplaceOrderCommandHandler{
		uowFactory: uowFactory,
		reviser:    services.NewOrderReviser(),
		now:        now,
	}
}

func (h *ReplaceOrderCommandHandler) Handle(ctx context.Context, cmd ReplaceOrderCommand) error {
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

	// Checked before the payload so a shipped order is refused whatever was sent.
	if !o.CanFullyUpdate() {
		return errs.NewValueIsInvalidErrorWithCause("order", order.ErrNotUpdatable)
	}

	lines, err := assembleLines(ctx, uow.PizzaRepository(), cmd.Lines())
	if err != nil {
		return err
	}

	contacts := uow.ContactInfoRepository()
	info, err := contacts.Get(ctx, o.ContactInfoID())
	if err != nil {
		return err
	}

	customers := uow.CustomerRepository()
	c, err := customers.Get(ctx, info.CustomerID())
	if err != nil {
		return err
	}

	directory := NewCustomerDirectory(customers, contacts)
	if err = directory.RenameCustomer(ctx, c, cmd.CustomerName()); err != nil {
		return err
	}

	if err = h.reviser.Revise(o, info, cmd.Address(), cmd.Phone(), lines, h.now()); err != nil {
		return err
	}

	if err = directory.SaveContactInfo(ctx, o, info); err != nil {
		return err
	}

	if err = orders.ReplaceLines(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
