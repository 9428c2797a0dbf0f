package commands

import (
	"errors"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/guard"
)

var ErrReplaceOrderCommandIsNotConstructed = errors.New(
	"ReplaceOrderCommand must be created via NewReplaceOrderCommand constructor",
)

// ReplaceOrderCommand overwrites an existing Processing order with a new payload.
// A nil phone keeps the stored phone.
type ReplaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	orderPayload

	guard guard.ConstructorGuard
}

func NewReplaceOrderCommand(
	orderID kernel.UUID,
	customerName, address string,
	phone *string,
	pizzas []PizzaInput,
) (ReplaceOrderCommand, error) {
	payload, err := newOrderPayload(customerName, address, phone, pizzas)
	if err = errors.Join(orderID.Validate(), err); err != nil {
		return ReplaceOrderCommand{}, err
	}

	return ReplaceOrderCommand{
		orderID:      orderID,
		orderPayload: payload,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c ReplaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrReplaceOrderCommandIsNotConstructed)
}

func (c ReplaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
