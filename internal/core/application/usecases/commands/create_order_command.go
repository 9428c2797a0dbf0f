package commands

import (
	"errors"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places a new order. The caller picks the order id so it
// can read the order back after the handler returns.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "Ada", "1 Main St", nil, []PizzaInput{
//	    {ID: margheritaID, Details: []DetailInput{{Size: "Large", Count: 2}}},
//	})
//	if err != nil {
//	    return err // field-keyed validation errors
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	orderPayload

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand checks field shapes only: name and address present and
// bounded, phone bounded, sizes among Small/Medium/Large, counts at least 1.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName, address string,
	phone *string,
	pizzas []PizzaInput,
) (CreateOrderCommand, error) {
	payload, err := newOrderPayload(customerName, address, phone, pizzas)
	if err = errors.Join(orderID.Validate(), err); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		orderID:      orderID,
		orderPayload: payload,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
