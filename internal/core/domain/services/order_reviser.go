package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/customer"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/order"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"
)

// ErrContactInfoMismatch is returned when the contact info passed to Revise is not the one the order points at.
var ErrContactInfoMismatch = errors.New("contact info does not belong to order")

// OrderReviser applies a full replacement to an order and the contact info it
// is delivered to. Either both change or neither does.
//
// Example usage:
//
//	reviser := services.NewOrderReviser()
//	if err := reviser.Revise(o, info, "2 Side St", nil, lines, time.Now()); err != nil {
//	    return err
//	}
//	// persist info and o within the same transaction
type OrderReviser struct{}

func NewOrderReviser() OrderReviser {
	return OrderReviser{}
}

// Revise replaces the order lines, moves the delivery address and, when phone
// is not nil, the phone. A nil phone keeps the current one.
//
// Checks run before anything is mutated:
//   - the order is still Processing
//   - info is the order's contact info
//   - address and phone are well formed
//   - the new lines satisfy the aggregate invariants
func (OrderReviser) Revise(
	o *order.Order,
	info *customer.ContactInfo,
	address string,
	phone *string,
	lines []*order.Line,
	at time.Time,
) error {
	if err := errors.Join(o.Validate(), info.Validate()); err != nil {
		return err
	}

	if !o.CanFullyUpdate() {
		return errs.NewValueIsInvalidErrorWithCause("order", order.ErrNotUpdatable)
	}

	if !info.ID().IsEqual(o.ContactInfoID()) {
		return fmt.Errorf("%w: %s", ErrContactInfoMismatch, o.ID())
	}

	var phoneErr error
	if phone != nil {
		phoneErr = customer.ValidatePhone(*phone)
	}
	if err := errors.Join(customer.ValidateAddress(address), phoneErr); err != nil {
		return err
	}

	if err := o.ReviseLines(lines, at); err != nil {
		return err
	}

	// Both already validated above, these cannot fail.
	_ = info.UpdateAddress(address)
	if phone != nil {
		_ = info.UpdatePhone(*phone)
	}

	return nil
}
