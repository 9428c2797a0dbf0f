package queries

import (
	"errors"
	"fmt"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/order"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists orders newest first, optionally narrowed by status
// and customer. Both filters must hold when both are set.
//
// Example:
//
//	query, err := NewListOrdersQuery(WithStatus("Delivered"), WithCustomer(customerID))
//	if err != nil {
//	    return err // "status" or "customer" validation error
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	status     *order.Status
	customerID *kernel.UUID

	guard guard.ConstructorGuard
}

// ListOrdersOption sets one filter, rejecting malformed values.
type ListOrdersOption func(q *ListOrdersQuery) (*ListOrdersQuery, error)

// WithStatus filters by one of the literal status names.
func WithStatus(name string) ListOrdersOption {
	return func(q *ListOrdersQuery) (*ListOrdersQuery, error) {
		status := order.ParseStatus(name)
		if status == order.Unknown {
			return nil, errs.NewValueIsInvalidErrorWithCause("status",
				fmt.Errorf("select a valid choice, %q is not one of the available choices", name))
		}
		q.status = &status
		return q, nil
	}
}

// WithCustomer filters by the id of the customer behind the order's contact info.
func WithCustomer(raw string) ListOrdersOption {
	return func(q *ListOrdersQuery) (*ListOrdersQuery, error) {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("customer", errors.New("enter a valid UUID"))
		}
		q.customerID = &id
		return q, nil
	}
}

func NewListOrdersQuery(opts ...ListOrdersOption) (ListOrdersQuery, error) {
	q := &ListOrdersQuery{guard: guard.NewConstructorGuard()}

	var all []error
	for _, opt := range opts {
		next, err := opt(q)
		if err != nil {
			all = append(all, err)
			continue
		}
		q = next
	}

	if err := errors.Join(all...); err != nil {
		return ListOrdersQuery{}, err
	}
	return *q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status is nil when the list is not filtered by status.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

func (q ListOrdersQuery) CustomerID() *kernel.UUID {
	return q.customerID
}
