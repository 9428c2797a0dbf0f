package order

import (
	"errors"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"
)

var (
	ErrEmpty         = errors.New("empty")
	ErrDuplicateID   = errors.New("duplicate id")
	ErrDuplicateSize = errors.New("duplicate size")
	ErrPizzaNotFound = errors.New("not found")
	ErrNotUpdatable  = errors.New("not updatable")
)

// Line is one pizza of an order together with its per-size quantities.
// It is owned by Order and never shared between orders.
type Line struct {
	id      kernel.UUID
	pizzaID kernel.UUID
	details []SizeDetail
}

// NewLine requires at least one detail and no size repeated among them.
func NewLine(id, pizzaID kernel.UUID, details []SizeDetail) (*Line, error) {
	if err := errors.Join(id.Validate(), pizzaID.Validate()); err != nil {
		return nil, err
	}
	if err := CheckDetails(details); err != nil {
		return nil, err
	}

	return &Line{
		id:      id,
		pizzaID: pizzaID,
		details: append([]SizeDetail(nil), details...),
	}, nil
}

func (l *Line) ID() kernel.UUID {
	return l.id
}

func (l *Line) PizzaID() kernel.UUID {
	return l.pizzaID
}

// Details returns a copy in insertion order.
func (l *Line) Details() []SizeDetail {
	return append([]SizeDetail(nil), l.details...)
}

// CheckDetails reports "details: empty" or "details: duplicate size".
func CheckDetails(details []SizeDetail) error {
	if len(details) == 0 {
		return errs.NewValueIsInvalidErrorWithCause("details", ErrEmpty)
	}

	seen := make(map[Size]struct{}, len(details))
	for _, d := range details {
		if _, dup := seen[d.size]; dup {
			return errs.NewValueIsInvalidErrorWithCause("details", ErrDuplicateSize)
		}
		seen[d.size] = struct{}{}
	}
	return nil
}

// CheckPizzasPresent reports "pizzas: empty" when an order would have no lines.
func CheckPizzasPresent(n int) error {
	if n == 0 {
		return errs.NewValueIsInvalidErrorWithCause("pizzas", ErrEmpty)
	}
	return nil
}

// CheckPizzasDistinct reports "pizzas: duplicate id" when a pizza appears on two lines.
func CheckPizzasDistinct(pizzaIDs []kernel.UUID) error {
	seen := make(map[kernel.UUID]struct{}, len(pizzaIDs))
	for _, id := range pizzaIDs {
		if _, dup := seen[id]; dup {
			return errs.NewValueIsInvalidErrorWithCause("pizzas", ErrDuplicateID)
		}
		seen[id] = struct{}{}
	}
	return nil
}

func checkLines(lines []*Line) error {
	if err := CheckPizzasPresent(len(lines)); err != nil {
		return err
	}

	ids := make([]kernel.UUID, 0, len(lines))
	for _, l := range lines {
		if l == nil {
			return errs.NewValueIsRequiredError("pizzas")
		}
		ids = append(ids, l.pizzaID)
	}
	return CheckPizzasDistinct(ids)
}
