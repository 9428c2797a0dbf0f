package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order bypassed NewOrder and RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root: the order header plus its lines and their size
// details, which are created, replaced and deleted together.
//
// Invariants:
//   - at least one line, no pizza on two lines
//   - every line has at least one detail, no size repeated within a line
//   - status only moves forward; deliveredAt is set once, on first entry into Delivered
//   - lines can only be replaced while the order is Processing
type Order struct {
	guard guard.ConstructorGuard

	id            kernel.UUID
	contactInfoID kernel.UUID
	status        Status
	deliveredAt   *time.Time
	createdAt     time.Time
	lines         []*Line

	domainEvents []kernel.DomainEvent
}

// NewOrder places a new order in Processing and records a PlacedEvent.
//
// Example:
//
//	line, _ := order.NewLine(kernel.NewUUID(), margheritaID, details)
//	o, err := order.NewOrder(kernel.NewUUID(), contactInfo.ID(), []*order.Line{line}, time.Now())
func NewOrder(id, contactInfoID kernel.UUID, lines []*Line, createdAt time.Time) (*Order, error) {
	if err := errors.Join(id.Validate(), contactInfoID.Validate()); err != nil {
		return nil, err
	}
	if err := checkLines(lines); err != nil {
		return nil, err
	}

	o := &Order{
		guard:         guard.NewConstructorGuard(),
		id:            id,
		contactInfoID: contactInfoID,
		status:        Processing,
		createdAt:     createdAt.UTC(),
		lines:         append([]*Line(nil), lines...),
	}

	o.raise(PlacedEvent{
		eventHeader:   newHeader(id, createdAt),
		ContactInfoID: contactInfoID,
		Lines:         snapshot(o.lines),
	})

	return o, nil
}

// RestoreOrder rebuilds an order from persisted state without recording events.
// It refuses states that break the delivered/deliveredAt pairing.
func RestoreOrder(
	id, contactInfoID kernel.UUID,
	status Status,
	deliveredAt *time.Time,
	createdAt time.Time,
	lines []*Line,
) (*Order, error) {
	if err := errors.Join(id.Validate(), contactInfoID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if (status == Delivered) != (deliveredAt != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("delivered_at",
			fmt.Errorf("inconsistent with status %s", status))
	}
	if err := checkLines(lines); err != nil {
		return nil, err
	}

	return &Order{
		guard:         guard.NewConstructorGuard(),
		id:            id,
		contactInfoID: contactInfoID,
		status:        status,
		deliveredAt:   deliveredAt,
		createdAt:     createdAt,
		lines:         append([]*Line(nil), lines...),
	}, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) ContactInfoID() kernel.UUID {
	return o.contactInfoID
}

func (o *Order) Status() Status {
	return o.status
}

// DeliveredAt is nil until the order first reaches Delivered.
func (o *Order) DeliveredAt() *time.Time {
	if o.deliveredAt == nil {
		return nil
	}
	at := *o.deliveredAt
	return &at
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) Lines() []*Line {
	return append([]*Line(nil), o.lines...)
}

func (o *Order) Delivered() bool {
	return o.status == Delivered
}

// CanFullyUpdate reports whether the order may still be replaced.
func (o *Order) CanFullyUpdate() bool {
	return o.status == Processing
}

// Advance moves the order to target when its weight is strictly greater than
// the current one. On failure the order is left unchanged.
func (o *Order) Advance(target Status, at time.Time) error {
	next, err := o.status.AdvanceTo(target)
	if err != nil {
		return err
	}

	from := o.status
	o.status = next
	if next == Delivered && o.deliveredAt == nil {
		stamp := at.UTC()
		o.deliveredAt = &stamp
	}

	o.raise(StatusChangedEvent{
		eventHeader: newHeader(o.id, at),
		From:        from,
		To:          next,
		DeliveredAt: o.DeliveredAt(),
	})
	return nil
}

// ReviseLines swaps the whole line set. Only Processing orders accept it.
func (o *Order) ReviseLines(lines []*Line, at time.Time) error {
	if !o.CanFullyUpdate() {
		return errs.NewValueIsInvalidErrorWithCause("order", ErrNotUpdatable)
	}
	if err := checkLines(lines); err != nil {
		return err
	}

	o.lines = append([]*Line(nil), lines...)
	o.raise(RevisedEvent{
		eventHeader: newHeader(o.id, at),
		Lines:       snapshot(o.lines),
	})
	return nil
}

// MoveTo points the order at another contact info. Only Processing orders
// accept it.
func (o *Order) MoveTo(contactInfoID kernel.UUID) error {
	if !o.CanFullyUpdate() {
		return errs.NewValueIsInvalidErrorWithCause("order", ErrNotUpdatable)
	}
	if err := contactInfoID.Validate(); err != nil {
		return err
	}

	o.contactInfoID = contactInfoID
	return nil
}

// Discard records that the order is being deleted.
func (o *Order) Discard(at time.Time) {
	o.raise(DiscardedEvent{
		eventHeader: newHeader(o.id, at),
		Status:      o.status,
	})
}

func (o *Order) DomainEvents() []kernel.DomainEvent {
	return append([]kernel.DomainEvent(nil), o.domainEvents...)
}

func (o *Order) ClearDomainEvents() {
	o.domainEvents = nil
}

func (o *Order) raise(e kernel.DomainEvent) {
	o.domainEvents = append(o.domainEvents, e)
}
