package order

import (
	"time"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
)

const (
	PlacedEventName        = "order.placed"
	RevisedEventName       = "order.revised"
	StatusChangedEventName = "order.status_changed"
	DiscardedEventName     = "order.discarded"
)

// eventHeader carries the fields every order event shares. It is embedded so the
// header fields appear at the top level of the JSON payload.
type eventHeader struct {
	ID      kernel.UUID `json:"event_id"`
	OrderID kernel.UUID `json:"order_id"`
	At      time.Time   `json:"occurred_at"`
}

func newHeader(orderID kernel.UUID, at time.Time) eventHeader {
	return eventHeader{ID: kernel.NewUUID(), OrderID: orderID, At: at.UTC()}
}

func (h eventHeader) EventID() kernel.UUID     { return h.ID }
func (h eventHeader) AggregateID() kernel.UUID { return h.OrderID }
func (h eventHeader) OccurredAt() time.Time    { return h.At }

// LineSnapshot is the shape of a line inside event payloads.
type LineSnapshot struct {
	PizzaID kernel.UUID      `json:"pizza_id"`
	Details []DetailSnapshot `json:"details"`
}

type DetailSnapshot struct {
	Size  Size `json:"size"`
	Count int  `json:"count"`
}

type PlacedEvent struct {
	eventHeader
	ContactInfoID kernel.UUID    `json:"contact_info_id"`
	Lines         []LineSnapshot `json:"pizzas"`
}

func (PlacedEvent) EventName() string { return PlacedEventName }

type RevisedEvent struct {
	eventHeader
	Lines []LineSnapshot `json:"pizzas"`
}

func (RevisedEvent) EventName() string { return RevisedEventName }

type StatusChangedEvent struct {
	eventHeader
	From        Status     `json:"from"`
	To          Status     `json:"to"`
	DeliveredAt *time.Time `json:"delivered_at"`
}

func (StatusChangedEvent) EventName() string { return StatusChangedEventName }

type DiscardedEvent struct {
	eventHeader
	Status Status `json:"status"`
}

func (DiscardedEvent) EventName() string { return DiscardedEventName }

var (
	_ kernel.DomainEvent = PlacedEvent{}
	_ kernel.DomainEvent = RevisedEvent{}
	_ kernel.DomainEvent = StatusChangedEvent{}
	_ kernel.DomainEvent = DiscardedEvent{}
)

func snapshot(lines []*Line) []LineSnapshot {
	out := make([]LineSnapshot, 0, len(lines))
	for _, l := range lines {
		details := make([]DetailSnapshot, 0, len(l.details))
		for _, d := range l.details {
			details = append(details, DetailSnapshot{Size: d.size, Count: d.count})
		}
		out = append(out, LineSnapshot{PizzaID: l.pizzaID, Details: details})
	}
	return out
}
