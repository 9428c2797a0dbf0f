// Package queries contains read-only operations. Handlers read straight from
// the database into response structs without loading aggregates.
package queries

import (
	"time"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/order"
)

// OrderResponse is the full order representation.
type OrderResponse struct {
	ID          kernel.UUID
	Customer    CustomerResponse
	Pizzas      []OrderPizzaResponse
	Status      order.Status
	Delivered   bool
	DeliveredAt *time.Time
	CreatedAt   time.Time
}

// CustomerResponse merges the customer with the contact info the order uses.
type CustomerResponse struct {
	ID      kernel.UUID
	Name    string
	Address string
	// Phone is nil when none was given.
	Phone *string
}

type OrderPizzaResponse struct {
	ID      kernel.UUID
	Name    string
	Details []SizeDetailResponse
}

type SizeDetailResponse struct {
	Size  order.Size
	Count int
}

type OrderStatusResponse struct {
	ID          kernel.UUID
	Status      order.Status
	Delivered   bool
	DeliveredAt *time.Time
}

type PizzaResponse struct {
	ID   kernel.UUID
	Name string
}
