package ports

import (
	"context"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/order"
)

// OrderRepository persists the order aggregate: header, lines and size details.
type OrderRepository interface {
	// Add inserts the order with all its lines and details.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the header (status, delivered_at). Lines are untouched.
	Update(ctx context.Context, aggregate *order.Order) error

	// ReplaceLines deletes every stored line of the order, cascading to their
	// details, and inserts the aggregate's current lines.
	ReplaceLines(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ObjectNotFoundError for an unknown id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get holding a row lock until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the order, its lines and details. Customer, contact info
	// and pizza rows are kept.
	Delete(ctx context.Context, aggregate *order.Order) error
}
