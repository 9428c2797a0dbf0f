package queries

import (
	"context"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListPizzasQueryHandler returns the catalog ordered by name.
type ListPizzasQueryHandler struct {
	db *gorm.DB
}

func NewListPizzasQueryHandler(db *gorm.DB) ListPizzasQueryHandler {
	return ListPizzasQueryHandler{db: db}
}

func (h ListPizzasQueryHandler) Handle(ctx context.Context, query ListPizzasQuery) ([]PizzaResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT id, name FROM pizzas ORDER BY name, id`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pizzas := make([]PizzaResponse, 0)
	for rows.Next() {
		var (
			id   uuid.UUID
			name string
		)
		if err = rows.Scan(&id, &name); err != nil {
			return nil, err
		}

		pizzaID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		pizzas = append(pizzas, PizzaResponse{ID: pizzaID, Name: name})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return pizzas, nil
}
