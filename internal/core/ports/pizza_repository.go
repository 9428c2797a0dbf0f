package ports

import (
	"context"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/catalog"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
)

// PizzaRepository reads the static catalog.
type PizzaRepository interface {
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
	Get(ctx context.Context, id kernel.UUID) (catalog.Pizza, error)

	// List returns the catalog ordered by name.
	List(ctx context.Context) ([]catalog.Pizza, error)
}
