package queries

import (
	"errors"

	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/guard"
)

var ErrListPizzasQueryIsNotConstructed = errors.New(
	"ListPizzasQuery must be created via NewListPizzasQuery constructor",
)

type ListPizzasQuery struct {
	guard guard.ConstructorGuard
}

func NewListPizzasQuery() ListPizzasQuery {
	return ListPizzasQuery{guard: guard.NewConstructorGuard()}
}

func (q ListPizzasQuery) Validate() error {
	return q.guard.Validate(ErrListPizzasQueryIsNotConstructed)
}
