// Package catalog holds the static pizza catalog an order refers to.
package catalog

import (
	"errors"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"
)

const MaxNameLength = 100

// Pizza is read-only reference data.
type Pizza struct {
	id   kernel.UUID
	name string
}

func NewPizza(id kernel.UUID, name string) (Pizza, error) {
	var nameErr error
	switch {
	case name == "":
		nameErr = errs.NewValueIsRequiredError("name")
	case len([]rune(name)) > MaxNameLength:
		nameErr = errs.NewValueIsOutOfRangeError("name", len([]rune(name)), 1, MaxNameLength)
	}

	if err := errors.Join(id.Validate(), nameErr); err != nil {
		return Pizza{}, err
	}
	return Pizza{id: id, name: name}, nil
}

func (p Pizza) ID() kernel.UUID { return p.id }
func (p Pizza) Name() string    { return p.name }
