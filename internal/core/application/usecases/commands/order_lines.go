package commands

import (
	"context"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/order"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/ports"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"
)

// assembleLines turns shape-checked specs into order lines. It stops at the
// first failing rule, checked in this order:
//
//	pizzas: empty, pizzas: not found, pizzas: duplicate id,
//	details: empty, details: duplicate size
func assembleLines(ctx context.Context, pizzas ports.PizzaRepository, specs []LineSpec) ([]*order.Line, error) {
	if err := order.CheckPizzasPresent(len(specs)); err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(specs))
	for _, spec := range specs {
		exists, err := pizzas.Exists(ctx, spec.PizzaID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, errs.NewValueIsInvalidErrorWithCause("pizzas", order.ErrPizzaNotFound)
		}
		ids = append(ids, spec.PizzaID)
	}

	if err := order.CheckPizzasDistinct(ids); err != nil {
		return nil, err
	}

	for _, spec := range specs {
		if err := order.CheckDetails(spec.Details); err != nil {
			return nil, err
		}
	}

	lines := make([]*order.Line, 0, len(specs))
	for _, spec := range specs {
		line, err := order.NewLine(kernel.NewUUID(), spec.PizzaID, spec.Details)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
