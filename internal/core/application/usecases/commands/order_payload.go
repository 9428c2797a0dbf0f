package commands

import (
	"errors"
	"fmt"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/customer"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/order"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"
)

// PizzaInput is one requested pizza as it arrives from the caller.
type PizzaInput struct {
	ID      kernel.UUID
	Details []DetailInput
}

type DetailInput struct {
	Size  string
	Count int
}

// LineSpec is a shape-checked pizza request. Business rules (catalog
// membership, duplicates, empty details) are checked by the handler.
type LineSpec struct {
	PizzaID kernel.UUID
	Details []order.SizeDetail
}

// orderPayload is the body shared by create and replace.
type orderPayload struct {
	customerName string
	address      string
	phone        *string
	lines        []LineSpec
}

func newOrderPayload(name, address string, phone *string, pizzas []PizzaInput) (orderPayload, error) {
	var phoneErr error
	if phone != nil {
		phoneErr = customer.ValidatePhone(*phone)
	}

	lines, linesErr := newLineSpecs(pizzas)

	if err := errors.Join(
		customer.ValidateName(name),
		customer.ValidateAddress(address),
		phoneErr,
		linesErr,
	); err != nil {
		return orderPayload{}, err
	}

	var p *string
	if phone != nil {
		v := *phone
		p = &v
	}

	return orderPayload{customerName: name, address: address, phone: p, lines: lines}, nil
}

func newLineSpecs(pizzas []PizzaInput) ([]LineSpec, error) {
	lines := make([]LineSpec, 0, len(pizzas))
	var all []error

	for i, p := range pizzas {
		if err := p.ID.Validate(); err != nil {
			all = append(all, errs.NewValueIsRequiredErrorWithCause("id", fmt.Errorf("pizza %d has no id", i)))
		}

		details := make([]order.SizeDetail, 0, len(p.Details))
		for _, d := range p.Details {
			size, err := order.ParseSize(d.Size)
			if err != nil {
				all = append(all, err)
				continue
			}
			detail, err := order.NewSizeDetail(size, d.Count)
			if err != nil {
				all = append(all, err)
				continue
			}
			details = append(details, detail)
		}

		lines = append(lines, LineSpec{PizzaID: p.ID, Details: details})
	}

	if err := errors.Join(all...); err != nil {
		return nil, err
	}
	return lines, nil
}

func (p orderPayload) CustomerName() string { return p.customerName }
func (p orderPayload) Address() string      { return p.address }

// Phone is nil when the caller did not send one.
func (p orderPayload) Phone() *string {
	if p.phone == nil {
		return nil
	}
	v := *p.phone
	return &v
}

func (p orderPayload) Lines() []LineSpec {
	return append([]LineSpec(nil), p.lines...)
}
