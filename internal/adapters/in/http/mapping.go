package http

import (
	"github.com/qlimaxx/pizza-ordering-api/internal/core/application/usecases/commands"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/application/usecases/queries"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/order"
	"github.com/qlimaxx/pizza-ordering-api/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

type orderInput struct {
	name    string
	address string
	phone   *string
	pizzas  []commands.PizzaInput
}

// orderInputFromAPI flattens the optional request fields. Absent values become
// zero values so the command constructors report them as required. An explicit
// null phone becomes the empty phone, which clears it on replace; an omitted
// phone stays nil.
func orderInputFromAPI(body servers.OrderInput) orderInput {
	var in orderInput
	if c := body.Customer; c != nil {
		in.name = deref(c.Name)
		in.address = deref(c.Address)
		in.phone = c.Phone
		if in.phone == nil && c.PhoneSent {
			in.phone = new(string)
		}
	}

	if body.Pizzas == nil {
		return in
	}

	in.pizzas = make([]commands.PizzaInput, 0, len(*body.Pizzas))
	for _, p := range *body.Pizzas {
		pizza := commands.PizzaInput{ID: uuidFromAPI(p.Id)}
		if p.Details != nil {
			pizza.Details = make([]commands.DetailInput, 0, len(*p.Details))
			for _, d := range *p.Details {
				pizza.Details = append(pizza.Details, commands.DetailInput{
					Size:  deref(d.Size),
					Count: deref(d.Count),
				})
			}
		}
		in.pizzas = append(in.pizzas, pizza)
	}
	return in
}

func uuidFromAPI(id *openapi_types.UUID) kernel.UUID {
	if id == nil {
		return kernel.UUID{}
	}
	u, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}
	}
	return u
}

func orderToAPI(o queries.OrderResponse) servers.Order {
	pizzas := make([]servers.OrderPizza, len(o.Pizzas))
	for i, p := range o.Pizzas {
		details := make([]servers.SizeDetail, len(p.Details))
		for j, d := range p.Details {
			details[j] = servers.SizeDetail{Size: sizeToAPI(d.Size), Count: d.Count}
		}
		pizzas[i] = servers.OrderPizza{Id: p.ID.Bytes(), Name: p.Name, Details: details}
	}

	return servers.Order{
		Id: o.ID.Bytes(),
		Customer: servers.Customer{
			Id:      o.Customer.ID.Bytes(),
			Name:    o.Customer.Name,
			Address: o.Customer.Address,
			Phone:   o.Customer.Phone,
		},
		Pizzas:      pizzas,
		Status:      servers.OrderStatusName(o.Status.String()),
		Delivered:   o.Delivered,
		DeliveredAt: o.DeliveredAt,
		CreatedAt:   o.CreatedAt,
	}
}

func statusToAPI(s queries.OrderStatusResponse) servers.OrderStatus {
	return servers.OrderStatus{
		Id:          s.ID.Bytes(),
		Status:      servers.OrderStatusName(s.Status.String()),
		Delivered:   s.Delivered,
		DeliveredAt: s.DeliveredAt,
	}
}

func sizeToAPI(s order.Size) servers.PizzaSize {
	return servers.PizzaSize(s.String())
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
