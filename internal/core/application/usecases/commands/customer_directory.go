package commands

import (
	"context"
	"errors"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/customer"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/order"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/ports"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"
)

var ErrNameAlreadyExists = errors.New("already exists")

// CustomerDirectory resolves and renames customers and their contact infos
// through repositories bound to the caller's transaction.
type CustomerDirectory struct {
	customers ports.CustomerRepository
	contacts  ports.ContactInfoRepository
}

func NewCustomerDirectory(customers ports.CustomerRepository, contacts ports.ContactInfoRepository) CustomerDirectory {
	return CustomerDirectory{customers: customers, contacts: contacts}
}

// ResolveCustomer returns the customer holding name, creating it if needed.
func (d CustomerDirectory) ResolveCustomer(ctx context.Context, name string) (*customer.Customer, error) {
	candidate, err := customer.NewCustomer(kernel.NewUUID(), name)
	if err != nil {
		return nil, err
	}
	return d.customers.Resolve(ctx, candidate)
}

// ResolveContactInfo returns the contact info matching (c, address, phone)
// exactly, creating it if needed.
func (d CustomerDirectory) ResolveContactInfo(
	ctx context.Context,
	c *customer.Customer,
	address, phone string,
) (*customer.ContactInfo, error) {
	candidate, err := customer.NewContactInfo(kernel.NewUUID(), c.ID(), address, phone)
	if err != nil {
		return nil, err
	}
	return d.contacts.Resolve(ctx, candidate)
}

// RenameCustomer is a no-op when the name is unchanged. A name held by another
// customer is a validation failure on "name"; losing a race for it surfaces as
// errs.ObjectAlreadyExistsError from the repository.
func (d CustomerDirectory) RenameCustomer(ctx context.Context, c *customer.Customer, name string) error {
	if c.HasName(name) {
		return nil
	}

	taken, err := d.customers.ExistsByName(ctx, name)
	if err != nil {
		return err
	}
	if taken {
		return errs.NewValueIsInvalidErrorWithCause("name", ErrNameAlreadyExists)
	}

	if _, err := c.Rename(name); err != nil {
		return err
	}
	return d.customers.Update(ctx, c)
}

// SaveContactInfo stores info after it was re-addressed for o. When another
// row already holds the new (customer, address, phone), o is moved to that row
// and the stored info is left alone. A row inserted concurrently between the
// lookup and the update still surfaces as errs.ObjectAlreadyExistsError.
func (d CustomerDirectory) SaveContactInfo(ctx context.Context, o *order.Order, info *customer.ContactInfo) error {
	existing, err := d.contacts.Find(ctx, info.CustomerID(), info.Address(), info.Phone())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return d.contacts.Update(ctx, info)
	case err != nil:
		return err
	case existing.ID().IsEqual(info.ID()):
		return nil
	default:
		return o.MoveTo(existing.ID())
	}
}
