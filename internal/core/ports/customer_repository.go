// Package ports defines the contracts between the application core and its adapters.
package ports

import (
	"context"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/customer"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
)

// CustomerRepository persists customers keyed by their unique name.
type CustomerRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByName returns errs.ObjectNotFoundError when nobody holds the name.
	GetByName(ctx context.Context, name string) (*customer.Customer, error)

	ExistsByName(ctx context.Context, name string) (bool, error)

	// Resolve stores candidate unless a customer with the same name already
	// exists, and returns whichever row holds the name afterwards. Concurrent
	// calls with the same name converge on one row.
	Resolve(ctx context.Context, candidate *customer.Customer) (*customer.Customer, error)

	// Update fails with errs.ObjectAlreadyExistsError when the new name is taken.
	Update(ctx context.Context, c *customer.Customer) error
}

// ContactInfoRepository persists contact infos keyed by (customer, address, phone).
type ContactInfoRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*customer.ContactInfo, error)

	// Resolve is the get-or-create counterpart of CustomerRepository.Resolve.
	Resolve(ctx context.Context, candidate *customer.ContactInfo) (*customer.ContactInfo, error)

	// Find looks a contact info up by its unique triple and fails with
	// errs.ObjectNotFoundError when there is none.
	Find(ctx context.Context, customerID kernel.UUID, address, phone string) (*customer.ContactInfo, error)

	// Update fails with errs.ObjectAlreadyExistsError when the new triple is taken.
	Update(ctx context.Context, ci *customer.ContactInfo) error
}
