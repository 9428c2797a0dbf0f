package customer

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/guard"
)

const MaxNameLength = 100

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is identified by a unique, exact-match name.
type Customer struct {
	guard guard.ConstructorGuard
	id    kernel.UUID
	name  string
}

func NewCustomer(id kernel.UUID, name string) (*Customer, error) {
	c := &Customer{guard: guard.NewConstructorGuard()}
	if err := errors.Join(c.setID(id), c.setName(name)); err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreCustomer rebuilds a persisted customer; the same rules apply as for NewCustomer.
func RestoreCustomer(id kernel.UUID, name string) (*Customer, error) {
	return NewCustomer(id, name)
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

// HasName compares exactly; names are case sensitive.
func (c *Customer) HasName(name string) bool {
	return c.name == name
}

// Rename reports whether the name actually changed.
func (c *Customer) Rename(name string) (bool, error) {
	if c.HasName(name) {
		return false, nil
	}
	if err := c.setName(name); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	c.name = name
	return nil
}

// ValidateName checks the shape of a customer name: present and at most MaxNameLength characters.
func ValidateName(name string) error {
	return requiredBounded("name", name, MaxNameLength)
}

func requiredBounded(param, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return bounded(param, value, maxLen)
}

func bounded(param, value string, maxLen int) error {
	if n := utf8.RuneCountInString(value); n > maxLen {
		return errs.NewValueIsInvalidErrorWithCause(param,
			fmt.Errorf("ensure this field has no more than %d characters", maxLen))
	}
	return nil
}
