package customer

import (
	"errors"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/guard"
)

const (
	MaxAddressLength = 200
	MaxPhoneLength   = 50
)

var ErrContactInfoIsNotConstructed = errors.New("ContactInfo must be created via NewContactInfo constructor")

// ContactInfo is a delivery address and optional phone belonging to a customer.
// The triple (customer, address, phone) is unique; an absent phone is the empty string.
type ContactInfo struct {
	guard      guard.ConstructorGuard
	id         kernel.UUID
	customerID kernel.UUID
	address    string
	phone      string
}

func NewContactInfo(id, customerID kernel.UUID, address, phone string) (*ContactInfo, error) {
	ci := &ContactInfo{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		ci.setAddress(address),
		ci.setPhone(phone),
	); err != nil {
		return nil, err
	}
	ci.id = id
	ci.customerID = customerID
	return ci, nil
}

func RestoreContactInfo(id, customerID kernel.UUID, address, phone string) (*ContactInfo, error) {
	return NewContactInfo(id, customerID, address, phone)
}

func (ci *ContactInfo) Validate() error {
	if ci == nil {
		return ErrContactInfoIsNotConstructed
	}
	return ci.guard.Validate(ErrContactInfoIsNotConstructed)
}

func (ci *ContactInfo) ID() kernel.UUID         { return ci.id }
func (ci *ContactInfo) CustomerID() kernel.UUID { return ci.customerID }
func (ci *ContactInfo) Address() string         { return ci.address }

// Phone is empty when the customer gave none.
func (ci *ContactInfo) Phone() string { return ci.phone }

func (ci *ContactInfo) HasPhone() bool { return ci.phone != "" }

func (ci *ContactInfo) UpdateAddress(address string) error {
	return ci.setAddress(address)
}

func (ci *ContactInfo) UpdatePhone(phone string) error {
	return ci.setPhone(phone)
}

func (ci *ContactInfo) setAddress(address string) error {
	if err := ValidateAddress(address); err != nil {
		return err
	}
	ci.address = address
	return nil
}

func (ci *ContactInfo) setPhone(phone string) error {
	if err := ValidatePhone(phone); err != nil {
		return err
	}
	ci.phone = phone
	return nil
}

func ValidateAddress(address string) error {
	return requiredBounded("address", address, MaxAddressLength)
}

// ValidatePhone only bounds the length; the empty string means no phone.
func ValidatePhone(phone string) error {
	return bounded("phone", phone, MaxPhoneLength)
}
