// Package customerrepo persists customers and their contact infos.
package customerrepo

import (
	"time"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/customer"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_customers_name"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CustomerDTO) TableName() string {
	return "customers"
}

// ContactInfoDTO stores an absent phone as the empty string so the natural key
// (customer_id, address, phone) stays unique without NULL semantics.
type ContactInfoDTO struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_contact_infos_natural_key,priority:1"`
	Customer   CustomerDTO `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`
	Address    string      `gorm:"type:varchar(200);not null;uniqueIndex:idx_contact_infos_natural_key,priority:2"`
	Phone      string      `gorm:"type:varchar(50);not null;default:'';uniqueIndex:idx_contact_infos_natural_key,priority:3"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (ContactInfoDTO) TableName() string {
	return "contact_infos"
}

func customerFromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{ID: c.ID().Bytes(), Name: c.Name()}
}

func customerToDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return customer.RestoreCustomer(id, dto.Name)
}

func contactInfoFromDomain(ci *customer.ContactInfo) ContactInfoDTO {
	return ContactInfoDTO{
		ID:         ci.ID().Bytes(),
		CustomerID: ci.CustomerID().Bytes(),
		Address:    ci.Address(),
		Phone:      ci.Phone(),
	}
}

func contactInfoToDomain(dto ContactInfoDTO) (*customer.ContactInfo, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	return customer.RestoreContactInfo(id, customerID, dto.Address, dto.Phone)
}
