package customerrepo

import (
	"context"
	"errors"

	"github.com/qlimaxx/pizza-ordering-api/internal/adapters/out/postgres/pgerr"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/customer"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).Take(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, err
	}

	return customerToDomain(dto)
}

func (r *GormCustomerRepository) GetByName(ctx context.Context, name string) (*customer.Customer, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).Take(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", name)
		}
		return nil, err
	}

	return customerToDomain(dto)
}

func (r *GormCustomerRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&CustomerDTO{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Resolve inserts candidate with ON CONFLICT DO NOTHING and then reads back
// the row owning the name, which may belong to a concurrent writer.
func (r *GormCustomerRepository) Resolve(ctx context.Context, candidate *customer.Customer) (*customer.Customer, error) {
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	dto := customerFromDomain(candidate)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&dto).Error
	if err != nil {
		return nil, err
	}

	return r.GetByName(ctx, candidate.Name())
}

func (r *GormCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&CustomerDTO{}).
		Where("id = ?", c.ID().Bytes()).
		Updates(map[string]any{"name": c.Name()})
	if result.Error != nil {
		if pgerr.IsUniqueViolation(result.Error) {
			return errs.NewObjectAlreadyExistsErrorWithCause("name", c.Name(), result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", c.ID().String())
	}

	return nil
}

// GormContactInfoRepository implements ports.ContactInfoRepository using GORM.
type GormContactInfoRepository struct {
	db *gorm.DB
}

func NewGormContactInfoRepository(db *gorm.DB) *GormContactInfoRepository {
	return &GormContactInfoRepository{db: db}
}

func (r *GormContactInfoRepository) Get(ctx context.Context, id kernel.UUID) (*customer.ContactInfo, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ContactInfoDTO
	if err := r.db.WithContext(ctx).Take(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("contact_info", id.String())
		}
		return nil, err
	}

	return contactInfoToDomain(dto)
}

func (r *GormContactInfoRepository) Resolve(
	ctx context.Context,
	candidate *customer.ContactInfo,
) (*customer.ContactInfo, error) {
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	dto := contactInfoFromDomain(candidate)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer_id"}, {Name: "address"}, {Name: "phone"}},
			DoNothing: true,
		}).
		Omit(clause.Associations).
		Create(&dto).Error
	if err != nil {
		return nil, err
	}

	var stored ContactInfoDTO
	err = r.db.WithContext(ctx).
		Take(&stored, "customer_id = ? AND address = ? AND phone = ?", dto.CustomerID, dto.Address, dto.Phone).
		Error
	if err != nil {
		return nil, err
	}

	return contactInfoToDomain(stored)
}

func (r *GormContactInfoRepository) Find(
	ctx context.Context,
	customerID kernel.UUID,
	address, phone string,
) (*customer.ContactInfo, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dto ContactInfoDTO
	err := r.db.WithContext(ctx).
		Take(&dto, "customer_id = ? AND address = ? AND phone = ?", customerID.Bytes(), address, phone).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("contact_info", address)
		}
		return nil, err
	}

	return contactInfoToDomain(dto)
}

func (r *GormContactInfoRepository) Update(ctx context.Context, ci *customer.ContactInfo) error {
	if err := ci.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&ContactInfoDTO{}).
		Where("id = ?", ci.ID().Bytes()).
		Updates(map[string]any{"address": ci.Address(), "phone": ci.Phone()})
	if result.Error != nil {
		if pgerr.IsUniqueViolation(result.Error) {
			return errs.NewObjectAlreadyExistsErrorWithCause("contact_info", ci.Address(), result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("contact_info", ci.ID().String())
	}

	return nil
}
