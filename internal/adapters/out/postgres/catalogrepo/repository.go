package catalogrepo

import (
	"context"
	"errors"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/catalog"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPizzaRepository implements ports.PizzaRepository using GORM.
type GormPizzaRepository struct {
	db *gorm.DB
}

func NewGormPizzaRepository(db *gorm.DB) *GormPizzaRepository {
	return &GormPizzaRepository{db: db}
}

func (r *GormPizzaRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&PizzaDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormPizzaRepository) Get(ctx context.Context, id kernel.UUID) (catalog.Pizza, error) {
	if err := id.Validate(); err != nil {
		return catalog.Pizza{}, err
	}

	var dto PizzaDTO
	if err := r.db.WithContext(ctx).Take(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Pizza{}, errs.NewObjectNotFoundError("pizza", id.String())
		}
		return catalog.Pizza{}, err
	}

	return toDomain(dto)
}

func (r *GormPizzaRepository) List(ctx context.Context) ([]catalog.Pizza, error) {
	var dtos []PizzaDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	pizzas := make([]catalog.Pizza, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		pizzas = append(pizzas, p)
	}

	return pizzas, nil
}
