// Package catalogrepo persists and seeds the pizza catalog.
package catalogrepo

import (
	"time"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/catalog"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type PizzaDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_pizzas_name"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PizzaDTO) TableName() string {
	return "pizzas"
}

func fromDomain(p catalog.Pizza) PizzaDTO {
	return PizzaDTO{ID: p.ID().Bytes(), Name: p.Name()}
}

func toDomain(dto PizzaDTO) (catalog.Pizza, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.Pizza{}, err
	}
	return catalog.NewPizza(id, dto.Name)
}
