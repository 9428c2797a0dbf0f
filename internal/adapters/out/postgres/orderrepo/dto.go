// Package orderrepo maps the order aggregate onto the orders, order_lines and
// order_line_details tables.
package orderrepo

import (
	"time"

	"github.com/qlimaxx/pizza-ordering-api/internal/adapters/out/postgres/catalogrepo"
	"github.com/qlimaxx/pizza-ordering-api/internal/adapters/out/postgres/customerrepo"

	"github.com/google/uuid"
)

// OrderDTO is the order header. Status is indexed for list filtering and
// created_at for the newest-first ordering.
type OrderDTO struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	ContactInfoID uuid.UUID                   `gorm:"type:uuid;not null;index"`
	ContactInfo   customerrepo.ContactInfoDTO `gorm:"foreignKey:ContactInfoID;constraint:OnDelete:RESTRICT"`
	Status        int                         `gorm:"type:smallint;not null;index"`
	DeliveredAt   *time.Time
	Lines         []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time      `gorm:"not null;index"`
	UpdatedAt     time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is one pizza of an order. A pizza appears at most once per order.
type OrderLineDTO struct {
	ID        uuid.UUID            `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:idx_order_lines_order_pizza,priority:1"`
	PizzaID   uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:idx_order_lines_order_pizza,priority:2"`
	Pizza     catalogrepo.PizzaDTO `gorm:"foreignKey:PizzaID;constraint:OnDelete:RESTRICT"`
	Position  int                  `gorm:"not null"`
	Details   []SizeDetailDTO      `gorm:"foreignKey:OrderLineID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

type SizeDetailDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderLineID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_order_line_details_line_size,priority:1"`
	Size        int       `gorm:"type:smallint;not null;uniqueIndex:idx_order_line_details_line_size,priority:2"`
	Count       int       `gorm:"type:smallint;not null;check:chk_order_line_details_count,count >= 1"`
	Position    int       `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (SizeDetailDTO) TableName() string {
	return "order_line_details"
}
