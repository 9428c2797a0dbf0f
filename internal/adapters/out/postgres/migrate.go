package postgres

import (
	"github.com/qlimaxx/pizza-ordering-api/internal/adapters/out/postgres/catalogrepo"
	"github.com/qlimaxx/pizza-ordering-api/internal/adapters/out/postgres/customerrepo"
	"github.com/qlimaxx/pizza-ordering-api/internal/adapters/out/postgres/orderrepo"
	"github.com/qlimaxx/pizza-ordering-api/internal/adapters/out/postgres/outboxrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service owns. Referenced tables
// come first so foreign keys can be created.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&customerrepo.ContactInfoDTO{},
		&catalogrepo.PizzaDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&orderrepo.SizeDetailDTO{},
		&outboxrepo.MessageDTO{},
	)
}
