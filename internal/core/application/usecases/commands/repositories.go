// Package commands contains the operations that change state: placing,
// replacing, advancing and deleting orders, and relaying the outbox.
// Every handler validates its command, opens a unit of work, and commits once.
package commands

import (
	"context"
	"time"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/ports"
)

// Clock returns the current time. Handlers take one so tests can pin it.
type Clock func() time.Time

// Unit of work views. Each handler depends on the narrowest one it needs.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	ContactInfoRepoFactory interface {
		ContactInfoRepository() ports.ContactInfoRepository
	}

	PizzaRepoFactory interface {
		PizzaRepository() ports.PizzaRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OrderUoW covers status changes and deletion, which only touch the order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlacementUoW covers create and replace, which also resolve the customer
	// directory and check the catalog.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer uow.Rollback(ctx)
	//
	//   lines, err := assembleLines(ctx, uow.PizzaRepository(), cmd.Lines())
	//   // ... resolve customer, add order
	//
	//   return uow.Commit(ctx)
	PlacementUoW interface {
		TxManager
		CustomerRepoFactory
		ContactInfoRepoFactory
		PizzaRepoFactory
		OrderRepoFactory
	}

	PlacementUoWFactory interface {
		Create() PlacementUoW
	}

	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
