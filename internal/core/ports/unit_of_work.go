package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from it
// after Begin run inside the transaction. Commit also stores the domain events
// of every aggregate the repositories saw.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	CustomerRepository() CustomerRepository
	ContactInfoRepository() ContactInfoRepository
	PizzaRepository() PizzaRepository
	OrderRepository() OrderRepository
	OutboxRepository() OutboxRepository
}
