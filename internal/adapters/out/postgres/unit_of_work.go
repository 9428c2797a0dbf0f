// Package postgres implements the unit of work over GORM and wires the
// repositories of every aggregate to a shared transaction.
//
// A unit of work is created per command:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Repositories report every aggregate they write back to the unit of work.
// On Commit the pending domain events of those aggregates are appended to the
// outbox inside the same transaction, so state and events land together or
// not at all. Events are cleared from the aggregates only after the commit
// succeeds.
//
// A unit of work is not safe for concurrent use; create one per goroutine.
package postgres

import (
	"context"
	"fmt"

	"github.com/qlimaxx/pizza-ordering-api/internal/adapters/out/postgres/catalogrepo"
	"github.com/qlimaxx/pizza-ordering-api/internal/adapters/out/postgres/customerrepo"
	"github.com/qlimaxx/pizza-ordering-api/internal/adapters/out/postgres/orderrepo"
	"github.com/qlimaxx/pizza-ordering-api/internal/adapters/out/postgres/outboxrepo"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/ports"

	"gorm.io/gorm"
)

// eventSource is an aggregate that records domain events.
type eventSource interface {
	DomainEvents() []kernel.DomainEvent
	ClearDomainEvents()
}

type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work with no open transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction and the aggregates
// written within it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin opens the transaction. Calling it again while a transaction is open
// is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	uow.trackedAggregates = nil
	return nil
}

// Commit stores pending domain events in the outbox and commits. The
// transaction is rolled back if writing the events fails.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	sources, events := uow.pendingEvents()
	if len(events) > 0 {
		if err := outboxrepo.NewGormOutboxRepository(uow.tx).Add(ctx, events...); err != nil {
			_ = uow.tx.Rollback()
			uow.reset()
			return fmt.Errorf("store domain events: %w", err)
		}
	}

	err := uow.tx.Commit().Error
	uow.reset()
	if err != nil {
		return err
	}

	for _, s := range sources {
		s.ClearDomainEvents()
	}
	return nil
}

// Rollback discards the transaction. It returns gorm.ErrInvalidTransaction
// when nothing is open, which makes a deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.reset()
	return err
}

func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn())
}

func (uow *GormUnitOfWork) ContactInfoRepository() ports.ContactInfoRepository {
	return customerrepo.NewGormContactInfoRepository(uow.conn())
}

func (uow *GormUnitOfWork) PizzaRepository() ports.PizzaRepository {
	return catalogrepo.NewGormPizzaRepository(uow.conn())
}

// OrderRepository reports written orders back to this unit of work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers an aggregate written in this transaction. An
// aggregate written twice is tracked once.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	for i, t := range uow.trackedAggregates {
		if t.ID.IsEqual(id) {
			uow.trackedAggregates[i].Aggregate = aggregate
			return
		}
	}

	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) pendingEvents() ([]eventSource, []kernel.DomainEvent) {
	var (
		sources []eventSource
		events  []kernel.DomainEvent
	)
	for _, t := range uow.trackedAggregates {
		s, ok := t.Aggregate.(eventSource)
		if !ok {
			continue
		}
		sources = append(sources, s)
		events = append(events, s.DomainEvents()...)
	}
	return sources, events
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) reset() {
	uow.tx = nil
	uow.trackedAggregates = nil
}
