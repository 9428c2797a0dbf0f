package commands_test

import (
	"context"
	"time"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/application/usecases/commands"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/catalog"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/customer"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/order"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerRepository) GetByName(ctx context.Context, name string) (*customer.Customer, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) Resolve(ctx context.Context, candidate *customer.Customer) (*customer.Customer, error) {
	args := m.Called(ctx, candidate)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

type MockContactInfoRepository struct{ mock.Mock }

func (m *MockContactInfoRepository) Get(ctx context.Context, id kernel.UUID) (*customer.ContactInfo, error) {
	args := m.Called(ctx, id)
	ci, _ := args.Get(0).(*customer.ContactInfo)
	return ci, args.Error(1)
}

func (m *MockContactInfoRepository) Resolve(
	ctx context.Context,
	candidate *customer.ContactInfo,
) (*customer.ContactInfo, error) {
	args := m.Called(ctx, candidate)
	ci, _ := args.Get(0).(*customer.ContactInfo)
	return ci, args.Error(1)
}

func (m *MockContactInfoRepository) Find(
	ctx context.Context,
	customerID kernel.UUID,
	address, phone string,
) (*customer.ContactInfo, error) {
	args := m.Called(ctx, customerID, address, phone)
	ci, _ := args.Get(0).(*customer.ContactInfo)
	return ci, args.Error(1)
}

func (m *MockContactInfoRepository) Update(ctx context.Context, ci *customer.ContactInfo) error {
	return m.Called(ctx, ci).Error(0)
}

type MockPizzaRepository struct{ mock.Mock }

func (m *MockPizzaRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPizzaRepository) Get(ctx context.Context, id kernel.UUID) (catalog.Pizza, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(catalog.Pizza)
	return p, args.Error(1)
}

func (m *MockPizzaRepository) List(ctx context.Context) ([]catalog.Pizza, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]catalog.Pizza)
	return p, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) ReplaceLines(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, events ...kernel.DomainEvent) error {
	return m.Called(ctx, events).Error(0)
}

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	msgs, _ := args.Get(0).([]ports.OutboxMessage)
	return msgs, args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	return m.Called(ctx, ids, at).Error(0)
}

func (m *MockOutboxRepository) DeletePublishedBefore(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, msgs ...ports.OutboxMessage) error {
	return m.Called(ctx, msgs).Error(0)
}

type MockTx struct{ mock.Mock }

func (m *MockTx) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockTx) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockTx) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

// MockUoW satisfies every unit of work view used by the handlers.
type MockUoW struct {
	MockTx

	Customers *MockCustomerRepository
	Contacts  *MockContactInfoRepository
	Pizzas    *MockPizzaRepository
	Orders    *MockOrderRepository
	Outbox    *MockOutboxRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		Customers: new(MockCustomerRepository),
		Contacts:  new(MockContactInfoRepository),
		Pizzas:    new(MockPizzaRepository),
		Orders:    new(MockOrderRepository),
		Outbox:    new(MockOutboxRepository),
	}
}

func (u *MockUoW) CustomerRepository() ports.CustomerRepository       { return u.Customers }
func (u *MockUoW) ContactInfoRepository() ports.ContactInfoRepository { return u.Contacts }
func (u *MockUoW) PizzaRepository() ports.PizzaRepository             { return u.Pizzas }
func (u *MockUoW) OrderRepository() ports.OrderRepository             { return u.Orders }
func (u *MockUoW) OutboxRepository() ports.OutboxRepository           { return u.Outbox }

func (u *MockUoW) AssertAll(t mock.TestingT) {
	u.AssertExpectations(t)
	u.Customers.AssertExpectations(t)
	u.Contacts.AssertExpectations(t)
	u.Pizzas.AssertExpectations(t)
	u.Orders.AssertExpectations(t)
	u.Outbox.AssertExpectations(t)
}

type placementFactory struct{ uow *MockUoW }

func (f placementFactory) Create() commands.PlacementUoW { return f.uow }

type orderFactory struct{ uow *MockUoW }

func (f orderFactory) Create() commands.OrderUoW { return f.uow }

type outboxFactory struct{ uow *MockUoW }

func (f outboxFactory) Create() commands.OutboxUoW { return f.uow }
