package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/qlimaxx/pizza-ordering-api/internal/adapters/out/postgres/catalogrepo"
	"github.com/qlimaxx/pizza-ordering-api/internal/adapters/out/postgres/customerrepo"
	"github.com/qlimaxx/pizza-ordering-api/internal/adapters/out/postgres/orderrepo"
	"github.com/qlimaxx/pizza-ordering-api/internal/adapters/out/postgres/pgtest"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/catalog"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/customer"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/order"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var placedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite runs the order repository against a real
// PostgreSQL with a seeded customer, contact info and two pizzas.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker

	contactID  kernel.UUID
	margherita kernel.UUID
	pepperoni  kernel.UUID
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.pg.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.pg.DB, suite.tracker)

	c, err := customer.NewCustomer(kernel.NewUUID(), "Ada")
	suite.Require().NoError(err)
	c, err = customerrepo.NewGormCustomerRepository(suite.pg.DB).Resolve(ctx, c)
	suite.Require().NoError(err)

	ci, err := customer.NewContactInfo(kernel.NewUUID(), c.ID(), "1 Main St", "")
	suite.Require().NoError(err)
	ci, err = customerrepo.NewGormContactInfoRepository(suite.pg.DB).Resolve(ctx, ci)
	suite.Require().NoError(err)
	suite.contactID = ci.ID()

	suite.margherita, suite.pepperoni = kernel.NewUUID(), kernel.NewUUID()
	m, err := catalog.NewPizza(suite.margherita, "Margherita")
	suite.Require().NoError(err)
	p, err := catalog.NewPizza(suite.pepperoni, "Pepperoni")
	suite.Require().NoError(err)
	_, err = catalogrepo.Seed(ctx, suite.pg.DB, []catalog.Pizza{m, p})
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) line(pizzaID kernel.UUID, details ...order.SizeDetail) *order.Line {
	l, err := order.NewLine(kernel.NewUUID(), pizzaID, details)
	suite.Require().NoError(err)
	return l
}

func (suite *OrderRepositoryIntegrationTestSuite) detail(size order.Size, count int) order.SizeDetail {
	d, err := order.NewSizeDetail(size, count)
	suite.Require().NoError(err)
	return d
}

func (suite *OrderRepositoryIntegrationTestSuite) addOrder() *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), suite.contactID, []*order.Line{
		suite.line(suite.pepperoni, suite.detail(order.Large, 2), suite.detail(order.Small, 1)),
		suite.line(suite.margherita, suite.detail(order.Medium, 3)),
	}, placedAt)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", o.ID(), o).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), o))
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertCount(model any, expected int64) {
	var count int64
	suite.Require().NoError(suite.pg.DB.Model(model).Count(&count).Error)
	suite.Equal(expected, count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsLinesAndDetails() {
	suite.addOrder()

	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.assertCount(&orderrepo.OrderLineDTO{}, 2)
	suite.assertCount(&orderrepo.SizeDetailDTO{}, 3)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnknownPizza_Fails() {
	o, err := order.NewOrder(kernel.NewUUID(), suite.contactID, []*order.Line{
		suite.line(kernel.NewUUID(), suite.detail(order.Small, 1)),
	}, placedAt)
	suite.Require().NoError(err)

	suite.Error(suite.repository.Add(context.Background(), o))
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RestoresAggregateInOrder() {
	ctx := context.Background()
	o := suite.addOrder()

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.True(got.ID().IsEqual(o.ID()))
	suite.True(got.ContactInfoID().IsEqual(suite.contactID))
	suite.Equal(order.Processing, got.Status())
	suite.Nil(got.DeliveredAt())
	suite.True(got.CreatedAt().Equal(placedAt))
	suite.Empty(got.DomainEvents())

	lines := got.Lines()
	suite.Require().Len(lines, 2, spew.Sdump(lines))
	suite.True(lines[0].PizzaID().IsEqual(suite.pepperoni))
	suite.True(lines[1].PizzaID().IsEqual(suite.margherita))
	suite.Equal([]order.SizeDetail{suite.detail(order.Large, 2), suite.detail(order.Small, 1)}, lines[0].Details())
	suite.Equal([]order.SizeDetail{suite.detail(order.Medium, 3)}, lines[1].Details())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	got, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(got)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StampsDeliveredAt() {
	ctx := context.Background()
	o := suite.addOrder()
	deliveredAt := placedAt.Add(time.Hour)

	suite.Require().NoError(o.Advance(order.Delivered, deliveredAt))
	suite.tracker.On("TrackAggregate", o.ID(), o).Once()
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, got.Status())
	suite.Require().NotNil(got.DeliveredAt())
	suite.True(got.DeliveredAt().Equal(deliveredAt))
	suite.Len(got.Lines(), 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestReplaceLines() {
	ctx := context.Background()
	o := suite.addOrder()

	revised := []*order.Line{suite.line(suite.margherita, suite.detail(order.Small, 5))}
	suite.Require().NoError(o.ReviseLines(revised, placedAt.Add(time.Minute)))
	suite.tracker.On("TrackAggregate", o.ID(), o).Once()
	suite.Require().NoError(suite.repository.ReplaceLines(ctx, o))

	suite.assertCount(&orderrepo.OrderLineDTO{}, 1)
	suite.assertCount(&orderrepo.SizeDetailDTO{}, 1)

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().Len(got.Lines(), 1)
	suite.True(got.Lines()[0].PizzaID().IsEqual(suite.margherita))
	suite.Equal([]order.SizeDetail{suite.detail(order.Small, 5)}, got.Lines()[0].Details())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestReplaceLines_MovesContactInfo() {
	ctx := context.Background()
	o := suite.addOrder()

	contacts := customerrepo.NewGormContactInfoRepository(suite.pg.DB)
	current, err := contacts.Get(ctx, suite.contactID)
	suite.Require().NoError(err)
	other, err := customer.NewContactInfo(kernel.NewUUID(), current.CustomerID(), "2 Side St", "555")
	suite.Require().NoError(err)
	other, err = contacts.Resolve(ctx, other)
	suite.Require().NoError(err)

	suite.Require().NoError(o.MoveTo(other.ID()))
	suite.tracker.On("TrackAggregate", o.ID(), o).Once()
	suite.Require().NoError(suite.repository.ReplaceLines(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(got.ContactInfoID().IsEqual(other.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_InsideTransaction() {
	ctx := context.Background()
	o := suite.addOrder()

	tx := suite.pg.DB.Begin()
	defer tx.Rollback()

	repo := orderrepo.NewGormOrderRepository(tx, suite.tracker)
	got, err := repo.GetForUpdate(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(got.ID().IsEqual(o.ID()))
	suite.Len(got.Lines(), 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_CascadesToLines() {
	ctx := context.Background()
	o := suite.addOrder()

	o.Discard(placedAt.Add(time.Minute))
	suite.tracker.On("TrackAggregate", o.ID(), o).Once()
	suite.Require().NoError(suite.repository.Delete(ctx, o))

	suite.assertCount(&orderrepo.OrderDTO{}, 0)
	suite.assertCount(&orderrepo.OrderLineDTO{}, 0)
	suite.assertCount(&orderrepo.SizeDetailDTO{}, 0)
	suite.assertCount(&customerrepo.ContactInfoDTO{}, 1)
	suite.assertCount(&catalogrepo.PizzaDTO{}, 2)

	suite.ErrorIs(suite.repository.Delete(ctx, o), errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
