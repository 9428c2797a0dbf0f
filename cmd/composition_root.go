package cmd

import (
	"time"

	"github.com/qlimaxx/pizza-ordering-api/internal/adapters/out/postgres"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/application/usecases"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/application/usecases/commands"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/application/usecases/queries"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/ports"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/observability"

	"gorm.io/gorm"
)

// CompositionRoot builds the use-case handlers, each wrapped in a span and
// outcome metrics.
type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  *postgres.GormUnitOfWorkFactory
	publisher   ports.EventPublisher
	instruments *observability.Instruments
	now         commands.Clock
}

func NewCompositionRoot(
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	instruments *observability.Instruments,
) CompositionRoot {
	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:   publisher,
		instruments: instruments,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (c *CompositionRoot) placementUoWFactory() commands.PlacementUoWFactory {
	return FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() usecases.CommandHandler[commands.CreateOrderCommand] {
	return observability.TraceCommand[commands.CreateOrderCommand]("create_order",
		commands.NewCreateOrderCommandHandler(c.placementUoWFactory(), c.now),
		observability.WithInstruments(c.instruments))
}

func (c *CompositionRoot) CreateReplaceOrderCommandHandler() usecases.CommandHandler[commands.ReplaceOrderCommand] {
	return observability.TraceCommand[commands.ReplaceOrderCommand]("replace_order",
		commands.NewReplaceOrderCommandHandler(c.placementUoWFactory(), c.now),
		observability.WithInstruments(c.instruments))
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() usecases.CommandHandler[commands.ChangeOrderStatusCommand] {
	return observability.TraceCommand[commands.ChangeOrderStatusCommand]("change_order_status",
		commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.now),
		observability.WithInstruments(c.instruments))
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() usecases.CommandHandler[commands.DeleteOrderCommand] {
	return observability.TraceCommand[commands.DeleteOrderCommand]("delete_order",
		commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.now),
		observability.WithInstruments(c.instruments))
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() usecases.CommandHandler[commands.RelayOutboxCommand] {
	return observability.TraceCommand[commands.RelayOutboxCommand]("relay_outbox",
		commands.NewRelayOutboxCommandHandler(c.outboxUoWFactory(), c.publisher, c.now),
		observability.WithInstruments(c.instruments))
}

func (c *CompositionRoot) CreatePurgeOutboxCommandHandler() usecases.CommandHandler[commands.PurgeOutboxCommand] {
	return observability.TraceCommand[commands.PurgeOutboxCommand]("purge_outbox",
		commands.NewPurgeOutboxCommandHandler(c.outboxUoWFactory(), c.now),
		observability.WithInstruments(c.instruments))
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() usecases.QueryHandler[queries.ListOrdersQuery, []queries.OrderResponse] {
	return observability.TraceQuery[queries.ListOrdersQuery, []queries.OrderResponse]("list_orders",
		queries.NewListOrdersQueryHandler(c.gormDB),
		observability.WithInstruments(c.instruments))
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() usecases.QueryHandler[queries.GetOrderQuery, queries.OrderResponse] {
	return observability.TraceQuery[queries.GetOrderQuery, queries.OrderResponse]("get_order",
		queries.NewGetOrderQueryHandler(c.gormDB),
		observability.WithInstruments(c.instruments))
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() usecases.QueryHandler[queries.GetOrderStatusQuery, queries.OrderStatusResponse] {
	return observability.TraceQuery[queries.GetOrderStatusQuery, queries.OrderStatusResponse]("get_order_status",
		queries.NewGetOrderStatusQueryHandler(c.gormDB),
		observability.WithInstruments(c.instruments))
}

func (c *CompositionRoot) CreateListPizzasQueryHandler() usecases.QueryHandler[queries.ListPizzasQuery, []queries.PizzaResponse] {
	return observability.TraceQuery[queries.ListPizzasQuery, []queries.PizzaResponse]("list_pizzas",
		queries.NewListPizzasQueryHandler(c.gormDB),
		observability.WithInstruments(c.instruments))
}

type FuncPlacementUoWFactory func() commands.PlacementUoW

func (f FuncPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
