package http

import (
	"net/http"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/application/usecases"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/application/usecases/commands"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/application/usecases/queries"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/generated/servers"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Handlers groups the use cases the HTTP surface dispatches to.
type Handlers struct {
	CreateOrder       usecases.CommandHandler[commands.CreateOrderCommand]
	ReplaceOrder      usecases.CommandHandler[commands.ReplaceOrderCommand]
	ChangeOrderStatus usecases.CommandHandler[commands.ChangeOrderStatusCommand]
	DeleteOrder       usecases.CommandHandler[commands.DeleteOrderCommand]

	ListOrders     usecases.QueryHandler[queries.ListOrdersQuery, []queries.OrderResponse]
	GetOrder       usecases.QueryHandler[queries.GetOrderQuery, queries.OrderResponse]
	GetOrderStatus usecases.QueryHandler[queries.GetOrderStatusQuery, queries.OrderStatusResponse]
	ListPizzas     usecases.QueryHandler[queries.ListPizzasQuery, []queries.PizzaResponse]
}

// Server implements servers.ServerInterface. Errors are returned to echo and
// rendered by the Responder installed as its HTTPErrorHandler.
type Server struct {
	h Handlers
}

func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// ListOrders handles GET /orders, newest first.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	var opts []queries.ListOrdersOption
	if params.Status != nil {
		opts = append(opts, queries.WithStatus(*params.Status))
	}
	if params.Customer != nil {
		opts = append(opts, queries.WithCustomer(*params.Customer))
	}

	query, err := queries.NewListOrdersQuery(opts...)
	if err != nil {
		return err
	}

	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = orderToAPI(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /orders and answers with the stored order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	in := orderInputFromAPI(body)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), in.name, in.address, in.phone, in.pizzas)
	if err != nil {
		return err
	}
	if err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondOrder(ctx, http.StatusCreated, cmd.OrderID())
}

// GetOrder handles GET /orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := orderIDFromPath(orderId)
	if err != nil {
		return err
	}
	return s.respondOrder(ctx, http.StatusOK, id)
}

// ReplaceOrder handles PUT /orders/{orderId}. Only processing orders accept it.
func (s *Server) ReplaceOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := orderIDFromPath(orderId)
	if err != nil {
		return err
	}

	var body servers.ReplaceOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	in := orderInputFromAPI(body)
	cmd, err := commands.NewReplaceOrderCommand(id, in.name, in.address, in.phone, in.pizzas)
	if err != nil {
		return err
	}
	if err := s.h.ReplaceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondOrder(ctx, http.StatusOK, id)
}

// PatchOrder is always refused; orders are replaced as a whole.
func (s *Server) PatchOrder(_ echo.Context, _ servers.OrderId) error {
	return echo.NewHTTPError(http.StatusMethodNotAllowed, "partial order updates are not supported, use PUT")
}

// DeleteOrder handles DELETE /orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := orderIDFromPath(orderId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return err
	}
	if err := s.h.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderStatus handles GET /orders/{orderId}/status.
func (s *Server) GetOrderStatus(ctx echo.Context, orderId servers.OrderId) error {
	id, err := orderIDFromPath(orderId)
	if err != nil {
		return err
	}
	return s.respondStatus(ctx, id)
}

// UpdateOrderStatus handles PUT /orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId servers.OrderId) error {
	return s.changeStatus(ctx, orderId)
}

// PatchOrderStatus handles PATCH /orders/{orderId}/status the same way as PUT,
// since the body has a single field.
func (s *Server) PatchOrderStatus(ctx echo.Context, orderId servers.OrderId) error {
	return s.changeStatus(ctx, orderId)
}

// ListPizzas handles GET /pizzas.
func (s *Server) ListPizzas(ctx echo.Context) error {
	pizzas, err := s.h.ListPizzas.Handle(ctx.Request().Context(), queries.NewListPizzasQuery())
	if err != nil {
		return err
	}

	response := make([]servers.Pizza, len(pizzas))
	for i, p := range pizzas {
		response[i] = servers.Pizza{Id: p.ID.Bytes(), Name: p.Name}
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) changeStatus(ctx echo.Context, orderId servers.OrderId) error {
	id, err := orderIDFromPath(orderId)
	if err != nil {
		return err
	}

	var body servers.OrderStatusInput
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	var status string
	if body.Status != nil {
		status = *body.Status
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return err
	}
	if err := s.h.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondStatus(ctx, id)
}

func (s *Server) respondOrder(ctx echo.Context, code int, id kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}

	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(code, orderToAPI(o))
}

func (s *Server) respondStatus(ctx echo.Context, id kernel.UUID) error {
	query, err := queries.NewGetOrderStatusQuery(id)
	if err != nil {
		return err
	}

	st, err := s.h.GetOrderStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, statusToAPI(st))
}

// orderIDFromPath treats the nil UUID as an order that cannot exist.
func orderIDFromPath(orderId servers.OrderId) (kernel.UUID, error) {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return kernel.UUID{}, errs.NewObjectNotFoundErrorWithCause("order", orderId.String(), err)
	}
	return id, nil
}
