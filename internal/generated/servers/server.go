// Package servers binds api/openapi.yml to echo. It follows the layout of an
// oapi-codegen echo server and is kept in step with the document by hand;
// server_test.go fails when a documented operation has no route.
package servers

import (
	"fmt"
	"net/http"
	"net/url"
	"path"
	"sync"
	"time"

	"github.com/qlimaxx/pizza-ordering-api/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for OrderStatusName.
const (
	OrderStatusNameDelivered  OrderStatusName = "Delivered"
	OrderStatusNameDelivering OrderStatusName = "Delivering"
	OrderStatusNameProcessing OrderStatusName = "Processing"
)

// Defines values for PizzaSize.
const (
	PizzaSizeLarge  PizzaSize = "Large"
	PizzaSizeMedium PizzaSize = "Medium"
	PizzaSizeSmall  PizzaSize = "Small"
)

// Customer defines model for Customer.
type Customer struct {
	Address string             `json:"address"`
	Id      openapi_types.UUID `json:"id"`
	Name    string             `json:"name"`
	Phone   *string            `json:"phone"`
}

// CustomerInput defines model for CustomerInput.
type CustomerInput struct {
	Address *string `json:"address,omitempty"`
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`

	// PhoneSent is true when the phone key was present, null included.
	PhoneSent bool `json:"-"`
}

// Order defines model for Order.
type Order struct {
	CreatedAt   time.Time          `json:"created_at"`
	Customer    Customer           `json:"customer"`
	Delivered   bool               `json:"delivered"`
	DeliveredAt *time.Time         `json:"delivered_at"`
	Id          openapi_types.UUID `json:"id"`
	Pizzas      []OrderPizza       `json:"pizzas"`
	Status      OrderStatusName    `json:"status"`
}

// OrderInput defines model for OrderInput.
type OrderInput struct {
	Customer *CustomerInput `json:"customer,omitempty"`
	Pizzas   *[]PizzaInput  `json:"pizzas,omitempty"`
}

// OrderPizza defines model for OrderPizza.
type OrderPizza struct {
	Details []SizeDetail       `json:"details"`
	Id      openapi_types.UUID `json:"id"`
	Name    string             `json:"name"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus struct {
	Delivered   bool               `json:"delivered"`
	DeliveredAt *time.Time         `json:"delivered_at"`
	Id          openapi_types.UUID `json:"id"`
	Status      OrderStatusName    `json:"status"`
}

// OrderStatusInput defines model for OrderStatusInput.
type OrderStatusInput struct {
	Status *string `json:"status,omitempty"`
}

// OrderStatusName defines model for OrderStatusName.
type OrderStatusName string

// Pizza defines model for Pizza.
type Pizza struct {
	Id   openapi_types.UUID `json:"id"`
	Name string             `json:"name"`
}

// PizzaInput defines model for PizzaInput.
type PizzaInput struct {
	Details *[]SizeDetailInput  `json:"details,omitempty"`
	Id      *openapi_types.UUID `json:"id,omitempty"`
}

// PizzaSize defines model for PizzaSize.
type PizzaSize string

// Problem defines model for Problem.
type Problem struct {
	Detail     *string                 `json:"detail,omitempty"`
	Extensions *map[string]interface{} `json:"extensions,omitempty"`
	Instance   *string                 `json:"instance,omitempty"`
	Status     int                     `json:"status"`
	Title      string                  `json:"title"`
	Type       string                  `json:"type"`
}

// SizeDetail defines model for SizeDetail.
type SizeDetail struct {
	Count int       `json:"count"`
	Size  PizzaSize `json:"size"`
}

// SizeDetailInput defines model for SizeDetailInput.
type SizeDetailInput struct {
	Count *int    `json:"count,omitempty"`
	Size  *string `json:"size,omitempty"`
}

// OrderId defines model for OrderId.
type OrderId = openapi_types.UUID

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status   *string `form:"status,omitempty" json:"status,omitempty"`
	Customer *string `form:"customer,omitempty" json:"customer,omitempty"`
}

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = OrderInput

// ReplaceOrderJSONRequestBody defines body for ReplaceOrder for application/json ContentType.
type ReplaceOrderJSONRequestBody = OrderInput

// PatchOrderStatusJSONRequestBody defines body for PatchOrderStatus for application/json ContentType.
type PatchOrderStatusJSONRequestBody = OrderStatusInput

// UpdateOrderStatusJSONRequestBody defines body for UpdateOrderStatus for application/json ContentType.
type UpdateOrderStatusJSONRequestBody = OrderStatusInput

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List orders, newest first
	// (GET /orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// Place an order
	// (POST /orders)
	CreateOrder(ctx echo.Context) error

	// (DELETE /orders/{orderId})
	DeleteOrder(ctx echo.Context, orderId OrderId) error

	// (GET /orders/{orderId})
	GetOrder(ctx echo.Context, orderId OrderId) error
	// Partial updates are not supported
	// (PATCH /orders/{orderId})
	PatchOrder(ctx echo.Context, orderId OrderId) error
	// Replace customer, contact info and pizzas of a processing order
	// (PUT /orders/{orderId})
	ReplaceOrder(ctx echo.Context, orderId OrderId) error

	// (GET /orders/{orderId}/status)
	GetOrderStatus(ctx echo.Context, orderId OrderId) error

	// (PATCH /orders/{orderId}/status)
	PatchOrderStatus(ctx echo.Context, orderId OrderId) error

	// (PUT /orders/{orderId}/status)
	UpdateOrderStatus(ctx echo.Context, orderId OrderId) error

	// (GET /pizzas)
	ListPizzas(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListOrdersParams
	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// ------------- Optional query parameter "customer" -------------

	err = runtime.BindQueryParameter("form", true, false, "customer", ctx.QueryParams(), &params.Customer)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter customer: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListOrders(ctx, params)
	return err
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateOrder(ctx)
	return err
}

// DeleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteOrder(ctx, orderId)
	return err
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrder(ctx, orderId)
	return err
}

// PatchOrder converts echo context to params.
func (w *ServerInterfaceWrapper) PatchOrder(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PatchOrder(ctx, orderId)
	return err
}

// ReplaceOrder converts echo context to params.
func (w *ServerInterfaceWrapper) ReplaceOrder(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ReplaceOrder(ctx, orderId)
	return err
}

// GetOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderStatus(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrderStatus(ctx, orderId)
	return err
}

// PatchOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) PatchOrderStatus(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PatchOrderStatus(ctx, orderId)
	return err
}

// UpdateOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateOrderStatus(ctx, orderId)
	return err
}

// ListPizzas converts echo context to params.
func (w *ServerInterfaceWrapper) ListPizzas(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListPizzas(ctx)
	return err
}

func bindOrderId(ctx echo.Context) (OrderId, error) {
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return orderId, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}
	return orderId, nil
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.DELETE(baseURL+"/orders/:orderId", wrapper.DeleteOrder)
	router.GET(baseURL+"/orders/:orderId", wrapper.GetOrder)
	router.PATCH(baseURL+"/orders/:orderId", wrapper.PatchOrder)
	router.PUT(baseURL+"/orders/:orderId", wrapper.ReplaceOrder)
	router.GET(baseURL+"/orders/:orderId/status", wrapper.GetOrderStatus)
	router.PATCH(baseURL+"/orders/:orderId/status", wrapper.PatchOrderStatus)
	router.PUT(baseURL+"/orders/:orderId/status", wrapper.UpdateOrderStatus)
	router.GET(baseURL+"/pizzas", wrapper.ListPizzas)

}

var (
	swaggerOnce sync.Once
	swaggerSpec *openapi3.T
	swaggerErr  error
)

// GetSwagger parses the embedded document once. External references are
// rejected since nothing besides openapi.yml is embedded.
func GetSwagger() (swagger *openapi3.T, err error) {
	swaggerOnce.Do(func() {
		loader := openapi3.NewLoader()
		loader.IsExternalRefsAllowed = true
		loader.ReadFromURIFunc = func(loader *openapi3.Loader, url *url.URL) ([]byte, error) {
			pathToFile := url.String()
			pathToFile = path.Clean(pathToFile)
			return nil, fmt.Errorf("external reference %s is not embedded", pathToFile)
		}
		swaggerSpec, swaggerErr = loader.LoadFromData(api.OpenAPI)
	})
	return swaggerSpec, swaggerErr
}
