package http

import (
	"log/slog"
	"net/http"

	"github.com/qlimaxx/pizza-ordering-api/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// BaseURL prefixes every API route.
const BaseURL = "/api/v1"

type RouterConfig struct {
	Logger  *slog.Logger
	Metrics *ServerMetrics
	// Service names the server span; empty disables tracing middleware.
	Service string
}

// NewRouter builds the echo instance: trailing slashes are stripped before
// routing, errors render as problem+json, and docs live under /swagger.
func NewRouter(server servers.ServerInterface, cfg RouterConfig) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewResponder(cfg.Logger).HandleError

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	if cfg.Service != "" {
		e.Use(echo.WrapMiddleware(otelhttp.NewMiddleware(cfg.Service,
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		)))
	}
	if cfg.Metrics != nil {
		e.Use(cfg.Metrics.Middleware())
		e.GET("/metrics", echo.WrapHandler(cfg.Metrics.Handler()))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	if err := registerOpenAPIDoc(); err != nil {
		return nil, err
	}
	e.GET("/swagger/*", swaggerHandler)

	servers.RegisterHandlersWithBaseURL(e, server, BaseURL)
	return e, nil
}
