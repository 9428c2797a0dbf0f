package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/qlimaxx/pizza-ordering-api/cmd"
	httpin "github.com/qlimaxx/pizza-ordering-api/internal/adapters/in/http"
	"github.com/qlimaxx/pizza-ordering-api/internal/adapters/out/messaging"
	"github.com/qlimaxx/pizza-ordering-api/internal/adapters/out/postgres"
	"github.com/qlimaxx/pizza-ordering-api/internal/adapters/out/postgres/catalogrepo"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/ports"
	"github.com/qlimaxx/pizza-ordering-api/internal/jobs"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/observability"

	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, configs); err != nil {
		log.Fatalf("Service stopped: %v", err)
	}
}

func run(ctx context.Context, configs cmd.Config) error {
	instruments, shutdownTelemetry, err := observability.Init(ctx, configs.ServiceName)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer shutdownWithTimeout(shutdownTelemetry, instruments.Logger, "telemetry")
	logger := instruments.Logger

	gormDB, err := postgres.Connect(ctx, configs.DSN())
	if err != nil {
		return err
	}
	defer closeDB(gormDB, logger)

	if err = postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err = seedCatalog(ctx, gormDB, configs.CatalogSeedPath, logger); err != nil {
		return err
	}

	publisher, closePublisher, err := newPublisher(configs, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closePublisher.Close(); err != nil {
			logger.Error("closing publisher", "error", err)
		}
	}()

	app := cmd.NewCompositionRoot(gormDB, publisher, instruments)

	jobManager := jobs.NewJobManager(
		app.CreateRelayOutboxCommandHandler(),
		app.CreatePurgeOutboxCommandHandler(),
		jobs.Settings{RelayBatch: configs.OutboxRelayBatch, OutboxRetention: configs.OutboxRetention},
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, configs, logger)
}

func seedCatalog(ctx context.Context, db *gorm.DB, path string, logger *slog.Logger) error {
	if path == "" {
		logger.Info("catalog seed skipped, CATALOG_SEED_PATH is empty")
		return nil
	}

	pizzas, err := catalogrepo.LoadSeedFile(path)
	if err != nil {
		return err
	}
	inserted, err := catalogrepo.Seed(ctx, db, pizzas)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	logger.Info("catalog seeded", "path", path, "pizzas", len(pizzas), "inserted", inserted)
	return nil
}

// newPublisher sends to Kafka when KAFKA_HOST lists brokers and logs events otherwise.
func newPublisher(configs cmd.Config, logger *slog.Logger) (ports.EventPublisher, io.Closer, error) {
	brokers := messaging.ParseBrokers(configs.KafkaHost)
	if len(brokers) == 0 {
		logger.Warn("KAFKA_HOST is empty, order events are only logged")
		p := messaging.NewLogPublisher(logger)
		return p, p, nil
	}

	writer := messaging.NewKafkaWriter(brokers, configs.KafkaOrderChangedTopic)
	p, err := messaging.NewKafkaPublisher(writer, configs.KafkaOrderChangedTopic, logger)
	if err != nil {
		return nil, nil, err
	}
	return p, p, nil
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) error {
	metrics, err := httpin.NewServerMetrics(prometheus.DefaultRegisterer, prometheus.DefaultGatherer, "api")
	if err != nil {
		return err
	}

	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:       app.CreateCreateOrderCommandHandler(),
		ReplaceOrder:      app.CreateReplaceOrderCommandHandler(),
		ChangeOrderStatus: app.CreateChangeOrderStatusCommandHandler(),
		DeleteOrder:       app.CreateDeleteOrderCommandHandler(),
		ListOrders:        app.CreateListOrdersQueryHandler(),
		GetOrder:          app.CreateGetOrderQueryHandler(),
		GetOrderStatus:    app.CreateGetOrderStatusQueryHandler(),
		ListPizzas:        app.CreateListPizzasQueryHandler(),
	})

	e, err := httpin.NewRouter(server, httpin.RouterConfig{
		Logger:  logger,
		Metrics: metrics,
		Service: configs.ServiceName,
	})
	if err != nil {
		return err
	}
	e.Logger.SetLevel(log.INFO)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "port", configs.HTTPPort)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func shutdownWithTimeout(shutdown func(context.Context) error, logger *slog.Logger, what string) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "component", what, "error", err)
	}
}

func closeDB(db *gorm.DB, logger *slog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("closing database", "error", err)
	}
}
