package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/grubdash/internal/application/service"
	"github.com/TemirB/grubdash/internal/config"
	"github.com/TemirB/grubdash/internal/httpapi"
	"github.com/TemirB/grubdash/internal/kafka"
	"github.com/TemirB/grubdash/internal/observability"
	"github.com/TemirB/grubdash/internal/pkg/breaker"
	"github.com/TemirB/grubdash/internal/seed"
	"github.com/TemirB/grubdash/internal/storage/memory"
)

const recentObservations = 256

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("grubdash stopped with error", zap.Error(err))
	}
}

func newLogger(mode string) (*zap.Logger, error) {
	if mode == config.LogModeProduction {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dishStore := memory.NewDishes()
	orderStore := memory.NewOrders()
	if err := seed.Load(cfg.SeedFile, dishStore, orderStore, logger); err != nil {
		return err
	}

	metrics := observability.NewInmem(recentObservations)

	var events service.Publisher = service.NopPublisher{}
	if cfg.Kafka.Enabled() {
		ensureCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		err := kafka.EnsureTopic(ensureCtx, cfg.Kafka, logger)
		cancel()
		if err != nil {
			return err
		}

		publisher := kafka.NewPublisher(
			kafka.NewWriter(cfg.Kafka),
			cfg.Kafka.Workers,
			breaker.New(cfg.Breaker),
			cfg.Retry,
			metrics,
			logger.Named("events"),
		)
		defer func() {
			if err := publisher.Close(); err != nil {
				logger.Error("Error while closing event publisher", zap.Error(err))
			}
		}()
		events = publisher
		logger.Info("Publishing events to Kafka",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("topic", cfg.Kafka.Topic),
		)
	} else {
		logger.Info("KAFKA_BROKERS not set, events are not published")
	}

	dishes := service.NewDishes(dishStore, events, logger.Named("dishes"), metrics)
	orders := service.NewOrders(orderStore, events, logger.Named("orders"), metrics)

	server, err := httpapi.New(dishes, orders, cfg.IdempotencyCap, logger.Named("http"), metrics)
	if err != nil {
		return err
	}
	return server.ListenAndServe(ctx, cfg.HTTPAddr, cfg.ShutdownTimeout)
}
