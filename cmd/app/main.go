package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"marketplace/cmd"
	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/metrics"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/redis"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/logging"
	"marketplace/internal/pkg/telemetry"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Infof("no .env file loaded: %v", err)
	}

	configs, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := logging.New(configs.LogLevel, os.Stdout)
	slog.SetDefault(logger)

	shutdownTracer, err := telemetry.SetupTracer(cmd.DefaultServiceName)
	if err != nil {
		log.Fatalf("setup tracer: %v", err)
	}

	gormDB := mustGormOpen(configs)

	publisher, closePublisher := orderEventPublisher(configs, logger)
	defer closePublisher()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	app := cmd.NewCompositionRoot(configs, cmd.Infrastructure{
		DB:        gormDB,
		Publisher: publisher,
		Cache:     tipStatusCache(configs, logger),
		Metrics:   m,
		Logger:    logger,
	})

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e, err := httpin.NewRouter(app.CreateServer(), m.Handler(),
		telemetry.Middleware(cmd.DefaultServiceName),
		m.Middleware(),
	)
	if err != nil {
		log.Fatalf("build router: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cmd.DefaultShutdownGrace)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Error("tracer shutdown", "error", err)
	}
}

func mustGormOpen(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN:                  configs.DSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("connection to postgres through gorm: %v", err)
	}

	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	return gormDB
}

// orderEventPublisher returns a nil publisher when Kafka is not configured.
func orderEventPublisher(configs cmd.Config, logger *slog.Logger) (ports.OrderEventPublisher, func()) {
	if configs.KafkaHost == "" {
		logger.Warn("KAFKA_HOST is empty, order change events are not published")
		return nil, func() {}
	}

	writer, err := kafka.NewWriter(kafka.ParseBrokers(configs.KafkaHost), configs.KafkaOrderChangedTopic)
	if err != nil {
		log.Fatalf("kafka writer: %v", err)
	}
	publisher := kafka.NewOrderEventPublisher(writer)
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Error("close kafka writer", "error", err)
		}
	}
}

func tipStatusCache(configs cmd.Config, logger *slog.Logger) ports.TipStatusCache {
	if configs.RedisAddr == "" {
		logger.Warn("REDIS_ADDR is empty, tip statuses are not cached")
		return redis.NopTipStatusCache{}
	}
	return redis.NewTipStatusCache(redis.NewClient(configs.RedisAddr), cmd.DefaultServiceName, cmd.DefaultTipStatusCacheTTL)
}
