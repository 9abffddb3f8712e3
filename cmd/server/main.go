package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/api"
	app "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/app/engine"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/infrastructure/postgresql/trade"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/usecase/registry"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/usecase/snapshot"
	tradepublisher "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/usecase/trade-publisher"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/pkg/config"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/pkg/logger"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/pkg/postgresql"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/pkg/redis"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	cfg = &config.Config{}
	if err := config.Load(cfg); err != nil {
		panic(err)
	}

	l, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	log = l
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	pgClient, err := postgresql.NewClient(ctx, cfg.PostgresConfig)
	if err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "connect_postgresql",
		})
		return
	}
	defer pgClient.Close()

	redisClient := redis.NewClient(cfg.RedisConfig)
	if err := redisClient.Connect(ctx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "connect_redis",
		})
		return
	}
	defer redisClient.Close()

	tradeRepo := trade.NewRepository(pgClient, log)
	snapshotStore := snapshot.NewStore(redisClient, log)
	publisher := tradepublisher.NewPublisher(cfg.KafkaConfig, log)
	defer publisher.Close()

	books := registry.NewRegistry(log)
	engine := app.NewEngineWithOptions(books, tradeRepo, publisher, snapshotStore, log, &app.Options{
		SnapshotInterval: cfg.SnapshotInterval,
	})

	if err := engine.Start(ctx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "start_engine",
		})
		return
	}

	server := api.NewServer(engine, cfg.HTTPConfig, log)
	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	log.Info("Matching engine started successfully", logger.Field{
		Key:   "service",
		Value: cfg.ServiceName,
	})

	select {
	case sig := <-sigChan:
		log.Info("Received shutdown signal", logger.Field{
			Key:   "signal",
			Value: sig.String(),
		})
	case err := <-serverErr:
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "serve_http",
		})
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTPConfig.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "shutdown_http",
		})
	}

	if err := engine.Stop(shutdownCtx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "stop_engine",
		})
	}

	log.Info("Matching engine shutdown complete")
}
