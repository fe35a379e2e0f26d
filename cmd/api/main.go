package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/jrdxnra/eventflow-service/internal/cache"
	"github.com/jrdxnra/eventflow-service/internal/cache/valkey"
	"github.com/jrdxnra/eventflow-service/internal/config"
	"github.com/jrdxnra/eventflow-service/internal/handler"
	"github.com/jrdxnra/eventflow-service/internal/logger"
	"github.com/jrdxnra/eventflow-service/internal/queue/sqs"
	"github.com/jrdxnra/eventflow-service/internal/repository/sqlite"
	"github.com/jrdxnra/eventflow-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log, err := logger.New(cfg.Service.Environment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting API service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("port", cfg.Service.APIPort),
		zap.Duration("cache_freshness", cfg.FreshnessTimeout()))

	ctx := context.Background()

	// Initialize document store
	dbClient, err := sqlite.NewClient(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to open document store", zap.Error(err))
	}
	defer func(dbClient *sqlite.Client) {
		if err := dbClient.Close(); err != nil {
			log.Error("Failed to close document store", zap.Error(err))
		}
	}(dbClient)

	repo := sqlite.NewRepository(dbClient, log)
	if err := repo.InitSchema(ctx); err != nil {
		log.Fatal("Failed to initialize schema", zap.Error(err))
	}

	// Initialize snapshot cache and freshness gate
	store, err := valkey.NewStore(ctx, cfg.Valkey, log)
	if err != nil {
		log.Fatal("Failed to create Valkey store", zap.Error(err))
	}
	defer func(store *valkey.Store) {
		if err := store.Close(); err != nil {
			log.Error("Failed to close Valkey store", zap.Error(err))
		}
	}(store)

	gate := cache.NewGate(store, cfg.FreshnessTimeout(), log)

	// Initialize SQS client for calendar-sync jobs
	sqsClient, err := sqs.NewClient(ctx, cfg.SQS, log)
	if err != nil {
		log.Fatal("Failed to create SQS client", zap.Error(err))
	}

	// Initialize services
	eventService := service.NewEventService(repo, gate, sqsClient, log)
	rosterService := service.NewRosterService(repo, eventService, gate, log)
	logisticsService := service.NewLogisticsService(repo, gate, log)

	// Initialize handler
	h := handler.NewHandler(eventService, rosterService, logisticsService, rosterService, log)

	addr := fmt.Sprintf(":%s", cfg.Service.APIPort)
	log.Info("API server starting", zap.String("address", addr))

	if err := http.ListenAndServe(addr, h); err != nil {
		log.Fatal("Failed to start API server", zap.Error(err))
	}
}
