package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/jrdxnra/eventflow-service/internal/calendar"
	"github.com/jrdxnra/eventflow-service/internal/config"
	"github.com/jrdxnra/eventflow-service/internal/logger"
	"github.com/jrdxnra/eventflow-service/internal/queue/sqs"
	"github.com/jrdxnra/eventflow-service/internal/syncer"
)

func main() {
	// Load configuration
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

	log.Info("Starting sync worker",
		zap.String("environment", cfg.Service.Environment))

	ctx := context.Background()

	// Initialize SQS client
	sqsClient, err := sqs.NewClient(ctx, cfg.SQS, log)
	if err != nil {
		log.Fatal("Failed to create SQS client", zap.Error(err))
	}

	// Initialize calendar client (simulated integration)
	cal := calendar.NewStubClient(log)

	// Initialize syncer pipeline
	s := syncer.NewSyncer(cfg, sqsClient, cal, log)

	// Start health check endpoint
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		addr := ":" + cfg.Worker.HealthCheckPort
		log.Info("Health check server starting", zap.String("address", addr))
		if err := http.ListenAndServe(addr, nil); err != nil {
			log.Error("Health check server error", zap.Error(err))
		}
	}()

	// Start syncer
	syncCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	log.Info("Sync worker starting")

	go func() {
		if err := s.Start(syncCtx); err != nil {
			log.Fatal("Sync worker error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down sync worker gracefully")
	cancel()
}
