package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"castsync/internal/api"
	"castsync/internal/config"
	"castsync/internal/database"
	"castsync/internal/events"
	"castsync/internal/logger"
	"castsync/internal/syncer"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	// Initialize database
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize event publisher (nil without brokers configured)
	publisher := events.NewPublisher(cfg.KafkaBrokers, logger)
	defer publisher.Close()

	// Initialize syncer
	s, err := syncer.New(cfg, logger, db, publisher)
	if err != nil {
		logger.Fatal("Failed to initialize syncer: %v", err)
	}

	// Initialize API server
	server := api.New(cfg, logger, db, s)

	go func() {
		if err := server.Start(); err != nil {
			logger.Error("Server stopped: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		logger.Error("Forced shutdown: %v", err)
	}
	logger.Info("Server exited")
}
