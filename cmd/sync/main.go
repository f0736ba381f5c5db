package main

import (
	"log"

	"castsync/internal/config"
	"castsync/internal/database"
	"castsync/internal/events"
	"castsync/internal/logger"
	"castsync/internal/syncer"

	"github.com/google/uuid"
)

// One-shot reconciliation pass, for cron and manual runs.
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

	s, err := syncer.New(cfg, logger, db, publisher)
	if err != nil {
		logger.Fatal("Failed to initialize syncer: %v", err)
	}

	run, err := s.Run(uuid.New().String())
	if err != nil {
		logger.Fatal("Sync failed: %v", err)
	}

	logger.Info("Sync %s completed: %d added, %d updated, %d deactivated",
		run.ID, run.Added, run.Updated, run.Deactivated)
}
