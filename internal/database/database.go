package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	DB *gorm.DB
}

func New(databaseURL string) (*Database, error) {
	var db *gorm.DB
	var err error

	if strings.HasPrefix(databaseURL, "sqlite://") {
		// SQLite for development
		dbPath := strings.TrimPrefix(databaseURL, "sqlite://")
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
	} else {
		// PostgreSQL for production
		db, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Create tables manually with raw SQL
	createTablesSQL := `
	CREATE TABLE IF NOT EXISTS sync_runs (
		id UUID PRIMARY KEY,
		vendor TEXT NOT NULL,
		status TEXT DEFAULT 'RUNNING',
		dry_run BOOLEAN DEFAULT false,
		feed_count INTEGER DEFAULT 0,
		platform_count INTEGER DEFAULT 0,
		added INTEGER DEFAULT 0,
		updated INTEGER DEFAULT 0,
		deactivated INTEGER DEFAULT 0,
		duplicate_skus INTEGER DEFAULT 0,
		feed_conflicts INTEGER DEFAULT 0,
		metafields_written INTEGER DEFAULT 0,
		metafields_skipped INTEGER DEFAULT 0,
		error TEXT,
		started_at TIMESTAMPTZ,
		finished_at TIMESTAMPTZ
	);
	`

	err = db.Exec(createTablesSQL).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
