package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RunStatusRunning   = "RUNNING"
	RunStatusCompleted = "COMPLETED"
	RunStatusFailed    = "FAILED"
)

// SyncRun records one reconciliation pass against the storefront.
type SyncRun struct {
	ID                string     `json:"id" gorm:"type:uuid;primary_key"`
	Vendor            string     `json:"vendor" gorm:"not null"`
	Status            string     `json:"status" gorm:"default:RUNNING"`
	DryRun            bool       `json:"dry_run"`
	FeedCount         int        `json:"feed_count"`
	PlatformCount     int        `json:"platform_count"`
	Added             int        `json:"added"`
	Updated           int        `json:"updated"`
	Deactivated       int        `json:"deactivated"`
	DuplicateSKUs     int        `json:"duplicate_skus" gorm:"column:duplicate_skus"`
	FeedConflicts     int        `json:"feed_conflicts"`
	MetafieldsWritten int        `json:"metafields_written"`
	MetafieldsSkipped int        `json:"metafields_skipped"`
	Error             *string    `json:"error"`
	StartedAt         time.Time  `json:"started_at"`
	FinishedAt        *time.Time `json:"finished_at"`
}

func (r *SyncRun) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
