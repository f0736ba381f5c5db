package handlers

import (
	"net/http"
	"strconv"

	"castsync/internal/logger"
	"castsync/internal/models"
	"castsync/internal/syncer"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SyncHandler struct {
	db     *gorm.DB
	logger *logger.Logger
	syncer *syncer.Syncer
}

func NewSyncHandler(db *gorm.DB, logger *logger.Logger, syncer *syncer.Syncer) *SyncHandler {
	return &SyncHandler{
		db:     db,
		logger: logger,
		syncer: syncer,
	}
}

// Trigger starts a reconciliation pass in the background and returns
// its run id immediately.
func (h *SyncHandler) Trigger(c *gin.Context) {
	runID := uuid.New().String()

	go func() {
		if _, err := h.syncer.Run(runID); err != nil {
			h.logger.Error("Sync run %s failed: %v", runID, err)
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{"data": gin.H{"run_id": runID}})
}

func (h *SyncHandler) ListRuns(c *gin.Context) {
	var runs []models.SyncRun

	// Pagination
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset := (page - 1) * limit

	query := h.db.Model(&models.SyncRun{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	if err := query.Order("started_at DESC").Offset(offset).Limit(limit).Find(&runs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sync runs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": runs,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

func (h *SyncHandler) GetRun(c *gin.Context) {
	id := c.Param("id")

	var run models.SyncRun
	if err := h.db.First(&run, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sync run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sync run"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": run})
}
