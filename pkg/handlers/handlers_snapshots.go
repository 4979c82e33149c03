package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/arnavshah/team-optimizer-go/pkg/database"
	"github.com/arnavshah/team-optimizer-go/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// saveSnapshot persists an analysis result for later retrieval. Snapshot
// failures never fail the analysis response.
func (h *Handler) saveSnapshot(c *gin.Context, input *models.AnalyzeInput, analysis *models.TeamOptimizationAnalysis) {
	apiKeyRaw, exists := c.Get("apiKey")
	if !exists {
		return
	}
	apiKey := apiKeyRaw.(*database.APIKey)

	payload, err := json.Marshal(analysis)
	if err != nil {
		slog.Warn("snapshot marshal failed", "error", err)
		return
	}

	snapshot := database.AnalysisSnapshot{
		ID:        uuid.NewString(),
		KeyID:     apiKey.ID,
		TeamSize:  len(input.Developers),
		Payload:   string(payload),
		CreatedAt: time.Now(),
	}
	if err := h.DB.Create(&snapshot).Error; err != nil {
		slog.Warn("snapshot write failed", "error", err)
		return
	}

	c.Header("X-Snapshot-ID", snapshot.ID)
	slog.Info("analysis snapshot stored", "id", snapshot.ID, "team_size", snapshot.TeamSize)
}

// ListSnapshots returns snapshot metadata for the authenticated key, newest
// first, without payloads.
func (h *Handler) ListSnapshots(c *gin.Context) {
	apiKeyRaw, exists := c.Get("apiKey")
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API Key context missing"})
		return
	}
	apiKey := apiKeyRaw.(*database.APIKey)

	var snapshots []database.AnalysisSnapshot
	err := h.DB.Select("id", "key_id", "team_size", "created_at").
		Where("key_id = ?", apiKey.ID).
		Order("created_at desc").Limit(50).
		Find(&snapshots).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch snapshots"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"snapshots": snapshots})
}

// GetSnapshot returns one stored analysis, payload included.
func (h *Handler) GetSnapshot(c *gin.Context) {
	apiKeyRaw, exists := c.Get("apiKey")
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API Key context missing"})
		return
	}
	apiKey := apiKeyRaw.(*database.APIKey)

	var snapshot database.AnalysisSnapshot
	err := h.DB.Where("id = ? AND key_id = ?", c.Param("id"), apiKey.ID).First(&snapshot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Snapshot not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch snapshot"})
		return
	}

	var analysis models.TeamOptimizationAnalysis
	if err := json.Unmarshal([]byte(snapshot.Payload), &analysis); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stored snapshot is corrupt"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         snapshot.ID,
		"team_size":  snapshot.TeamSize,
		"created_at": snapshot.CreatedAt,
		"analysis":   analysis,
	})
}
