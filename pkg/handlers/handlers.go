package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/arnavshah/team-optimizer-go/pkg/auth"
	"github.com/arnavshah/team-optimizer-go/pkg/database"
	"github.com/arnavshah/team-optimizer-go/pkg/models"
	"github.com/arnavshah/team-optimizer-go/pkg/optimizer"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Handler contains dependencies for the route handlers
type Handler struct {
	DB        *gorm.DB
	Optimizer *optimizer.Optimizer
	Cache     *optimizer.AnalysisCache
	Limiter   *KeyRateLimiter
}

// New wires a handler with the default engine configuration.
func New(db *gorm.DB) *Handler {
	return &Handler{
		DB:        db,
		Optimizer: optimizer.New(optimizer.DefaultConfig()),
		Cache:     optimizer.NewAnalysisCache(256),
		Limiter:   NewKeyRateLimiterFromEnv(),
	}
}

// AuthMiddleware verifies the JWT token for admin routes
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		claims, err := auth.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}

// APIKeyMiddleware verifies the HMAC API key for analysis routes and applies
// the per-key rate limit.
func (h *Handler) APIKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("Authorization")
		if key == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "API Key required"})
			c.Abort()
			return
		}

		if len(key) > 7 && key[:7] == "Bearer " {
			key = key[7:]
		}

		userID, err := auth.VerifyHMACKey(key)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API Key signature"})
			c.Abort()
			return
		}

		if !h.Limiter.Allow(key) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}

		// Fetch or create the key record to track usage
		var apiKey database.APIKey
		h.DB.Where(database.APIKey{Key: key}).FirstOrCreate(&apiKey, database.APIKey{
			Key:       key,
			Name:      userID,
			RateLimit: 10000,
		})

		c.Set("apiKey", &apiKey)
		c.Set("userID", userID)
		c.Next()
	}
}

// AnalyzeJSON runs the full team optimization analysis
func (h *Handler) AnalyzeJSON(c *gin.Context) {
	var input models.AnalyzeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysis, fromCache, err := h.analyze(&input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.RecordUsage(c, len(input.Developers), len(input.Tasks))

	if c.Query("snapshot") == "true" {
		h.saveSnapshot(c, &input, analysis)
	}

	c.Header("X-Cache", cacheHeader(fromCache))
	c.JSON(http.StatusOK, analysis)
}

// analyze probes the memo cache before running the engine. The engine is
// deterministic, so a hash hit is as good as a fresh run.
func (h *Handler) analyze(input *models.AnalyzeInput) (*models.TeamOptimizationAnalysis, bool, error) {
	key := optimizer.InputKey(input)
	if cached, ok := h.Cache.Get(key); ok {
		return cached, true, nil
	}

	analysis, err := h.Optimizer.AnalyzeTeam(input.Developers, input.Tasks, input.Requirements)
	if err != nil {
		return nil, false, err
	}
	h.Cache.Put(key, analysis)
	return analysis, false, nil
}

func cacheHeader(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}

// HealthJSON computes the team health metrics
func (h *Handler) HealthJSON(c *gin.Context) {
	var input models.HealthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	metrics, err := h.Optimizer.CalculateTeamHealth(input.Developers, input.Tasks, input.Requirements, input.SprintHistory)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.RecordUsage(c, len(input.Developers), len(input.Tasks))
	c.JSON(http.StatusOK, metrics)
}

// RecordUsage records API usage in the database using a single-query upsert
func (h *Handler) RecordUsage(c *gin.Context, developerCount, taskCount int) {
	apiKeyRaw, exists := c.Get("apiKey")
	if !exists {
		return
	}
	apiKey := apiKeyRaw.(*database.APIKey)

	today := time.Now().Format("2006-01-02")

	err := h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"request_count":    gorm.Expr("request_count + ?", 1),
			"total_developers": gorm.Expr("total_developers + ?", developerCount),
			"total_tasks":      gorm.Expr("total_tasks + ?", taskCount),
		}),
	}).Create(&database.APIUsage{
		KeyID:           apiKey.ID,
		Date:            today,
		RequestCount:    1,
		TotalDevelopers: developerCount,
		TotalTasks:      taskCount,
	}).Error
	if err != nil {
		slog.Warn("usage upsert failed", "key", apiKey.Name, "error", err)
	}
}
