package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/arnavshah/team-optimizer-go/pkg/auth"
	"github.com/arnavshah/team-optimizer-go/pkg/database"
	"github.com/arnavshah/team-optimizer-go/pkg/handlers"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if it exists; try parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.InitDB()
	if err := auth.EnsureAdminExists(db); err != nil {
		slog.Warn("could not ensure admin user", "error", err)
	}
	h := handlers.New(db)

	r := gin.Default()
	registerRoutes(r, h)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	slog.Info("server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("could not run server", "error", err)
		os.Exit(1)
	}
}

func registerRoutes(r *gin.Engine, h *handlers.Handler) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Team Optimizer API",
			"version": "1.0.0",
		})
	})

	r.POST("/admin/login", h.Login)

	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

	api := r.Group("/api")
	api.Use(h.APIKeyMiddleware())
	{
		api.POST("/analyze", h.AnalyzeJSON)
		api.POST("/analyze/csv", h.AnalyzeCSV)
		api.POST("/health", h.HealthJSON)
		api.POST("/validate", h.ValidateInput)
		api.GET("/usage", h.GetMyUsage)
		api.GET("/snapshots", h.ListSnapshots)
		api.GET("/snapshots/:id", h.GetSnapshot)
	}
}
