package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/terval-edu/orienta/internal/access"
	"github.com/terval-edu/orienta/internal/analytics"
	"github.com/terval-edu/orienta/internal/cache"
	"github.com/terval-edu/orienta/internal/classify"
	"github.com/terval-edu/orienta/internal/compat"
	"github.com/terval-edu/orienta/internal/database"
	apperrors "github.com/terval-edu/orienta/internal/errors"
	"github.com/terval-edu/orienta/internal/export"
	"github.com/terval-edu/orienta/internal/monitoring"
	"github.com/terval-edu/orienta/internal/ratelimit"
	"github.com/terval-edu/orienta/internal/types"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	dataDir := getEnvOrDefault("DATA_DIR", "./data")
	port := getEnvOrDefault("PORT", "8080")
	accessCode := getEnvOrDefault("OPERATOR_ACCESS_CODE", "")
	jwtSecret := getEnvOrDefault("JWT_SECRET", "change-me-in-production")
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	if accessCode == "" {
		slog.Error("OPERATOR_ACCESS_CODE must be set")
		os.Exit(1)
	}

	db, err := database.NewDB(dataDir)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	repo := database.NewRepository(db)
	accessService := access.NewService(accessCode, jwtSecret, 8*time.Hour)
	summaryCache := cache.NewSummaryCache(time.Minute)

	redisClient, err := ratelimit.NewRedisClient(redisAddr, redisPassword, 0)
	if err != nil {
		slog.Warn("Continuing without Redis", "error", err)
	}
	defer redisClient.Close()

	limiter := ratelimit.NewLimiter(redisClient, ratelimit.DefaultConfig())
	defer limiter.Close()

	appMetrics := monitoring.NewMetrics()
	appLogger := monitoring.NewLogger()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(monitoring.Middleware(appMetrics, appLogger))
	r.Use(apperrors.ErrorHandler())
	r.Use(apperrors.RecoveryHandler())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{getEnvOrDefault("CORS_ORIGIN", "*")},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.GET("/metrics", func(c *gin.Context) {
		stats := appMetrics.GetStats()
		stats["database"] = db.Stats()
		stats["summary_cache"] = summaryCache.Stats()
		c.JSON(http.StatusOK, stats)
	})

	api := r.Group("/api")

	api.POST("/submit", ratelimit.SubmitMiddleware(limiter, appMetrics), func(c *gin.Context) {
		var req types.SubmitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, apperrors.NewValidationError("invalid submission payload", err.Error()))
			return
		}

		rec := req.Record()
		classification := classify.Classify(rec.AxisAScore, rec.AxisBScore, rec)
		verdicts := compat.EvaluateAll(rec)

		saved, err := repo.SaveCandidate(rec, classification, verdicts)
		if err != nil {
			c.Error(apperrors.NewInternalError("failed to save submission", err))
			return
		}

		appMetrics.IncrementSubmission()
		appLogger.SubmissionLogger(saved.ID, string(classification.Badge),
			classification.MatchPercentage,
			verdicts[compat.ProfileEngineering].Compatible,
			verdicts[compat.ProfileBusiness].Compatible)

		c.JSON(http.StatusCreated, gin.H{
			"record":         saved,
			"classification": classification,
			"compatibility":  verdicts,
		})
	})

	operator := api.Group("/operator")

	operator.POST("/login", func(c *gin.Context) {
		var req struct {
			AccessCode string `json:"accessCode" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, apperrors.NewValidationError("access code is required"))
			return
		}

		token, err := accessService.Login(req.AccessCode)
		if err != nil {
			c.JSON(http.StatusUnauthorized, apperrors.NewUnauthorizedError("invalid access code"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	})

	gated := operator.Group("", accessService.Middleware())

	gated.GET("/summary", func(c *gin.Context) {
		entries, err := repo.ListEntries()
		if err != nil {
			c.Error(apperrors.NewInternalError("failed to load candidates", err))
			return
		}

		key := cache.Key(entries)
		if summary, ok := summaryCache.Get(key); ok {
			c.JSON(http.StatusOK, summary)
			return
		}

		summary := analytics.Summarize(entries)
		summaryCache.Set(key, summary)
		c.JSON(http.StatusOK, summary)
	})

	gated.GET("/records", func(c *gin.Context) {
		entries, err := repo.ListEntries()
		if err != nil {
			c.Error(apperrors.NewInternalError("failed to load candidates", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"total": len(entries), "records": entries})
	})

	gated.PATCH("/records/:id/status", func(c *gin.Context) {
		var req struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, apperrors.NewValidationError("status is required"))
			return
		}

		status := types.Status(req.Status)
		switch status {
		case types.StatusNew, types.StatusContacted, types.StatusEnrolled, types.StatusArchived:
		default:
			c.JSON(http.StatusBadRequest, apperrors.NewValidationError("unknown status", req.Status))
			return
		}

		if err := repo.UpdateStatus(c.Param("id"), status); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				c.JSON(http.StatusNotFound, apperrors.NewNotFoundError("candidate not found"))
				return
			}
			c.Error(apperrors.NewInternalError("failed to update status", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": status})
	})

	gated.GET("/export.csv", func(c *gin.Context) {
		entries, err := repo.ListEntries()
		if err != nil {
			c.Error(apperrors.NewInternalError("failed to load candidates", err))
			return
		}

		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", `attachment; filename="candidates.csv"`)
		if err := export.WriteCSV(c.Writer, entries); err != nil {
			slog.Error("CSV export failed mid-stream", "error", err)
		}
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		slog.Info("Server starting", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}
	slog.Info("Server stopped")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
