package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillsync-backend/config"
	v1 "skillsync-backend/internal/delivery/http/v1"
	"skillsync-backend/internal/extractor"
	"skillsync-backend/internal/repository/memory"
	"skillsync-backend/internal/usecase"
	"skillsync-backend/pkg/github"
	"skillsync-backend/pkg/groq"
	"skillsync-backend/pkg/leetcode"
	"skillsync-backend/pkg/logger"
	"skillsync-backend/pkg/pdftext"
	"skillsync-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           SkillSync API
// @version         1.0
// @description     Resume analysis and AI-powered career suggestions.
// @host            localhost:8000
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting skillsync backend", "port", cfg.Port)

	// 3. Setup Redis (rate limiting falls back to in-memory when absent)
	if cfg.UpstashRedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		} else {
			defer redis.Close()
		}
	}

	// 4. Prepare Upload Directory
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Log.Error("Failed to create upload directory", "error", err, "dir", cfg.UploadDir)
		os.Exit(1)
	}

	// 5. Setup Repositories
	careerPathRepo := memory.NewCareerPathRepository()
	analysisRepo := memory.NewAnalysisRepository()

	// 6. Setup Outbound Clients
	groqClient := groq.NewClient(cfg)
	githubClient := github.NewClient(cfg)
	leetcodeClient := leetcode.NewClient()

	// 7. Setup UseCases
	validate := validator.New()
	resumeUC := usecase.NewResumeUsecase(pdftext.NewExtractor(), extractor.New(), analysisRepo)
	careerUC := usecase.NewCareerUsecase(groqClient, careerPathRepo, validate, cfg.AIFallbackEnabled)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ResumeUC: resumeUC,
		CareerUC: careerUC,
		Github:   githubClient,
		Leetcode: leetcodeClient,
		Config:   cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
