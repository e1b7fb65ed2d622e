package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobmatch-backend/config"
	_ "go-jobmatch-backend/docs" // Important for Swagger
	"go-jobmatch-backend/internal/delivery/http/v1"
	"go-jobmatch-backend/internal/match"
	"go-jobmatch-backend/internal/repository/postgres"
	"go-jobmatch-backend/internal/usecase"
	"go-jobmatch-backend/pkg/database"
	"go-jobmatch-backend/pkg/logger"
	"go-jobmatch-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Job Match Backend API
// @version         1.0
// @description     Personalized job-recommendation service using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job match backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Signal Sink (optional; interaction signals degrade to log-only)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Signal sink unavailable", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	profileRepo := postgres.NewProfileRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	interactionRepo := postgres.NewInteractionRepository(dbPool)

	// 6. Setup Recommendation Engine
	similarity := match.NewSimilarity(match.DefaultSynonyms())
	scorer := match.NewScorer(similarity, match.DefaultIndustryTerms(), match.DefaultWeights())
	engine := match.NewEngine(scorer, match.DefaultTrends(), match.DefaultTrendingKeywords(), match.Config{
		MinScore:           cfg.MinMatchScore,
		DiversityHighScore: cfg.DiversityHighScore,
		DiversityCap:       cfg.DiversityCap,
		ResultCap:          cfg.ResultCap,
	})

	// 7. Setup UseCases
	validate := validator.New()
	recUC := usecase.NewRecommendationUsecase(profileRepo, jobRepo, interactionRepo, engine, redis.Client(), validate)
	healthUC := usecase.NewHealthUsecase(dbPool, redis.Client())

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		RecommendationUC: recUC,
		HealthUC:         healthUC,
		Config:           cfg,
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
