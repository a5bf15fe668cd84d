package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yashvi-parmar/freethrows-backend-go/internal/analysis"
	"github.com/yashvi-parmar/freethrows-backend-go/internal/api"
	"github.com/yashvi-parmar/freethrows-backend-go/internal/config"
	"github.com/yashvi-parmar/freethrows-backend-go/internal/database"
	"github.com/yashvi-parmar/freethrows-backend-go/internal/dataset"
	"github.com/yashvi-parmar/freethrows-backend-go/internal/repository"
	"github.com/yashvi-parmar/freethrows-backend-go/internal/service"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer logger.Sync()

	// Load, validate and join the CSV sources once per process
	ds, err := dataset.Load(cfg.DataDir, logger)
	if err != nil {
		logger.Fatal("failed to load dataset", zap.Error(err))
	}

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Seed(db, ds); err != nil {
		logger.Fatal("failed to seed database", zap.Error(err))
	}

	trialRepo := repository.NewTrialRepository(db)
	frameRepo := repository.NewFrameRepository(db)

	// Derive features once; everything downstream reads immutable state
	trials, err := trialRepo.All()
	if err != nil {
		logger.Fatal("failed to read trials", zap.Error(err))
	}
	frames, err := frameRepo.All()
	if err != nil {
		logger.Fatal("failed to read frames", zap.Error(err))
	}
	ctx := analysis.Build(trials, frames)

	trialService := service.NewTrialService(trialRepo, frameRepo)
	statsService := service.NewStatsService(ctx)
	reportService := service.NewReportService(trialService, statsService, logger)

	router := api.SetupRouter(logger, trialService, reportService)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := router.Run(cfg.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
