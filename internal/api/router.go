package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/yashvi-parmar/freethrows-backend-go/internal/handler"
	"github.com/yashvi-parmar/freethrows-backend-go/internal/middleware"
	"github.com/yashvi-parmar/freethrows-backend-go/internal/service"
)

// SetupRouter wires the middleware and routes
func SetupRouter(
	logger *zap.Logger,
	trialService *service.TrialService,
	reportService *service.ReportService,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	// CORS: the report front-end may be served from another origin
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		made, missed, err := trialService.Counts()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Free Throw Analysis API is running",
			"trials": gin.H{
				"made":   made,
				"missed": missed,
			},
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	trialHandler := handler.NewTrialHandler(trialService)
	reportHandler := handler.NewReportHandler(reportService)
	statsHandler := handler.NewStatsHandler(reportService)

	api := r.Group("/api/v1")
	{
		api.GET("/report", reportHandler.GetReport)

		trials := api.Group("/trials")
		{
			trials.GET("", trialHandler.List)
			trials.GET("/:trial_id/wrist-timeseries", trialHandler.WristTimeseries)
		}

		stats := api.Group("/stats")
		{
			stats.GET("/group-means", statsHandler.GroupMeans)
			stats.GET("/wrist-stability", statsHandler.WristStability)
			stats.GET("/symmetry-density", statsHandler.SymmetryDensity)
			stats.GET("/pinky-offset", statsHandler.PinkyOffset)
			stats.GET("/motion", statsHandler.Motion)
		}
	}

	return r
}
