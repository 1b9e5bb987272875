package api

import (
	"github.com/gin-gonic/gin"

	"github.com/niticheck/classifier/internal/telemetry"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler, tp *telemetry.Provider) {
	// Health and readiness checks
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)

	if tp != nil {
		router.GET("/metrics", gin.WrapH(tp.Handler()))
	}

	v1 := router.Group("/api/v1")
	{
		analyze := v1.Group("/analyze")
		{
			analyze.POST("", handler.Analyze)           // POST /api/v1/analyze
			analyze.POST("/batch", handler.AnalyzeBatch) // POST /api/v1/analyze/batch
			analyze.POST("/file", handler.AnalyzeFile)   // POST /api/v1/analyze/file
		}

		dataset := v1.Group("/dataset")
		{
			dataset.GET("/stats", handler.GetDatasetStats) // GET /api/v1/dataset/stats
			dataset.GET("/similar", handler.GetSimilar)    // GET /api/v1/dataset/similar
		}

		history := v1.Group("/history")
		{
			history.GET("", handler.ListHistory)          // GET /api/v1/history
			history.GET("/:id", handler.GetHistoryRecord) // GET /api/v1/history/:id
		}

		v1.POST("/search", handler.Search) // POST /api/v1/search
	}
}
