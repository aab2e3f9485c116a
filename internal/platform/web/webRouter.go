package web

import "github.com/gin-gonic/gin"

func SetupRoutes(r *gin.Engine, handler *WebHandler) {
	api := r.Group("/api")
	{
		api.GET("/", handler.Root)
		api.POST("/analyze-hashes", handler.AnalyzeHashes)
		api.GET("/analysis-history", handler.GetHistory)
		api.GET("/analysis/:id", handler.GetAnalysis)
		api.GET("/hash-stats", handler.GetStats)
		api.GET("/metrics", handler.GetMetrics)
	}
}
