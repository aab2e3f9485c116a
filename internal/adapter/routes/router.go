package routes

import (
	"github.com/gin-gonic/gin"

	handler "hashAnalysisBackend/internal/adapter/http"
	"hashAnalysisBackend/internal/platform/web"
	"hashAnalysisBackend/internal/port"
)

// NewRouter builds the HTTP engine for svc. mode is a gin mode name; anything else
// keeps the current one.
func NewRouter(svc port.AnalysisService, mode string) *gin.Engine {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(mode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger(), handler.CORS())

	web.SetupRoutes(r, web.NewWebHandler(svc))
	return r
}
