package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hashAnalysisBackend/internal/core/domain"
	"hashAnalysisBackend/internal/pkg/logging"
	"hashAnalysisBackend/internal/port"
)

const serviceName = "Password Hash Analysis Engine"

type WebHandler struct {
	analysisService port.AnalysisService
}

func NewWebHandler(svc port.AnalysisService) *WebHandler {
	return &WebHandler{
		analysisService: svc,
	}
}

func (h *WebHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": serviceName})
}

func (h *WebHandler) AnalyzeHashes(c *gin.Context) {
	var req domain.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysis, err := h.analysisService.AnalyzeHashes(c.Request.Context(), req)
	if err != nil {
		if domain.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logging.Errorf("error analyzing hashes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Analysis failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, analysis)
}

func (h *WebHandler) GetAnalysis(c *gin.Context) {
	analysis, err := h.analysisService.GetAnalysis(c.Request.Context(), c.Param("id"))
	if errors.Is(err, domain.ErrAnalysisNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analysis"})
		return
	}

	c.JSON(http.StatusOK, analysis)
}

func (h *WebHandler) GetHistory(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = n
	}

	history, err := h.analysisService.GetHistory(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}

	c.JSON(http.StatusOK, history)
}

func (h *WebHandler) GetStats(c *gin.Context) {
	stats, err := h.analysisService.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *WebHandler) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.analysisService.GetMetrics())
}
