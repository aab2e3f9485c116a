package mobile

import (
	"context"
	"encoding/json"
	"fmt"

	"hashAnalysisBackend/internal/core/algorithm"
	"hashAnalysisBackend/internal/core/domain"
	"hashAnalysisBackend/internal/port"
)

// MobileBinding exposes the service through string-only calls for iOS/Android.
// Every method returns a MobileResponse JSON document.
type MobileBinding struct {
	analysisService port.AnalysisService
}

func NewMobileBinding(svc port.AnalysisService) *MobileBinding {
	return &MobileBinding{analysisService: svc}
}

// AnalyzeHashes takes an analysis request as JSON.
func (m *MobileBinding) AnalyzeHashes(requestJson string) string {
	var req domain.AnalysisRequest
	if err := json.Unmarshal([]byte(requestJson), &req); err != nil {
		return createErrorResponse(fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
	}

	analysis, err := m.analysisService.AnalyzeHashes(context.Background(), req)
	if err != nil {
		return createErrorResponse(err)
	}
	return createSuccessResponse(analysis)
}

func (m *MobileBinding) Identify(hash string) string {
	family := algorithm.Identify(hash)
	return createSuccessResponse(map[string]string{
		"hash_type":    string(family),
		"display_name": family.DisplayName(),
	})
}

func (m *MobileBinding) GetAnalysis(id string) string {
	analysis, err := m.analysisService.GetAnalysis(context.Background(), id)
	if err != nil {
		return createErrorResponse(err)
	}
	return createSuccessResponse(analysis)
}

func (m *MobileBinding) GetHistory(limit int) string {
	history, err := m.analysisService.GetHistory(context.Background(), limit)
	if err != nil {
		return createErrorResponse(err)
	}
	return createSuccessResponse(history)
}

func (m *MobileBinding) GetStats() string {
	stats, err := m.analysisService.GetStats(context.Background())
	if err != nil {
		return createErrorResponse(err)
	}
	return createSuccessResponse(stats)
}
