package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hashAnalysisBackend/internal/core/domain"
	"hashAnalysisBackend/internal/port"
)

type MockAnalysisService struct {
	mock.Mock
}

func NewMockAnalysisService() *MockAnalysisService {
	return &MockAnalysisService{}
}

var _ port.AnalysisService = (*MockAnalysisService)(nil)

func (m *MockAnalysisService) AnalyzeHashes(ctx context.Context, req domain.AnalysisRequest) (*domain.HashAnalysis, error) {
	args := m.Called(ctx, req)
	if a, ok := args.Get(0).(*domain.HashAnalysis); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAnalysisService) GetAnalysis(ctx context.Context, id string) (*domain.HashAnalysis, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*domain.HashAnalysis); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAnalysisService) GetHistory(ctx context.Context, limit int) ([]domain.HashAnalysis, error) {
	args := m.Called(ctx, limit)
	if list, ok := args.Get(0).([]domain.HashAnalysis); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAnalysisService) GetStats(ctx context.Context) (*domain.HashStats, error) {
	args := m.Called(ctx)
	if s, ok := args.Get(0).(*domain.HashStats); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAnalysisService) GetMetrics() domain.ResourceMetrics {
	args := m.Called()
	return args.Get(0).(domain.ResourceMetrics)
}
