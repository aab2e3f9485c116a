package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hashAnalysisBackend/internal/core/domain"
	"hashAnalysisBackend/internal/port"
)

type MockRepository struct {
	mock.Mock
}

func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

var _ port.Repository = (*MockRepository)(nil)

func (m *MockRepository) Migrate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepository) SaveAnalysis(ctx context.Context, analysis *domain.HashAnalysis) error {
	args := m.Called(ctx, analysis)
	return args.Error(0)
}

func (m *MockRepository) GetAnalysis(ctx context.Context, id string) (*domain.HashAnalysis, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*domain.HashAnalysis); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) ListAnalyses(ctx context.Context, limit int) ([]domain.HashAnalysis, error) {
	args := m.Called(ctx, limit)
	if list, ok := args.Get(0).([]domain.HashAnalysis); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) CountAnalyses(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}
