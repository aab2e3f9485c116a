package port

import (
	"context"

	"hashAnalysisBackend/internal/core/domain"
)

type AnalysisService interface {
	AnalyzeHashes(ctx context.Context, req domain.AnalysisRequest) (*domain.HashAnalysis, error)
	GetAnalysis(ctx context.Context, id string) (*domain.HashAnalysis, error)
	GetHistory(ctx context.Context, limit int) ([]domain.HashAnalysis, error)
	GetStats(ctx context.Context) (*domain.HashStats, error)
	GetMetrics() domain.ResourceMetrics
}

// Repository stores finished analyses. ListAnalyses returns newest first.
type Repository interface {
	Migrate(ctx context.Context) error
	SaveAnalysis(ctx context.Context, analysis *domain.HashAnalysis) error
	GetAnalysis(ctx context.Context, id string) (*domain.HashAnalysis, error)
	ListAnalyses(ctx context.Context, limit int) ([]domain.HashAnalysis, error)
	CountAnalyses(ctx context.Context) (int64, error)
	Close() error
}

// BatchAnalyzer is the engine entry point the service drives.
type BatchAnalyzer interface {
	Analyze(ctx context.Context, req domain.AnalysisRequest) ([]domain.AnalysisResult, domain.BatchSummary, error)
}
