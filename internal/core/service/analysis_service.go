package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"hashAnalysisBackend/internal/core/domain"
	"hashAnalysisBackend/internal/pkg/concurrency"
	"hashAnalysisBackend/internal/pkg/logging"
	"hashAnalysisBackend/internal/pkg/metrics"
	"hashAnalysisBackend/internal/port"
	"hashAnalysisBackend/internal/utils/random"
)

const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 100
	StatsWindow         = 100
)

// Limits bounds a single request. Zero means unlimited.
type Limits struct {
	MaxHashes       int
	MaxWordlistSize int
}

type AnalysisService struct {
	repo      port.Repository
	analyzer  port.BatchAnalyzer
	pool      *concurrency.WorkerPool
	collector *metrics.Collector
	reporter  *metrics.Reporter
	limits    Limits

	// candidate attempts across all batches and the time spent on them
	attempts  atomic.Int64
	crackTime atomic.Int64
}

type Option func(*AnalysisService)

func WithLimits(l Limits) Option {
	return func(s *AnalysisService) { s.limits = l }
}

func WithReporter(r *metrics.Reporter) Option {
	return func(s *AnalysisService) { s.reporter = r }
}

func WithPool(p *concurrency.WorkerPool) Option {
	return func(s *AnalysisService) { s.pool = p }
}

func WithCollector(c *metrics.Collector) Option {
	return func(s *AnalysisService) { s.collector = c }
}

// NewAnalysisService wires the analyzer to storage. A nil repo runs analyses without
// persisting them; history and stats are then empty.
func NewAnalysisService(repo port.Repository, analyzer port.BatchAnalyzer, opts ...Option) *AnalysisService {
	s := &AnalysisService{
		repo:     repo,
		analyzer: analyzer,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ port.AnalysisService = (*AnalysisService)(nil)

func (s *AnalysisService) AnalyzeHashes(ctx context.Context, req domain.AnalysisRequest) (*domain.HashAnalysis, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	results, summary, err := s.analyzer.Analyze(ctx, req)
	if err != nil {
		return nil, err
	}

	s.countAttempts(results, summary.TotalTime)

	analysis := &domain.HashAnalysis{
		ID:           random.GenerateUUID(),
		Timestamp:    time.Now().UTC(),
		Results:      results,
		BatchSummary: summary,
	}

	if s.repo != nil {
		if err := s.repo.SaveAnalysis(ctx, analysis); err != nil {
			logging.Errorf("failed to save analysis %s: %v", analysis.ID, err)
			return nil, fmt.Errorf("save analysis: %w", err)
		}
	}

	s.reporter.Record("analysis", map[string]interface{}{
		"id":            analysis.ID,
		"total_hashes":  summary.TotalHashes,
		"total_cracked": summary.TotalCracked,
		"total_time":    summary.TotalTime,
	})

	return analysis, nil
}

func (s *AnalysisService) countAttempts(results []domain.AnalysisResult, seconds float64) {
	var n int64
	for _, r := range results {
		n += r.Attempts
	}
	s.attempts.Add(n)
	s.crackTime.Add(int64(seconds * float64(time.Second)))
}

func (s *AnalysisService) validate(req domain.AnalysisRequest) error {
	if len(req.Hashes) == 0 {
		return fmt.Errorf("%w: no hashes provided", domain.ErrInvalidInput)
	}
	if s.limits.MaxHashes > 0 && len(req.Hashes) > s.limits.MaxHashes {
		return fmt.Errorf("%w: %d hashes exceeds limit of %d", domain.ErrTooManyHashes, len(req.Hashes), s.limits.MaxHashes)
	}
	if s.limits.MaxWordlistSize > 0 && len(req.CustomWordlist) > s.limits.MaxWordlistSize {
		return fmt.Errorf("%w: %d words exceeds limit of %d", domain.ErrWordlistTooLarge, len(req.CustomWordlist), s.limits.MaxWordlistSize)
	}
	return nil
}

// GetAnalysis loads one stored analysis. Unknown ids, and every id when nothing is
// persisted, yield ErrAnalysisNotFound.
func (s *AnalysisService) GetAnalysis(ctx context.Context, id string) (*domain.HashAnalysis, error) {
	if s.repo == nil || id == "" {
		return nil, domain.ErrAnalysisNotFound
	}

	analysis, err := s.repo.GetAnalysis(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAnalysisNotFound) {
			return nil, err
		}
		logging.Errorf("failed to load analysis %s: %v", id, err)
		return nil, fmt.Errorf("get analysis: %w", err)
	}
	return analysis, nil
}

// GetHistory returns stored analyses newest first. Non-positive limits use the
// default; large ones are capped.
func (s *AnalysisService) GetHistory(ctx context.Context, limit int) ([]domain.HashAnalysis, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	if s.repo == nil {
		return []domain.HashAnalysis{}, nil
	}

	history, err := s.repo.ListAnalyses(ctx, limit)
	if err != nil {
		logging.Errorf("failed to fetch history: %v", err)
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	if history == nil {
		history = []domain.HashAnalysis{}
	}
	return history, nil
}

func (s *AnalysisService) GetStats(ctx context.Context) (*domain.HashStats, error) {
	if s.repo == nil {
		return ComputeStats(nil, 0), nil
	}

	total, err := s.repo.CountAnalyses(ctx)
	if err != nil {
		logging.Errorf("failed to count analyses: %v", err)
		return nil, fmt.Errorf("count analyses: %w", err)
	}

	recent, err := s.repo.ListAnalyses(ctx, StatsWindow)
	if err != nil {
		logging.Errorf("failed to load recent analyses: %v", err)
		return nil, fmt.Errorf("list analyses: %w", err)
	}

	return ComputeStats(recent, total), nil
}

// GetMetrics merges pool counters and candidate attempts with the latest host sample.
func (s *AnalysisService) GetMetrics() domain.ResourceMetrics {
	var m domain.ResourceMetrics
	if s.pool != nil {
		m = s.pool.GetMetrics()
	}
	m.TotalAttempts = s.attempts.Load()
	if elapsed := time.Duration(s.crackTime.Load()); elapsed > 0 {
		m.AttemptsPerSec = int64(float64(m.TotalAttempts) / elapsed.Seconds())
	}
	if s.collector != nil {
		m = s.collector.Merge(m)
	}
	if m.LastUpdated.IsZero() {
		m.LastUpdated = time.Now()
	}
	return m
}
