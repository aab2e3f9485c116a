package service

import (
	"context"
	"fmt"
	"time"

	"hashAnalysisBackend/internal/core/algorithm"
	"hashAnalysisBackend/internal/core/domain"
	"hashAnalysisBackend/internal/pkg/concurrency"
	"hashAnalysisBackend/internal/pkg/logging"
	"hashAnalysisBackend/internal/pkg/metrics"
	"hashAnalysisBackend/internal/utils/random"
)

// Analyzer runs a batch of digests through fingerprinting, cracking and scoring.
// Digests are fanned out over the worker pool when one is set; results always come
// back in input order.
type Analyzer struct {
	pool *concurrency.WorkerPool
}

func NewAnalyzer(pool *concurrency.WorkerPool) *Analyzer {
	return &Analyzer{pool: pool}
}

func (a *Analyzer) Analyze(ctx context.Context, req domain.AnalysisRequest) ([]domain.AnalysisResult, domain.BatchSummary, error) {
	if len(req.Hashes) == 0 {
		return nil, domain.BatchSummary{}, domain.ErrInvalidInput
	}

	candidates := req.CustomWordlist
	if len(candidates) == 0 {
		candidates = algorithm.BuiltinWordlist()
	}
	alg := algorithm.ForAttack(req.AttackType, domain.CrackingSettings{MaxLength: req.MaxLength})

	var results []domain.AnalysisResult
	var runErr error
	perf := metrics.CapturePerformance(func() {
		if a.pool == nil {
			results = analyzeSequential(ctx, req.Hashes, alg, candidates)
			if results == nil {
				runErr = ctx.Err()
			}
			return
		}
		results, runErr = a.analyzePooled(ctx, req.Hashes, alg, candidates)
	})
	if runErr != nil {
		return nil, domain.BatchSummary{}, fmt.Errorf("analyze batch: %w", runErr)
	}

	summary := summarize(results, perf.Seconds())
	logging.Infof("%s", summary.Summary)
	logging.Debugf("batch allocated %d bytes in %d objects, %d GC cycles", perf.MemoryUsage, perf.AllocObjects, perf.GCCycles)
	return results, summary, nil
}

func analyzeSequential(ctx context.Context, hashes []string, alg algorithm.Algorithm, candidates []string) []domain.AnalysisResult {
	results := make([]domain.AnalysisResult, len(hashes))
	for i, raw := range hashes {
		if ctx.Err() != nil {
			return nil
		}
		results[i] = analyzeOne(raw, alg, candidates)
	}
	return results
}

func (a *Analyzer) analyzePooled(ctx context.Context, hashes []string, alg algorithm.Algorithm, candidates []string) ([]domain.AnalysisResult, error) {
	jobID := random.GenerateUUID()
	reply := make(chan concurrency.Result, len(hashes))

	submitted := 0
	for i, raw := range hashes {
		raw := raw
		err := a.pool.Submit(ctx, concurrency.Task{
			ID:    fmt.Sprintf("%s-%d", jobID, i),
			JobID: jobID,
			Index: i,
			Function: func() (interface{}, error) {
				return analyzeOne(raw, alg, candidates), nil
			},
			Reply: reply,
		})
		if err != nil {
			return nil, err
		}
		submitted++
	}

	results := make([]domain.AnalysisResult, len(hashes))
	for received := 0; received < submitted; received++ {
		select {
		case r := <-reply:
			if r.Error != nil {
				return nil, fmt.Errorf("digest %d: %w", r.Index, r.Error)
			}
			results[r.Index] = r.Value.(domain.AnalysisResult)
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-a.pool.Done():
			return nil, concurrency.ErrPoolStopped
		}
	}
	return results, nil
}

func analyzeOne(raw string, alg algorithm.Algorithm, candidates []string) domain.AnalysisResult {
	start := time.Now()

	digest := domain.NewDigestRecord(raw)
	family := algorithm.Identify(digest.Value)
	outcome := alg.Crack(digest.Value, family, candidates)

	return domain.AnalysisResult{
		Digest:        digest,
		Family:        family,
		StrengthScore: algorithm.Score(family, outcome.Plaintext),
		TimeTaken:     time.Since(start).Seconds(),
		CrackOutcome:  outcome,
	}
}

func summarize(results []domain.AnalysisResult, totalTime float64) domain.BatchSummary {
	var cracked, scoreSum int
	for _, r := range results {
		if r.Cracked {
			cracked++
		}
		scoreSum += r.StrengthScore
	}

	var rate, avg float64
	if n := len(results); n > 0 {
		rate = float64(cracked) / float64(n) * 100
		avg = float64(scoreSum) / float64(n)
	}

	return domain.BatchSummary{
		TotalHashes:     len(results),
		TotalCracked:    cracked,
		CrackRate:       rate,
		AverageStrength: avg,
		TotalTime:       totalTime,
		Summary: fmt.Sprintf("Analyzed %d hashes in %.2fs. Cracked %d (%.1f%%). Average strength score: %.1f/10",
			len(results), totalTime, cracked, rate, avg),
	}
}
