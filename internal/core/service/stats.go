package service

import (
	"math"
	"sort"

	"hashAnalysisBackend/internal/core/domain"
)

const (
	topHashTypes     = 5
	maxWeakPasswords = 10
)

// ComputeStats aggregates the given analyses. total is the number of analyses in
// storage, which may exceed len(recent).
func ComputeStats(recent []domain.HashAnalysis, total int64) *domain.HashStats {
	stats := &domain.HashStats{
		MostCommonHashTypes: []domain.HashTypeCount{},
		WeakestPasswords:    []string{},
	}
	if len(recent) == 0 {
		return stats
	}
	stats.TotalAnalyses = total

	var totalHashes, totalCracked int
	counts := make(map[domain.AlgorithmFamily]int)
	var order []domain.AlgorithmFamily
	seen := make(map[string]struct{})

	for _, analysis := range recent {
		totalHashes += len(analysis.Results)
		totalCracked += analysis.TotalCracked

		for _, r := range analysis.Results {
			family := r.Family
			if family == "" {
				family = domain.FamilyUnknown
			}
			if _, ok := counts[family]; !ok {
				order = append(order, family)
			}
			counts[family]++

			if r.Cracked && r.Plaintext != nil && *r.Plaintext != "" {
				if _, dup := seen[*r.Plaintext]; !dup && len(stats.WeakestPasswords) < maxWeakPasswords {
					seen[*r.Plaintext] = struct{}{}
					stats.WeakestPasswords = append(stats.WeakestPasswords, *r.Plaintext)
				}
			}
		}
	}

	stats.TotalHashesAnalyzed = totalHashes
	if totalHashes > 0 {
		rate := float64(totalCracked) / float64(totalHashes) * 100
		stats.AverageCrackRate = math.Round(rate*10) / 10
	}

	types := make([]domain.HashTypeCount, 0, len(order))
	for _, family := range order {
		types = append(types, domain.HashTypeCount{HashType: family, Count: counts[family]})
	}
	sort.SliceStable(types, func(i, j int) bool { return types[i].Count > types[j].Count })
	if len(types) > topHashTypes {
		types = types[:topHashTypes]
	}
	stats.MostCommonHashTypes = types

	return stats
}
