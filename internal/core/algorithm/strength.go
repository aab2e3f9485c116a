package algorithm

import (
	"hashAnalysisBackend/internal/core/domain"
	"slices"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/bits-and-blooms/bloom/v3"
)

const (
	MinStrengthScore = 1
	MaxStrengthScore = 10
)

var baseScores = map[domain.AlgorithmFamily]int{
	domain.FamilyMD5:        1,
	domain.FamilySHA1:       2,
	domain.FamilySHA256:     5,
	domain.FamilySHA512:     6,
	domain.FamilyBcrypt:     8,
	domain.FamilySHA512Unix: 7,
	domain.FamilySHA256Unix: 6,
	domain.FamilyMD5Unix:    3,
	domain.FamilyDESUnix:    1,
	domain.FamilyUnknown:    0,
}

type penaltyTier struct {
	applies func(plaintext string) bool
	penalty int
}

// Only the first tier that applies is subtracted.
var penaltyTiers = []penaltyTier{
	{func(p string) bool { return utf8.RuneCountInString(p) < 6 }, 3},
	{func(p string) bool { return utf8.RuneCountInString(p) < 8 }, 2},
	{IsCommonPassword, 2},
	{func(p string) bool { return !strings.ContainsFunc(p, unicode.IsUpper) }, 1},
	{func(p string) bool { return !strings.ContainsFunc(p, unicode.IsDigit) }, 1},
}

// Score rates a credential from 1 to 10. plaintext is nil when the digest was not cracked.
func Score(family domain.AlgorithmFamily, plaintext *string) int {
	score := baseScores[family]

	if plaintext != nil {
		for _, tier := range penaltyTiers {
			if tier.applies(*plaintext) {
				score = max(MinStrengthScore, score-tier.penalty)
				break
			}
		}
	}

	return min(MaxStrengthScore, max(MinStrengthScore, score))
}

type commonPasswordSet struct {
	filter *bloom.BloomFilter
	sorted []string
}

var commonPasswords = sync.OnceValue(func() *commonPasswordSet {
	set := &commonPasswordSet{
		filter: bloom.NewWithEstimates(uint(len(CommonPasswords)*4), 0.01),
		sorted: make([]string, 0, len(CommonPasswords)),
	}
	for _, p := range CommonPasswords {
		lower := strings.ToLower(p)
		set.filter.AddString(lower)
		set.sorted = append(set.sorted, lower)
	}
	slices.Sort(set.sorted)
	set.sorted = slices.Compact(set.sorted)
	return set
})

// IsCommonPassword reports whether plaintext equals a base list entry, ignoring case.
func IsCommonPassword(plaintext string) bool {
	set := commonPasswords()
	lower := strings.ToLower(plaintext)
	if !set.filter.TestString(lower) {
		return false
	}
	// bloom hits can be false positives
	_, found := slices.BinarySearch(set.sorted, lower)
	return found
}
