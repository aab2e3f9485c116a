package algorithm

import (
	"hashAnalysisBackend/internal/core/domain"
	"hashAnalysisBackend/internal/pkg/logging"
)

// Dictionary tries an ordered candidate list and stops at the first match.
type Dictionary struct{}

func NewDictionary() *Dictionary {
	return &Dictionary{}
}

// Crack verifies candidates in order against digest. Attempts is the 1-based index of
// the match, or the number of candidates tried when nothing matched. Families without a
// verifier are reported as UNSUPPORTED_FAMILY with zero attempts.
func (d *Dictionary) Crack(digest string, family domain.AlgorithmFamily, candidates []string) domain.CrackOutcome {
	verifier, ok := VerifierFor(family)
	if !ok {
		return domain.CrackOutcome{Status: domain.StatusUnsupportedFamily}
	}

	var attempts int64
	var failures int
	var lastErr error
	for _, candidate := range candidates {
		attempts++

		matched, err := verifier.Verify(candidate, digest)
		if err != nil {
			// malformed digest: this candidate is a miss, keep going
			failures++
			lastErr = err
			continue
		}
		if matched {
			plaintext := candidate
			return domain.CrackOutcome{
				Cracked:   true,
				Plaintext: &plaintext,
				Attempts:  attempts,
				Status:    domain.StatusCracked,
			}
		}
	}

	if failures > 0 {
		logging.Debugf("%s verification failed for %d of %d candidates: %v", family, failures, attempts, lastErr)
	}

	return domain.CrackOutcome{
		Attempts: attempts,
		Status:   domain.StatusExhausted,
	}
}

func (d *Dictionary) Name() domain.AttackType {
	return domain.AttackDictionary
}

// SetSettings is a no-op: candidates come from the wordlist, not from settings.
func (d *Dictionary) SetSettings(domain.CrackingSettings) {}

// Crack runs a dictionary attack with the given candidates.
func Crack(digest string, family domain.AlgorithmFamily, candidates []string) domain.CrackOutcome {
	return NewDictionary().Crack(digest, family, candidates)
}
