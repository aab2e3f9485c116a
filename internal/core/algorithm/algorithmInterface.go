package algorithm

import (
	"hashAnalysisBackend/internal/core/domain"
)

// Algorithm is one attack strategy run against a single digest.
type Algorithm interface {
	Crack(digest string, family domain.AlgorithmFamily, candidates []string) domain.CrackOutcome
	Name() domain.AttackType
	SetSettings(settings domain.CrackingSettings)
}

// ForAttack returns a fresh algorithm for the attack type. Attack types without an
// implementation are accepted and resolve to one that reports NOT_IMPLEMENTED.
func ForAttack(attack domain.AttackType, settings domain.CrackingSettings) Algorithm {
	var alg Algorithm
	switch attack {
	case domain.AttackDictionary, "":
		alg = NewDictionary()
	case domain.AttackBruteForce:
		alg = NewBruteForce()
	default:
		alg = &unimplemented{name: attack}
	}
	alg.SetSettings(settings)
	return alg
}

type unimplemented struct {
	name domain.AttackType
}

func (u *unimplemented) Crack(string, domain.AlgorithmFamily, []string) domain.CrackOutcome {
	return notImplemented()
}

func (u *unimplemented) Name() domain.AttackType { return u.name }

func (u *unimplemented) SetSettings(domain.CrackingSettings) {}

func notImplemented() domain.CrackOutcome {
	return domain.CrackOutcome{Status: domain.StatusNotImplemented}
}
