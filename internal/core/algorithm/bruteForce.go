package algorithm

import (
	"hashAnalysisBackend/internal/core/domain"
)

const DefaultBruteForceMaxLength = 8

// BruteForce is accepted as an attack type but does not enumerate candidates yet.
// Every digest is reported as NOT_IMPLEMENTED so callers can tell it apart from a
// dictionary run that found nothing.
type BruteForce struct {
	settings domain.CrackingSettings
}

func NewBruteForce() *BruteForce {
	return &BruteForce{
		settings: domain.CrackingSettings{
			MaxLength:    DefaultBruteForceMaxLength,
			CharacterSet: domain.CharsetAll,
		},
	}
}

func (b *BruteForce) Crack(string, domain.AlgorithmFamily, []string) domain.CrackOutcome {
	return notImplemented()
}

func (b *BruteForce) Name() domain.AttackType {
	return domain.AttackBruteForce
}

func (b *BruteForce) SetSettings(settings domain.CrackingSettings) {
	if settings.MaxLength > 0 {
		b.settings.MaxLength = settings.MaxLength
	}
	if settings.CharacterSet != "" {
		b.settings.CharacterSet = settings.CharacterSet
	}
}

func (b *BruteForce) Settings() domain.CrackingSettings {
	return b.settings
}
