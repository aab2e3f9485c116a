package desktop

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"hashAnalysisBackend/internal/config"
	"hashAnalysisBackend/internal/core/algorithm"
	"hashAnalysisBackend/internal/core/domain"
	"hashAnalysisBackend/internal/platform/bootstrap"
	"hashAnalysisBackend/internal/port"
)

type DesktopLib struct {
	analysisService port.AnalysisService
	config          *Config
	runtime         *bootstrap.Runtime
}

func NewDesktopLib(svc port.AnalysisService, cfg *Config) *DesktopLib {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	return &DesktopLib{
		analysisService: svc,
		config:          cfg,
	}
}

// Open starts a private runtime sized by cfg. Close releases it.
func Open(ctx context.Context, appCfg config.Config, cfg *Config) (*DesktopLib, error) {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	cfg.Apply(&appCfg)

	rt, err := bootstrap.New(ctx, appCfg, true)
	if err != nil {
		return nil, err
	}

	lib := NewDesktopLib(rt.Service, cfg)
	lib.runtime = rt
	return lib, nil
}

func (d *DesktopLib) Close() error {
	if d.runtime == nil {
		return nil
	}
	return d.runtime.Close()
}

// Direct library methods for desktop applications
func (d *DesktopLib) AnalyzeHashes(hashes []string, wordlist []string) (*domain.HashAnalysis, error) {
	analysis, err := d.analysisService.AnalyzeHashes(context.Background(), domain.AnalysisRequest{
		Hashes:         hashes,
		AttackType:     domain.AttackDictionary,
		CustomWordlist: wordlist,
	})
	if err != nil {
		return nil, err
	}

	if d.config.SaveResults {
		if err := d.saveResults(analysis); err != nil {
			return analysis, err
		}
	}
	return analysis, nil
}

func (d *DesktopLib) Identify(hash string) string {
	return algorithm.Identify(hash).DisplayName()
}

func (d *DesktopLib) GetAnalysis(id string) (*domain.HashAnalysis, error) {
	return d.analysisService.GetAnalysis(context.Background(), id)
}

func (d *DesktopLib) GetHistory(limit int) ([]domain.HashAnalysis, error) {
	return d.analysisService.GetHistory(context.Background(), limit)
}

func (d *DesktopLib) GetStats() (*domain.HashStats, error) {
	return d.analysisService.GetStats(context.Background())
}

func (d *DesktopLib) saveResults(analysis *domain.HashAnalysis) error {
	if err := os.MkdirAll(d.config.ResultsPath, 0755); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}

	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(d.config.ResultsPath, analysis.ID+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
