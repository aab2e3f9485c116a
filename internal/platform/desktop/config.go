package desktop

import "hashAnalysisBackend/internal/config"

type Config struct {
	MaxThreads  int
	SaveResults bool
	ResultsPath string
}

func NewDefaultConfig() *Config {
	return &Config{
		MaxThreads:  4,
		SaveResults: true,
		ResultsPath: "./results",
	}
}

// Apply copies the desktop settings onto the shared application config.
func (c *Config) Apply(cfg *config.Config) {
	if c.MaxThreads > 0 {
		cfg.Pool.Workers = c.MaxThreads
	}
}
