package cli

import (
	"context"

	"github.com/spf13/cobra"

	"hashAnalysisBackend/internal/config"
	"hashAnalysisBackend/internal/pkg/logging"
)

var version = "dev"

type app struct {
	configFile string
	cfg        config.Config
}

// NewRootCmd builds a fresh command tree. Tests create one per case.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "hashanalyzer",
		Short:         "Identify, crack and score password hashes.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd, a.configFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return logging.SetLevel(cfg.LogLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default is ./hashanalyzer.yaml)")
	cmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newServeCmd(a),
		newAnalyzeCmd(a),
		newIdentifyCmd(),
		newConfigCmd(a),
	)
	return cmd
}

func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}
