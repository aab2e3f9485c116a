package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hashAnalysisBackend/internal/core/algorithm"
)

func newIdentifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identify <hash>...",
		Short: "Print the algorithm family of each hash",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, h := range args {
				if _, err := fmt.Fprintf(out, "%s\t%s\n", h, algorithm.Identify(h).DisplayName()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
