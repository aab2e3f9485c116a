package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"hashAnalysisBackend/internal/core/algorithm"
	"hashAnalysisBackend/internal/core/domain"
	"hashAnalysisBackend/internal/platform/bootstrap"
)

type analyzeOptions struct {
	attack       string
	wordlist     []string
	wordlistFile string
	maxLength    int
	asJSON       bool
	persist      bool
}

func newAnalyzeCmd(a *app) *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [hash...]",
		Short: "Analyze hashes given as arguments or one per line on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, a, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.attack, "attack", string(domain.AttackDictionary), "attack type (dictionary, brute_force)")
	cmd.Flags().StringSliceVar(&opts.wordlist, "wordlist", nil, "custom candidate words, comma separated")
	cmd.Flags().StringVar(&opts.wordlistFile, "wordlist-file", "", "file with one candidate word per line")
	cmd.Flags().IntVar(&opts.maxLength, "max-length", 0, "maximum length for brute force")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the analysis as JSON")
	cmd.Flags().BoolVar(&opts.persist, "persist", false, "store the analysis in the configured database")
	cmd.Flags().String("db-driver", "sqlite", "database driver used with --persist")
	cmd.Flags().String("db-dsn", "", "database DSN used with --persist")
	return cmd
}

func runAnalyze(cmd *cobra.Command, a *app, opts *analyzeOptions, args []string) error {
	hashes := args
	if len(hashes) == 0 {
		var err error
		if hashes, err = readLines(cmd.InOrStdin()); err != nil {
			return err
		}
	}

	words := opts.wordlist
	if opts.wordlistFile != "" {
		fromFile, err := algorithm.LoadWordlist(opts.wordlistFile)
		if err != nil {
			return err
		}
		words = append(words, fromFile...)
	}

	rt, err := bootstrap.New(cmd.Context(), a.cfg, opts.persist)
	if err != nil {
		return err
	}
	defer rt.Close()

	analysis, err := rt.Service.AnalyzeHashes(cmd.Context(), domain.AnalysisRequest{
		Hashes:         hashes,
		AttackType:     domain.AttackType(opts.attack),
		CustomWordlist: words,
		MaxLength:      opts.maxLength,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	}
	return printAnalysis(out, analysis)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read hashes: %w", err)
	}
	return lines, nil
}

var summaryStyle = lipgloss.NewStyle().Bold(true)

func printAnalysis(w io.Writer, analysis *domain.HashAnalysis) error {
	rows := make([][]string, 0, len(analysis.Results))
	for _, r := range analysis.Results {
		plaintext := "-"
		if r.Plaintext != nil {
			plaintext = *r.Plaintext
		}
		rows = append(rows, []string{
			shorten(r.Digest.Value, 24),
			r.Family.DisplayName(),
			string(r.Status),
			plaintext,
			strconv.FormatInt(r.Attempts, 10),
			strconv.Itoa(r.StrengthScore),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("HASH", "TYPE", "STATUS", "PLAINTEXT", "ATTEMPTS", "SCORE").
		Rows(rows...)

	_, err := fmt.Fprintf(w, "%s\n%s\n", t.Render(), summaryStyle.Render(analysis.Summary))
	return err
}

// shorten cuts s to at most n runes, marking the cut with "...".
func shorten(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
