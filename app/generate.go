package app

import (
	"bufio"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/root-xghostx/wordgen/internal/charset"
	"github.com/root-xghostx/wordgen/internal/config"
	"github.com/root-xghostx/wordgen/internal/wordlist"
)

func init() { //nolint: gochecknoinits
	addSelectionFlags(generateCmd)

	generateCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file path (.txt)")
	generateCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Show progress and statistics")

	rootCmd.AddCommand(generateCmd)
}

var (
	cfg config.Config
	err error

	flagOutput  string
	flagVerbose bool

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a wordlist and write it to the output file",
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if cfg, err = loadConfig(cmd); err != nil {
				return err
			}

			if cmd.Flags().Changed("output") {
				cfg.Output = flagOutput
			}

			if flagVerbose {
				cfg.Verbose = true
			}

			return cfg.FinalizeGenerate()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd)
		},
	}
)

func runGenerate(cmd *cobra.Command) error {
	pool := charset.Build(cfg.Charset, charset.Classes{
		Lower:   cfg.Lower,
		Upper:   cfg.Upper,
		Digits:  cfg.Digits,
		Symbols: cfg.Symbols,
	})

	if pool == "" && cfg.Pattern == "" {
		return config.ErrNoCharacterSource
	}

	seq, total, overflow := newSequence(cfg, pool)

	if cfg.Verbose {
		printEstimate(cmd, cfg, pool, total, overflow)

		if overflow || total > cfg.Generator.ConfirmThreshold {
			if !confirmLargeRun(cmd) {
				fmt.Fprintln(cmd.OutOrStdout(), "Generation cancelled")
				return nil
			}
		}
	}

	// Stop generating on SIGINT or SIGTERM but keep what was written.
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	writer, werr := wordlist.NewWriter(cfg.Output)
	if werr != nil {
		return werr
	}
	defer writer.Close()

	var progress func(uint64)
	if cfg.Verbose {
		progress = func(n uint64) {
			log.Info().Uint64("count", n).Msg("generating words")
		}
	}

	log.Debug().
		Str("output", cfg.Output).
		Str("charset", pool).
		Str("pattern", cfg.Pattern).
		Msg("starting generation")

	count, interrupted, gerr := wordlist.Drain(ctx, seq, writer, cfg.Generator.ProgressInterval, progress)
	if gerr != nil {
		return gerr
	}

	if cerr := writer.Close(); cerr != nil {
		return cerr
	}

	if interrupted {
		fmt.Fprintf(cmd.OutOrStdout(), "Generation interrupted. Partial wordlist saved to %s\n", cfg.Output)
		return nil
	}

	if cfg.Verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "Successfully generated %s words\n", formatCount(count))
		fmt.Fprintf(cmd.OutOrStdout(), "Saved to: %s\n", cfg.Output)
	}

	return nil
}

// newSequence builds the sequence the config describes, together with the
// expected item count. overflow reports that the count exceeds uint64.
func newSequence(c config.Config, pool string) (*wordlist.Sequence, uint64, bool) {
	if c.Pattern != "" {
		wildcards := strings.Count(c.Pattern, string(wordlist.Wildcard))
		total, err := wordlist.EstimatePattern(charsetSize(pool), wildcards)

		return wordlist.NewPattern(c.Pattern, pool), total, err != nil
	}

	total, err := wordlist.EstimateRange(charsetSize(pool), c.MinLength, c.MaxLength)

	return wordlist.NewRange(pool, c.MinLength, c.MaxLength), total, err != nil
}

// confirmLargeRun asks the user to confirm a generation above the configured
// threshold. Only an explicit "y" proceeds; no answer counts as a decline.
func confirmLargeRun(cmd *cobra.Command) bool {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Warning: Large wordlist generation may take time and disk space")
	fmt.Fprint(out, "Continue? (y/N): ")

	line, rerr := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if rerr != nil && line == "" {
		return false
	}

	return strings.EqualFold(strings.TrimSpace(line), "y")
}
