package app

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/root-xghostx/wordgen/internal/charset"
	"github.com/root-xghostx/wordgen/internal/config"
	"github.com/root-xghostx/wordgen/internal/wordlist"
)

func init() { //nolint: gochecknoinits
	addSelectionFlags(estimateCmd)

	rootCmd.AddCommand(estimateCmd)
}

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the number of combinations without writing anything",
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		if cfg, err = loadConfig(cmd); err != nil {
			return err
		}

		return cfg.FinalizeEstimate()
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		pool := charset.Build(cfg.Charset, charset.Classes{
			Lower:   cfg.Lower,
			Upper:   cfg.Upper,
			Digits:  cfg.Digits,
			Symbols: cfg.Symbols,
		})

		if pool == "" && cfg.Pattern == "" {
			return config.ErrNoCharacterSource
		}

		_, total, overflow := newSequence(cfg, pool)
		printEstimate(cmd, cfg, pool, total, overflow)

		return nil
	},
}

// printEstimate writes the pre-flight summary the original verbose mode shows.
func printEstimate(cmd *cobra.Command, c config.Config, pool string, total uint64, overflow bool) {
	out := cmd.OutOrStdout()

	if c.Pattern != "" {
		fmt.Fprintf(out, "Pattern: %s\n", c.Pattern)
		fmt.Fprintf(out, "Charset: %s\n", pool)
		fmt.Fprintf(out, "Wildcards: %d\n", strings.Count(c.Pattern, string(wordlist.Wildcard)))
	} else {
		fmt.Fprintf(out, "Charset: %s\n", pool)
		fmt.Fprintf(out, "Charset size: %d\n", charsetSize(pool))
		fmt.Fprintf(out, "Length range: %d-%d\n", c.MinLength, c.MaxLength)
	}

	if overflow {
		fmt.Fprintln(out, "Estimated combinations: too many to count")
		return
	}

	fmt.Fprintf(out, "Estimated combinations: %s\n", formatCount(total))
}

// formatCount renders n with thousands separators.
func formatCount(n uint64) string {
	if n > math.MaxInt64 {
		return strconv.FormatUint(n, 10)
	}

	return humanize.Comma(int64(n))
}

// charsetSize counts characters, not bytes.
func charsetSize(pool string) int {
	return utf8.RuneCountInString(pool)
}
