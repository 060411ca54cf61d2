package app

import (
	"github.com/spf13/cobra"

	"github.com/root-xghostx/wordgen/internal/config"
	"github.com/root-xghostx/wordgen/internal/logger"
)

// Word selection flags shared by the generate and estimate commands. Only one
// command runs per invocation, so the commands can share the backing vars.
var (
	flagCharset string
	flagPattern string
	flagLower   bool
	flagUpper   bool
	flagDigits  bool
	flagSymbols bool
	flagLength  int
	flagMin     int
	flagMax     int
)

// addSelectionFlags registers the charset, pattern and length flags on cmd.
func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagCharset, "charset", "c", "", `Custom character set (e.g. "abc123")`)
	cmd.Flags().StringVarP(&flagPattern, "pattern", "p", "", `Pattern with ? as wildcard (e.g. "pass???")`)
	cmd.Flags().BoolVar(&flagLower, "lower", false, "Include lowercase letters (a-z)")
	cmd.Flags().BoolVar(&flagUpper, "upper", false, "Include uppercase letters (A-Z)")
	cmd.Flags().BoolVar(&flagDigits, "digits", false, "Include digits (0-9)")
	cmd.Flags().BoolVar(&flagSymbols, "symbols", false, "Include common symbols (!@#$%^&* etc.)")
	cmd.Flags().IntVarP(&flagLength, "length", "l", 0, "Fixed length for all words")
	cmd.Flags().IntVarP(&flagMin, "min-length", "m", config.DefaultMinLength, "Minimum word length")
	cmd.Flags().IntVarP(&flagMax, "max-length", "M", config.DefaultMaxLength, "Maximum word length")
}

// loadConfig reads the TOML defaults file and layers the command line flags on
// top. A flag only overrides the file when it was set on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Read(configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()

	if flags.Changed("charset") {
		cfg.Charset = flagCharset
	}

	if flags.Changed("pattern") {
		cfg.Pattern = flagPattern
	}

	if flagLower {
		cfg.Lower = true
	}

	if flagUpper {
		cfg.Upper = true
	}

	if flagDigits {
		cfg.Digits = true
	}

	if flagSymbols {
		cfg.Symbols = true
	}

	if flags.Changed("length") {
		cfg.Length = flagLength
	}

	if flags.Changed("min-length") {
		cfg.MinLength = flagMin
	}

	if flags.Changed("max-length") {
		cfg.MaxLength = flagMax
	}

	if logLevel != "" {
		cfg.Log.LogLevel = logLevel
	}

	if logFilePath != "" {
		cfg.Log.File.Enabled = true
		cfg.Log.File.Path = logFilePath
	}

	return cfg, logger.Init(cfg.Log)
}
