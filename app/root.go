// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to an optional TOML defaults file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFilePath, "log-file", "", "Also write logs to this file (rotated)")
}

var (
	configPath  string // Path to the TOML defaults file
	logLevel    string // Log level override from the command line
	logFilePath string // Log file override from the command line

	rootCmd = &cobra.Command{
		Use:   "wordgen",
		Short: "wordgen creates custom wordlists from character sets and patterns",
		Long: `wordgen creates custom wordlists for security testing, password
auditing, or other purposes. Words are enumerated from a character set over a
length range, or by substituting a charset into the wildcard positions of a
pattern, and written one per line to an output file.`,
		Args: cobra.OnlyValidArgs,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
