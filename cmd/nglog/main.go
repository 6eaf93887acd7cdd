package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by ldflags)
	version = "dev"
	commit  = "none"
	date    = "unknown"

	// Global flags
	verbose    bool
	configPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nglog",
	Short: "ngLog gameplay event log tool",
	Long: `nglog decodes, parses and follows ngLog gameplay event logs.

ngLog records one gameplay event per line with tab-separated fields:
a timestamp, an optional event class, an event ID and any number of
parameters. Supported games write two copies of each log: a plain local
copy and an obscured copy intended for a stats world server. nglog
reads both forms and outputs events as JSON Lines, human-readable text
or canonical ngLog lines.`,
	SilenceUsage: true, // Don't show usage on error
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfigDefaults(cmd)
	},
}

func init() {
	// Global flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file with flag defaults (default: <user config dir>/nglog/config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(tailCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nglog %s (commit: %s, built: %s)\n", version, commit, date)
	},
}
