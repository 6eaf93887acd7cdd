package main

import (
	"fmt"

	"github.com/nglog/nglog-go/pkg/nglog"
	"github.com/spf13/cobra"
)

var (
	// parse flags
	parseLogDir         string
	parseFormat         string
	parseWorld          bool
	parseIncludeClasses []string
	parseExcludeClasses []string
)

var parseCmd = &cobra.Command{
	Use:   "parse [files...]",
	Short: "Parse ngLog files and output events",
	Long: `Parse ngLog files and output their events.

With file arguments, each file is parsed in order. Without arguments,
all log files in the log directory are parsed oldest first (the
directory is auto-detected unless --log-dir or NGLOG_DIR is set).

Parsing is fail-fast: the first malformed line in a file aborts with an
error naming the line.

Examples:
  # Parse a local log
  nglog parse netgame_2024-01-15.log

  # Parse a world-variant (obscured) log
  nglog parse --world netgame_2024-01-15.log

  # Parse everything in a stats directory
  nglog parse --log-dir ./NetGamesLocal

  # Only kill events, human-readable
  nglog parse --include-classes kill --format pretty netgame.log

  # Pipe to jq for filtering
  nglog parse netgame.log | jq 'select(.event_class == "player")'`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseLogDir, "log-dir", "d", "",
		"Log directory (auto-detected if not specified)")
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "jsonl",
		"Output format: jsonl, pretty, text")
	parseCmd.Flags().BoolVarP(&parseWorld, "world", "w", false,
		"Treat inputs as world-variant (obscured) logs")
	parseCmd.Flags().StringSliceVar(&parseIncludeClasses, "include-classes", nil,
		"Event classes to include (comma-separated, e.g. game,player,kill)")
	parseCmd.Flags().StringSliceVar(&parseExcludeClasses, "exclude-classes", nil,
		"Event classes to exclude (comma-separated)")

	// Register completion for class flags
	registerClassCompletion(parseCmd, "include-classes")
	registerClassCompletion(parseCmd, "exclude-classes")
}

func runParse(cmd *cobra.Command, args []string) error {
	if !ValidFormats[parseFormat] {
		return fmt.Errorf("invalid format %q: must be one of: jsonl, pretty, text", parseFormat)
	}

	includes, err := NormalizeClasses(parseIncludeClasses)
	if err != nil {
		return err
	}
	excludes, err := NormalizeClasses(parseExcludeClasses)
	if err != nil {
		return err
	}
	if err := RejectOverlap(includes, excludes); err != nil {
		return err
	}
	filter := nglog.NewFilter(includes, excludes)

	files := args
	if len(files) == 0 {
		dir, err := nglog.FindLogDir(parseLogDir)
		if err != nil {
			return err
		}
		files, err = nglog.LogFiles(dir)
		if err != nil {
			return err
		}
	}

	for _, file := range files {
		var log nglog.Log
		if parseWorld {
			log, err = nglog.ParseWorldFile(file)
		} else {
			log, err = nglog.ParseLocalFile(file)
		}
		if err != nil {
			return fmt.Errorf("parsing %s: %w", file, err)
		}

		for _, ev := range filter.Apply(log) {
			if err := OutputEvent(parseFormat, ev, cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
		}
	}

	return nil
}
