package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nglog/nglog-go/pkg/nglog"
	"github.com/spf13/cobra"
)

var (
	// tail flags
	tailLogDir         string
	tailFormat         string
	tailIncludeClasses []string
	tailExcludeClasses []string
	tailFromStart      bool
	tailPollInterval   time.Duration
)

var tailCmd = &cobra.Command{
	Use:   "tail [file]",
	Short: "Follow a growing local log and output events",
	Long: `Follow a local-variant ngLog file while the game writes it,
outputting each event as it is appended.

With a file argument, that file is followed. Otherwise the most
recently modified log in the log directory is followed, and newer log
files are picked up as the game starts new matches.

Malformed lines are reported on stderr and following continues.

Examples:
  # Follow the latest log in the auto-detected directory
  nglog tail

  # Follow one file from its beginning
  nglog tail --from-start netgame.log

  # Only player events, human-readable
  nglog tail --include-classes player --format pretty

  # Pipe to jq for filtering
  nglog tail | jq 'select(.event_id == "Connect")'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTail,
}

func init() {
	tailCmd.Flags().StringVarP(&tailLogDir, "log-dir", "d", "",
		"Log directory (auto-detected if not specified)")
	tailCmd.Flags().StringVarP(&tailFormat, "format", "f", "jsonl",
		"Output format: jsonl, pretty, text")
	tailCmd.Flags().StringSliceVar(&tailIncludeClasses, "include-classes", nil,
		"Event classes to include (comma-separated, e.g. game,player,kill)")
	tailCmd.Flags().StringSliceVar(&tailExcludeClasses, "exclude-classes", nil,
		"Event classes to exclude (comma-separated)")
	tailCmd.Flags().BoolVar(&tailFromStart, "from-start", false,
		"Read from the beginning of the file before following")
	tailCmd.Flags().DurationVar(&tailPollInterval, "poll-interval", 0,
		"How often to check for a newer log file (default 2s)")

	// Register completion for class flags
	registerClassCompletion(tailCmd, "include-classes")
	registerClassCompletion(tailCmd, "exclude-classes")
}

func runTail(cmd *cobra.Command, args []string) error {
	if !ValidFormats[tailFormat] {
		return fmt.Errorf("invalid format %q: must be one of: jsonl, pretty, text", tailFormat)
	}

	includes, err := NormalizeClasses(tailIncludeClasses)
	if err != nil {
		return err
	}
	excludes, err := NormalizeClasses(tailExcludeClasses)
	if err != nil {
		return err
	}
	if err := RejectOverlap(includes, excludes); err != nil {
		return err
	}

	if len(args) == 1 && tailLogDir != "" {
		return fmt.Errorf("a file argument and --log-dir cannot be used together")
	}

	// Setup context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var opts []nglog.WatchOption

	if len(args) == 1 {
		opts = append(opts, nglog.WithPath(args[0]))
	} else if tailLogDir != "" {
		opts = append(opts, nglog.WithLogDir(tailLogDir))
	}

	if tailFromStart {
		opts = append(opts, nglog.WithFromStart())
	}
	if tailPollInterval > 0 {
		opts = append(opts, nglog.WithPollInterval(tailPollInterval))
	}
	if len(includes) > 0 || len(excludes) > 0 {
		opts = append(opts, nglog.WithFilter(includes, excludes))
	}

	if verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		opts = append(opts, nglog.WithLogger(logger))
	}

	events, errs, err := nglog.Watch(ctx, opts...)
	if err != nil {
		return err
	}

	// Output loop
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return nil // Channel closed
			}
			if err := OutputEvent(tailFormat, event, cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("output error: %w", err)
			}

		case err, ok := <-errs:
			if !ok {
				return nil // Channel closed
			}
			// Always output errors to stderr
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)

		case <-ctx.Done():
			return nil
		}
	}
}
