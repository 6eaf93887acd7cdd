package nglog

import (
	"fmt"
	"log/slog"
	"time"
)

// DefaultPollInterval is how often the watcher checks for a newer log
// file when following a directory.
const DefaultPollInterval = 2 * time.Second

// WatchOption configures watcher behavior using the functional options
// pattern.
type WatchOption func(*watchConfig)

// watchConfig holds internal configuration for the watcher.
type watchConfig struct {
	logDir       string
	path         string
	pollInterval time.Duration
	fromStart    bool
	logger       *slog.Logger
	filter       *Filter
}

// defaultWatchConfig returns a watchConfig with sensible defaults.
func defaultWatchConfig() *watchConfig {
	return &watchConfig{
		pollInterval: DefaultPollInterval,
	}
}

// applyWatchOptions applies functional options to a watchConfig.
func applyWatchOptions(opts []WatchOption) *watchConfig {
	cfg := defaultWatchConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// validate checks for invalid option combinations.
func (c *watchConfig) validate() error {
	if c.path != "" && c.logDir != "" {
		return fmt.Errorf("path and log directory cannot both be set")
	}
	if c.pollInterval < 0 {
		return fmt.Errorf("poll interval must be non-negative, got %v", c.pollInterval)
	}
	return nil
}

// WithLogDir sets the directory to watch. The most recently modified
// log file in it is followed, and newer files are picked up as the game
// starts new logs. If neither this nor WithPath is set, the directory
// is auto-detected (NGLOG_DIR, then conventional locations).
func WithLogDir(dir string) WatchOption {
	return func(c *watchConfig) {
		c.logDir = dir
	}
}

// WithPath follows one explicit log file instead of a directory.
// No rotation detection is performed.
func WithPath(path string) WatchOption {
	return func(c *watchConfig) {
		c.path = path
	}
}

// WithPollInterval sets how often to check for a newer log file.
// Default: 2 seconds.
func WithPollInterval(interval time.Duration) WatchOption {
	return func(c *watchConfig) {
		c.pollInterval = interval
	}
}

// WithFromStart reads from the beginning of the log file before
// following, instead of only new lines.
func WithFromStart() WatchOption {
	return func(c *watchConfig) {
		c.fromStart = true
	}
}

// WithLogger sets the slog logger for debug output.
// If nil (default), logging is disabled.
func WithLogger(logger *slog.Logger) WatchOption {
	return func(c *watchConfig) {
		c.logger = logger
	}
}

// WithFilter sets both include and exclude class filters.
// Exclude takes precedence over include.
func WithFilter(include, exclude []string) WatchOption {
	return func(c *watchConfig) {
		c.filter = NewFilter(include, exclude)
	}
}

// WithIncludeClasses filters events to only the specified classes.
// If called multiple times, only the last call takes effect.
func WithIncludeClasses(classes ...string) WatchOption {
	return func(c *watchConfig) {
		if c.filter == nil {
			c.filter = &Filter{}
		}
		c.filter.include = make(map[string]struct{}, len(classes))
		for _, cl := range classes {
			c.filter.include[cl] = struct{}{}
		}
	}
}

// WithExcludeClasses filters out events of the specified classes.
// Exclude takes precedence over include.
// If called multiple times, only the last call takes effect.
func WithExcludeClasses(classes ...string) WatchOption {
	return func(c *watchConfig) {
		if c.filter == nil {
			c.filter = &Filter{}
		}
		c.filter.exclude = make(map[string]struct{}, len(classes))
		for _, cl := range classes {
			c.filter.exclude[cl] = struct{}{}
		}
	}
}
