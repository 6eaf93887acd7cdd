package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// cliConfig holds defaults loaded from an optional YAML config file.
// Values apply only to flags the user did not set explicitly.
type cliConfig struct {
	LogDir       string `yaml:"log_dir"`
	Format       string `yaml:"format"`
	PollInterval string `yaml:"poll_interval"`
}

// defaultConfigPath returns the conventional config file location, or
// empty when the user config dir cannot be determined.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "nglog", "config.yaml")
}

// loadConfig reads and parses a YAML config file.
func loadConfig(path string) (*cliConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg cliConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// loadConfigDefaults applies config file values as defaults for the
// running command's flags. A missing default-location file is not an
// error; a missing file named via --config is.
func loadConfigDefaults(cmd *cobra.Command) error {
	path := configPath
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return nil
		}
	}

	cfg, err := loadConfig(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	if cfg.PollInterval != "" {
		if _, err := time.ParseDuration(cfg.PollInterval); err != nil {
			return fmt.Errorf("invalid poll_interval in %s: %w", path, err)
		}
	}

	apply := func(name, value string) error {
		f := cmd.Flags().Lookup(name)
		if f == nil || f.Changed {
			return nil
		}
		return f.Value.Set(value)
	}

	if cfg.LogDir != "" {
		if err := apply("log-dir", cfg.LogDir); err != nil {
			return err
		}
	}
	if cfg.Format != "" {
		if err := apply("format", cfg.Format); err != nil {
			return err
		}
	}
	if cfg.PollInterval != "" {
		if err := apply("poll-interval", cfg.PollInterval); err != nil {
			return err
		}
	}
	return nil
}
