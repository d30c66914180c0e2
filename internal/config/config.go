// SPDX-License-Identifier: MIT

// Package config handles sixdeg configuration: a YAML file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sixdeg/internal/logging"
	"github.com/katalvlaran/sixdeg/internal/telemetry"
)

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "sixdeg"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
	// DefaultCenter is the center of the universe when none is configured.
	DefaultCenter = "Kevin Bacon"
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "SIXDEG_"
)

// Validation errors.
var (
	ErrNoDataSource       = errors.New("config: no data source configured")
	ErrAmbiguousSource    = errors.New("config: both files and sqlite configured")
	ErrIncompleteFiles    = errors.New("config: entities, groups and memberships files are all required")
	ErrEmptyCenter        = errors.New("config: center is empty")
	ErrInvalidEnvOverride = errors.New("config: invalid environment override")
)

// Data names the record sources: three pipe-delimited files or one SQLite database.
type Data struct {
	Entities    string `yaml:"entities,omitempty"`
	Groups      string `yaml:"groups,omitempty"`
	Memberships string `yaml:"memberships,omitempty"`
	SQLite      string `yaml:"sqlite,omitempty"`
}

// Log configures the stderr logger.
type Log struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Metrics toggles the metrics dump after each command.
type Metrics struct {
	Enabled bool `yaml:"enabled,omitempty"`
}

// Tracing selects the span exporter.
type Tracing struct {
	Exporter string `yaml:"exporter,omitempty"`
}

// Build configures graph construction.
type Build struct {
	Strict bool `yaml:"strict,omitempty"`
}

// Config is the full sixdeg configuration.
type Config struct {
	Data    Data    `yaml:"data"`
	Center  string  `yaml:"center,omitempty"`
	Log     Log     `yaml:"log,omitempty"`
	Metrics Metrics `yaml:"metrics,omitempty"`
	Tracing Tracing `yaml:"tracing,omitempty"`
	Build   Build   `yaml:"build,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Center:  DefaultCenter,
		Log:     Log{Level: "info", Format: logging.FormatText},
		Tracing: Tracing{Exporter: telemetry.ExporterNone},
	}
}

// DefaultPath returns the path to the user config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/sixdeg/config.yml.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load reads path over the defaults.
// Returns the defaults (not an error) if path is empty or doesn't exist.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.expandPaths()

	return cfg, nil
}

// ApplyEnv overrides fields from SIXDEG_* variables looked up with getenv.
// A nil getenv means os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}
	str := map[string]*string{
		"CENTER":         &c.Center,
		"ENTITIES":       &c.Data.Entities,
		"GROUPS":         &c.Data.Groups,
		"MEMBERSHIPS":    &c.Data.Memberships,
		"SQLITE":         &c.Data.SQLite,
		"LOG_LEVEL":      &c.Log.Level,
		"LOG_FORMAT":     &c.Log.Format,
		"TRACE_EXPORTER": &c.Tracing.Exporter,
	}
	for key, dst := range str {
		if v := getenv(EnvPrefix + key); v != "" {
			*dst = v
		}
	}

	flags := map[string]*bool{
		"METRICS": &c.Metrics.Enabled,
		"STRICT":  &c.Build.Strict,
	}
	for key, dst := range flags {
		v := getenv(EnvPrefix + key)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalidEnvOverride, EnvPrefix, key, v)
		}
		*dst = b
	}
	c.expandPaths()

	return nil
}

// Validate checks that c names exactly one usable data source and valid
// logging and tracing settings.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Center) == "" {
		return ErrEmptyCenter
	}

	files := []string{c.Data.Entities, c.Data.Groups, c.Data.Memberships}
	set := 0
	for _, f := range files {
		if f != "" {
			set++
		}
	}
	switch {
	case set == 0 && c.Data.SQLite == "":
		return ErrNoDataSource
	case set > 0 && c.Data.SQLite != "":
		return ErrAmbiguousSource
	case set > 0 && set < len(files):
		return ErrIncompleteFiles
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("config: log.format: %w: %q", logging.ErrUnknownFormat, c.Log.Format)
	}
	switch c.Tracing.Exporter {
	case "", telemetry.ExporterNone, telemetry.ExporterStdout:
	default:
		return fmt.Errorf("config: tracing.exporter: %w: %q", telemetry.ErrUnknownExporter, c.Tracing.Exporter)
	}

	return nil
}

// UsesSQLite reports whether records come from the SQLite database.
func (c *Config) UsesSQLite() bool {
	return c.Data.SQLite != ""
}

func (c *Config) expandPaths() {
	for _, p := range []*string{&c.Data.Entities, &c.Data.Groups, &c.Data.Memberships, &c.Data.SQLite} {
		*p = ExpandTilde(*p)
	}
}

// ExpandTilde expands a leading ~ to the user's home directory.
func ExpandTilde(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
