package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"practicejournal/internal/challenges"
)

// Config holds all journal configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Lesson runner and history
	Journal JournalConfig `yaml:"journal"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Defaults for the day 8 config builder
	Server ServerDefaults `yaml:"server"`
}

// JournalConfig configures lesson execution and run history.
type JournalConfig struct {
	// SQLite run-history database, relative to the workspace unless absolute
	DatabasePath string `yaml:"database_path"`

	// Maximum lessons executed at once by `run --all`
	Concurrency int `yaml:"concurrency"`

	// Disable lipgloss styling
	Plain bool `yaml:"plain"`

	// Directory lessons write files into (errors.txt), relative to the workspace
	OutputDir string `yaml:"output_dir"`

	// Record runs in the history database
	RecordHistory bool `yaml:"record_history"`
}

// LoggingConfig configures categorized file logging.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Level      string          `yaml:"level"` // debug, info, warn, error
	JSONFormat bool            `yaml:"json_format"`
	Categories map[string]bool `yaml:"categories,omitempty"`
}

// ServerDefaults are the baseline settings the config builder merges over.
type ServerDefaults struct {
	Port  int    `yaml:"port"`
	Host  string `yaml:"host"`
	Debug bool   `yaml:"debug"`
}

// envOverrides lists the environment variables that override file settings.
// Pointer fields stay nil when the variable is unset.
type envOverrides struct {
	DatabasePath *string `env:"JOURNAL_DB"`
	Debug        *bool   `env:"JOURNAL_DEBUG"`
	LogLevel     *string `env:"JOURNAL_LOG_LEVEL"`
	Concurrency  *int    `env:"JOURNAL_CONCURRENCY"`
	Plain        *bool   `env:"JOURNAL_PLAIN"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "journal",
		Version: "1.0.0",

		Journal: JournalConfig{
			DatabasePath:  filepath.Join(".journal", "history.db"),
			Concurrency:   4,
			Plain:         false,
			OutputDir:     ".journal/out",
			RecordHistory: true,
		},

		Logging: LoggingConfig{
			DebugMode:  false,
			Level:      "info",
			JSONFormat: false,
		},

		Server: ServerDefaults{
			Port:  8080,
			Host:  "localhost",
			Debug: false,
		},
	}
}

// DefaultPath returns the config file location inside a workspace.
func DefaultPath(workspace string) string {
	return filepath.Join(workspace, ".journal", "config.yaml")
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if o.DatabasePath != nil && *o.DatabasePath != "" {
		c.Journal.DatabasePath = *o.DatabasePath
	}
	if o.Debug != nil {
		c.Logging.DebugMode = *o.Debug
	}
	if o.LogLevel != nil && *o.LogLevel != "" {
		c.Logging.Level = *o.LogLevel
	}
	if o.Concurrency != nil {
		c.Journal.Concurrency = *o.Concurrency
	}
	if o.Plain != nil {
		c.Journal.Plain = *o.Plain
	}
	return nil
}

// ResolvePath joins a workspace-relative path onto the workspace.
func ResolvePath(workspace, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(workspace, p)
}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Journal.Concurrency < 1 {
		return fmt.Errorf("journal.concurrency must be at least 1, got %d", c.Journal.Concurrency)
	}

	validLevel := false
	for _, l := range ValidLogLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}

	if c.Server.Port < challenges.MinServerPort || c.Server.Port > challenges.MaxServerPort {
		return fmt.Errorf("server.port must be between %d and %d, got %d",
			challenges.MinServerPort, challenges.MaxServerPort, c.Server.Port)
	}

	return nil
}
