package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/andy/pomodoro/internal/logging"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidUnit  = errors.New("timer unit must be positive")
	ErrInvalidLevel = errors.New("unknown log level")
)

type Config struct {
	Timer   TimerConfig   `yaml:"timer"`
	Notify  NotifyConfig  `yaml:"notify"`
	Logging LoggingConfig `yaml:"logging"`
	TUI     TUIConfig     `yaml:"tui"`
}

type TimerConfig struct {
	Unit                time.Duration `yaml:"unit"`                   // Length of one countdown step
	CancelPendingOnStop bool          `yaml:"cancel_pending_on_stop"` // Stop during the boundary delay suppresses the restart
	FullReset           bool          `yaml:"full_reset"`             // Reset also clears phase and session count
}

type NotifyConfig struct {
	Bell bool `yaml:"bell"` // Ring the terminal bell at each boundary
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Empty logs to stderr
}

type TUIConfig struct {
	AltScreen bool `yaml:"alt_screen"`
}

// DefaultConfigDir returns ~/.config/pomodoro
func DefaultConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		return filepath.Join(".", ".config", "pomodoro")
	}
	return filepath.Join(homeDir, ".config", "pomodoro")
}

// DefaultConfigPath returns ~/.config/pomodoro/config.yaml
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			Unit: time.Second,
		},
		Notify: NotifyConfig{
			Bell: true,
		},
		Logging: LoggingConfig{
			Level: logging.LevelInfo,
			File:  filepath.Join(DefaultConfigDir(), "pomodoro.log"),
		},
		TUI: TUIConfig{
			AltScreen: true,
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values that cannot be repaired by defaults
func (c *Config) Validate() error {
	if c.Timer.Unit <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidUnit, c.Timer.Unit)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("%w: %q", ErrInvalidLevel, c.Logging.Level)
	}
	return nil
}

// Marshal renders the config as YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
