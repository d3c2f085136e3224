// Package config loads and defaults the orchestrator configuration from
// a TOML file under the user's config directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

const appDirName = "tmux-orchestrator"

// Config represents the main configuration
type Config struct {
	// NotePath is the single shared check-in note file. It is overwritten
	// by every schedule call (single-slot mailbox, no history).
	NotePath string `toml:"note_path"`

	Scheduler SchedulerConfig `toml:"scheduler"`
	Capture   CaptureConfig   `toml:"capture"`
	Monitor   MonitorConfig   `toml:"monitor"`
	Send      SendConfig      `toml:"send"`
}

// SchedulerConfig holds defaults for the check-in scheduler.
type SchedulerConfig struct {
	DefaultTarget       string  `toml:"default_target"`        // session:window the check-in lands in
	DefaultDelayMinutes float64 `toml:"default_delay_minutes"` // may be fractional
	DefaultNote         string  `toml:"default_note"`
	SettleDelayMs       int     `toml:"settle_delay_ms"`  // pause between text injection and submit keystroke
	StatusProvider      string  `toml:"status_provider"`  // executable name looked up next to our own binary
}

// CaptureConfig limits pane content capture.
type CaptureConfig struct {
	MaxLines     int `toml:"max_lines"`     // hard clamp on capture size
	DefaultLines int `toml:"default_lines"` // lines captured when unspecified
}

// MonitorConfig configures the live monitor TUI.
type MonitorConfig struct {
	RefreshIntervalMs int `toml:"refresh_interval_ms"`
	TailLines         int `toml:"tail_lines"` // recent output lines shown per window
}

// SendConfig configures interactive key sending.
type SendConfig struct {
	Confirm bool `toml:"confirm"` // ask before sending keys to a pane
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		NotePath: filepath.Join(DataDir(), "next_check_note.txt"),
		Scheduler: SchedulerConfig{
			DefaultTarget:       "tmux-orc:0",
			DefaultDelayMinutes: 3,
			DefaultNote:         "Standard check-in",
			SettleDelayMs:       1000,
			StatusProvider:      "claude_control.py",
		},
		Capture: CaptureConfig{
			MaxLines:     1000,
			DefaultLines: 50,
		},
		Monitor: MonitorConfig{
			RefreshIntervalMs: 2000,
			TailLines:         10,
		},
		Send: SendConfig{
			Confirm: true,
		},
	}
}

// DefaultPath returns the config file location, honoring TMO_CONFIG and
// XDG_CONFIG_HOME.
func DefaultPath() string {
	if env := os.Getenv("TMO_CONFIG"); env != "" {
		return env
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = os.TempDir()
	}
	return filepath.Join(home, ".config", appDirName, "config.toml")
}

// DataDir returns the directory for persisted state (note file, timer logs).
// Uses XDG_DATA_HOME if set, otherwise ~/.local/share/tmux-orchestrator/.
// Falls back to the temp directory if the home directory is unavailable.
func DataDir() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			return filepath.Join(os.TempDir(), appDirName)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, appDirName)
}

// Load reads config from path, layering TOML over defaults and applying
// environment overrides. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()

	if data, err := os.ReadFile(path); err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// Env > TOML > default
	if notePath := os.Getenv("TMO_NOTE_PATH"); notePath != "" {
		cfg.NotePath = notePath
	}
	if target := os.Getenv("TMO_DEFAULT_TARGET"); target != "" {
		cfg.Scheduler.DefaultTarget = target
	}
	if provider := os.Getenv("TMO_STATUS_PROVIDER"); provider != "" {
		cfg.Scheduler.StatusProvider = provider
	}
	if delay := os.Getenv("TMO_DEFAULT_DELAY_MINUTES"); delay != "" {
		if v, err := strconv.ParseFloat(delay, 64); err == nil && v > 0 {
			cfg.Scheduler.DefaultDelayMinutes = v
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects values the scheduler cannot work with.
func (c *Config) Validate() error {
	if c.Scheduler.DefaultDelayMinutes <= 0 {
		return fmt.Errorf("scheduler.default_delay_minutes must be positive, got %v", c.Scheduler.DefaultDelayMinutes)
	}
	if c.Scheduler.SettleDelayMs < 0 {
		return fmt.Errorf("scheduler.settle_delay_ms cannot be negative, got %d", c.Scheduler.SettleDelayMs)
	}
	if c.Capture.MaxLines <= 0 {
		return fmt.Errorf("capture.max_lines must be positive, got %d", c.Capture.MaxLines)
	}
	return nil
}

// Save writes the config as TOML to path, creating parent directories.
func (c *Config) Save(path string) error {
	if path == "" {
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}
