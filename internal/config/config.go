// Package config loads and persists finza settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all finza configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Financial  FinancialConfig  `toml:"financial"`
	Analysis   AnalysisConfig   `toml:"analysis"`
	Appearance AppearanceConfig `toml:"appearance"`
	TUI        TUIConfig        `toml:"tui"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataDir string `toml:"data_dir,omitempty"`
}

// FinancialConfig holds the financial settings the analyzer consumes.
// CategoryCaps is an array of tables so the declaration order in the
// config file is the order alerts are evaluated and reported in.
type FinancialConfig struct {
	InitialBalance      float64       `toml:"initial_balance"`
	SavingsGoalPct      float64       `toml:"savings_goal_pct"`
	CushionMonthsTarget float64       `toml:"cushion_months_target"`
	CategoryCaps        []CategoryCap `toml:"category_cap,omitempty"`
}

// CategoryCap caps one category's share of total expenses.
type CategoryCap struct {
	Category string  `toml:"category"`
	CapPct   float64 `toml:"cap_pct"`
}

// AnalysisConfig holds analyzer and display thresholds.
type AnalysisConfig struct {
	GrowthAlertPct float64 `toml:"growth_alert_pct"`
	TopCategories  int     `toml:"top_categories"`
	TrimPct        float64 `toml:"trim_pct"`
	MAWindow       int     `toml:"ma_window"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// TUIConfig holds dashboard behavior settings.
type TUIConfig struct {
	AutoRefresh        bool `toml:"auto_refresh"`
	RefreshIntervalSec int  `toml:"refresh_interval_sec"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Financial: FinancialConfig{
			InitialBalance:      0,
			SavingsGoalPct:      10,
			CushionMonthsTarget: 3,
		},
		Analysis: AnalysisConfig{
			GrowthAlertPct: 20,
			TopCategories:  6,
			TrimPct:        20,
			MAWindow:       5,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		TUI: TUIConfig{
			RefreshIntervalSec: 30,
		},
	}
}

// ConfigDir returns the config directory: FINZA_CONFIG_DIR if set,
// otherwise the XDG-compliant location.
func ConfigDir() string {
	if dir := os.Getenv("FINZA_CONFIG_DIR"); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "finza")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "finza")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the records directory: FINZA_DATA_DIR if set, then
// the configured data_dir, then the XDG data location.
func DataDir(cfg Config) string {
	if dir := os.Getenv("FINZA_DATA_DIR"); dir != "" {
		return dir
	}
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "finza")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "finza")
}

// DataFilePath returns the default records CSV path.
func DataFilePath(cfg Config) string {
	return filepath.Join(DataDir(cfg), "records.csv")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
