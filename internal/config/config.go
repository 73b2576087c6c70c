// Package config provides configuration management for pomo.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"github.com/xvierd/pomo/internal/domain"
)

// DefaultDataDir is the data directory written into a fresh config file.
const DefaultDataDir = "~/.pomo"

// Config holds all configuration for the pomo application.
type Config struct {
	Profile string        `mapstructure:"profile"`
	Theme   ThemeConfig   `mapstructure:"theme"`
	History HistoryConfig `mapstructure:"history"`
	Git     GitConfig     `mapstructure:"git"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
}

// ThemeConfig holds colors and the ring size.
type ThemeConfig struct {
	ColorWork   string `mapstructure:"color_work"`
	ColorRest   string `mapstructure:"color_rest"`
	ColorPaused string `mapstructure:"color_paused"`
	ColorTitle  string `mapstructure:"color_title"`
	ColorHelp   string `mapstructure:"color_help"`
	RingRadius  int    `mapstructure:"ring_radius"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorWork:   "#E4572E",
		ColorRest:   "#4ECDC4",
		ColorPaused: "#6B7280",
		ColorTitle:  "#6B7280",
		ColorHelp:   "#95A5A6",
		RingRadius:  8,
	}
}

// HistoryConfig controls the completed-phase log.
type HistoryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// GitConfig controls tagging history records with the current branch.
type GitConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// LogConfig holds logging settings. An empty File means <data_dir>/pomo.log.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Profile: string(domain.ProfileStandard),
		Theme:   DefaultThemeConfig(),
		History: HistoryConfig{Enabled: true},
		Git:     GitConfig{Enabled: true},
		Storage: StorageConfig{DataDir: DefaultDataDir},
		Log:     LogConfig{Level: "info"},
	}
}

// configPathOverride is set by SetConfigPath for --config and tests.
var configPathOverride string

// SetConfigPath makes Load and Save use path instead of ~/.pomo/config.toml.
// An empty path restores the default.
func SetConfigPath(path string) {
	configPathOverride = path
}

// Load loads the configuration from the config file, creating it with
// defaults if it does not exist yet.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	v := newViper(configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.ExpandDataDir(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper(configPath)
	for key, value := range cfg.values() {
		v.Set(key, value)
	}

	return v.WriteConfigAs(configPath)
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	if configPathOverride != "" {
		return configPathOverride, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".pomo", "config.toml"), nil
}

// GetDBPath returns the path to the history database.
func GetDBPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "pomo.db")
}

// GetLogPath returns the path of the log file.
func GetLogPath(cfg *Config) string {
	if cfg.Log.File != "" {
		return cfg.Log.File
	}
	return filepath.Join(cfg.Storage.DataDir, "pomo.log")
}

// ProfileDurations resolves the configured profile into phase lengths.
func (c *Config) ProfileDurations() (domain.Durations, error) {
	p, err := domain.ValidateProfile(c.Profile)
	if err != nil {
		return domain.Durations{}, err
	}
	return p.Durations(), nil
}

// newViper returns a viper instance bound to path with all defaults set.
// A private instance keeps Load and Save from leaking state between calls.
func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	for key, value := range DefaultConfig().values() {
		v.SetDefault(key, value)
	}
	return v
}

// values flattens the config into viper keys.
func (c *Config) values() map[string]any {
	return map[string]any{
		"profile":            c.Profile,
		"theme.color_work":   c.Theme.ColorWork,
		"theme.color_rest":   c.Theme.ColorRest,
		"theme.color_paused": c.Theme.ColorPaused,
		"theme.color_title":  c.Theme.ColorTitle,
		"theme.color_help":   c.Theme.ColorHelp,
		"theme.ring_radius":  c.Theme.RingRadius,
		"history.enabled":    c.History.Enabled,
		"git.enabled":        c.Git.Enabled,
		"storage.data_dir":   c.Storage.DataDir,
		"log.level":          c.Log.Level,
		"log.file":           c.Log.File,
	}
}

// Keys returns every settable key, sorted.
func Keys() []string {
	values := DefaultConfig().values()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ExpandDataDir resolves a leading ~ in the data directory. Load calls it;
// configs built in code must call it before use.
func (c *Config) ExpandDataDir() error {
	dir := c.Storage.DataDir
	if dir == "" {
		dir = DefaultDataDir
	}
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(homeDir, strings.TrimPrefix(dir, "~"))
	}
	c.Storage.DataDir = dir
	return nil
}
