// internal/config/config.go
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/tabmate/internal/core/indent"
	"github.com/bethropolis/tabmate/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger  logger.Config  `toml:"logger"`
	Tabmate indent.Options `toml:"tabmate"`
	Editor  EditorConfig   `toml:"editor"`
}

// EditorConfig holds settings of the demo host.
type EditorConfig struct {
	Fields          int    `toml:"fields"`   // Number of stacked text fields
	Language        string `toml:"language"` // Highlight language; detected from the file name when empty
	Theme           string `toml:"theme"`    // Theme name or path to a .toml theme file
	ScrollOff       int    `toml:"scroll_off"`
	SystemClipboard bool   `toml:"system_clipboard"`
	TabWidthCycle   []int  `toml:"tab_width_cycle"`
	TabsCycle       []int  `toml:"tabs_cycle"`
}

// NewDefaultConfig creates a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: DefaultLogPath(),
		},
		Tabmate: indent.DefaultOptions(),
		Editor: EditorConfig{
			Fields:          DefaultFields,
			Theme:           DefaultTheme,
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: SystemClipboard,
			TabWidthCycle:   append([]int(nil), DefaultTabWidthCycle...),
			TabsCycle:       append([]int(nil), DefaultTabsCycle...),
		},
	}
}

// DefaultLogPath is the log file used when none is configured. Logging to
// stderr would draw over the terminal UI.
func DefaultLogPath() string {
	return filepath.Join(os.TempDir(), DefaultLogFileName)
}

// DefaultConfigPath is ~/.config/tabmate/config.toml, or "" when the user
// config directory is unknown.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

// loadFromFile decodes filePath over cfg. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	meta, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		// The logger is not set up yet; the caller reports this later.
		return &UnknownKeysError{Path: filePath, Keys: fmt.Sprint(undecoded)}
	}
	return nil
}

// UnknownKeysError reports config keys that matched no setting. The rest of
// the file was still applied.
type UnknownKeysError struct {
	Path string
	Keys string
}

func (e *UnknownKeysError) Error() string {
	return fmt.Sprintf("config file '%s': unrecognized keys %s", e.Path, e.Keys)
}

// validate resets invalid values to their defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if err := c.Tabmate.Validate(); err != nil {
		c.Tabmate = defaults.Tabmate
	}
	if c.Editor.Fields < 1 {
		c.Editor.Fields = defaults.Editor.Fields
	}
	if c.Editor.ScrollOff < 0 {
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Editor.Theme == "" {
		c.Editor.Theme = defaults.Editor.Theme
	}
	c.Editor.TabWidthCycle = positive(c.Editor.TabWidthCycle, defaults.Editor.TabWidthCycle)
	c.Editor.TabsCycle = positive(c.Editor.TabsCycle, defaults.Editor.TabsCycle)
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// positive returns the non-negative entries of values, or def when none
// remain.
func positive(values, def []int) []int {
	out := values[:0:0]
	for _, v := range values {
		if v >= 0 {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// LoadConfig builds the configuration from defaults, then the config file
// (configFilePath, or the default location when empty), then any flags set
// on fs. Invalid values fall back to defaults. A non-nil error with a
// usable config means the file was only partly applied.
func LoadConfig(configFilePath string, fs *flag.FlagSet, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	path := configFilePath
	if path == "" {
		path = DefaultConfigPath()
	}
	var loadErr error
	if path != "" {
		loadErr = loadFromFile(path, cfg)
		var unknown *UnknownKeysError
		if loadErr != nil && !errors.As(loadErr, &unknown) {
			cfg = NewDefaultConfig()
		}
	}

	if fs != nil && flags != nil {
		flags.ApplyOverrides(fs, cfg)
	}
	cfg.validate()
	return cfg, loadErr
}
