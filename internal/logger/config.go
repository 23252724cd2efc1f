// Package logger wraps log/slog with printf-style helpers and filtering by
// tag, package and file.
package logger

import (
	"log/slog"
	"strings"
)

// Config holds all settings for the logger. It is decoded from the [logger]
// table of the config file.
type Config struct {
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `toml:"log_level"`

	// LogFilePath is the output log file. Empty or "-" means stderr.
	LogFilePath string `toml:"log_file"`

	// EnabledTags only logs tagged messages with these tags (if non-empty).
	EnabledTags []string `toml:"enabled_tags"`
	// DisabledTags drops messages with these tags. Overrides EnabledTags.
	DisabledTags []string `toml:"disabled_tags"`

	// EnabledPackages only logs messages from these packages (if non-empty).
	// A package is the directory name of the calling file, e.g. "textarea".
	EnabledPackages []string `toml:"enabled_packages"`
	// DisabledPackages drops messages from these packages.
	DisabledPackages []string `toml:"disabled_packages"`

	// EnabledFiles only logs messages from these base file names (if non-empty).
	EnabledFiles []string `toml:"enabled_files"`
	// DisabledFiles drops messages from these base file names.
	DisabledFiles []string `toml:"disabled_files"`
}

// NewConfig returns the default logger settings.
func NewConfig() Config {
	return Config{LogLevel: "info"}
}

// Level parses LogLevel, defaulting to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// filterSet is the processed, lower-cased form of one allow/deny pair.
type filterSet struct {
	allow map[string]struct{}
	deny  map[string]struct{}
}

func newFilterSet(allow, deny []string) filterSet {
	return filterSet{allow: toSet(allow), deny: toSet(deny)}
}

// permits reports whether key passes the filter. An empty key only fails
// when an allow list exists.
func (f filterSet) permits(key string) bool {
	key = strings.ToLower(key)
	if _, denied := f.deny[key]; denied && key != "" {
		return false
	}
	if f.allow == nil {
		return true
	}
	_, ok := f.allow[key]
	return ok
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item = strings.ToLower(strings.TrimSpace(item)); item != "" {
			set[item] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}
