// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"strings"
)

// Flags holds values parsed from command-line flags. Only flags that were
// set on the command line override the config file.
type Flags struct {
	ConfigFilePath  *string
	Version         *bool
	LogLevel        *string
	LogFilePath     *string
	Tabs            *int
	TabWidth        *int
	Fields          *int
	Language        *string
	Theme           *string
	SystemClipboard *bool
	EnableTags      *string
	DisableTags     *string
	EnablePkgs      *string
	DisablePkgs     *string
	EnableFiles     *string
	DisableFiles    *string
	DebugLog        *bool
}

// DefineFlags registers the flags on fs.
func (f *Flags) DefineFlags(fs *flag.FlagSet) {
	f.ConfigFilePath = fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	f.Version = fs.Bool("version", false, "Show version information and exit")
	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = fs.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.Tabs = fs.Int("tabs", -1, "Indent units per Tab press - Overrides config file")
	f.TabWidth = fs.Int("tabwidth", -1, "Spaces per indent unit - Overrides config file")
	f.Fields = fs.Int("fields", 0, "Number of text fields to show - Overrides config file")
	f.Language = fs.String("language", "", "Highlight language (yaml, go); detected from the file name when empty")
	f.Theme = fs.String("theme", "", "Theme name or path to a .toml theme file - Overrides config file")
	f.SystemClipboard = fs.Bool("system-clipboard", false, "Use system clipboard instead of internal clipboard")
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	f.EnablePkgs = fs.String("log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	f.DisablePkgs = fs.String("log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	f.EnableFiles = fs.String("log-files", "", "Comma-separated list of files to enable - Overrides config file")
	f.DisableFiles = fs.String("log-disable-files", "", "Comma-separated list of files to disable - Overrides config file")
	f.DebugLog = fs.Bool("debug-log", false, "Enable verbose debug logging for the logger filtering system")
}

// ParseFlags defines the flags on fs, parses args and returns the
// remaining positional arguments.
func (f *Flags) ParseFlags(fs *flag.FlagSet, args []string) ([]string, error) {
	f.DefineFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}

// ApplyOverrides copies every flag set on fs into cfg. Out-of-range
// numbers are left for validate to reset.
func (f *Flags) ApplyOverrides(fs *flag.FlagSet, cfg *Config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			cfg.Logger.LogLevel = *f.LogLevel
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "tabs":
			cfg.Tabmate.Tabs = *f.Tabs
		case "tabwidth":
			cfg.Tabmate.TabWidth = *f.TabWidth
		case "fields":
			cfg.Editor.Fields = *f.Fields
		case "language":
			cfg.Editor.Language = *f.Language
		case "theme":
			cfg.Editor.Theme = *f.Theme
		case "system-clipboard":
			cfg.Editor.SystemClipboard = *f.SystemClipboard
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(*f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(*f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = splitCommaList(*f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = splitCommaList(*f.DisableFiles)
		}
	})
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
