package config

import "time"

// Base application details
const (
	AppName               = "tabmate"
	Version               = "0.1.0"
	DefaultConfigFileName = "config.toml"
	DefaultLogFileName    = "tabmate.log"
	ThemesDirName         = "themes"
)

// Editor defaults
const (
	DefaultFields    = 2
	DefaultScrollOff = 2
	DefaultTheme     = "Tabmate Dark"
	SystemClipboard  = false
)

// Status Bar
const MessageTimeout = 4 * time.Second

// Option cycles used by the Ctrl+W and Ctrl+E hotkeys.
var (
	DefaultTabWidthCycle = []int{2, 4, 8}
	DefaultTabsCycle     = []int{1, 2, 3}
)
