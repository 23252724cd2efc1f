// internal/core/indent/options.go
package indent

import (
	"fmt"
	"strings"
)

// Default indentation settings.
const (
	DefaultTabs     = 1
	DefaultTabWidth = 2

	// MaxWidth caps Tabs*TabWidth.
	MaxWidth = 1 << 12
)

// Options configures one indent step. The effective width is Tabs*TabWidth
// spaces; literal tab characters are never inserted.
type Options struct {
	Tabs     int `toml:"tabs"`      // Indent units per keypress
	TabWidth int `toml:"tab_width"` // Spaces per unit
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Tabs: DefaultTabs, TabWidth: DefaultTabWidth}
}

// Width is the number of spaces inserted or removed per step.
func (o Options) Width() int {
	return o.Tabs * o.TabWidth
}

// Unit returns the whitespace string for one step.
func (o Options) Unit() string {
	if o.Width() <= 0 {
		return ""
	}
	return strings.Repeat(" ", o.Width())
}

// Validate rejects negative values and widths above MaxWidth.
func (o Options) Validate() error {
	if o.Tabs < 0 {
		return fmt.Errorf("%w: tabs must be >= 0, got %d", ErrInvalidOptions, o.Tabs)
	}
	if o.TabWidth < 0 {
		return fmt.Errorf("%w: tab width must be >= 0, got %d", ErrInvalidOptions, o.TabWidth)
	}
	// Checked by division so the product cannot overflow.
	if o.TabWidth != 0 && o.Tabs > MaxWidth/o.TabWidth {
		return fmt.Errorf("%w: tabs*tab width must be <= %d, got %d*%d", ErrInvalidOptions, MaxWidth, o.Tabs, o.TabWidth)
	}
	return nil
}

func (o Options) String() string {
	return fmt.Sprintf("tabs=%d tabWidth=%d", o.Tabs, o.TabWidth)
}
