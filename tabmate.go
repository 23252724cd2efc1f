// Package tabmate adds editor-style indentation to multi-line text fields.
//
// Attach a Target and Tab indents the lines touched by the selection (or
// inserts spaces at a caret) while Shift+Tab dedents them, instead of the
// field's default of moving focus. The selection is remapped so the user
// keeps the same logical text selected. Tab and ShiftTab expose the same
// computation as pure functions for hosts that do their own key handling.
package tabmate

import "github.com/bethropolis/tabmate/internal/core/indent"

// Options configures the indent step: Tabs units of TabWidth spaces each.
type Options = indent.Options

// Selection is a byte range [Start, End) into a field's text.
type Selection = indent.Selection

// Result is the text and selection after an indent operation.
type Result = indent.Result

// Errors returned for bad input. Returned errors wrap one of these.
var (
	ErrInvalidRange   = indent.ErrInvalidRange
	ErrInvalidOptions = indent.ErrInvalidOptions
)

// DefaultOptions returns one unit of two spaces.
func DefaultOptions() Options {
	return indent.DefaultOptions()
}

// Tab computes the effect of a Tab keypress on text with selection sel.
func Tab(text string, sel Selection, opts Options) (Result, error) {
	return indent.Tab(text, sel, opts)
}

// ShiftTab computes the effect of a Shift+Tab keypress.
func ShiftTab(text string, sel Selection, opts Options) (Result, error) {
	return indent.ShiftTab(text, sel, opts)
}
