// internal/event/events.go
package event

import (
	"github.com/bethropolis/tabmate/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Surface events
	TypeKeyDown          // Raw key press, before the surface's default handling
	TypeTextChanged      // Surface content was replaced or edited
	TypeSelectionChanged // Caret or selection moved
	TypeFocusTraversal   // Unhandled Tab/Shift+Tab asks the host to move focus

	// Indentation handle events
	TypeAttached       // An indentation handle started listening
	TypeDetached       // An indentation handle stopped listening
	TypeOptionsChanged // Indentation options were updated
)

func (t Type) String() string {
	switch t {
	case TypeKeyDown:
		return "KeyDown"
	case TypeTextChanged:
		return "TextChanged"
	case TypeSelectionChanged:
		return "SelectionChanged"
	case TypeFocusTraversal:
		return "FocusTraversal"
	case TypeAttached:
		return "Attached"
	case TypeDetached:
		return "Detached"
	case TypeOptionsChanged:
		return "OptionsChanged"
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// KeyDownData carries the raw tcell key event.
type KeyDownData struct {
	Key *tcell.EventKey
}

// TextChangedData describes the surface content after a change.
type TextChangedData struct {
	Length    int
	LineCount int
}

// SelectionChangedData carries the new selection in byte offsets and the
// caret position in line/rune-column form.
type SelectionChangedData struct {
	Start, End int
	Caret      types.Position
}

// FocusTraversalData tells the host which way focus should move.
type FocusTraversalData struct {
	Forward bool
}

// OptionsChangedData carries the effective indent width after an update.
type OptionsChangedData struct {
	Tabs, TabWidth int
}
