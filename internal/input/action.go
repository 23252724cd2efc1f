// internal/input/action.go
package input

// Action represents an operation decoded from a key press.
type Action int

const (
	ActionUnknown Action = iota

	// --- Indentation ---
	ActionIndent // Tab
	ActionDedent // Shift+Tab

	// --- Application ---
	ActionQuit
	ActionSave
	ActionToggleAttach // Attach or detach indentation on the focused field
	ActionCycleTabWidth
	ActionCycleTabs

	// --- Cursor Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMoveHome
	ActionMoveEnd

	// --- Selection (Shift + movement) ---
	ActionSelectUp
	ActionSelectDown
	ActionSelectLeft
	ActionSelectRight
	ActionSelectHome
	ActionSelectEnd
	ActionSelectAll

	// --- Text Manipulation ---
	ActionInsertRune
	ActionInsertNewLine
	ActionDeleteCharBackward
	ActionDeleteCharForward
	ActionCopy
	ActionCut
	ActionPaste
)

var actionNames = map[Action]string{
	ActionIndent:             "indent",
	ActionDedent:             "dedent",
	ActionQuit:               "quit",
	ActionSave:               "save",
	ActionToggleAttach:       "toggle-attach",
	ActionCycleTabWidth:      "cycle-tab-width",
	ActionCycleTabs:          "cycle-tabs",
	ActionMoveUp:             "move-up",
	ActionMoveDown:           "move-down",
	ActionMoveLeft:           "move-left",
	ActionMoveRight:          "move-right",
	ActionMoveHome:           "move-home",
	ActionMoveEnd:            "move-end",
	ActionSelectUp:           "select-up",
	ActionSelectDown:         "select-down",
	ActionSelectLeft:         "select-left",
	ActionSelectRight:        "select-right",
	ActionSelectHome:         "select-home",
	ActionSelectEnd:          "select-end",
	ActionSelectAll:          "select-all",
	ActionInsertRune:         "insert-rune",
	ActionInsertNewLine:      "insert-newline",
	ActionDeleteCharBackward: "delete-backward",
	ActionDeleteCharForward:  "delete-forward",
	ActionCopy:               "copy",
	ActionCut:                "cut",
	ActionPaste:              "paste",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// IsAppAction reports whether a is handled by the host application rather
// than by the focused field.
func (a Action) IsAppAction() bool {
	switch a {
	case ActionQuit, ActionSave, ActionToggleAttach, ActionCycleTabWidth, ActionCycleTabs:
		return true
	}
	return false
}

// ActionEvent is a decoded key press, with the rune for ActionInsertRune.
type ActionEvent struct {
	Action Action
	Rune   rune
}
