// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys to actions.
type Keymap map[tcell.Key]Action

// InputProcessor translates tcell key events into ActionEvents.
type InputProcessor struct {
	keymap      Keymap // Unmodified (or Ctrl-implied) keys
	shiftKeymap Keymap // Keys pressed with Shift
}

// NewInputProcessor creates a processor with the default bindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:      make(Keymap),
		shiftKeymap: make(Keymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyEscape] = ActionQuit

	// Ctrl bindings. The tcell key itself already encodes Ctrl.
	p.keymap[tcell.KeyCtrlQ] = ActionQuit
	p.keymap[tcell.KeyCtrlS] = ActionSave
	p.keymap[tcell.KeyCtrlT] = ActionToggleAttach
	p.keymap[tcell.KeyCtrlW] = ActionCycleTabWidth
	p.keymap[tcell.KeyCtrlE] = ActionCycleTabs
	p.keymap[tcell.KeyCtrlA] = ActionSelectAll
	p.keymap[tcell.KeyCtrlC] = ActionCopy
	p.keymap[tcell.KeyCtrlX] = ActionCut
	p.keymap[tcell.KeyCtrlV] = ActionPaste

	p.shiftKeymap[tcell.KeyUp] = ActionSelectUp
	p.shiftKeymap[tcell.KeyDown] = ActionSelectDown
	p.shiftKeymap[tcell.KeyLeft] = ActionSelectLeft
	p.shiftKeymap[tcell.KeyRight] = ActionSelectRight
	p.shiftKeymap[tcell.KeyHome] = ActionSelectHome
	p.shiftKeymap[tcell.KeyEnd] = ActionSelectEnd
}

// TabAction classifies the structural Tab keys. It returns ActionIndent for
// Tab, ActionDedent for Shift+Tab (reported by tcell as KeyBacktab or as
// KeyTab with the Shift modifier) and ActionUnknown for anything else.
func TabAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyBacktab:
		return ActionDedent
	case tcell.KeyTab:
		if ev.Modifiers()&tcell.ModShift != 0 {
			return ActionDedent
		}
		return ActionIndent
	}
	return ActionUnknown
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	if action := TabAction(ev); action != ActionUnknown {
		return ActionEvent{Action: action}
	}

	key := ev.Key()
	mod := ev.Modifiers()
	// Ctrl+letter keys carry ModCtrl as well; the key alone identifies them.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	if mod&tcell.ModShift != 0 {
		if action, ok := p.shiftKeymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}
	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	// Plain (or shifted) runes are text.
	if key == tcell.KeyRune && mod&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) == 0 {
		return ActionEvent{Action: ActionInsertRune, Rune: ev.Rune()}
	}

	return ActionEvent{Action: ActionUnknown}
}
