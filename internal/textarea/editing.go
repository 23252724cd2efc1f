package textarea

import (
	"github.com/bethropolis/tabmate/internal/event"
	"github.com/bethropolis/tabmate/internal/input"
	"github.com/bethropolis/tabmate/internal/logger"
	"github.com/bethropolis/tabmate/internal/types"
)

// apply runs the field's default behaviour for a decoded key.
func (t *Textarea) apply(ev input.ActionEvent) bool {
	switch ev.Action {
	case input.ActionIndent, input.ActionDedent:
		// Unclaimed Tab keys move focus, as in a plain form field.
		return t.events.Dispatch(event.TypeFocusTraversal, event.FocusTraversalData{
			Forward: ev.Action == input.ActionIndent,
		})

	case input.ActionMoveLeft:
		if start, _, ok := t.selection.Range(); ok {
			t.collapseTo(start)
		} else {
			t.move(t.cursor.Left)
		}
	case input.ActionMoveRight:
		if _, end, ok := t.selection.Range(); ok {
			t.collapseTo(end)
		} else {
			t.move(t.cursor.Right)
		}
	case input.ActionMoveUp:
		t.move(t.cursor.Up)
	case input.ActionMoveDown:
		t.move(t.cursor.Down)
	case input.ActionMoveHome:
		t.move(t.cursor.Home)
	case input.ActionMoveEnd:
		t.move(t.cursor.End)

	case input.ActionSelectLeft:
		t.extend(t.cursor.Left)
	case input.ActionSelectRight:
		t.extend(t.cursor.Right)
	case input.ActionSelectUp:
		t.extend(t.cursor.Up)
	case input.ActionSelectDown:
		t.extend(t.cursor.Down)
	case input.ActionSelectHome:
		t.extend(t.cursor.Home)
	case input.ActionSelectEnd:
		t.extend(t.cursor.End)
	case input.ActionSelectAll:
		t.SetSelectionRange(0, len(t.buffer.String()))

	case input.ActionInsertRune:
		t.replaceSelection(string(ev.Rune))
	case input.ActionInsertNewLine:
		t.replaceSelection("\n")
	case input.ActionDeleteCharBackward:
		t.deleteChar(t.cursor.Left)
	case input.ActionDeleteCharForward:
		t.deleteChar(t.cursor.Right)

	case input.ActionCopy:
		t.copySelection()
	case input.ActionCut:
		if t.copySelection() {
			t.replaceSelection("")
		}
	case input.ActionPaste:
		if text := t.clipboard.Read(); text != "" {
			t.replaceSelection(text)
		}

	default:
		return false
	}
	return true
}

func (t *Textarea) move(step func()) {
	t.selection.Clear()
	step()
	t.selectionChanged()
}

func (t *Textarea) extend(step func()) {
	from := t.cursor.Position()
	step()
	t.selection.Extend(from, t.cursor.Position())
	t.selectionChanged()
}

func (t *Textarea) collapseTo(pos types.Position) {
	t.selection.Clear()
	t.cursor.SetPosition(pos)
	t.selectionChanged()
}

// replaceSelection swaps the selection (or inserts at the caret) for text
// and leaves the caret after it.
func (t *Textarea) replaceSelection(text string) {
	start, end := t.selectedPositions()
	if start != end {
		if err := t.buffer.Delete(start, end); err != nil {
			logger.Warnf("field %q: delete %v-%v: %v", t.name, start, end, err)
			return
		}
	}
	pos, err := t.buffer.Insert(start, []byte(text))
	if err != nil {
		logger.Warnf("field %q: insert at %v: %v", t.name, start, err)
		return
	}
	t.selection.Clear()
	t.cursor.SetPosition(pos)
	t.textChanged()
	t.selectionChanged()
}

// deleteChar removes the selection, or the grapheme that step moves over.
func (t *Textarea) deleteChar(step func()) {
	if _, _, ok := t.selection.Range(); ok {
		t.replaceSelection("")
		return
	}
	from := t.cursor.Position()
	step()
	to := t.cursor.Position()
	if from == to {
		return
	}
	if err := t.buffer.Delete(from, to); err != nil {
		logger.Warnf("field %q: delete %v-%v: %v", t.name, from, to, err)
		return
	}
	if to.Before(from) {
		from = to
	}
	t.cursor.SetPosition(from)
	t.textChanged()
	t.selectionChanged()
}

func (t *Textarea) copySelection() bool {
	text := t.SelectedText()
	if text == "" {
		return false
	}
	if err := t.clipboard.Write(text); err != nil {
		logger.Warnf("field %q: %v", t.name, err)
	}
	return true
}
