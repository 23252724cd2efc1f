// Package textarea implements a multi-line text field for terminal hosts.
// A Textarea exposes its content and selection as byte offsets and lets
// key listeners intercept keys before the field's own handling runs.
package textarea

import (
	"fmt"
	"unicode/utf8"

	"github.com/bethropolis/tabmate/internal/buffer"
	"github.com/bethropolis/tabmate/internal/event"
	"github.com/bethropolis/tabmate/internal/input"
	"github.com/bethropolis/tabmate/internal/logger"
	"github.com/bethropolis/tabmate/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Options configures a new Textarea.
type Options struct {
	Name      string
	Text      string
	Clipboard *Clipboard // Shared between fields; a private one is made when nil
	ScrollOff int        // Lines kept visible around the caret
}

// Textarea is a multi-line text field.
type Textarea struct {
	name      string
	buffer    *buffer.SliceBuffer
	events    *event.Manager
	input     *input.InputProcessor
	clipboard *Clipboard
	selection *selection
	cursor    *cursor

	listeners map[int]event.SubscriptionID
	nextID    int
}

// New creates a field holding opts.Text with the caret at the start.
func New(opts Options) *Textarea {
	t := &Textarea{
		name:      opts.Name,
		buffer:    buffer.NewSliceBufferFromString(opts.Text),
		events:    event.NewManager(),
		input:     input.NewInputProcessor(),
		clipboard: opts.Clipboard,
		listeners: make(map[int]event.SubscriptionID),
	}
	if t.clipboard == nil {
		t.clipboard = NewClipboard(false)
	}
	t.cursor = newCursor(t.buffer, opts.ScrollOff)
	t.selection = newSelection()
	return t
}

// Load replaces the field's content with the file at path.
func (t *Textarea) Load(path string) error {
	if err := t.buffer.Load(path); err != nil {
		return err
	}
	t.cursor.SetPosition(types.Position{})
	t.selection.Clear()
	t.textChanged()
	return nil
}

// Save writes the content to path, or to the loaded file when path is empty.
func (t *Textarea) Save(path string) error {
	if err := t.buffer.Save(path); err != nil {
		return fmt.Errorf("field %q: %w", t.name, err)
	}
	logger.Infof("saved field %q to %s", t.name, t.buffer.FilePath())
	return nil
}

func (t *Textarea) Name() string                  { return t.name }
func (t *Textarea) Events() *event.Manager        { return t.events }
func (t *Textarea) Buffer() buffer.Buffer         { return t.buffer }
func (t *Textarea) Caret() types.Position         { return t.cursor.Position() }
func (t *Textarea) SetViewSize(width, height int) { t.cursor.SetViewSize(width, height) }
func (t *Textarea) ViewportTop() int              { return t.cursor.ViewportTop() }

// Value returns the full text.
func (t *Textarea) Value() string {
	return t.buffer.String()
}

// SetValue replaces the text and moves the caret to its end.
func (t *Textarea) SetValue(text string) {
	t.buffer.SetText(text)
	last := t.buffer.LineCount() - 1
	line, _ := t.buffer.Line(last)
	t.cursor.SetPosition(types.Position{Line: last, Col: utf8.RuneCount(line)})
	t.selection.Clear()
	t.textChanged()
	t.selectionChanged()
}

// SelectionRange returns the selection as byte offsets with start <= end.
func (t *Textarea) SelectionRange() (int, int) {
	start, end := t.selectedPositions()
	s, err := t.buffer.Offset(start)
	if err != nil {
		logger.Warnf("field %q: selection start %v: %v", t.name, start, err)
	}
	e, err := t.buffer.Offset(end)
	if err != nil {
		logger.Warnf("field %q: selection end %v: %v", t.name, end, err)
	}
	return s, e
}

// SetSelectionRange selects [start, end) given as byte offsets, leaving the
// caret at end. Offsets are clamped to the text and moved back to a rune
// boundary; start is pulled down to end when it is larger.
func (t *Textarea) SetSelectionRange(start, end int) {
	text := t.buffer.String()
	end = clampOffset(text, end)
	start = clampOffset(text, min(start, end))

	startPos, _ := t.buffer.PositionAt(start)
	endPos, _ := t.buffer.PositionAt(end)
	t.selection.Set(startPos, endPos)
	t.cursor.SetPosition(endPos)
	t.selectionChanged()
}

// InsertText replaces the selection with text without offering it to key
// listeners, as for bracketed paste.
func (t *Textarea) InsertText(text string) {
	t.replaceSelection(text)
}

// SelectionPositions returns the normalised selection in line/column form.
// ok is false when only a caret is set.
func (t *Textarea) SelectionPositions() (start, end types.Position, ok bool) {
	return t.selection.Range()
}

// SelectedText returns the selected text, or "" for a caret.
func (t *Textarea) SelectedText() string {
	start, end := t.selectedPositions()
	s, err := t.buffer.Slice(start, end)
	if err != nil {
		return ""
	}
	return s
}

// AddKeyListener registers fn to see every key before the field does.
// A listener returning true consumes the key.
func (t *Textarea) AddKeyListener(fn func(ev *tcell.EventKey) bool) int {
	subID := t.events.Subscribe(event.TypeKeyDown, func(e event.Event) bool {
		data, ok := e.Data.(event.KeyDownData)
		if !ok {
			return false
		}
		return fn(data.Key)
	})
	t.nextID++
	t.listeners[t.nextID] = subID
	return t.nextID
}

// RemoveKeyListener unregisters a listener. Unknown ids are ignored.
func (t *Textarea) RemoveKeyListener(id int) {
	subID, ok := t.listeners[id]
	if !ok {
		return
	}
	delete(t.listeners, id)
	t.events.Unsubscribe(subID)
}

// HandleKey offers ev to the key listeners and, when none consumes it,
// applies the field's default behaviour. It reports whether the key was
// used by the field or a listener.
func (t *Textarea) HandleKey(ev *tcell.EventKey) bool {
	if t.events.Dispatch(event.TypeKeyDown, event.KeyDownData{Key: ev}) {
		return true
	}
	return t.apply(t.input.ProcessEvent(ev))
}

func (t *Textarea) selectedPositions() (types.Position, types.Position) {
	if start, end, ok := t.selection.Range(); ok {
		return start, end
	}
	caret := t.cursor.Position()
	return caret, caret
}

func (t *Textarea) textChanged() {
	t.events.Dispatch(event.TypeTextChanged, event.TextChangedData{
		Length:    len(t.buffer.String()),
		LineCount: t.buffer.LineCount(),
	})
}

func (t *Textarea) selectionChanged() {
	if t.events.Count(event.TypeSelectionChanged) == 0 {
		return
	}
	start, end := t.SelectionRange()
	t.events.Dispatch(event.TypeSelectionChanged, event.SelectionChangedData{
		Start: start,
		End:   end,
		Caret: t.cursor.Position(),
	})
}

// clampOffset limits off to [0, len(text)] and backs it up to a rune start.
func clampOffset(text string, off int) int {
	if off < 0 {
		return 0
	}
	if off >= len(text) {
		return len(text)
	}
	for off > 0 && !utf8.RuneStart(text[off]) {
		off--
	}
	return off
}
