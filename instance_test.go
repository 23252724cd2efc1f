package tabmate

import (
	"errors"
	"math"
	"testing"

	"github.com/bethropolis/tabmate/internal/event"
	"github.com/bethropolis/tabmate/internal/textarea"
	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
)

var (
	tabKey      = tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)
	backtabKey  = tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone)
	shiftTabKey = tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModShift)
)

func TestAttachIndentsOnTab(t *testing.T) {
	field := textarea.New(textarea.Options{Text: "Line one\nLine two\nLine three"})
	inst, err := Attach(field, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer inst.Detach()

	field.SetSelectionRange(0, 9)
	if !field.HandleKey(tabKey) {
		t.Fatal("Tab not handled")
	}
	if got, want := field.Value(), "  Line one\n  Line two\nLine three"; got != want {
		t.Errorf("Value() = %q, want %q", got, want)
	}
	if s, e := field.SelectionRange(); s != 2 || e != 13 {
		t.Errorf("SelectionRange() = (%d, %d), want (2, 13)", s, e)
	}

	field.HandleKey(shiftTabKey)
	if got, want := field.Value(), "Line one\nLine two\nLine three"; got != want {
		t.Errorf("after Shift+Tab Value() = %q, want %q", got, want)
	}
	if s, e := field.SelectionRange(); s != 0 || e != 9 {
		t.Errorf("after Shift+Tab SelectionRange() = (%d, %d), want (0, 9)", s, e)
	}

	field.HandleKey(tabKey)
	field.HandleKey(backtabKey)
	if got, want := field.Value(), "Line one\nLine two\nLine three"; got != want {
		t.Errorf("after Backtab Value() = %q, want %q", got, want)
	}
}

func TestCaretTab(t *testing.T) {
	field := textarea.New(textarea.Options{Text: "ab"})
	inst, err := Attach(field, &Overrides{Tabs: Int(2), TabWidth: Int(4)})
	if err != nil {
		t.Fatal(err)
	}
	defer inst.Detach()

	field.SetSelectionRange(1, 1)
	field.HandleKey(tabKey)
	if got := field.Value(); got != "a        b" {
		t.Errorf("Value() = %q", got)
	}
	if s, e := field.SelectionRange(); s != 9 || e != 9 {
		t.Errorf("caret at (%d, %d), want 9", s, e)
	}
}

func TestDetachRestoresFocusTraversal(t *testing.T) {
	field := textarea.New(textarea.Options{Text: "x"})
	traversals := 0
	field.Events().Subscribe(event.TypeFocusTraversal, func(event.Event) bool {
		traversals++
		return true
	})

	inst, err := Attach(field, nil)
	if err != nil {
		t.Fatal(err)
	}
	field.HandleKey(tabKey)
	if traversals != 0 {
		t.Fatal("attached Tab moved focus")
	}

	inst.Detach()
	inst.Detach()
	if inst.Attached() {
		t.Error("Attached() after Detach")
	}
	before := field.Value()
	field.HandleKey(tabKey)
	if traversals != 1 {
		t.Errorf("traversals = %d, want 1", traversals)
	}
	if field.Value() != before {
		t.Errorf("detached Tab edited text: %q", field.Value())
	}
}

func TestOptions(t *testing.T) {
	field := textarea.New(textarea.Options{})
	inst, err := Attach(field, &Overrides{TabWidth: Int(100)})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Options{Tabs: 1, TabWidth: 100}, inst.Options()); diff != "" {
		t.Errorf("Options() (-want +got):\n%s", diff)
	}

	if err := inst.UpdateOptions(Overrides{Tabs: Int(3)}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Options{Tabs: 3, TabWidth: 100}, inst.Options()); diff != "" {
		t.Errorf("after update (-want +got):\n%s", diff)
	}

	err = inst.UpdateOptions(Overrides{TabWidth: Int(-1)})
	if !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("UpdateOptions(-1) err = %v, want ErrInvalidOptions", err)
	}
	if got := inst.Options(); got.TabWidth != 100 {
		t.Errorf("rejected update changed options to %v", got)
	}
}

func TestAttachRejectsBadInput(t *testing.T) {
	if _, err := Attach(nil, nil); err == nil {
		t.Error("Attach(nil) succeeded")
	}
	if _, err := Attach((*textarea.Textarea)(nil), nil); err == nil {
		t.Error("Attach with a nil *Textarea succeeded")
	}
	field := textarea.New(textarea.Options{})
	if _, err := Attach(field, &Overrides{Tabs: Int(-2)}); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("Attach err = %v, want ErrInvalidOptions", err)
	}
	huge := &Overrides{Tabs: Int(4), TabWidth: Int(math.MaxInt / 2)}
	if _, err := Attach(field, huge); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("Attach with overflowing width err = %v, want ErrInvalidOptions", err)
	}
}

func TestAttachPublishesEvents(t *testing.T) {
	field := textarea.New(textarea.Options{})
	var got []event.Type
	for _, typ := range []event.Type{event.TypeAttached, event.TypeDetached, event.TypeOptionsChanged} {
		field.Events().Subscribe(typ, func(e event.Event) bool {
			got = append(got, e.Type)
			return false
		})
	}

	inst, err := Attach(field, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := inst.UpdateOptions(Overrides{TabWidth: Int(4)}); err != nil {
		t.Fatal(err)
	}
	inst.Detach()

	want := []event.Type{event.TypeAttached, event.TypeOptionsChanged, event.TypeDetached}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

// badTarget reports a selection that does not fit its text.
type badTarget struct {
	listener KeyListener
	sets     int
}

func (b *badTarget) Value() string              { return "abc" }
func (b *badTarget) SelectionRange() (int, int) { return 2, 1 }
func (b *badTarget) SetValue(string)            { b.sets++ }
func (b *badTarget) SetSelectionRange(int, int) { b.sets++ }
func (b *badTarget) RemoveKeyListener(int)      { b.listener = nil }

func (b *badTarget) AddKeyListener(fn KeyListener) int {
	b.listener = fn
	return 1
}

func TestInvalidSelectionLeavesTargetUntouched(t *testing.T) {
	target := &badTarget{}
	if _, err := Attach(target, nil); err != nil {
		t.Fatal(err)
	}
	if !target.listener(tabKey) {
		t.Error("key not consumed on failure")
	}
	if target.sets != 0 {
		t.Errorf("target written %d times", target.sets)
	}
	if target.listener(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)) {
		t.Error("non-Tab key consumed")
	}
}

func TestPureEntryPoints(t *testing.T) {
	res, err := Tab("a\nb", Selection{Start: 0, End: 3}, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	want := Result{Text: "  a\n  b", Selection: Selection{Start: 2, End: 7}}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("Tab (-want +got):\n%s", diff)
	}

	res, err = ShiftTab(res.Text, res.Selection, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	want = Result{Text: "a\nb", Selection: Selection{Start: 0, End: 3}}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("ShiftTab (-want +got):\n%s", diff)
	}
}
