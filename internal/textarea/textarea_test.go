package textarea

import (
	"testing"

	"github.com/bethropolis/tabmate/internal/event"
	"github.com/bethropolis/tabmate/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
)

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func shift(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModShift)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestSelectionRangeRoundTrip(t *testing.T) {
	ta := New(Options{Text: "a:\n  bé: 1\n"})
	cases := []struct {
		name               string
		start, end         int
		wantStart, wantEnd int
	}{
		{"caret", 3, 3, 3, 3},
		{"range", 2, 9, 2, 9},
		{"reversed pulls start down", 6, 4, 4, 4},
		{"mid rune backs up", 0, 7, 0, 6},
		{"clamped", -5, 99, 0, 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ta.SetSelectionRange(tc.start, tc.end)
			s, e := ta.SelectionRange()
			if s != tc.wantStart || e != tc.wantEnd {
				t.Errorf("SelectionRange() = (%d, %d), want (%d, %d)", s, e, tc.wantStart, tc.wantEnd)
			}
		})
	}
}

func TestSetValueMovesCaretToEnd(t *testing.T) {
	ta := New(Options{Text: "x"})
	var changed []event.TextChangedData
	ta.Events().Subscribe(event.TypeTextChanged, func(e event.Event) bool {
		changed = append(changed, e.Data.(event.TextChangedData))
		return false
	})

	ta.SetValue("one\ntwo")
	if got := ta.Value(); got != "one\ntwo" {
		t.Fatalf("Value() = %q", got)
	}
	if s, e := ta.SelectionRange(); s != 7 || e != 7 {
		t.Errorf("SelectionRange() = (%d, %d), want (7, 7)", s, e)
	}
	want := []event.TextChangedData{{Length: 7, LineCount: 2}}
	if diff := cmp.Diff(want, changed); diff != "" {
		t.Errorf("TextChanged events (-want +got):\n%s", diff)
	}
}

func TestTyping(t *testing.T) {
	ta := New(Options{Text: "ac"})
	ta.HandleKey(key(tcell.KeyRight))
	ta.HandleKey(runeKey('b'))
	ta.HandleKey(key(tcell.KeyEnd))
	ta.HandleKey(key(tcell.KeyEnter))
	ta.HandleKey(runeKey('d'))
	if got := ta.Value(); got != "abc\nd" {
		t.Fatalf("Value() = %q", got)
	}
	if got := ta.Caret(); got != (types.Position{Line: 1, Col: 1}) {
		t.Errorf("Caret() = %v", got)
	}

	ta.HandleKey(key(tcell.KeyBackspace2))
	ta.HandleKey(key(tcell.KeyBackspace2))
	if got := ta.Value(); got != "abc" {
		t.Errorf("after backspace Value() = %q", got)
	}
	ta.HandleKey(key(tcell.KeyHome))
	ta.HandleKey(key(tcell.KeyDelete))
	if got := ta.Value(); got != "bc" {
		t.Errorf("after delete Value() = %q", got)
	}
}

func TestGraphemeMovement(t *testing.T) {
	// e + combining acute is one grapheme of two runes.
	ta := New(Options{Text: "ae\u0301b"})
	ta.HandleKey(key(tcell.KeyRight))
	ta.HandleKey(key(tcell.KeyRight))
	if got := ta.Caret().Col; got != 3 {
		t.Errorf("caret col after two Rights = %d, want 3", got)
	}
	ta.HandleKey(key(tcell.KeyBackspace2))
	if got := ta.Value(); got != "ab" {
		t.Errorf("backspace over cluster left %q", got)
	}
}

func TestShiftSelection(t *testing.T) {
	ta := New(Options{Text: "hello\nworld"})
	ta.HandleKey(key(tcell.KeyRight))
	ta.HandleKey(shift(tcell.KeyRight))
	ta.HandleKey(shift(tcell.KeyDown))
	s, e := ta.SelectionRange()
	if s != 1 || e != 8 {
		t.Fatalf("SelectionRange() = (%d, %d), want (1, 8)", s, e)
	}
	if got := ta.SelectedText(); got != "ello\nwo" {
		t.Errorf("SelectedText() = %q", got)
	}

	ta.HandleKey(runeKey('X'))
	if got := ta.Value(); got != "hXrld" {
		t.Errorf("typing over selection gave %q", got)
	}
}

func TestMoveCollapsesSelection(t *testing.T) {
	ta := New(Options{Text: "abcdef"})
	ta.SetSelectionRange(2, 4)
	ta.HandleKey(key(tcell.KeyLeft))
	if s, e := ta.SelectionRange(); s != 2 || e != 2 {
		t.Errorf("Left collapsed to (%d, %d), want (2, 2)", s, e)
	}
	ta.SetSelectionRange(2, 4)
	ta.HandleKey(key(tcell.KeyRight))
	if s, e := ta.SelectionRange(); s != 4 || e != 4 {
		t.Errorf("Right collapsed to (%d, %d), want (4, 4)", s, e)
	}
}

func TestClipboard(t *testing.T) {
	clip := NewClipboard(false)
	src := New(Options{Text: "copy me", Clipboard: clip})
	dst := New(Options{Text: "> ", Clipboard: clip})

	src.HandleKey(key(tcell.KeyCtrlA))
	src.HandleKey(tcell.NewEventKey(tcell.KeyCtrlX, 0, tcell.ModCtrl))
	if got := src.Value(); got != "" {
		t.Errorf("cut left %q", got)
	}

	dst.HandleKey(key(tcell.KeyEnd))
	dst.HandleKey(tcell.NewEventKey(tcell.KeyCtrlV, 0, tcell.ModCtrl))
	if got := dst.Value(); got != "> copy me" {
		t.Errorf("paste gave %q", got)
	}
}

func TestKeyListeners(t *testing.T) {
	ta := New(Options{Text: ""})
	var seen int
	id := ta.AddKeyListener(func(ev *tcell.EventKey) bool {
		seen++
		return ev.Key() == tcell.KeyRune && ev.Rune() == 'z'
	})

	ta.HandleKey(runeKey('z'))
	ta.HandleKey(runeKey('y'))
	if got := ta.Value(); got != "y" {
		t.Errorf("Value() = %q, want consumed z dropped", got)
	}
	if seen != 2 {
		t.Errorf("listener saw %d keys, want 2", seen)
	}

	ta.RemoveKeyListener(id)
	ta.RemoveKeyListener(id)
	ta.HandleKey(runeKey('z'))
	if got := ta.Value(); got != "yz" {
		t.Errorf("after removal Value() = %q", got)
	}
	if seen != 2 {
		t.Errorf("removed listener still called")
	}
}

func TestUnclaimedTabRequestsFocusTraversal(t *testing.T) {
	ta := New(Options{Text: "a"})
	var dirs []bool
	ta.Events().Subscribe(event.TypeFocusTraversal, func(e event.Event) bool {
		dirs = append(dirs, e.Data.(event.FocusTraversalData).Forward)
		return true
	})

	if !ta.HandleKey(key(tcell.KeyTab)) {
		t.Error("Tab not reported as handled")
	}
	ta.HandleKey(key(tcell.KeyBacktab))
	if diff := cmp.Diff([]bool{true, false}, dirs); diff != "" {
		t.Errorf("traversal directions (-want +got):\n%s", diff)
	}
	if got := ta.Value(); got != "a" {
		t.Errorf("Tab edited the text: %q", got)
	}
}

func TestViewportFollowsCaret(t *testing.T) {
	ta := New(Options{Text: "0\n1\n2\n3\n4\n5\n6\n7\n8\n9", ScrollOff: 1})
	ta.SetViewSize(10, 4)
	for i := 0; i < 6; i++ {
		ta.HandleKey(key(tcell.KeyDown))
	}
	if got := ta.ViewportTop(); got != 4 {
		t.Errorf("ViewportTop() = %d, want 4", got)
	}
}
