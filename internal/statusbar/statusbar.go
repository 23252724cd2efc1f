// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/tabmate/internal/theme"
	"github.com/bethropolis/tabmate/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultMessageTimeout is how long temporary messages stay visible.
const DefaultMessageTimeout = 4 * time.Second

// State is the focused field's information shown on the bar.
type State struct {
	FieldName      string
	Modified       bool
	Caret          types.Position
	SelStart       int
	SelEnd         int
	Attached       bool
	Tabs, TabWidth int
	Language       string
}

// StatusBar is the bottom line of the screen.
type StatusBar struct {
	mu             sync.RWMutex
	state          State
	messageTimeout time.Duration

	tempMessage     string
	tempMessageTime time.Time
	now             func() time.Time
}

// New creates a status bar. A zero timeout uses DefaultMessageTimeout.
func New(messageTimeout time.Duration) *StatusBar {
	if messageTimeout <= 0 {
		messageTimeout = DefaultMessageTimeout
	}
	return &StatusBar{messageTimeout: messageTimeout, now: time.Now}
}

// SetState replaces the displayed field state.
func (sb *StatusBar) SetState(s State) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.state = s
}

// SetTemporaryMessage shows a message until the timeout passes.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// Left returns the left-aligned segment.
func (s State) Left() string {
	name := s.FieldName
	if name == "" {
		name = "[No Name]"
	}
	if s.Modified {
		name += " [+]"
	}
	text := fmt.Sprintf("%s  Ln %d, Col %d", name, s.Caret.Line+1, s.Caret.Col+1)
	if s.SelEnd > s.SelStart {
		text += fmt.Sprintf("  Sel %d-%d", s.SelStart, s.SelEnd)
	}
	return text
}

// Right returns the right-aligned segment.
func (s State) Right() string {
	lang := s.Language
	if lang == "" {
		lang = "plain"
	}
	if !s.Attached {
		return fmt.Sprintf("%s  tab: focus", lang)
	}
	return fmt.Sprintf("%s  tab: indent %dx%d", lang, s.Tabs, s.TabWidth)
}

// Draw renders the bar on row y.
func (sb *StatusBar) Draw(screen tcell.Screen, width, y int, th *theme.Theme) {
	if width <= 0 || y < 0 {
		return
	}

	sb.mu.Lock()
	msgActive := !sb.tempMessageTime.IsZero() && sb.now().Sub(sb.tempMessageTime) <= sb.messageTimeout
	if !sb.tempMessageTime.IsZero() && !msgActive {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}
	msg := sb.tempMessage
	state := sb.state
	sb.mu.Unlock()

	base := th.GetStyle("StatusBar")
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, base)
	}

	if msgActive {
		drawText(screen, 0, y, runewidth.Truncate(msg, width, "…"), th.GetStyle("StatusBarMessage"))
		return
	}

	right := state.Right()
	rightWidth := runewidth.StringWidth(right)
	leftMax := width - rightWidth - 1
	if leftMax < 1 {
		drawText(screen, 0, y, runewidth.Truncate(state.Left(), width, "…"), base)
		return
	}
	drawText(screen, 0, y, runewidth.Truncate(state.Left(), leftMax, "…"), base)

	rightStyle := th.GetStyle("StatusBarDetached")
	if state.Attached {
		rightStyle = th.GetStyle("StatusBarAttached")
	}
	drawText(screen, width-rightWidth, y, right, rightStyle)
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes := gr.Runes()
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x += gr.Width()
	}
}
