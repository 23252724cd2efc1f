package app

import (
	"fmt"

	"github.com/bethropolis/tabmate/internal/statusbar"
	"github.com/bethropolis/tabmate/internal/tui"
)

// layout splits the rows above the status bar evenly between the fields.
// The last field takes the remainder.
func layout(width, height, n int) []tui.Rect {
	avail := height - 1
	if n <= 0 || avail <= 0 {
		return nil
	}
	each := avail / n
	rects := make([]tui.Rect, n)
	y := 0
	for i := range rects {
		h := each
		if i == n-1 {
			h = avail - y
		}
		rects[i] = tui.Rect{X: 0, Y: y, W: width, H: h}
		y += h
	}
	return rects
}

func (a *App) draw() {
	screen := a.tuiManager.Screen()
	th := a.themeManager.Current()
	width, height := a.tuiManager.Size()

	a.tuiManager.Clear()
	screen.HideCursor()

	for i, r := range layout(width, height, len(a.fields)) {
		f := a.fields[i]
		view := tui.FieldView{
			Focused:    i == a.focus,
			Title:      a.fieldTitle(f),
			Highlights: f.Highlights(),
		}
		cx, cy, visible := tui.DrawField(screen, r, f.ta, view, th)
		if i == a.focus && visible {
			screen.ShowCursor(cx, cy)
		}
	}

	a.updateStatusBar()
	a.statusBar.Draw(screen, width, height-1, th)
	a.tuiManager.Show()
}

func (a *App) fieldTitle(f *field) string {
	title := f.ta.Name()
	if f.ta.Buffer().IsModified() {
		title += " [+]"
	}
	if !f.attached() {
		title += " (detached)"
	}
	return title
}

func (a *App) updateStatusBar() {
	f := a.focused()
	start, end := f.ta.SelectionRange()
	opts := f.options()
	a.statusBar.SetState(statusbar.State{
		FieldName: fmt.Sprintf("[%d/%d] %s", a.focus+1, len(a.fields), f.ta.Name()),
		Modified:  f.ta.Buffer().IsModified(),
		Caret:     f.ta.Caret(),
		SelStart:  start,
		SelEnd:    end,
		Attached:  f.attached(),
		Tabs:      opts.Tabs,
		TabWidth:  opts.TabWidth,
		Language:  f.languageName(),
	})
}
