// internal/tui/drawing.go
package tui

import (
	"fmt"
	"strconv"

	"github.com/bethropolis/tabmate/internal/buffer"
	"github.com/bethropolis/tabmate/internal/theme"
	"github.com/bethropolis/tabmate/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// displayTabWidth is the tab stop used when a field contains literal tabs.
const displayTabWidth = 4

// Rect is a screen region.
type Rect struct {
	X, Y, W, H int
}

// Field is what DrawField needs from a text field.
type Field interface {
	Name() string
	Buffer() buffer.Buffer
	Caret() types.Position
	SelectionPositions() (start, end types.Position, ok bool)
	ViewportTop() int
	SetViewSize(width, height int)
}

// FieldView carries the per-draw decoration of a field.
type FieldView struct {
	Focused    bool
	Title      string                      // Shown in the top border; the field name when empty
	Highlights map[int][]types.StyledRange // Syntax ranges by line, byte columns
}

// DrawField draws a field with a one-line title border at r.Y and its text
// below. It returns the screen position of the caret and whether it is
// inside the field.
func DrawField(s tcell.Screen, r Rect, f Field, view FieldView, th *theme.Theme) (cx, cy int, visible bool) {
	if r.W <= 0 || r.H <= 0 {
		return 0, 0, false
	}
	drawTitle(s, r, f, view, th)

	textRows := r.H - 1
	if textRows <= 0 {
		return 0, 0, false
	}
	f.SetViewSize(r.W, textRows)

	defStyle := th.GetStyle("Default")
	gutterStyle := th.GetStyle("Gutter")
	selStyle := th.GetStyle("Selection")
	selStart, selEnd, selActive := f.SelectionPositions()
	caret := f.Caret()

	lines := f.Buffer().Lines()
	top := f.ViewportTop()
	gutter := gutterWidth(len(lines), r.W)
	digits := gutter - 1

	for row := 0; row < textRows; row++ {
		y := r.Y + 1 + row
		lineIdx := top + row
		for x := r.X; x < r.X+r.W; x++ {
			s.SetContent(x, y, ' ', nil, defStyle)
		}
		if lineIdx >= len(lines) {
			continue
		}

		if gutter > 0 {
			style := gutterStyle
			if lineIdx == caret.Line {
				style = th.GetStyle("GutterCurrent")
			}
			drawString(s, r.X, y, fmt.Sprintf("%*d", digits, lineIdx+1), style, r.X+gutter-1)
		}

		line := lines[lineIdx]
		ranges := view.Highlights[lineIdx]
		right := r.X + r.W
		x := r.X + gutter
		visual, byteCol, runeCol := 0, 0, 0

		gr := uniseg.NewGraphemes(string(line))
		for gr.Next() && x < right {
			runes := gr.Runes()
			width := gr.Width()
			if runes[0] == '\t' {
				width = displayTabWidth - visual%displayTabWidth
			}

			style := defStyle
			for _, hl := range ranges {
				if byteCol >= hl.StartCol && byteCol < hl.EndCol {
					style = th.GetStyle(hl.StyleName)
				}
			}
			pos := types.Position{Line: lineIdx, Col: runeCol}
			if selActive && !pos.Before(selStart) && pos.Before(selEnd) {
				style = selStyle
			}

			if runes[0] == '\t' {
				for i := 0; i < width && x+i < right; i++ {
					s.SetContent(x+i, y, ' ', nil, style)
				}
			} else if x+width <= right {
				s.SetContent(x, y, runes[0], runes[1:], style)
			}

			x += width
			visual += width
			byteCol += len(gr.Str())
			runeCol += len(runes)
		}

		// A selected line break shows as one highlighted cell.
		eol := types.Position{Line: lineIdx, Col: runeCol}
		if selActive && !eol.Before(selStart) && eol.Before(selEnd) && x < right {
			s.SetContent(x, y, ' ', nil, selStyle)
		}
	}

	cy = r.Y + 1 + caret.Line - top
	if caret.Line < top || cy >= r.Y+r.H {
		return 0, 0, false
	}
	line, err := f.Buffer().Line(caret.Line)
	if err != nil {
		return 0, 0, false
	}
	cx = r.X + gutter + VisualColumn(line, caret.Col)
	if cx >= r.X+r.W {
		return 0, 0, false
	}
	return cx, cy, true
}

func drawTitle(s tcell.Screen, r Rect, f Field, view FieldView, th *theme.Theme) {
	style := th.GetStyle("FieldBorder")
	if view.Focused {
		style = th.GetStyle("FieldBorderFocused")
	}
	for x := r.X; x < r.X+r.W; x++ {
		s.SetContent(x, r.Y, tcell.RuneHLine, nil, style)
	}
	title := view.Title
	if title == "" {
		title = f.Name()
	}
	if title != "" {
		drawString(s, r.X+2, r.Y, " "+title+" ", th.GetStyle("FieldTitle"), r.X+r.W)
	}
}

// drawString draws text from x, stopping before limit.
func drawString(s tcell.Screen, x, y int, text string, style tcell.Style, limit int) {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		w := gr.Width()
		if x+w > limit {
			return
		}
		runes := gr.Runes()
		s.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
}

// gutterWidth is the line-number column plus one space, or 0 when the
// field is too narrow to spare it.
func gutterWidth(lineCount, width int) int {
	w := len(strconv.Itoa(max(lineCount, 1))) + 1
	if w >= width {
		return 0
	}
	return w
}

// VisualColumn converts a rune column on line to screen cells, expanding
// tabs and counting wide graphemes.
func VisualColumn(line []byte, runeCol int) int {
	visual, col := 0, 0
	gr := uniseg.NewGraphemes(string(line))
	for col < runeCol && gr.Next() {
		runes := gr.Runes()
		if runes[0] == '\t' {
			visual += displayTabWidth - visual%displayTabWidth
		} else {
			visual += gr.Width()
		}
		col += len(runes)
	}
	return visual
}
