package textarea

import (
	"unicode/utf8"

	"github.com/bethropolis/tabmate/internal/buffer"
	"github.com/bethropolis/tabmate/internal/types"
	"github.com/rivo/uniseg"
)

// cursor tracks the caret and the first visible line.
type cursor struct {
	buffer      buffer.Buffer
	position    types.Position
	viewportTop int
	viewHeight  int
	scrollOff   int
}

func newCursor(buf buffer.Buffer, scrollOff int) *cursor {
	return &cursor{buffer: buf, scrollOff: scrollOff}
}

func (c *cursor) Position() types.Position { return c.position }

func (c *cursor) ViewportTop() int { return c.viewportTop }

func (c *cursor) SetViewSize(_, height int) {
	c.viewHeight = height
	c.scrollToCursor()
}

// SetPosition clamps pos to the buffer and snaps it to a grapheme boundary.
func (c *cursor) SetPosition(pos types.Position) {
	lineCount := c.buffer.LineCount()
	if pos.Line >= lineCount {
		pos.Line = lineCount - 1
	}
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	line, _ := c.buffer.Line(pos.Line)
	pos.Col = snapToBoundary(line, pos.Col)
	c.position = pos
	c.scrollToCursor()
}

// Left moves one grapheme back, wrapping to the end of the previous line.
func (c *cursor) Left() {
	pos := c.position
	if pos.Col == 0 {
		if pos.Line == 0 {
			return
		}
		prev, _ := c.buffer.Line(pos.Line - 1)
		c.SetPosition(types.Position{Line: pos.Line - 1, Col: utf8.RuneCount(prev)})
		return
	}
	line, _ := c.buffer.Line(pos.Line)
	bounds := graphemeBoundaries(line)
	col := 0
	for _, b := range bounds {
		if b >= pos.Col {
			break
		}
		col = b
	}
	c.SetPosition(types.Position{Line: pos.Line, Col: col})
}

// Right moves one grapheme forward, wrapping to the start of the next line.
func (c *cursor) Right() {
	pos := c.position
	line, _ := c.buffer.Line(pos.Line)
	if pos.Col >= utf8.RuneCount(line) {
		if pos.Line+1 < c.buffer.LineCount() {
			c.SetPosition(types.Position{Line: pos.Line + 1})
		}
		return
	}
	for _, b := range graphemeBoundaries(line) {
		if b > pos.Col {
			c.SetPosition(types.Position{Line: pos.Line, Col: b})
			return
		}
	}
}

func (c *cursor) Up() {
	if c.position.Line > 0 {
		c.SetPosition(types.Position{Line: c.position.Line - 1, Col: c.position.Col})
	}
}

func (c *cursor) Down() {
	if c.position.Line+1 < c.buffer.LineCount() {
		c.SetPosition(types.Position{Line: c.position.Line + 1, Col: c.position.Col})
	}
}

func (c *cursor) Home() {
	c.SetPosition(types.Position{Line: c.position.Line})
}

func (c *cursor) End() {
	line, _ := c.buffer.Line(c.position.Line)
	c.SetPosition(types.Position{Line: c.position.Line, Col: utf8.RuneCount(line)})
}

// scrollToCursor keeps the caret inside the viewport with scrollOff lines of
// context where the buffer allows.
func (c *cursor) scrollToCursor() {
	if c.viewHeight <= 0 {
		return
	}
	off := c.scrollOff
	if maxOff := (c.viewHeight - 1) / 2; off > maxOff {
		off = maxOff
	}
	if c.position.Line < c.viewportTop+off {
		c.viewportTop = c.position.Line - off
	}
	if c.position.Line >= c.viewportTop+c.viewHeight-off {
		c.viewportTop = c.position.Line - c.viewHeight + off + 1
	}
	if c.viewportTop < 0 {
		c.viewportTop = 0
	}
}

// graphemeBoundaries returns the rune indices at which grapheme clusters of
// line start, followed by the line's rune count.
func graphemeBoundaries(line []byte) []int {
	bounds := []int{0}
	col := 0
	gr := uniseg.NewGraphemes(string(line))
	for gr.Next() {
		col += len(gr.Runes())
		bounds = append(bounds, col)
	}
	return bounds
}

// snapToBoundary clamps col to the line and moves it back to the nearest
// grapheme boundary.
func snapToBoundary(line []byte, col int) int {
	snapped := 0
	for _, b := range graphemeBoundaries(line) {
		if b > col {
			break
		}
		snapped = b
	}
	return snapped
}
