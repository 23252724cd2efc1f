// internal/buffer/slice_buffer.go
package buffer

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/tabmate/internal/types"
)

// ErrOutOfRange is returned for offsets outside the buffer or inside a
// multi-byte rune.
var ErrOutOfRange = errors.New("offset out of range")

// SliceBuffer stores text as a slice of lines without their '\n'.
type SliceBuffer struct {
	lines    [][]byte
	filePath string
	modified bool
}

// NewSliceBuffer creates an empty SliceBuffer.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{lines: [][]byte{{}}}
}

// NewSliceBufferFromString creates a buffer holding text.
func NewSliceBufferFromString(text string) *SliceBuffer {
	sb := NewSliceBuffer()
	sb.setLines(text)
	return sb
}

// Load reads a file into the buffer. A missing file gives an empty buffer
// bound to that path.
func (sb *SliceBuffer) Load(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sb.lines = [][]byte{{}}
			sb.filePath = filePath
			sb.modified = false
			return nil
		}
		return fmt.Errorf("failed to read file '%s': %w", filePath, err)
	}
	sb.setLines(strings.ReplaceAll(string(data), "\r\n", "\n"))
	sb.filePath = filePath
	sb.modified = false
	return nil
}

// Save writes the buffer to filePath, or to the loaded path when empty.
func (sb *SliceBuffer) Save(filePath string) error {
	path := sb.filePath
	if filePath != "" {
		path = filePath
	}
	if path == "" {
		return errors.New("no file path specified for saving")
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}
	sb.filePath = path
	sb.modified = false
	return nil
}

func (sb *SliceBuffer) Lines() [][]byte { return sb.lines }

func (sb *SliceBuffer) LineCount() int { return len(sb.lines) }

func (sb *SliceBuffer) FilePath() string { return sb.filePath }

func (sb *SliceBuffer) IsModified() bool { return sb.modified }

// Line returns the bytes of line index, without the trailing newline.
func (sb *SliceBuffer) Line(index int) ([]byte, error) {
	if index < 0 || index >= len(sb.lines) {
		return nil, fmt.Errorf("line index %d out of bounds (0-%d)", index, len(sb.lines)-1)
	}
	return sb.lines[index], nil
}

// String joins all lines with '\n'.
func (sb *SliceBuffer) String() string {
	return string(bytes.Join(sb.lines, []byte{'\n'}))
}

// SetText replaces the whole content.
func (sb *SliceBuffer) SetText(text string) {
	sb.setLines(text)
	sb.modified = true
}

func (sb *SliceBuffer) setLines(text string) {
	parts := strings.Split(text, "\n")
	sb.lines = make([][]byte, len(parts))
	for i, p := range parts {
		sb.lines[i] = []byte(p)
	}
}

// Insert inserts text at pos and returns the position just after it.
func (sb *SliceBuffer) Insert(pos types.Position, text []byte) (types.Position, error) {
	vPos, byteOff := sb.clamp(pos)
	if len(text) == 0 {
		return vPos, nil
	}
	sb.modified = true

	current := sb.lines[vPos.Line]
	tail := append([]byte(nil), current[byteOff:]...)
	parts := bytes.Split(text, []byte{'\n'})

	head := append(append([]byte(nil), current[:byteOff]...), parts[0]...)
	if len(parts) == 1 {
		sb.lines[vPos.Line] = append(head, tail...)
		return types.Position{Line: vPos.Line, Col: vPos.Col + utf8.RuneCount(parts[0])}, nil
	}

	newLines := make([][]byte, 0, len(parts))
	newLines = append(newLines, head)
	for _, p := range parts[1 : len(parts)-1] {
		newLines = append(newLines, append([]byte(nil), p...))
	}
	last := parts[len(parts)-1]
	newLines = append(newLines, append(append([]byte(nil), last...), tail...))

	rest := append([][]byte(nil), sb.lines[vPos.Line+1:]...)
	sb.lines = append(append(sb.lines[:vPos.Line], newLines...), rest...)
	return types.Position{Line: vPos.Line + len(parts) - 1, Col: utf8.RuneCount(last)}, nil
}

// Delete removes the text between start (inclusive) and end (exclusive).
// The positions may be given in either order.
func (sb *SliceBuffer) Delete(start, end types.Position) error {
	if end.Before(start) {
		start, end = end, start
	}
	vStart, startOff := sb.clamp(start)
	vEnd, endOff := sb.clamp(end)
	if vStart == vEnd {
		return nil
	}
	sb.modified = true

	merged := append(append([]byte(nil), sb.lines[vStart.Line][:startOff]...), sb.lines[vEnd.Line][endOff:]...)
	rest := append([][]byte(nil), sb.lines[vEnd.Line+1:]...)
	sb.lines = append(append(sb.lines[:vStart.Line], merged), rest...)
	return nil
}

// Slice returns the text between two positions.
func (sb *SliceBuffer) Slice(start, end types.Position) (string, error) {
	s, err := sb.Offset(start)
	if err != nil {
		return "", err
	}
	e, err := sb.Offset(end)
	if err != nil {
		return "", err
	}
	if e < s {
		s, e = e, s
	}
	return sb.String()[s:e], nil
}

// Offset converts pos to a byte offset into String().
func (sb *SliceBuffer) Offset(pos types.Position) (int, error) {
	if pos.Line < 0 || pos.Line >= len(sb.lines) || pos.Col < 0 {
		return 0, fmt.Errorf("%w: position %d:%d", ErrOutOfRange, pos.Line, pos.Col)
	}
	off := 0
	for _, l := range sb.lines[:pos.Line] {
		off += len(l) + 1
	}
	colOff := runeIndexToByteOffset(sb.lines[pos.Line], pos.Col)
	if colOff < 0 {
		return 0, fmt.Errorf("%w: column %d past end of line %d", ErrOutOfRange, pos.Col, pos.Line)
	}
	return off + colOff, nil
}

// PositionAt converts a byte offset into String() to a line/rune position.
func (sb *SliceBuffer) PositionAt(offset int) (types.Position, error) {
	if offset < 0 {
		return types.Position{}, fmt.Errorf("%w: %d", ErrOutOfRange, offset)
	}
	for i, l := range sb.lines {
		if offset <= len(l) {
			if offset < len(l) && !utf8.RuneStart(l[offset]) {
				return types.Position{}, fmt.Errorf("%w: %d splits a rune", ErrOutOfRange, offset)
			}
			return types.Position{Line: i, Col: utf8.RuneCount(l[:offset])}, nil
		}
		offset -= len(l) + 1
	}
	return types.Position{}, fmt.Errorf("%w: past end of buffer", ErrOutOfRange)
}

// clamp pulls pos inside the buffer and returns it with its byte offset on
// the line.
func (sb *SliceBuffer) clamp(pos types.Position) (types.Position, int) {
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(sb.lines) {
		pos.Line = len(sb.lines) - 1
	}
	line := sb.lines[pos.Line]
	if pos.Col < 0 {
		pos.Col = 0
	}
	if n := utf8.RuneCount(line); pos.Col > n {
		pos.Col = n
	}
	return pos, runeIndexToByteOffset(line, pos.Col)
}

// runeIndexToByteOffset returns the byte offset of rune index col in line,
// len(line) for the end position, or -1 past the end.
func runeIndexToByteOffset(line []byte, col int) int {
	off := 0
	for i := 0; i < col; i++ {
		if off >= len(line) {
			return -1
		}
		_, size := utf8.DecodeRune(line[off:])
		off += size
	}
	return off
}

var _ Buffer = (*SliceBuffer)(nil)
