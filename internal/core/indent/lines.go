package indent

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Selection is a half-open byte range [Start, End) into a text buffer.
// Start == End denotes a caret.
type Selection struct {
	Start int
	End   int
}

// Caret returns a collapsed selection at off.
func Caret(off int) Selection {
	return Selection{Start: off, End: off}
}

// IsCaret reports whether nothing is selected.
func (s Selection) IsCaret() bool {
	return s.Start == s.End
}

// Validate checks that s is ordered, inside text and on rune boundaries.
func (s Selection) Validate(text string) error {
	if s.Start < 0 || s.Start > s.End || s.End > len(text) {
		return fmt.Errorf("%w: selection [%d, %d) in text of length %d", ErrInvalidRange, s.Start, s.End, len(text))
	}
	if !onRuneBoundary(text, s.Start) || !onRuneBoundary(text, s.End) {
		return fmt.Errorf("%w: selection [%d, %d) splits a UTF-8 sequence", ErrInvalidRange, s.Start, s.End)
	}
	return nil
}

func onRuneBoundary(text string, off int) bool {
	return off == len(text) || utf8.RuneStart(text[off])
}

// LineRange extends sel outward to whole lines. start is 0 or directly
// follows a '\n'; end is len(text) or the index of a '\n'.
func LineRange(text string, sel Selection) (start, end int, err error) {
	if err := sel.Validate(text); err != nil {
		return 0, 0, err
	}
	start = lineStart(text, sel.Start)
	end = lineEnd(text, sel.End)
	return start, end, nil
}

// lineStart returns the offset of the first byte of the line containing off.
func lineStart(text string, off int) int {
	return strings.LastIndexByte(text[:off], '\n') + 1
}

// lineEnd returns the offset of the '\n' ending the line containing off, or
// len(text) on the last line.
func lineEnd(text string, off int) int {
	if i := strings.IndexByte(text[off:], '\n'); i >= 0 {
		return off + i
	}
	return len(text)
}

// Splice replaces text[start:end] with replacement.
func Splice(text string, start, end int, replacement string) (string, error) {
	if start < 0 || start > end || end > len(text) {
		return "", fmt.Errorf("%w: splice [%d, %d) in text of length %d", ErrInvalidRange, start, end, len(text))
	}
	var sb strings.Builder
	sb.Grow(len(text) - (end - start) + len(replacement))
	sb.WriteString(text[:start])
	sb.WriteString(replacement)
	sb.WriteString(text[end:])
	return sb.String(), nil
}
