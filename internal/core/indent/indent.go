// Package indent implements editor-style indentation of text blocks and the
// selection bookkeeping that goes with it. All offsets are byte offsets into
// UTF-8 strings.
package indent

import "strings"

// Indent prepends one indent step to line.
func Indent(line string, opts Options) string {
	return opts.Unit() + line
}

// Dedent removes up to one indent step of leading whitespace from line.
// A line with less leading whitespace than the step loses all of it.
func Dedent(line string, opts Options) string {
	return line[removable(line, opts):]
}

// LeadingWhitespace returns the length of the leading run of spaces and
// tab characters in line.
func LeadingWhitespace(line string) int {
	n := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return n
}

// removable is the number of bytes Dedent strips from line.
func removable(line string, opts Options) int {
	return min(LeadingWhitespace(line), max(opts.Width(), 0))
}

// IndentLines indents every line of text, blank lines included.
func IndentLines(text string, opts Options) string {
	return mapLines(text, func(line string) string { return Indent(line, opts) })
}

// DedentLines dedents every line of text.
func DedentLines(text string, opts Options) string {
	return mapLines(text, func(line string) string { return Dedent(line, opts) })
}

func mapLines(text string, fn func(string) string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = fn(line)
	}
	return strings.Join(lines, "\n")
}
