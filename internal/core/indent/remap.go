package indent

import "strings"

// RemapIndent computes the selection after the line block starting at
// lineStart was indented by width spaces per line. selected is the text that
// sel covered before the edit. The start bound sits on the first line and
// moves by one width; the end bound moves by one more width for every line
// break inside the selection, so the same characters stay selected.
func RemapIndent(lineStart int, sel Selection, selected string, width int) Selection {
	relStart := sel.Start - lineStart
	relEnd := sel.End - lineStart
	breaks := strings.Count(selected, "\n")

	return Selection{
		Start: lineStart + width + relStart,
		End:   lineStart + width + relEnd + breaks*width,
	}
}

// RemapDedent computes the selection after DedentLines was applied to the
// line block of text starting at lineStart. text is the buffer before the
// edit. Each bound loses the whitespace removed from its own line and from
// every block line above it, and never moves before its own line start.
func RemapDedent(text string, lineStart int, sel Selection, opts Options) Selection {
	return Selection{
		Start: dedentedOffset(text, lineStart, sel.Start, opts),
		End:   dedentedOffset(text, lineStart, sel.End, opts),
	}
}

func dedentedOffset(text string, blockStart, off int, opts Options) int {
	ls := lineStart(text, off)
	if ls < blockStart {
		// off lies before the block, nothing in front of it moved.
		return off
	}

	removedBefore := 0
	for pos := blockStart; pos < ls; {
		end := lineEnd(text, pos)
		removedBefore += removable(text[pos:end], opts)
		pos = end + 1
	}

	removed := removable(text[ls:lineEnd(text, ls)], opts)
	col := max(off-ls-removed, 0)
	return ls - removedBefore + col
}
