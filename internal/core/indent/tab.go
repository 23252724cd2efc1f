package indent

import "fmt"

// Result is the buffer and selection after an indent operation.
type Result struct {
	Text      string
	Selection Selection
}

// Tab handles a Tab keypress. A caret gets one indent step inserted in front
// of it; a range indents every line it touches.
func Tab(text string, sel Selection, opts Options) (Result, error) {
	if err := validate(text, sel, opts); err != nil {
		return Result{}, fmt.Errorf("tab: %w", err)
	}

	width := opts.Width()
	if sel.IsCaret() {
		out, err := Splice(text, sel.Start, sel.Start, opts.Unit())
		if err != nil {
			return Result{}, fmt.Errorf("tab: %w", err)
		}
		return Result{Text: out, Selection: Caret(sel.Start + width)}, nil
	}

	start, end, err := LineRange(text, sel)
	if err != nil {
		return Result{}, fmt.Errorf("tab: %w", err)
	}
	out, err := Splice(text, start, end, IndentLines(text[start:end], opts))
	if err != nil {
		return Result{}, fmt.Errorf("tab: %w", err)
	}
	return Result{
		Text:      out,
		Selection: RemapIndent(start, sel, text[sel.Start:sel.End], width),
	}, nil
}

// ShiftTab handles a Shift+Tab keypress. It always dedents the whole line
// block, whether sel is a caret or a range.
func ShiftTab(text string, sel Selection, opts Options) (Result, error) {
	if err := validate(text, sel, opts); err != nil {
		return Result{}, fmt.Errorf("shift-tab: %w", err)
	}

	start, end, err := LineRange(text, sel)
	if err != nil {
		return Result{}, fmt.Errorf("shift-tab: %w", err)
	}
	out, err := Splice(text, start, end, DedentLines(text[start:end], opts))
	if err != nil {
		return Result{}, fmt.Errorf("shift-tab: %w", err)
	}
	return Result{
		Text:      out,
		Selection: RemapDedent(text, start, sel, opts),
	}, nil
}

func validate(text string, sel Selection, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	return sel.Validate(text)
}
