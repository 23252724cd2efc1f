package app

import (
	"fmt"
	"sync"

	"github.com/bethropolis/tabmate"
	"github.com/bethropolis/tabmate/internal/event"
	"github.com/bethropolis/tabmate/internal/highlighter"
	"github.com/bethropolis/tabmate/internal/highlighter/lang"
	"github.com/bethropolis/tabmate/internal/logger"
	"github.com/bethropolis/tabmate/internal/textarea"
)

// field is one text area in the focus ring together with its indentation
// handle and syntax state.
type field struct {
	ta       *textarea.Textarea
	inst     *tabmate.Instance // nil while detached
	opts     tabmate.Options   // Applied on the next attach
	language *lang.Language
	hl       *HighlightingManager

	mu         sync.RWMutex
	highlights highlighter.HighlightResult
}

func newField(ta *textarea.Textarea, opts tabmate.Options, l *lang.Language, h *highlighter.Highlighter, redraw func()) *field {
	f := &field{ta: ta, opts: opts, language: l}
	f.hl = NewHighlightingManager(h, l, func(res highlighter.HighlightResult) {
		f.mu.Lock()
		f.highlights = res
		f.mu.Unlock()
		redraw()
	})
	ta.Events().Subscribe(event.TypeTextChanged, func(event.Event) bool {
		f.hl.Schedule(ta.Value())
		return false
	})
	return f
}

func (f *field) Highlights() highlighter.HighlightResult {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.highlights
}

func (f *field) attached() bool {
	return f.inst != nil && f.inst.Attached()
}

// options returns the effective indentation options.
func (f *field) options() tabmate.Options {
	if f.attached() {
		return f.inst.Options()
	}
	return f.opts
}

func (f *field) attach() error {
	if f.attached() {
		return nil
	}
	inst, err := tabmate.Attach(f.ta, &tabmate.Overrides{
		Tabs:     tabmate.Int(f.opts.Tabs),
		TabWidth: tabmate.Int(f.opts.TabWidth),
	})
	if err != nil {
		return fmt.Errorf("field %q: %w", f.ta.Name(), err)
	}
	f.inst = inst
	return nil
}

func (f *field) detach() {
	if f.inst == nil {
		return
	}
	f.opts = f.inst.Options()
	f.inst.Detach()
	f.inst = nil
}

// toggle flips the attached state and reports the new one.
func (f *field) toggle() (bool, error) {
	if f.attached() {
		f.detach()
		return false, nil
	}
	if err := f.attach(); err != nil {
		return false, err
	}
	return true, nil
}

// update merges o into the options, through the handle when attached.
func (f *field) update(o tabmate.Overrides) error {
	if f.attached() {
		if err := f.inst.UpdateOptions(o); err != nil {
			return err
		}
		f.opts = f.inst.Options()
		return nil
	}
	merged := o.Apply(f.opts)
	if err := merged.Validate(); err != nil {
		return fmt.Errorf("update options: %w", err)
	}
	f.opts = merged
	logger.DebugTagf("app", "field %q options set to %v while detached", f.ta.Name(), merged)
	return nil
}

func (f *field) languageName() string {
	if f.language == nil {
		return ""
	}
	return f.language.Name
}

func (f *field) shutdown() {
	f.hl.Shutdown()
	f.detach()
}
