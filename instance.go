package tabmate

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/bethropolis/tabmate/internal/core/indent"
	"github.com/bethropolis/tabmate/internal/event"
	"github.com/bethropolis/tabmate/internal/input"
	"github.com/bethropolis/tabmate/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// KeyListener sees a key before the field's default handling. Returning
// true consumes the key.
type KeyListener = func(ev *tcell.EventKey) bool

// Target is a multi-line text surface. Selection offsets are byte offsets
// into Value().
type Target interface {
	Value() string
	SelectionRange() (start, end int)
	SetValue(text string)
	SetSelectionRange(start, end int)
	AddKeyListener(fn KeyListener) int
	RemoveKeyListener(id int)
}

// notifier is implemented by targets that publish field events.
type notifier interface {
	Events() *event.Manager
}

// Instance is the handle for one attached Target.
type Instance struct {
	target Target

	mu         sync.RWMutex
	opts       Options
	attached   bool
	listenerID int
}

// Attach starts handling Tab and Shift+Tab on t. o may be nil for the
// defaults. A nil t, including a typed nil pointer, is an error.
func Attach(t Target, o *Overrides) (*Instance, error) {
	if isNil(t) {
		return nil, errors.New("attach: nil target")
	}
	opts := DefaultOptions()
	if o != nil {
		opts = o.Apply(opts)
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("attach: %w", err)
	}

	inst := &Instance{target: t, opts: opts, attached: true}
	inst.listenerID = t.AddKeyListener(inst.handleKey)
	logger.DebugTagf("tabmate", "attached with %v", opts)
	inst.notify(event.TypeAttached, nil)
	return inst, nil
}

// Detach stops handling keys. The target's own Tab behaviour returns.
// Detaching twice is a no-op.
func (i *Instance) Detach() {
	i.mu.Lock()
	if !i.attached {
		i.mu.Unlock()
		return
	}
	i.attached = false
	id := i.listenerID
	i.mu.Unlock()

	i.target.RemoveKeyListener(id)
	logger.DebugTagf("tabmate", "detached")
	i.notify(event.TypeDetached, nil)
}

// Attached reports whether the instance is still handling keys.
func (i *Instance) Attached() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.attached
}

// Options returns a copy of the effective options.
func (i *Instance) Options() Options {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.opts
}

// UpdateOptions merges o into the current options. Invalid results are
// rejected and the previous options stay in effect.
func (i *Instance) UpdateOptions(o Overrides) error {
	i.mu.Lock()
	merged := o.Apply(i.opts)
	if err := merged.Validate(); err != nil {
		i.mu.Unlock()
		return fmt.Errorf("update options: %w", err)
	}
	i.opts = merged
	i.mu.Unlock()

	logger.DebugTagf("tabmate", "options updated to %v", merged)
	i.notify(event.TypeOptionsChanged, event.OptionsChangedData{Tabs: merged.Tabs, TabWidth: merged.TabWidth})
	return nil
}

func (i *Instance) handleKey(ev *tcell.EventKey) bool {
	action := input.TabAction(ev)
	if action == input.ActionUnknown {
		return false
	}

	opts := i.Options()
	text := i.target.Value()
	start, end := i.target.SelectionRange()
	sel := indent.Selection{Start: start, End: end}

	var (
		res Result
		err error
	)
	if action == input.ActionIndent {
		res, err = indent.Tab(text, sel, opts)
	} else {
		res, err = indent.ShiftTab(text, sel, opts)
	}
	if err != nil {
		logger.Warnf("%s ignored: %v", action, err)
		return true
	}

	i.target.SetValue(res.Text)
	i.target.SetSelectionRange(res.Selection.Start, res.Selection.End)
	logger.DebugTagf("tabmate", "%s [%d,%d) -> [%d,%d)", action, start, end, res.Selection.Start, res.Selection.End)
	return true
}

func (i *Instance) notify(t event.Type, data interface{}) {
	if n, ok := i.target.(notifier); ok {
		n.Events().Dispatch(t, data)
	}
}

func isNil(t Target) bool {
	if t == nil {
		return true
	}
	v := reflect.ValueOf(t)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
