package app

import (
	"github.com/bethropolis/tabmate/internal/event"
	"github.com/bethropolis/tabmate/internal/logger"
)

// subscribeField wires a field's events to the focus ring and status bar.
// Handlers run on the main goroutine, inside the key handling that caused
// them.
func (a *App) subscribeField(f *field) {
	events := f.ta.Events()
	events.Subscribe(event.TypeFocusTraversal, a.handleFocusTraversal)
	events.Subscribe(event.TypeAttached, func(event.Event) bool {
		a.statusBar.SetTemporaryMessage("%s: Tab indents", f.ta.Name())
		return false
	})
	events.Subscribe(event.TypeDetached, func(event.Event) bool {
		a.statusBar.SetTemporaryMessage("%s: Tab moves focus", f.ta.Name())
		return false
	})
	events.Subscribe(event.TypeOptionsChanged, func(e event.Event) bool {
		if data, ok := e.Data.(event.OptionsChangedData); ok {
			a.statusBar.SetTemporaryMessage("%s: indent %dx%d", f.ta.Name(), data.Tabs, data.TabWidth)
		}
		return false
	})
}

// handleFocusTraversal moves focus when a field leaves Tab unhandled.
func (a *App) handleFocusTraversal(e event.Event) bool {
	data, ok := e.Data.(event.FocusTraversalData)
	if !ok {
		logger.Warnf("focus traversal event without direction: %T", e.Data)
		return false
	}
	a.moveFocus(data.Forward)
	return true
}
