package app

import (
	"github.com/bethropolis/tabmate"
	"github.com/bethropolis/tabmate/internal/input"
	"github.com/bethropolis/tabmate/internal/logger"
)

func (a *App) runAppAction(action input.Action) {
	logger.DebugTagf("app", "action %s on %q", action, a.focused().ta.Name())
	switch action {
	case input.ActionQuit:
		a.stop()
	case input.ActionSave:
		a.save()
	case input.ActionToggleAttach:
		a.toggleAttach()
	case input.ActionCycleTabWidth:
		f := a.focused()
		next := nextInCycle(a.cfg.Editor.TabWidthCycle, f.options().TabWidth)
		a.updateOptions(f, tabmate.Overrides{TabWidth: tabmate.Int(next)})
	case input.ActionCycleTabs:
		f := a.focused()
		next := nextInCycle(a.cfg.Editor.TabsCycle, f.options().Tabs)
		a.updateOptions(f, tabmate.Overrides{Tabs: tabmate.Int(next)})
	}
}

func (a *App) toggleAttach() {
	f := a.focused()
	if _, err := f.toggle(); err != nil {
		logger.Errorf("toggle attach: %v", err)
		a.statusBar.SetTemporaryMessage("Attach failed: %v", err)
	}
}

func (a *App) updateOptions(f *field, o tabmate.Overrides) {
	if err := f.update(o); err != nil {
		logger.Warnf("%s: %v", f.ta.Name(), err)
		a.statusBar.SetTemporaryMessage("Invalid options: %v", err)
		return
	}
	if !f.attached() {
		opts := f.options()
		a.statusBar.SetTemporaryMessage("%s: indent %dx%d on next attach", f.ta.Name(), opts.Tabs, opts.TabWidth)
	}
}

// save writes the first field back to the file it was loaded from.
func (a *App) save() {
	ta := a.fields[0].ta
	path := ta.Buffer().FilePath()
	if path == "" {
		a.statusBar.SetTemporaryMessage("Nothing to save: no file was given")
		return
	}
	if err := ta.Save(""); err != nil {
		logger.Errorf("save %s: %v", path, err)
		a.statusBar.SetTemporaryMessage("Save failed: %v", err)
		return
	}
	a.statusBar.SetTemporaryMessage("Saved %s", path)
}

// nextInCycle returns the value after current in values, or the first
// value when current is not in the list.
func nextInCycle(values []int, current int) int {
	if len(values) == 0 {
		return current
	}
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}
