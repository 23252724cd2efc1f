// Package app is the terminal demo host: a vertical stack of text fields
// with Tab indentation attached, a status bar and option hotkeys.
package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bethropolis/tabmate/internal/config"
	"github.com/bethropolis/tabmate/internal/highlighter"
	"github.com/bethropolis/tabmate/internal/highlighter/lang"
	"github.com/bethropolis/tabmate/internal/input"
	"github.com/bethropolis/tabmate/internal/logger"
	"github.com/bethropolis/tabmate/internal/statusbar"
	"github.com/bethropolis/tabmate/internal/textarea"
	"github.com/bethropolis/tabmate/internal/theme"
	"github.com/bethropolis/tabmate/internal/tui"
	"github.com/gdamore/tcell/v2"
)

const sampleText = `# Tab indents the selected lines, Shift+Tab dedents them.
server:
  host: localhost
  port: 8080
routes:
- path: /
  handler: index
`

// App encapsulates the components and main loop of the demo.
type App struct {
	cfg          *config.Config
	tuiManager   *tui.TUI
	themeManager *theme.Manager
	statusBar    *statusbar.StatusBar
	input        *input.InputProcessor
	highlighter  *highlighter.Highlighter

	fields  []*field
	focus   int
	pasting bool
	paste   strings.Builder

	quit          chan struct{}
	redrawRequest chan struct{}
}

// NewApp builds the demo. The first field loads filePath when it is set.
// A nil screen opens the real terminal.
func NewApp(cfg *config.Config, filePath string, screen tcell.Screen) (*App, error) {
	themeManager := theme.NewManager(theme.DefaultThemesDir(config.AppName))
	if err := themeManager.SetTheme(cfg.Editor.Theme); err != nil {
		logger.Warnf("theme: %v, keeping %s", err, themeManager.Current().Name)
	}

	defStyle := themeManager.Current().GetStyle("Default")
	var (
		tuiManager *tui.TUI
		err        error
	)
	if screen == nil {
		tuiManager, err = tui.New(defStyle)
	} else {
		tuiManager, err = tui.NewWithScreen(screen, defStyle)
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	a := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		themeManager:  themeManager,
		statusBar:     statusbar.New(config.MessageTimeout),
		input:         input.NewInputProcessor(),
		highlighter:   highlighter.NewHighlighter(),
		quit:          make(chan struct{}),
		redrawRequest: make(chan struct{}, 1),
	}

	if err := a.createFields(filePath); err != nil {
		tuiManager.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) createFields(filePath string) error {
	clip := textarea.NewClipboard(a.cfg.Editor.SystemClipboard)

	for i := 0; i < a.cfg.Editor.Fields; i++ {
		name := fmt.Sprintf("field %d", i+1)
		text := ""
		if i == 0 {
			text = sampleText
			if filePath != "" {
				name = filepath.Base(filePath)
			}
		}
		ta := textarea.New(textarea.Options{
			Name:      name,
			Text:      text,
			Clipboard: clip,
			ScrollOff: a.cfg.Editor.ScrollOff,
		})
		if i == 0 && filePath != "" {
			if err := ta.Load(filePath); err != nil {
				return fmt.Errorf("loading %s: %w", filePath, err)
			}
		}

		var l *lang.Language
		if i == 0 {
			l = a.highlighter.LanguageFor(a.cfg.Editor.Language, filePath)
			if l == nil && filePath == "" {
				l = lang.GetByName("yaml")
			}
		} else if a.cfg.Editor.Language != "" {
			l = a.highlighter.LanguageFor(a.cfg.Editor.Language, "")
		}

		f := newField(ta, a.cfg.Tabmate, l, a.highlighter, a.requestRedraw)
		if err := f.attach(); err != nil {
			return err
		}
		a.subscribeField(f)
		f.hl.HighlightNow(ta.Value())
		a.fields = append(a.fields, f)
	}
	return nil
}

// Run starts the event and drawing loops and blocks until quit.
func (a *App) Run() error {
	defer a.shutdown()

	events := make(chan tcell.Event)
	go a.pollEvents(events)

	a.statusBar.SetTemporaryMessage("Tab/Shift+Tab indent | Ctrl+T toggle | Ctrl+W width | Ctrl+E tabs | Esc quit")
	a.draw()

	for {
		select {
		case <-a.quit:
			a.warnUnsaved()
			logger.Infof("exiting")
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if a.handleEvent(ev) {
				a.draw()
			}
		case <-a.redrawRequest:
			a.draw()
		}
	}
}

// pollEvents forwards terminal events until the screen is closed or the
// app quits.
func (a *App) pollEvents(out chan<- tcell.Event) {
	defer close(out)
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-a.quit:
			return
		}
	}
}

// handleEvent processes one terminal event on the main goroutine and
// reports whether the screen needs a redraw.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		return true
	case *tcell.EventPaste:
		a.handlePaste(ev)
		return true
	case *tcell.EventKey:
		if a.pasting {
			a.collectPaste(ev)
			return false
		}
		a.handleKey(ev)
		return true
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) {
	act := a.input.ProcessEvent(ev)
	if act.Action.IsAppAction() {
		a.runAppAction(act.Action)
		return
	}
	a.focused().ta.HandleKey(ev)
}

func (a *App) handlePaste(ev *tcell.EventPaste) {
	if ev.Start() {
		a.pasting = true
		a.paste.Reset()
		return
	}
	a.pasting = false
	if a.paste.Len() > 0 {
		a.focused().ta.InsertText(a.paste.String())
	}
}

func (a *App) collectPaste(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyRune:
		a.paste.WriteRune(ev.Rune())
	case tcell.KeyEnter:
		a.paste.WriteByte('\n')
	case tcell.KeyTab:
		a.paste.WriteByte('\t')
	}
}

func (a *App) focused() *field {
	return a.fields[a.focus]
}

// moveFocus steps through the focus ring, wrapping at both ends.
func (a *App) moveFocus(forward bool) {
	n := len(a.fields)
	if forward {
		a.focus = (a.focus + 1) % n
	} else {
		a.focus = (a.focus + n - 1) % n
	}
	logger.DebugTagf("app", "focus moved to %q", a.focused().ta.Name())
}

// requestRedraw asks the main loop to redraw without blocking.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default:
	}
}

func (a *App) stop() {
	select {
	case <-a.quit:
	default:
		close(a.quit)
	}
}

func (a *App) warnUnsaved() {
	if buf := a.fields[0].ta.Buffer(); buf.FilePath() != "" && buf.IsModified() {
		logger.Warnf("exited with unsaved changes in %s", buf.FilePath())
	}
}

func (a *App) shutdown() {
	for _, f := range a.fields {
		f.shutdown()
	}
	a.tuiManager.Close()
}
