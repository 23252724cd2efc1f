package app

import (
	"context"
	"sync"
	"time"

	"github.com/bethropolis/tabmate/internal/highlighter"
	"github.com/bethropolis/tabmate/internal/highlighter/lang"
	"github.com/bethropolis/tabmate/internal/logger"
)

const highlightDebounceDuration = 65 * time.Millisecond

// HighlightingManager re-highlights one field in the background after its
// text stops changing for a short while.
type HighlightingManager struct {
	highlighter *highlighter.Highlighter
	language    *lang.Language
	onResult    func(highlighter.HighlightResult)
	debounce    time.Duration

	mu         sync.Mutex
	timer      *time.Timer
	pending    *string
	cancelFunc context.CancelFunc
	closed     bool
}

// NewHighlightingManager creates a manager that hands finished results to
// onResult from a background goroutine.
func NewHighlightingManager(h *highlighter.Highlighter, l *lang.Language, onResult func(highlighter.HighlightResult)) *HighlightingManager {
	return &HighlightingManager{
		highlighter: h,
		language:    l,
		onResult:    onResult,
		debounce:    highlightDebounceDuration,
	}
}

// Schedule queues text for highlighting, replacing any queued text and
// restarting the debounce timer.
func (hm *HighlightingManager) Schedule(text string) {
	if hm.language == nil {
		return
	}
	hm.mu.Lock()
	defer hm.mu.Unlock()
	if hm.closed {
		return
	}

	hm.pending = &text
	if hm.timer != nil {
		hm.timer.Reset(hm.debounce)
		return
	}
	hm.timer = time.AfterFunc(hm.debounce, hm.run)
}

// HighlightNow highlights text synchronously and delivers the result.
func (hm *HighlightingManager) HighlightNow(text string) {
	if hm.language == nil {
		return
	}
	hm.highlight(context.Background(), text)
}

func (hm *HighlightingManager) run() {
	hm.mu.Lock()
	hm.timer = nil
	if hm.pending == nil || hm.closed {
		hm.mu.Unlock()
		return
	}
	text := *hm.pending
	hm.pending = nil
	if hm.cancelFunc != nil {
		hm.cancelFunc()
	}
	ctx, cancel := context.WithCancel(context.Background())
	hm.cancelFunc = cancel
	hm.mu.Unlock()

	hm.highlight(ctx, text)
}

func (hm *HighlightingManager) highlight(ctx context.Context, text string) {
	res, err := hm.highlighter.Highlight(ctx, []byte(text), hm.language)
	if err != nil {
		if ctx.Err() != nil {
			logger.DebugTagf("highlight", "highlight cancelled")
			return
		}
		logger.Warnf("highlighting %s failed: %v", hm.language.Name, err)
		return
	}
	if ctx.Err() != nil {
		return
	}
	hm.onResult(res)
}

// Shutdown stops the timer and cancels a running task.
func (hm *HighlightingManager) Shutdown() {
	hm.mu.Lock()
	defer hm.mu.Unlock()
	hm.closed = true
	if hm.timer != nil {
		hm.timer.Stop()
		hm.timer = nil
	}
	if hm.cancelFunc != nil {
		hm.cancelFunc()
		hm.cancelFunc = nil
	}
}
