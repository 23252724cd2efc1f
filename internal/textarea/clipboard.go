package textarea

import (
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/tabmate/internal/logger"
)

// Clipboard holds copied text. With the system clipboard enabled, writes
// also go to the OS clipboard and reads prefer it, falling back to the
// internal copy when the OS clipboard is unavailable.
type Clipboard struct {
	mu     sync.Mutex
	system bool
	data   string
}

// NewClipboard creates a clipboard, optionally backed by the OS clipboard.
func NewClipboard(system bool) *Clipboard {
	if system && clipboard.Unsupported {
		logger.Warnf("system clipboard unsupported on this platform, using internal clipboard")
		system = false
	}
	return &Clipboard{system: system}
}

// Write stores text.
func (c *Clipboard) Write(text string) error {
	c.mu.Lock()
	c.data = text
	system := c.system
	c.mu.Unlock()

	if system {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("failed to write system clipboard: %w", err)
		}
	}
	logger.DebugTagf("clipboard", "stored %d bytes", len(text))
	return nil
}

// Read returns the clipboard content.
func (c *Clipboard) Read() string {
	c.mu.Lock()
	system, data := c.system, c.data
	c.mu.Unlock()

	if system {
		text, err := clipboard.ReadAll()
		if err == nil {
			return text
		}
		logger.Warnf("system clipboard read failed, using internal copy: %v", err)
	}
	return data
}
