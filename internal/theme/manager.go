// internal/theme/manager.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bethropolis/tabmate/internal/logger"
)

// Manager holds the loaded themes and the active one.
type Manager struct {
	mu     sync.RWMutex
	themes map[string]*Theme // Keyed by lowercase name
	active *Theme
}

// NewManager creates a manager with the built-in themes, plus any .toml
// themes in themesDir when it is non-empty.
func NewManager(themesDir string) *Manager {
	m := &Manager{themes: make(map[string]*Theme)}
	m.add(TabmateDark)
	m.active = TabmateDark

	if themesDir != "" {
		if err := m.LoadThemesFromDir(themesDir); err != nil {
			logger.Warnf("loading themes from '%s': %v", themesDir, err)
		}
	}
	return m
}

// DefaultThemesDir is the user theme directory under the OS config dir.
func DefaultThemesDir(appName string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appName, "themes")
}

func (m *Manager) add(t *Theme) {
	key := strings.ToLower(t.Name)
	if existing, ok := m.themes[key]; ok && existing != t {
		logger.Warnf("theme '%s' overrides an existing theme with the same name", t.Name)
	}
	m.themes[key] = t
}

// LoadThemesFromDir loads every .toml file in dir. A missing directory is
// not an error.
func (m *Manager) LoadThemesFromDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debugf("theme directory '%s' does not exist", dir)
			return nil
		}
		return fmt.Errorf("failed to read theme directory '%s': %w", dir, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	loaded := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".toml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		t, err := LoadThemeFromFile(path)
		if err != nil {
			logger.Warnf("skipping theme '%s': %v", path, err)
			continue
		}
		m.add(t)
		loaded++
	}
	logger.Infof("loaded %d themes from '%s'", loaded, dir)
	return nil
}

// Current returns the active theme.
func (m *Manager) Current() *Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active
}

// SetTheme activates a theme by name, or loads and activates a .toml file
// when nameOrPath ends in ".toml".
func (m *Manager) SetTheme(nameOrPath string) error {
	if strings.HasSuffix(strings.ToLower(nameOrPath), ".toml") {
		t, err := LoadThemeFromFile(nameOrPath)
		if err != nil {
			return err
		}
		m.mu.Lock()
		m.add(t)
		m.active = t
		m.mu.Unlock()
		logger.Infof("active theme set to '%s'", t.Name)
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.themes[strings.ToLower(nameOrPath)]
	if !ok {
		return fmt.Errorf("theme '%s' not found", nameOrPath)
	}
	m.active = t
	logger.Infof("active theme set to '%s'", t.Name)
	return nil
}

// ListThemes returns the loaded theme names in sorted order.
func (m *Manager) ListThemes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.themes))
	for _, t := range m.themes {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}
