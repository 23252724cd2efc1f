package lang

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/bethropolis/tabmate/internal/logger"
)

var registry struct {
	sync.RWMutex
	languages     []*Language
	byName        map[string]*Language
	extToLanguage map[string]*Language
}

// Register adds a language. Later registrations win for shared extensions.
func Register(l *Language) {
	registry.Lock()
	defer registry.Unlock()

	if registry.byName == nil {
		registry.byName = make(map[string]*Language)
		registry.extToLanguage = make(map[string]*Language)
	}
	registry.languages = append(registry.languages, l)
	registry.byName[strings.ToLower(l.Name)] = l
	for _, ext := range l.Extensions {
		ext = strings.ToLower(ext)
		if existing, ok := registry.extToLanguage[ext]; ok && existing != l {
			logger.Warnf("extension %s already registered to %s, overriding with %s", ext, existing.Name, l.Name)
		}
		registry.extToLanguage[ext] = l
	}
	logger.DebugTagf("highlight", "registered language %s %v", l.Name, l.Extensions)
}

// GetForFile returns the language for a path's extension, or nil.
func GetForFile(path string) *Language {
	registry.RLock()
	defer registry.RUnlock()
	return registry.extToLanguage[strings.ToLower(filepath.Ext(path))]
}

// GetByName looks a language up case-insensitively by name or extension
// without the dot ("yaml", "yml", "go").
func GetByName(name string) *Language {
	registry.RLock()
	defer registry.RUnlock()
	name = strings.ToLower(name)
	if l, ok := registry.byName[name]; ok {
		return l
	}
	return registry.extToLanguage["."+name]
}

// GetAll returns all registered languages in registration order.
func GetAll() []*Language {
	registry.RLock()
	defer registry.RUnlock()
	out := make([]*Language, len(registry.languages))
	copy(out, registry.languages)
	return out
}
