// internal/highlighter/languages.go
package highlighter

import (
	"embed"
	"sync"

	"github.com/bethropolis/tabmate/internal/highlighter/lang"
	gosrc "github.com/smacker/go-tree-sitter/golang"
	yamlsrc "github.com/smacker/go-tree-sitter/yaml"
)

//go:embed queries/*/*.scm
var embeddedQueries embed.FS

var registerOnce sync.Once

// RegisterLanguages installs the built-in grammars. It is safe to call more
// than once.
func RegisterLanguages() {
	registerOnce.Do(func() {
		lang.QueryFS = embeddedQueries

		lang.Register(&lang.Language{
			Name:           "YAML",
			TreeSitterLang: yamlsrc.GetLanguage(),
			Extensions:     []string{".yaml", ".yml"},
			QueryPath:      "yaml",
		})
		lang.Register(&lang.Language{
			Name:           "Go",
			TreeSitterLang: gosrc.GetLanguage(),
			Extensions:     []string{".go"},
			QueryPath:      "go",
		})
	})
}
