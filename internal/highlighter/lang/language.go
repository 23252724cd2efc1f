package lang

import (
	"fmt"
	"io/fs"

	sitter "github.com/smacker/go-tree-sitter"
)

// QueryFS holds the highlight queries, laid out as queries/<QueryPath>/highlights.scm.
var QueryFS fs.FS

// Language is a tree-sitter grammar plus the files it applies to.
type Language struct {
	Name           string
	TreeSitterLang *sitter.Language
	Extensions     []string
	QueryPath      string // Directory under queries/
}

// Query returns the highlight query source for the language.
func (l *Language) Query() ([]byte, error) {
	if QueryFS == nil {
		return nil, fmt.Errorf("no query filesystem set for %s", l.Name)
	}
	path := fmt.Sprintf("queries/%s/highlights.scm", l.QueryPath)
	query, err := fs.ReadFile(QueryFS, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load query for %s: %w", l.Name, err)
	}
	return query, nil
}
