// Package highlighter colours field text with tree-sitter queries.
package highlighter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/bethropolis/tabmate/internal/highlighter/lang"
	"github.com/bethropolis/tabmate/internal/logger"
	"github.com/bethropolis/tabmate/internal/types"
	sitter "github.com/smacker/go-tree-sitter"
)

// HighlightResult maps a line number to its styled byte ranges, sorted by
// start column with enclosing ranges before the ranges they contain.
type HighlightResult map[int][]types.StyledRange

// Highlighter parses text and runs highlight queries. It is safe for
// concurrent use.
type Highlighter struct {
	mu      sync.Mutex
	parser  *sitter.Parser
	queries map[*lang.Language]*sitter.Query
}

// NewHighlighter creates a highlighter and registers the built-in languages.
func NewHighlighter() *Highlighter {
	RegisterLanguages()
	return &Highlighter{
		parser:  sitter.NewParser(),
		queries: make(map[*lang.Language]*sitter.Query),
	}
}

// LanguageFor picks a language by explicit name first, then by file path.
// It returns nil when neither matches.
func (h *Highlighter) LanguageFor(name, path string) *lang.Language {
	if name != "" {
		if l := lang.GetByName(name); l != nil {
			return l
		}
		logger.Warnf("unknown language %q, detecting from file name", name)
	}
	if path == "" {
		return nil
	}
	return lang.GetForFile(path)
}

type capture struct {
	startByte, endByte uint32
	start, end         sitter.Point
	name               string
	pattern            uint16
}

// Highlight parses source as l and returns its styled ranges.
func (h *Highlighter) Highlight(ctx context.Context, source []byte, l *lang.Language) (HighlightResult, error) {
	if l == nil {
		return nil, errors.New("no language provided for highlighting")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	query, err := h.query(l)
	if err != nil {
		return nil, err
	}

	h.parser.SetLanguage(l.TreeSitterLang)
	tree, err := h.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing %s failed: %w", l.Name, err)
	}
	defer tree.Close()

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(query, tree.RootNode())

	// One capture per node span; the earliest pattern in the query wins.
	best := make(map[[2]uint32]capture)
	for {
		match, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, c := range match.Captures {
			node := c.Node
			if node.StartByte() >= node.EndByte() {
				continue
			}
			key := [2]uint32{node.StartByte(), node.EndByte()}
			if prev, seen := best[key]; seen && prev.pattern <= match.PatternIndex {
				continue
			}
			best[key] = capture{
				startByte: node.StartByte(),
				endByte:   node.EndByte(),
				start:     node.StartPoint(),
				end:       node.EndPoint(),
				name:      query.CaptureNameForId(c.Index),
				pattern:   match.PatternIndex,
			}
		}
	}

	lines := bytes.Split(source, []byte{'\n'})
	result := make(HighlightResult)
	for _, c := range best {
		splitCapture(result, lines, c)
	}
	for line := range result {
		ranges := result[line]
		sort.Slice(ranges, func(i, j int) bool {
			if ranges[i].StartCol != ranges[j].StartCol {
				return ranges[i].StartCol < ranges[j].StartCol
			}
			return ranges[i].EndCol > ranges[j].EndCol
		})
	}

	logger.DebugTagf("highlight", "%s: %d captures on %d lines", l.Name, len(best), len(result))
	return result, nil
}

// splitCapture adds one range per line covered by c.
func splitCapture(result HighlightResult, lines [][]byte, c capture) {
	first, last := int(c.start.Row), int(c.end.Row)
	for row := first; row <= last && row < len(lines); row++ {
		start, end := 0, len(lines[row])
		if row == first {
			start = int(c.start.Column)
		}
		if row == last {
			end = min(int(c.end.Column), end)
		}
		if end <= start {
			continue
		}
		result[row] = append(result[row], types.StyledRange{
			StartCol:  start,
			EndCol:    end,
			StyleName: c.name,
		})
	}
}

// query returns the compiled highlight query for l. Callers hold h.mu.
func (h *Highlighter) query(l *lang.Language) (*sitter.Query, error) {
	if q, ok := h.queries[l]; ok {
		return q, nil
	}
	src, err := l.Query()
	if err != nil {
		return nil, err
	}
	q, err := sitter.NewQuery(src, l.TreeSitterLang)
	if err != nil {
		return nil, fmt.Errorf("invalid highlight query for %s: %w", l.Name, err)
	}
	h.queries[l] = q
	return q, nil
}
