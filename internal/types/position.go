// internal/types/position.go
package types

// Position is a caret location inside a line-based buffer.
// Line is the 0-based line index, Col the 0-based rune index within it.
type Position struct {
	Line int
	Col  int
}

// Before reports whether p comes strictly before q.
func (p Position) Before(q Position) bool {
	return p.Line < q.Line || (p.Line == q.Line && p.Col < q.Col)
}
