// internal/buffer/buffer.go
package buffer

import "github.com/bethropolis/tabmate/internal/types"

// Buffer defines the text storage behind a field.
type Buffer interface {
	Load(filePath string) error
	Save(filePath string) error
	Lines() [][]byte
	Line(index int) ([]byte, error)
	LineCount() int
	String() string
	SetText(text string)
	Insert(pos types.Position, text []byte) (types.Position, error)
	Delete(start, end types.Position) error
	Slice(start, end types.Position) (string, error)
	Offset(pos types.Position) (int, error)
	PositionAt(offset int) (types.Position, error)
	FilePath() string
	IsModified() bool
}
