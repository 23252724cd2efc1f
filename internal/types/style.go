package types

// StyledRange marks a run of bytes [StartCol, EndCol) on one line that should
// be drawn with the named theme style.
type StyledRange struct {
	StartCol  int
	EndCol    int
	StyleName string
}
