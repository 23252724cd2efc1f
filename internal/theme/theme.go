// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/tabmate/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Theme is a named set of styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle looks up name, then its dotted parents ("function.method.call"
// tries "function.method" then "function"), then "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	for n := name; n != ""; {
		if style, ok := t.Styles[n]; ok {
			return style
		}
		dot := strings.LastIndex(n, ".")
		if dot < 0 {
			break
		}
		n = n[:dot]
	}

	if def, ok := t.Styles["Default"]; ok {
		return def
	}
	logger.Warnf("theme '%s': no style '%s' and no Default, using tcell default", t.Name, name)
	return tcell.StyleDefault
}

// TabmateDark is the built-in dark theme.
var TabmateDark = newTabmateDark()

func newTabmateDark() *Theme {
	bg := tcell.NewHexColor(0x2a2f38)
	fg := tcell.NewHexColor(0xc5cdd9)
	muted := tcell.NewHexColor(0x5c6370)
	orange := tcell.NewHexColor(0xd19a66)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)
	cyan := tcell.NewHexColor(0x56b6c2)
	blue := tcell.NewHexColor(0x61afef)
	magenta := tcell.NewHexColor(0xc678dd)
	red := tcell.NewHexColor(0xe06c75)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(fg)
	bar := tcell.StyleDefault.Background(bg).Foreground(fg)

	return &Theme{
		Name:   "Tabmate Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			// UI
			"Default":            base,
			"Selection":          base.Reverse(true),
			"Gutter":             base.Foreground(muted),
			"GutterCurrent":      base.Foreground(yellow),
			"FieldBorder":        base.Foreground(muted),
			"FieldBorderFocused": base.Foreground(blue),
			"FieldTitle":         base.Foreground(fg).Bold(true),
			"StatusBar":          bar,
			"StatusBarAttached":  bar.Foreground(green).Bold(true),
			"StatusBarDetached":  bar.Foreground(red).Bold(true),
			"StatusBarModified":  bar.Foreground(yellow),
			"StatusBarMessage":   bar.Bold(true),

			// Syntax
			"keyword":               base.Foreground(blue).Bold(true),
			"string":                base.Foreground(green),
			"string.escape":         base.Foreground(magenta),
			"string.special":        base.Foreground(magenta),
			"comment":               base.Foreground(muted).Italic(true),
			"number":                base.Foreground(orange),
			"boolean":               base.Foreground(orange),
			"constant":              base.Foreground(orange),
			"type":                  base.Foreground(cyan),
			"namespace":             base.Foreground(cyan),
			"function":              base.Foreground(yellow),
			"property":              base.Foreground(blue),
			"label":                 base.Foreground(magenta),
			"variable":              base,
			"punctuation":           base.Foreground(muted),
			"punctuation.delimiter": base.Foreground(muted),
		},
	}
}
