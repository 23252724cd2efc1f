// internal/theme/loader.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/tabmate/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// TomlStyleDef is one style entry in a theme file. Unset fields inherit
// from the theme's Default style.
type TomlStyleDef struct {
	Fg        *string `toml:"fg"`
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

// TomlTheme is the layout of a theme file.
type TomlTheme struct {
	Name   string                  `toml:"name"`
	IsDark bool                    `toml:"is_dark"`
	Styles map[string]TomlStyleDef `toml:"styles"`
}

// LoadThemeFromFile parses a TOML theme file.
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file '%s': %w", filePath, err)
	}

	var tt TomlTheme
	meta, err := toml.Decode(string(data), &tt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML theme file '%s': %w", filePath, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("theme file '%s': unrecognized keys %v", filePath, undecoded)
	}
	if tt.Name == "" {
		tt.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}

	theme := &Theme{
		Name:   tt.Name,
		IsDark: tt.IsDark,
		Styles: make(map[string]tcell.Style, len(tt.Styles)+1),
	}

	base := tcell.StyleDefault
	if def, ok := tt.Styles["Default"]; ok {
		if base, err = convertTomlStyle(def, tcell.StyleDefault); err != nil {
			return nil, fmt.Errorf("theme '%s': Default style: %w", tt.Name, err)
		}
	}
	theme.Styles["Default"] = base

	for name, def := range tt.Styles {
		if name == "Default" {
			continue
		}
		style, err := convertTomlStyle(def, base)
		if err != nil {
			logger.Warnf("theme '%s': skipping style '%s': %v", tt.Name, name, err)
			continue
		}
		theme.Styles[name] = style
	}

	logger.Debugf("loaded theme '%s' from '%s'", theme.Name, filePath)
	return theme, nil
}

func convertTomlStyle(def TomlStyleDef, base tcell.Style) (tcell.Style, error) {
	style := base
	if def.Fg != nil {
		c, err := parseColor(*def.Fg)
		if err != nil {
			return style, fmt.Errorf("invalid foreground: %w", err)
		}
		style = style.Foreground(c)
	}
	if def.Bg != nil {
		c, err := parseColor(*def.Bg)
		if err != nil {
			return style, fmt.Errorf("invalid background: %w", err)
		}
		style = style.Background(c)
	}
	if def.Bold != nil {
		style = style.Bold(*def.Bold)
	}
	if def.Italic != nil {
		style = style.Italic(*def.Italic)
	}
	if def.Underline != nil {
		style = style.Underline(*def.Underline)
	}
	if def.Reverse != nil {
		style = style.Reverse(*def.Reverse)
	}
	return style, nil
}

// parseColor accepts "#rrggbb", a tcell/W3C colour name, "reset" or
// "default".
func parseColor(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "reset":
		return tcell.ColorReset, nil
	case "default":
		return tcell.ColorDefault, nil
	}
	if strings.HasPrefix(s, "#") && len(s) != 7 {
		return tcell.ColorDefault, fmt.Errorf("'%s' must be #rrggbb", s)
	}
	c := tcell.GetColor(s)
	if c == tcell.ColorDefault {
		return c, fmt.Errorf("unknown color '%s'", s)
	}
	return c, nil
}
