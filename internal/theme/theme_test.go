package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
)

func TestGetStyleFallback(t *testing.T) {
	th := &Theme{
		Name: "t",
		Styles: map[string]tcell.Style{
			"Default":  tcell.StyleDefault,
			"function": tcell.StyleDefault.Bold(true),
		},
	}
	if got := th.GetStyle("function.method.call"); got != th.Styles["function"] {
		t.Errorf("dotted lookup did not fall back to parent")
	}
	if got := th.GetStyle("keyword"); got != th.Styles["Default"] {
		t.Errorf("missing style did not fall back to Default")
	}
}

func writeTheme(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadThemeFromFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTheme(t, dir, "light.toml", `
name = "Paper"
[styles.Default]
fg = "#101010"
bg = "white"
[styles.keyword]
bold = true
[styles.broken]
fg = "#12"
`)
	th, err := LoadThemeFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if th.Name != "Paper" {
		t.Errorf("Name = %q", th.Name)
	}

	def := tcell.StyleDefault.Foreground(tcell.NewHexColor(0x101010)).Background(tcell.ColorWhite)
	if th.Styles["Default"] != def {
		t.Errorf("Default style not parsed")
	}
	if th.Styles["keyword"] != def.Bold(true) {
		t.Errorf("keyword did not inherit Default")
	}
	if _, ok := th.Styles["broken"]; ok {
		t.Errorf("invalid style was kept")
	}
}

func TestManager(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "a.toml", "name = \"Alpha\"\n")
	writeTheme(t, dir, "notes.txt", "ignored")

	m := NewManager(dir)
	if diff := cmp.Diff([]string{"Alpha", "Tabmate Dark"}, m.ListThemes()); diff != "" {
		t.Errorf("ListThemes (-want +got):\n%s", diff)
	}
	if m.Current() != TabmateDark {
		t.Errorf("default theme = %s", m.Current().Name)
	}
	if err := m.SetTheme("alpha"); err != nil {
		t.Fatal(err)
	}
	if m.Current().Name != "Alpha" {
		t.Errorf("Current = %s", m.Current().Name)
	}
	if err := m.SetTheme("missing"); err == nil {
		t.Error("SetTheme(missing) succeeded")
	}

	path := writeTheme(t, t.TempDir(), "beta.toml", "name = \"Beta\"\n")
	if err := m.SetTheme(path); err != nil {
		t.Fatal(err)
	}
	if m.Current().Name != "Beta" {
		t.Errorf("Current after path = %s", m.Current().Name)
	}
}

func TestNewManagerMissingDir(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "nope"))
	if len(m.ListThemes()) != 1 {
		t.Errorf("ListThemes = %v", m.ListThemes())
	}
}
