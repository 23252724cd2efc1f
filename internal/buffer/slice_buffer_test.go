package buffer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/tabmate/internal/types"
	"github.com/google/go-cmp/cmp"
)

func TestOffsetPositionRoundTrip(t *testing.T) {
	text := "a: 1\nnaïve\n\n  x"
	sb := NewSliceBufferFromString(text)

	for off := 0; off <= len(text); off++ {
		pos, err := sb.PositionAt(off)
		if off == 8 { // inside ï
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("PositionAt(%d) err = %v, want ErrOutOfRange", off, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("PositionAt(%d): %v", off, err)
		}
		back, err := sb.Offset(pos)
		if err != nil {
			t.Fatalf("Offset(%v): %v", pos, err)
		}
		if back != off {
			t.Errorf("Offset(PositionAt(%d)) = %d (pos %v)", off, back, pos)
		}
	}
}

func TestPositionAt(t *testing.T) {
	sb := NewSliceBufferFromString("ab\ncdé\n")
	cases := []struct {
		off  int
		want types.Position
	}{
		{0, types.Position{Line: 0, Col: 0}},
		{2, types.Position{Line: 0, Col: 2}},
		{3, types.Position{Line: 1, Col: 0}},
		{7, types.Position{Line: 1, Col: 3}},
		{8, types.Position{Line: 2, Col: 0}},
	}
	for _, tc := range cases {
		got, err := sb.PositionAt(tc.off)
		if err != nil {
			t.Fatalf("PositionAt(%d): %v", tc.off, err)
		}
		if got != tc.want {
			t.Errorf("PositionAt(%d) = %v, want %v", tc.off, got, tc.want)
		}
	}
	if _, err := sb.PositionAt(9); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("PositionAt(9) err = %v, want ErrOutOfRange", err)
	}
	if _, err := sb.Offset(types.Position{Line: 0, Col: 3}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Offset past line end err = %v, want ErrOutOfRange", err)
	}
}

func TestInsert(t *testing.T) {
	cases := []struct {
		name    string
		initial string
		pos     types.Position
		text    string
		want    string
		wantEnd types.Position
	}{
		{"single line", "hello", types.Position{Line: 0, Col: 5}, " world", "hello world", types.Position{Line: 0, Col: 11}},
		{"multi line", "ab", types.Position{Line: 0, Col: 1}, "x\ny\nz", "ax\ny\nzb", types.Position{Line: 2, Col: 1}},
		{"newline only", "ab", types.Position{Line: 0, Col: 2}, "\n", "ab\n", types.Position{Line: 1, Col: 0}},
		{"clamped", "ab\ncd", types.Position{Line: 9, Col: 9}, "!", "ab\ncd!", types.Position{Line: 1, Col: 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sb := NewSliceBufferFromString(tc.initial)
			end, err := sb.Insert(tc.pos, []byte(tc.text))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, sb.String()); diff != "" {
				t.Errorf("text mismatch (-want +got):\n%s", diff)
			}
			if end != tc.wantEnd {
				t.Errorf("end = %v, want %v", end, tc.wantEnd)
			}
			if !sb.IsModified() {
				t.Error("buffer not marked modified")
			}
		})
	}
}

func TestDeleteAndSlice(t *testing.T) {
	sb := NewSliceBufferFromString("one\ntwo\nthree")
	start := types.Position{Line: 0, Col: 2}
	end := types.Position{Line: 2, Col: 1}

	got, err := sb.Slice(end, start)
	if err != nil {
		t.Fatal(err)
	}
	if got != "e\ntwo\nt" {
		t.Errorf("Slice = %q", got)
	}

	if err := sb.Delete(end, start); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "onhree" {
		t.Errorf("after Delete = %q, want %q", sb.String(), "onhree")
	}
	if sb.LineCount() != 1 {
		t.Errorf("LineCount = %d, want 1", sb.LineCount())
	}
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.yaml")
	if err := os.WriteFile(path, []byte("a:\r\n  b: 1\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	sb := NewSliceBuffer()
	if err := sb.Load(path); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "a:\n  b: 1\n" {
		t.Errorf("loaded %q", sb.String())
	}
	if sb.FilePath() != path || sb.IsModified() {
		t.Errorf("FilePath=%q modified=%v", sb.FilePath(), sb.IsModified())
	}

	sb.SetText("x: 2\n")
	out := filepath.Join(dir, "out.yaml")
	if err := sb.Save(out); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "x: 2\n" {
		t.Errorf("saved %q", data)
	}

	missing := NewSliceBuffer()
	if err := missing.Load(filepath.Join(dir, "nope.yaml")); err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
	if missing.String() != "" || missing.LineCount() != 1 {
		t.Errorf("missing file gave %q", missing.String())
	}
	if err := NewSliceBuffer().Save(""); err == nil {
		t.Error("Save with no path should fail")
	}
}
