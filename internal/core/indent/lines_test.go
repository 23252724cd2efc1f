package indent

import (
	"errors"
	"testing"
)

func TestLineRange(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		sel       Selection
		wantStart int
		wantEnd   int
	}{
		{"within a line", "This is a test line", Selection{5, 9}, 0, 19},
		{"spanning lines", "First line\nSecond line\nThird line", Selection{5, 20}, 0, 22},
		{"start of text", "First line\nSecond line", Selection{0, 3}, 0, 10},
		{"end of text", "First line\nSecond line\nThird line", Selection{15, 25}, 11, 33},
		{"empty text", "", Selection{0, 0}, 0, 0},
		{"caret after newline", "ab\ncd", Caret(3), 3, 5},
		{"caret before newline", "ab\ncd", Caret(2), 0, 2},
		{"selection ending on newline", "ab\ncd", Selection{0, 2}, 0, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			start, end, err := LineRange(tc.text, tc.sel)
			if err != nil {
				t.Fatalf("LineRange() error: %v", err)
			}
			if start != tc.wantStart || end != tc.wantEnd {
				t.Errorf("LineRange() = (%d, %d), want (%d, %d)", start, end, tc.wantStart, tc.wantEnd)
			}
		})
	}
}

func TestLineRangeAlignsOnLineBoundaries(t *testing.T) {
	text := "alpha\n\n  beta\ngamma\n"
	for s := 0; s <= len(text); s++ {
		for e := s; e <= len(text); e++ {
			start, end, err := LineRange(text, Selection{s, e})
			if err != nil {
				t.Fatalf("LineRange(%d, %d) error: %v", s, e, err)
			}
			if start != 0 && text[start-1] != '\n' {
				t.Errorf("LineRange(%d, %d) start %d does not follow a newline", s, e, start)
			}
			if end != len(text) && text[end] != '\n' {
				t.Errorf("LineRange(%d, %d) end %d is not on a newline", s, e, end)
			}
			if start > s || end < e {
				t.Errorf("LineRange(%d, %d) = (%d, %d) does not cover the selection", s, e, start, end)
			}
		}
	}
}

func TestLineRangeInvalid(t *testing.T) {
	tests := []struct {
		name string
		text string
		sel  Selection
	}{
		{"reversed", "abc", Selection{2, 1}},
		{"negative", "abc", Selection{-1, 1}},
		{"past end", "abc", Selection{0, 4}},
		{"inside rune", "é", Caret(1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := LineRange(tc.text, tc.sel); !errors.Is(err, ErrInvalidRange) {
				t.Errorf("LineRange() error = %v, want ErrInvalidRange", err)
			}
		})
	}
}

func TestSplice(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		start, end  int
		replacement string
		want        string
	}{
		{"middle", "This is a test string", 5, 7, "was", "This was a test string"},
		{"start", "This is a test string", 0, 4, "That", "That is a test string"},
		{"end", "This is a test string", 15, 21, "example", "This is a test example"},
		{"empty replacement", "This is a test string", 5, 7, "", "This  a test string"},
		{"empty original", "", 0, 0, "New text", "New text"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Splice(tc.text, tc.start, tc.end, tc.replacement)
			if err != nil {
				t.Fatalf("Splice() error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Splice() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSpliceInvalidRange(t *testing.T) {
	for _, r := range [][2]int{{3, 2}, {-1, 0}, {0, 10}} {
		if _, err := Splice("abc", r[0], r[1], "x"); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("Splice(%d, %d) error = %v, want ErrInvalidRange", r[0], r[1], err)
		}
	}
}
