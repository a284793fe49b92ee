package render

import (
	"strings"
	"testing"

	"github.com/glyphtrace/glyphtrace/internal/trace"
)

func TestANSI(t *testing.T) {
	cells := [][]trace.Cell{
		{
			{Char: "█", R: 255, G: 0, B: 0},
			{Char: "█", R: 0, G: 255, B: 0},
		},
		{
			{Char: "█", R: 0, G: 0, B: 255},
			{Char: "█", R: 0, G: 0, B: 255},
		},
	}

	out := ANSI(cells)

	for _, want := range []string{
		"\x1b[38;2;255;0;0m",
		"\x1b[38;2;0;255;0m",
		"\x1b[38;2;0;0;255m",
		"\x1b[0m",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	if strings.Count(out, "\n") != 1 {
		t.Errorf("newlines: got %d, want 1", strings.Count(out, "\n"))
	}
	if strings.Count(out, "█") != 4 {
		t.Errorf("glyphs: got %d, want 4", strings.Count(out, "█"))
	}
	// Second blue cell reuses the active color.
	if strings.Count(out, "\x1b[38;2;0;0;255m") != 1 {
		t.Errorf("repeated color was not coalesced")
	}
}

func TestANSI_Empty(t *testing.T) {
	if out := ANSI(nil); out != "" {
		t.Errorf("nil matrix: got %q, want empty", out)
	}
}
