package trace

import (
	"errors"
	"math"
	"testing"
)

func TestRemap(t *testing.T) {
	tests := []struct {
		name              string
		n, s1, e1, s2, e2 float64
		want              float64
	}{
		{"identity", 5, 0, 10, 0, 10, 5},
		{"scale up", 5, 0, 10, 0, 100, 50},
		{"shift", 0, 0, 1, 10, 20, 10},
		{"lightness to ramp", 50, 0, 100, 0, 6, 3},
		{"extrapolates below", -10, 0, 100, 0, 10, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Remap(tt.n, tt.s1, tt.e1, tt.s2, tt.e2)
			if err != nil {
				t.Fatalf("Remap failed: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Remap: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRemap_RoundTrip(t *testing.T) {
	for _, n := range []float64{0, 12.5, 50, 99.9, 100} {
		mid, err := Remap(n, 0, 100, 3, 17)
		if err != nil {
			t.Fatalf("Remap failed: %v", err)
		}
		back, err := Remap(mid, 3, 17, 0, 100)
		if err != nil {
			t.Fatalf("Remap failed: %v", err)
		}
		if math.Abs(back-n) > 1e-9 {
			t.Errorf("round trip of %v: got %v", n, back)
		}
	}
}

func TestRemap_InvalidRange(t *testing.T) {
	tests := []struct {
		name              string
		n, s1, e1, s2, e2 float64
	}{
		{"reversed source", 5, 10, 0, 0, 1},
		{"degenerate source", 5, 3, 3, 0, 1},
		{"reversed destination", 5, 0, 10, 1, 0},
		{"degenerate destination", 5, 0, 10, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Remap(tt.n, tt.s1, tt.e1, tt.s2, tt.e2)
			if !errors.Is(err, ErrInvalidRange) {
				t.Errorf("got %v, want ErrInvalidRange", err)
			}
		})
	}
}

func TestMapGlyph_DefaultRamp(t *testing.T) {
	cfg := Config{}.withDefaults()

	tests := []struct {
		name      string
		lightness float64
		want      string
	}{
		{"pure black", 0, "*"},
		{"dark", 10, "*"},
		{"mid", 50, "."},
		{"above blank cutoff", 81, " "},
		{"pure white", 100, " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := PixelSample{PerceivedLightness: tt.lightness}
			got, err := mapGlyph(&s, &cfg)
			if err != nil {
				t.Fatalf("mapGlyph failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("lightness %v: got %q, want %q", tt.lightness, got, tt.want)
			}
		})
	}
}

func TestMapGlyph_CustomRampStaysInBounds(t *testing.T) {
	// Lightness exactly at the blank cutoff still maps through the ramp;
	// the index must stay inside even the smallest valid ramp.
	cfg := Config{Ramp: []string{"a", "b"}}.withDefaults()

	for _, l := range []float64{0, 40, 79.999, 80} {
		s := PixelSample{PerceivedLightness: l}
		got, err := mapGlyph(&s, &cfg)
		if err != nil {
			t.Fatalf("mapGlyph(%v) failed: %v", l, err)
		}
		if got != "a" && got != "b" {
			t.Errorf("lightness %v: got %q, want a ramp glyph", l, got)
		}
	}
}

func TestMapGlyph_EdgeWins(t *testing.T) {
	cfg := Config{TraceEdges: true, EdgeThreshold: 100}.withDefaults()

	tests := []struct {
		name string
		mag  float64
		want string
	}{
		{"above threshold", 150, "#"},
		{"at threshold shades instead", 100, "*"},
		{"below threshold shades", 0, "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := PixelSample{GradientMagnitude: tt.mag}
			got, err := mapGlyph(&s, &cfg)
			if err != nil {
				t.Fatalf("mapGlyph failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("magnitude %v: got %q, want %q", tt.mag, got, tt.want)
			}
		})
	}
}

func TestMapGlyph_CustomEdgeCharacter(t *testing.T) {
	cfg := Config{TraceEdges: true, EdgeCharacter: "@"}.withDefaults()
	s := PixelSample{GradientMagnitude: 1}
	got, err := mapGlyph(&s, &cfg)
	if err != nil {
		t.Fatalf("mapGlyph failed: %v", err)
	}
	if got != "@" {
		t.Errorf("got %q, want %q", got, "@")
	}
}
