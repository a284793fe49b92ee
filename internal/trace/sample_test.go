package trace

import (
	"errors"
	"math"
	"testing"
)

func TestBuildPixelMap_AllBlack(t *testing.T) {
	// 2x2 all-black RGBA buffer: 16 zero bytes -> 4 zeroed samples.
	buf := make([]byte, 16)

	samples, err := BuildPixelMap(buf)
	if err != nil {
		t.Fatalf("BuildPixelMap failed: %v", err)
	}

	if len(samples) != 4 {
		t.Fatalf("sample count: got %d, want 4", len(samples))
	}
	for i, s := range samples {
		if s.R != 0 || s.G != 0 || s.B != 0 {
			t.Errorf("sample %d: rgb (%d,%d,%d), want (0,0,0)", i, s.R, s.G, s.B)
		}
		if s.Luminosity != 0 {
			t.Errorf("sample %d: luminosity %v, want 0", i, s.Luminosity)
		}
		if s.PerceivedLightness != 0 {
			t.Errorf("sample %d: perceived lightness %v, want 0", i, s.PerceivedLightness)
		}
	}
}

func TestBuildPixelMap_Metrics(t *testing.T) {
	// One orange-ish pixel; alpha byte must be ignored.
	buf := []byte{200, 100, 50, 7}

	samples, err := BuildPixelMap(buf)
	if err != nil {
		t.Fatalf("BuildPixelMap failed: %v", err)
	}
	if len(samples) != 1 {
		t.Fatalf("sample count: got %d, want 1", len(samples))
	}

	s := samples[0]
	if s.R != 200 || s.G != 100 || s.B != 50 {
		t.Errorf("rgb: got (%d,%d,%d), want (200,100,50)", s.R, s.G, s.B)
	}
	wantAvg := (200.0 + 100.0 + 50.0) / 3
	if math.Abs(s.RGBAverage-wantAvg) > 1e-9 {
		t.Errorf("RGBAverage: got %v, want %v", s.RGBAverage, wantAvg)
	}
	wantLum := 0.3*200 + 0.59*100 + 0.11*50
	if math.Abs(s.Luminosity-wantLum) > 1e-9 {
		t.Errorf("Luminosity: got %v, want %v", s.Luminosity, wantLum)
	}
	if s.PerceivedLightness <= 0 || s.PerceivedLightness >= 100 {
		t.Errorf("PerceivedLightness out of (0,100): %v", s.PerceivedLightness)
	}
	if s.GradientMagnitude != 0 || s.GradientAngle != 0 {
		t.Errorf("gradient fields must be zero before detection: mag=%v angle=%v",
			s.GradientMagnitude, s.GradientAngle)
	}
}

func TestBuildPixelMap_MalformedLength(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 15} {
		_, err := BuildPixelMap(make([]byte, n))
		if !errors.Is(err, ErrMalformedBuffer) {
			t.Errorf("length %d: got %v, want ErrMalformedBuffer", n, err)
		}
	}
}

func TestBuildPixelMap_Empty(t *testing.T) {
	samples, err := BuildPixelMap(nil)
	if err != nil {
		t.Fatalf("BuildPixelMap(nil) failed: %v", err)
	}
	if len(samples) != 0 {
		t.Errorf("sample count: got %d, want 0", len(samples))
	}
}
