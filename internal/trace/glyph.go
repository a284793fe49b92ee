package trace

import (
	"fmt"
	"math"
)

// DefaultRamp is the built-in 7-step shading ramp, darkest to lightest.
var DefaultRamp = []string{"*", "+", ";", ".", "`", ",", " "}

// DefaultEdgeCharacter marks edge pixels when edge tracing is enabled.
const DefaultEdgeCharacter = "#"

// lightness above this renders as blank regardless of the ramp
const lightnessBlankCutoff = 80.0

// Remap linearly rescales n from the range [s1,e1] to [s2,e2].
//
// Both ranges must be strictly increasing; otherwise Remap returns an error
// wrapping ErrInvalidRange. n is not clamped to the source range, so values
// outside [s1,e1] extrapolate.
func Remap(n, s1, e1, s2, e2 float64) (float64, error) {
	if s1 >= e1 || s2 >= e2 {
		return 0, fmt.Errorf("%w: [%v,%v] -> [%v,%v]", ErrInvalidRange, s1, e1, s2, e2)
	}
	return (n-s1)/(e1-s1)*(e2-s2) + s2, nil
}

// mapGlyph converts one finalized sample to its output glyph.
//
// Edge tracing wins: if enabled and the gradient magnitude clears the
// threshold, the edge character is returned without consulting lightness.
// Otherwise very light pixels (L* > 80) render blank, and everything else
// is bucketed into the ramp by perceived lightness.
func mapGlyph(s *PixelSample, cfg *Config) (string, error) {
	if cfg.TraceEdges && s.GradientMagnitude > cfg.EdgeThreshold {
		return cfg.EdgeCharacter, nil
	}
	if s.PerceivedLightness > lightnessBlankCutoff {
		return " ", nil
	}

	pos, err := Remap(s.PerceivedLightness, 0, 100, 0, float64(len(cfg.Ramp)-1))
	if err != nil {
		return "", err
	}
	idx := int(math.Floor(pos))
	// Guard against L* landing exactly on 100 or drifting past the ramp
	// through float rounding.
	if idx < 0 {
		idx = 0
	}
	if idx > len(cfg.Ramp)-1 {
		idx = len(cfg.Ramp) - 1
	}
	return cfg.Ramp[idx], nil
}
