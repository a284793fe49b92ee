package trace

import (
	"fmt"

	"github.com/glyphtrace/glyphtrace/internal/colorimetry"
)

// PixelSample is the per-pixel record the pipeline operates on.
//
// The RGB channels are immutable once derived from the input buffer; the
// brightness metrics are filled by BuildPixelMap, and the gradient fields
// are filled in place by detectEdges. Samples live in a contiguous slice
// indexed row-major, so the convolution pass walks memory linearly.
type PixelSample struct {
	// R, G, B are the raw 8-bit channel values from the source buffer.
	R, G, B uint8

	// RGBAverage is the arithmetic mean of the three channels, 0-255.
	RGBAverage float64

	// Luminosity is the weighted brightness 0.3R + 0.59G + 0.11B, 0-255.
	// This is the field the Sobel convolution reads.
	Luminosity float64

	// PerceivedLightness is CIE L* in approximately [0,100].
	PerceivedLightness float64

	// GradientMagnitude is the combined Sobel response, >= 0.
	// Zero until detectEdges runs.
	GradientMagnitude float64

	// GradientAngle is the gradient direction in degrees. Because it is
	// derived from squared kernel sums it lands in [0,90] in practice.
	GradientAngle float64
}

// BuildPixelMap expands a flat RGBA byte buffer into a row-major slice of
// PixelSample records with all brightness metrics populated.
//
// The buffer must hold 4 bytes per pixel (RGBA order, alpha ignored). A
// length that is not a multiple of 4 is a contract violation and returns
// ErrMalformedBuffer rather than silently truncating. Row geometry is not
// checked here; Trace validates the full 4*width*height length before
// calling.
func BuildPixelMap(buf []byte) ([]PixelSample, error) {
	if len(buf)%4 != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of 4", ErrMalformedBuffer, len(buf))
	}

	samples := make([]PixelSample, len(buf)/4)
	for i := 0; i < len(buf); i += 4 {
		r, g, b := buf[i], buf[i+1], buf[i+2]
		samples[i/4] = PixelSample{
			R:                  r,
			G:                  g,
			B:                  b,
			RGBAverage:         colorimetry.RGBAverage(r, g, b),
			Luminosity:         colorimetry.WeightedLuminosity(r, g, b),
			PerceivedLightness: colorimetry.PerceivedLightness(r, g, b),
		}
	}
	return samples, nil
}
