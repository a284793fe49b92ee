// Package colorimetry provides the pure per-channel brightness math used by
// the trace pipeline.
//
// All functions are stateless and total: every numeric input produces a
// numeric output with no error conditions. Channel values are raw 8-bit
// (0-255) unless a specific formula normalizes them internally.
//
// # Brightness Metrics
//
// Three different brightness scalars are derived per pixel, each with a
// different purpose:
//
//   - WeightedLuminosity: a cheap perceptual weighting on raw channel values,
//     used as the input to the Sobel convolution.
//   - RGBAverage: the arithmetic channel mean, a rough brightness proxy.
//   - PerceivedLightness: CIE L* via sRGB linearization, a perceptually
//     uniform scale in [0,100], used to pick shading glyphs.
package colorimetry

import "math"

// SRGBToLinear converts a normalized sRGB channel value c in [0,1] to linear
// light using the piecewise sRGB transfer function.
func SRGBToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// YToLStar converts a relative luminance Y in [0,1] to CIE L* in [0,100]
// using the piecewise CIE lightness function.
func YToLStar(y float64) float64 {
	if y <= 216.0/24389.0 {
		return y * (24389.0 / 27.0)
	}
	return math.Cbrt(y)*116 - 16
}

// WeightedLuminosity computes the perceptually weighted brightness
// 0.3*r + 0.59*g + 0.11*b on raw 0-255 channel values.
//
// The result stays on the 0-255 scale. This is the value the edge detector
// convolves over.
func WeightedLuminosity(r, g, b uint8) float64 {
	return 0.3*float64(r) + 0.59*float64(g) + 0.11*float64(b)
}

// RGBAverage returns the arithmetic mean of the three raw channel values.
func RGBAverage(r, g, b uint8) float64 {
	return (float64(r) + float64(g) + float64(b)) / 3
}

// RelativeLuminance computes the ITU-R BT.709 relative luminance of an sRGB
// triple: each channel is normalized to [0,1], linearized, then combined
// with weights 0.2126/0.7152/0.0722. The result is in [0,1].
func RelativeLuminance(r, g, b uint8) float64 {
	rl := SRGBToLinear(float64(r) / 255)
	gl := SRGBToLinear(float64(g) / 255)
	bl := SRGBToLinear(float64(b) / 255)
	return 0.2126*rl + 0.7152*gl + 0.0722*bl
}

// PerceivedLightness computes CIE L* for an sRGB triple.
//
// The result is approximately in [0,100]: 0 for pure black, ~100 for pure
// white. Unlike RelativeLuminance, L* is perceptually uniform, so equal
// steps in L* look like equal brightness steps to a viewer.
func PerceivedLightness(r, g, b uint8) float64 {
	return YToLStar(RelativeLuminance(r, g, b))
}
