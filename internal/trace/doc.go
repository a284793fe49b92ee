// Package trace implements the pixel-to-glyph pipeline at the heart of
// glyphtrace.
//
// A trace runs three passes over a flat RGBA buffer:
//
//  1. Build: the buffer is expanded into a contiguous arena of PixelSample
//     records, each carrying the derived brightness metrics (channel average,
//     weighted luminosity, CIE L*).
//  2. Detect: a 3x3 Sobel convolution over the luminosity field adds a
//     gradient magnitude and angle to every sample.
//  3. Map: each sample is quantized to a single output glyph, either an edge
//     marker (when edge tracing is on and the gradient clears the threshold)
//     or a shading-ramp character picked by perceived lightness.
//
// Data flows strictly forward: no pass reads a neighbor's derived fields,
// and the sample arena is owned by a single Trace call for its duration.
// The detect pass may optionally run data-parallel across disjoint row
// ranges; each pixel reads only luminosity (written by the build pass) and
// writes only its own gradient fields, so no synchronization is needed
// beyond joining the workers.
//
// # Compatibility Quirks
//
// The convolution deliberately reproduces three oddities of the original
// renderer this package is output-compatible with: the 3x3 window is
// anchored at the pixel and extends right/down rather than being centered,
// the kernel weight lookup is transposed relative to row-major kernel
// layout, and the gradient angle is derived from the squared sums. See the
// comments in sobel.go.
package trace
