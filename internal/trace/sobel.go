package trace

import (
	"math"
	"sync"
)

// Sobel kernels, flattened row-major from the conventional 3x3 matrices.
var (
	sobelHorizontal = [9]float64{
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	}
	sobelVertical = [9]float64{
		-1, -2, -1,
		0, 0, 0,
		1, 2, 1,
	}
)

// detectEdges runs the Sobel pass over the sample arena, filling
// GradientMagnitude and GradientAngle on every sample in place.
//
// Three behaviors are preserved from the renderer this package is
// output-compatible with, and must not be "corrected" without accepting a
// different output:
//
//   - The 3x3 window is anchored at the pixel and extends right/down
//     (offsets i + width*y + x for y,x in {0,1,2}), not centered. Pixels in
//     the last column therefore read luminosity from the start of the next
//     row; only a linear bounds check is applied.
//   - The kernel weight index is x*3 + y, transposed from the row-major
//     kernel layout above, which effectively swaps the two kernels.
//   - The angle is computed from the squared sums, atan2(vSum², hSum²),
//     collapsing it into [0,90] degrees.
//
// Out-of-range neighbors contribute luminosity 0.
//
// workers > 1 splits the arena into disjoint row ranges processed
// concurrently. Each pixel reads only Luminosity (written before this pass)
// and writes only its own gradient fields, so the result is identical to
// the serial pass.
func detectEdges(samples []PixelSample, width, workers int) {
	if workers <= 1 || len(samples) <= width {
		detectEdgesRange(samples, width, 0, len(samples))
		return
	}

	height := (len(samples) + width - 1) / width
	if workers > height {
		workers = height
	}
	rowsPer := (height + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * rowsPer * width
		hi := lo + rowsPer*width
		if lo >= len(samples) {
			break
		}
		if hi > len(samples) {
			hi = len(samples)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			detectEdgesRange(samples, width, lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// detectEdgesRange computes gradients for samples[lo:hi]. The neighborhood
// reads may range over the whole arena; only the writes stay in [lo,hi).
func detectEdgesRange(samples []PixelSample, width, lo, hi int) {
	n := len(samples)
	for i := lo; i < hi; i++ {
		var hSum, vSum float64
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				idx := i + width*y + x
				if idx < 0 || idx >= n {
					continue
				}
				lum := samples[idx].Luminosity
				k := x*3 + y
				hSum += lum * sobelHorizontal[k]
				vSum += lum * sobelVertical[k]
			}
		}
		gx := hSum * hSum
		gy := vSum * vSum
		samples[i].GradientMagnitude = math.Sqrt(gx + gy)
		samples[i].GradientAngle = math.Atan2(gy, gx) * 180 / math.Pi
	}
}
