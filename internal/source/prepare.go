package source

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// DefaultCharAspect is the height:width ratio of a typical terminal cell.
// Glyph grids rendered at this ratio keep the source image's proportions.
const DefaultCharAspect = 2.0

// Flatten converts any decoded image into the tightly packed RGBA byte
// buffer the trace core consumes: 4 bytes per pixel, row-major, top to
// bottom, non-premultiplied.
func Flatten(img image.Image) (buf []byte, width, height int) {
	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()
	return nrgba.Pix, b.Dx(), b.Dy()
}

// Fit downscales an image so its glyph rendering is cols characters wide
// while preserving the apparent aspect ratio.
//
// charAspect is the terminal cell height:width ratio (use DefaultCharAspect
// for common terminals); values <= 0 fall back to the default. The row count
// is scaled down by that factor, since one glyph is that many times taller
// than wide. Fit never upscales: a source narrower than cols keeps its
// width. Resampling uses a Lanczos filter.
func Fit(img image.Image, cols int, charAspect float64) image.Image {
	if charAspect <= 0 {
		charAspect = DefaultCharAspect
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if cols <= 0 || cols > w {
		cols = w
	}

	rows := int(float64(h) * float64(cols) / float64(w) / charAspect)
	if rows < 1 {
		rows = 1
	}
	if cols == w && charAspect == 1 {
		return img
	}
	return imaging.Resize(img, cols, rows, imaging.Lanczos)
}

// Blur applies a Gaussian blur with the given radius before edge tracing,
// suppressing single-pixel noise that would otherwise register as edges.
// A radius <= 0 returns the image unchanged.
func Blur(img image.Image, radius float64) image.Image {
	if radius <= 0 {
		return img
	}
	return blur.Gaussian(img, radius)
}
