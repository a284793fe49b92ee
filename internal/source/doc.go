// Package source turns raster image files into the flat RGBA buffers the
// trace pipeline consumes.
//
// It owns everything the core deliberately does not: decoding container
// formats (PNG, JPEG, GIF, and BMP/TIFF/WebP via golang.org/x/image),
// caching decoded images, downscaling to terminal-friendly dimensions, and
// optional pre-blurring before edge tracing.
//
// # Thread Safety
//
// Cache is safe for concurrent use. The stateless helpers (Flatten, Fit,
// Blur) can be called concurrently on different images.
package source
