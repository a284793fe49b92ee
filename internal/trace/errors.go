package trace

import "errors"

// Sentinel errors returned by the pipeline. Callers match them with
// errors.Is; the wrapped message carries the offending values.
var (
	// ErrInvalidRange reports a Remap call with non-increasing source or
	// destination bounds. Defensive: unreachable through the public Trace
	// path, where both ranges are fixed and increasing.
	ErrInvalidRange = errors.New("trace: remap range is not increasing")

	// ErrMalformedBuffer reports an input buffer whose length is not a
	// multiple of 4, or does not equal 4*width*height. The pixel-to-index
	// mapping is undefined for such a buffer, so the trace aborts with no
	// partial output.
	ErrMalformedBuffer = errors.New("trace: malformed RGBA buffer")
)
