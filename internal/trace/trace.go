package trace

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Field names one of the outputs a Trace call can populate.
type Field string

const (
	// FieldText requests the newline-delimited glyph string.
	FieldText Field = "text"

	// FieldCells requests the row-major matrix of colored cells.
	FieldCells Field = "cells"
)

// FieldSet selects which outputs Trace populates. The zero value selects
// text only.
type FieldSet map[Field]bool

// Config carries the options a Trace call accepts. The zero value is valid:
// defaults are applied before the pipeline runs.
type Config struct {
	// EdgeCharacter is the glyph emitted for edge pixels. Defaults to "#".
	EdgeCharacter string

	// Ramp is the shading ramp, ordered darkest to lightest. Defaults to
	// DefaultRamp. Must hold at least two glyphs.
	Ramp []string

	// TraceEdges switches the mapper from lightness shading to edge
	// marking for pixels whose gradient clears EdgeThreshold.
	TraceEdges bool

	// EdgeThreshold is the gradient magnitude cutoff above which a pixel
	// renders as EdgeCharacter. Only consulted when TraceEdges is true;
	// zero means any nonzero gradient is an edge.
	EdgeThreshold float64

	// Fields selects the outputs to assemble. Nil or empty means text only.
	Fields FieldSet

	// Workers bounds the goroutines used for the edge-detection pass.
	// Values <= 1 run it serially; the output is identical either way.
	Workers int
}

// withDefaults returns a copy of cfg with unset options filled in.
func (c Config) withDefaults() Config {
	if c.EdgeCharacter == "" {
		c.EdgeCharacter = DefaultEdgeCharacter
	}
	if len(c.Ramp) == 0 {
		c.Ramp = DefaultRamp
	}
	if len(c.Fields) == 0 {
		c.Fields = FieldSet{FieldText: true}
	}
	return c
}

// Cell is one entry of the colored-cell matrix: the original pixel color
// plus a placeholder glyph for a renderer to paint.
type Cell struct {
	// Char is the glyph to paint. The tracer fills a full-block
	// placeholder; the color carries the information.
	Char string `json:"char"`

	// R, G, B are the source pixel's raw channel values.
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`

	// Hex is the pixel color as "#rrggbb".
	Hex string `json:"hex"`
}

// cellPlaceholder is the glyph stored in matrix cells; a full block paints
// the cell's color edge to edge in a terminal.
const cellPlaceholder = "█"

// Result is the output of one Trace call.
type Result struct {
	// Text is the assembled glyph grid, one character per pixel, rows
	// joined with "\n" (no leading or trailing newline). Empty unless
	// FieldText was requested.
	Text string `json:"text,omitempty"`

	// Width and Height are the traced image dimensions in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Cells is the row-major matrix of colored cells. Nil unless
	// FieldCells was requested.
	Cells [][]Cell `json:"cells,omitempty"`
}

// Trace runs the full pipeline over a flat RGBA buffer.
//
// buf must hold exactly 4*width*height bytes, row-major, top to bottom,
// alpha ignored. The three passes run in order: build the sample arena,
// detect edges, map glyphs. The arena is owned by this call and discarded
// when it returns.
//
// Returns ErrMalformedBuffer (wrapped) if the buffer length does not match
// the dimensions; no partial output is produced.
func Trace(buf []byte, width, height int, cfg Config) (*Result, error) {
	if len(buf) != 4*width*height {
		return nil, fmt.Errorf("%w: length %d does not match %dx%d (want %d)",
			ErrMalformedBuffer, len(buf), width, height, 4*width*height)
	}

	cfg = cfg.withDefaults()

	samples, err := BuildPixelMap(buf)
	if err != nil {
		return nil, err
	}
	detectEdges(samples, width, cfg.Workers)

	res := &Result{Width: width, Height: height}

	if cfg.Fields[FieldText] {
		var sb strings.Builder
		sb.Grow(len(samples) + height)
		for i := range samples {
			if i > 0 && i%width == 0 {
				sb.WriteByte('\n')
			}
			glyph, err := mapGlyph(&samples[i], &cfg)
			if err != nil {
				return nil, err
			}
			sb.WriteString(glyph)
		}
		res.Text = sb.String()
	}

	if cfg.Fields[FieldCells] {
		res.Cells = make([][]Cell, height)
		for y := 0; y < height; y++ {
			row := make([]Cell, width)
			for x := 0; x < width; x++ {
				s := &samples[y*width+x]
				c := colorful.Color{
					R: float64(s.R) / 255,
					G: float64(s.G) / 255,
					B: float64(s.B) / 255,
				}
				row[x] = Cell{
					Char: cellPlaceholder,
					R:    s.R,
					G:    s.G,
					B:    s.B,
					Hex:  c.Hex(),
				}
			}
			res.Cells[y] = row
		}
	}

	return res, nil
}
