// Package render turns a traced cell matrix into a terminal string.
package render

import (
	"fmt"
	"strings"

	"github.com/glyphtrace/glyphtrace/internal/trace"
)

const reset = "\x1b[0m"

// ANSI renders a colored cell matrix as a truecolor terminal string: each
// cell's glyph painted in its source pixel color, rows separated by
// newlines, one reset per row.
//
// Consecutive cells with the same color reuse the active escape sequence,
// which keeps the output small on images with flat regions.
func ANSI(cells [][]trace.Cell) string {
	var sb strings.Builder
	// Worst case ~20 bytes of escape per cell plus the glyph itself.
	if len(cells) > 0 {
		sb.Grow(len(cells) * len(cells[0]) * 24)
	}

	for y, row := range cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		var last string
		for _, c := range row {
			fg := fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
			if fg != last {
				sb.WriteString(fg)
				last = fg
			}
			sb.WriteString(c.Char)
		}
		sb.WriteString(reset)
	}
	return sb.String()
}
