package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/glyphtrace/glyphtrace/internal/render"
	"github.com/glyphtrace/glyphtrace/internal/source"
	"github.com/glyphtrace/glyphtrace/internal/trace"
)

var (
	traceWidth     int
	traceAspect    float64
	traceEdges     bool
	traceThreshold float64
	traceEdgeChar  string
	traceRamp      string
	traceColor     bool
	traceBlur      float64
	traceWorkers   int
	traceOut       string
)

var traceCmd = &cobra.Command{
	Use:   "trace <image>",
	Short: "Render an image as a character grid",
	Long: `Decodes an image, downscales it to the requested character width
(compensating for the 2:1 height of terminal cells), and maps every
pixel to a glyph.

By default pixels are shaded by perceived lightness on a 7-step ramp.
With --edges, pixels whose Sobel gradient magnitude exceeds --threshold
are drawn as the edge character instead. With --color, the output is a
truecolor block grid carrying the source pixel colors.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrace,
}

func init() {
	traceCmd.Flags().IntVarP(&traceWidth, "width", "w", 100, "output width in characters (0 = source width)")
	traceCmd.Flags().Float64Var(&traceAspect, "aspect", source.DefaultCharAspect, "terminal cell height:width ratio")
	traceCmd.Flags().BoolVarP(&traceEdges, "edges", "e", false, "trace edges instead of shading")
	traceCmd.Flags().Float64VarP(&traceThreshold, "threshold", "t", 150, "gradient magnitude cutoff for --edges")
	traceCmd.Flags().StringVar(&traceEdgeChar, "edge-char", trace.DefaultEdgeCharacter, "glyph for edge pixels")
	traceCmd.Flags().StringVar(&traceRamp, "ramp", "", "shading glyphs, darkest to lightest (default built-in 7-step ramp)")
	traceCmd.Flags().BoolVarP(&traceColor, "color", "c", false, "emit truecolor cells instead of shading glyphs")
	traceCmd.Flags().Float64Var(&traceBlur, "blur", 0, "gaussian pre-blur radius (0 = off)")
	traceCmd.Flags().IntVar(&traceWorkers, "workers", 0, "edge detection goroutines (<=1 = serial)")
	traceCmd.Flags().StringVarP(&traceOut, "out", "o", "", "write output to file instead of stdout")
	rootCmd.AddCommand(traceCmd)
}

func runTrace(cmd *cobra.Command, args []string) error {
	cache := source.NewCache()
	img, err := cache.Load(args[0])
	if err != nil {
		return err
	}

	img = source.Fit(img, traceWidth, traceAspect)
	if traceBlur > 0 {
		img = source.Blur(img, traceBlur)
	}

	buf, w, h := source.Flatten(img)
	logVerbose("tracing %dx%d characters (%d pixels)", w, h, w*h)

	fields := trace.FieldSet{trace.FieldText: true}
	if traceColor {
		fields = trace.FieldSet{trace.FieldCells: true}
	}

	cfg := trace.Config{
		EdgeCharacter: traceEdgeChar,
		Ramp:          splitRamp(traceRamp),
		TraceEdges:    traceEdges,
		EdgeThreshold: traceThreshold,
		Fields:        fields,
		Workers:       traceWorkers,
	}

	res, err := trace.Trace(buf, w, h, cfg)
	if err != nil {
		return err
	}

	out := res.Text
	if traceColor {
		out = render.ANSI(res.Cells)
	}

	if traceOut != "" {
		if err := os.WriteFile(traceOut, []byte(out+"\n"), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		logVerbose("wrote %s", traceOut)
		return nil
	}

	fmt.Println(out)
	return nil
}

// splitRamp breaks a --ramp string into one glyph per rune. An empty flag
// selects the built-in ramp.
func splitRamp(s string) []string {
	if s == "" {
		return nil
	}
	glyphs := make([]string, 0, len(s))
	for _, r := range s {
		glyphs = append(glyphs, string(r))
	}
	return glyphs
}
