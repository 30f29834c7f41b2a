// latticeview renders an XML layout file to a PNG. Useful for previewing
// layouts and for golden-image diffing in CI.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lattice-ui/lattice"
	"github.com/lattice-ui/lattice/inflate"
	"github.com/lattice-ui/lattice/render"
	"github.com/lattice-ui/lattice/render/ggcanvas"
)

func main() {
	var (
		layoutPath = flag.String("layout", "", "XML layout file to render (required)")
		themePath  = flag.String("theme", "", "optional TOML theme file")
		outPath    = flag.String("out", "layout.png", "output PNG path")
		width      = flag.Int("width", 1280, "render width in pixels")
		height     = flag.Int("height", 720, "render height in pixels")
		verbose    = flag.Bool("v", false, "log toolkit diagnostics to stderr")
	)
	flag.Parse()

	if *layoutPath == "" {
		fmt.Fprintln(os.Stderr, "latticeview: -layout is required")
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		lattice.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(*layoutPath, *themePath, *outPath, *width, *height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(layoutPath, themePath, outPath string, width, height int) error {
	style := render.DefaultStyle()
	if themePath != "" {
		st, err := lattice.LoadThemeFile(themePath)
		if err != nil {
			return err
		}
		style = st
	}

	canvas, err := ggcanvas.New(width, height)
	if err != nil {
		return err
	}
	// Measure labels with the real font so the layout matches the render.
	canvas.InstallTextMeasure()

	root := inflate.FromFile(layoutPath)
	root.Node().ComputeLayout(float32(width), float32(height))

	canvas.FillRect(0, 0, float32(width), float32(height), style.Background)
	root.Draw(&render.FrameContext{
		Canvas:       canvas,
		Style:        style,
		WindowWidth:  float32(width),
		WindowHeight: float32(height),
	})

	if err := canvas.SavePNG(outPath); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}
