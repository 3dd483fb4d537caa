// Command render draws a demo scene of flat and alpha-blended shapes and
// saves it to an image file.
package main

import (
	"flag"
	"fmt"
	"os"

	"soft-raster/internal/config"
	"soft-raster/internal/imageio"
	"soft-raster/internal/postprocess"
	"soft-raster/internal/raster"
	"soft-raster/internal/shape"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	out := flag.String("out", "", "Output file (.png or .webp)")
	width := flag.Int("width", 0, "Output width in pixels (default: 512)")
	height := flag.Int("height", 0, "Output height in pixels (default: width)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 1)")
	workers := flag.Int("workers", 0, "Number of fill goroutines (default: NumCPU)")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Output:      *out,
		Width:       *width,
		Height:      *height,
		Supersample: *supersample,
		Workers:     *workers,
	})

	w := cfg.Width * cfg.Supersample
	h := cfg.Height * cfg.Supersample
	s := float64(w)

	buf := raster.NewBuffer(w, h)
	r := raster.NewRenderer(buf, cfg.Workers)
	r.Clear(raster.Color{1, 1, 1, 1})

	// A ring of overlapping half-transparent circles. Each circle is one
	// draw call, so the circles blend over each other while the fan
	// triangles inside a circle never double-blend.
	colors := []raster.Color{
		{1, 0, 0, 0.5},
		{0, 0.6, 0, 0.5},
		{0, 0, 1, 0.5},
		{0.8, 0.6, 0, 0.5},
	}
	centers := [][2]float64{
		{0.40, 0.40},
		{0.60, 0.40},
		{0.40, 0.60},
		{0.60, 0.60},
	}
	for i, c := range centers {
		r.FillTriangles(colors[i], shape.Circle(c[0]*s, c[1]*s, 0.22*s, 64))
	}

	// An opaque triangle across the lower-left corner.
	r.FillTriangles(raster.Color{0.1, 0.1, 0.1, 1}, []raster.Triangle{
		{{0, float64(h)}, {0.35 * s, float64(h)}, {0, float64(h) - 0.35*s}},
	})

	result := buf
	if cfg.Supersample > 1 {
		result = postprocess.Downsample(buf, cfg.Width, cfg.Height)
	}

	if err := imageio.Save(cfg.Output, result); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%dx%d)\n", cfg.Output, result.Width, result.Height)
}
