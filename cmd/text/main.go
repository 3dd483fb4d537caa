// Command text renders a string through the glyph cache and saves it to an
// image file. Without -font it uses the embedded Go Regular face.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"soft-raster/internal/config"
	"soft-raster/internal/glyph"
	"soft-raster/internal/imageio"
	"soft-raster/internal/raster"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	text := flag.String("text", "Hello, world!", "Text to render")
	size := flag.Uint("size", 48, "Font size in pixels")
	fontPath := flag.String("font", "", "TTF/OTF font file (default: embedded Go Regular)")
	out := flag.String("out", "", "Output file (.png or .webp)")
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
	cfg.Resolve(config.Flags{Output: *out, FontPath: *fontPath, Workers: *workers})

	var fnt *glyph.Font
	var err error
	if cfg.FontPath != "" {
		fnt, err = glyph.LoadFile(cfg.FontPath)
	} else {
		fnt, err = glyph.Parse(goregular.TTF)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cache := glyph.NewCache(fnt)
	width, err := cache.TextWidth(uint32(*size), *text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	margin := float64(*size)
	w := int(width + 2*margin)
	h := int(3 * margin)

	buf := raster.NewBuffer(w, h)
	r := raster.NewRenderer(buf, cfg.Workers)
	r.Clear(raster.Color{1, 1, 1, 1})

	baseline := 2 * margin
	if err := glyph.DrawText(r, cache, uint32(*size), margin, baseline, raster.Color{0, 0, 0, 1}, *text); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := imageio.Save(cfg.Output, buf); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%dx%d, %d glyphs rasterized)\n", cfg.Output, w, h, cache.Rasterizations())
}
