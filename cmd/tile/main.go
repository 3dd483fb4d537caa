// Command tile repeats a texture across the output as textured quads.
package main

import (
	"flag"
	"fmt"
	"os"

	"soft-raster/internal/config"
	"soft-raster/internal/imageio"
	"soft-raster/internal/raster"
	"soft-raster/internal/shape"
	"soft-raster/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	texPath := flag.String("texture", "", "Texture image file (.png, .jpg or .tga)")
	texDir := flag.String("dir", "", "Texture directory to index (use with -name)")
	texName := flag.String("name", "", "Texture name to resolve from -dir")
	tiles := flag.Int("tiles", 4, "Tiles per axis")
	out := flag.String("out", "", "Output file (.png or .webp)")
	width := flag.Int("width", 0, "Output width in pixels (default: 512)")
	height := flag.Int("height", 0, "Output height in pixels (default: width)")
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
		Output:     *out,
		TextureDir: *texDir,
		Width:      *width,
		Height:     *height,
		Workers:    *workers,
	})

	var tex *raster.Buffer
	switch {
	case *texPath != "":
		var err error
		tex, err = imageio.Load(*texPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cfg.TextureDir != "" && *texName != "":
		cache := texture.NewCache(texture.BuildIndex(cfg.TextureDir))
		tex = cache.Resolve(*texName)
		if tex == nil {
			fmt.Fprintf(os.Stderr, "Error: texture %q not found under %s\n", *texName, cfg.TextureDir)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "Error: need -texture, or -dir together with -name")
		os.Exit(1)
	}

	buf := raster.NewBuffer(cfg.Width, cfg.Height)
	r := raster.NewRenderer(buf, cfg.Workers)
	r.Clear(raster.Color{1, 1, 1, 1})

	tileW := float64(cfg.Width) / float64(*tiles)
	tileH := float64(cfg.Height) / float64(*tiles)
	white := raster.Color{1, 1, 1, 1}
	for ty := 0; ty < *tiles; ty++ {
		for tx := 0; tx < *tiles; tx++ {
			r.FillTexturedTriangles(white, tex, shape.RectUV(
				float64(tx)*tileW, float64(ty)*tileH, tileW, tileH,
			))
		}
	}

	if err := imageio.Save(cfg.Output, buf); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%dx%d)\n", cfg.Output, cfg.Width, cfg.Height)
}
