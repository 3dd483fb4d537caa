// Package imageio is the image codec boundary: it decodes image files into
// raster buffers and encodes buffers back to disk. The rasterizer itself
// never parses a container format.
package imageio

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	_ "github.com/ftrvxmtrx/tga"

	"soft-raster/internal/raster"
)

// Decode decodes PNG, JPEG or TGA data into a buffer.
func Decode(data []byte) (*raster.Buffer, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return raster.FromImage(img), nil
}

// Load reads and decodes an image file.
func Load(path string) (*raster.Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: read %s: %w", path, err)
	}
	buf, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("imageio: %s: %w", path, err)
	}
	return buf, nil
}

// Save encodes buf to path, choosing the format by extension
// (.png or .webp).
func Save(path string, buf *raster.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, buf.Image())
	case ".webp":
		err = nativewebp.Encode(f, buf.Image(), nil)
	default:
		return fmt.Errorf("imageio: unsupported output format: %s", path)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}
	return nil
}
