package glyph

import (
	"soft-raster/internal/raster"
	"soft-raster/internal/shape"
)

// DrawText renders text onto t with its baseline starting at (x, y),
// issuing one textured-rectangle draw call per glyph. The glyph bitmaps
// are white with coverage alpha, so color tints them directly.
func DrawText(t raster.Target, c *Cache, size uint32, x, y float64, color raster.Color, text string) error {
	pen := x
	for _, ch := range text {
		g, err := c.Glyph(size, ch)
		if err != nil {
			return err
		}
		if g.Bitmap.Width > 0 && g.Bitmap.Height > 0 {
			t.FillTexturedTriangles(color, g.Bitmap, shape.RectUV(
				pen+g.Offset[0],
				y-g.Offset[1],
				float64(g.Bitmap.Width),
				float64(g.Bitmap.Height),
			))
		}
		pen += g.Advance
	}
	return nil
}
