package glyph

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"soft-raster/internal/raster"
)

// Key identifies one cached glyph bitmap.
type Key struct {
	Char rune
	Size uint32 // font size in pixels
}

// Glyph is the rasterized bitmap and metrics for one character at one size.
//
// Bitmap holds the outline's fractional coverage in the alpha channel with
// RGB at full white, so tinting the bitmap through Multiply recolors it.
// Offset[0] is the horizontal bearing of the bitmap's left edge relative to
// the pen position; Offset[1] is the height of the bitmap's top edge above
// the baseline. Both include the 1px pad around the outline.
type Glyph struct {
	Offset  [2]float64
	Advance float64
	Bitmap  *raster.Buffer
}

// Cache rasterizes and memoizes glyph bitmaps per (character, size) pair.
// Entries are never evicted.
//
// The cache is a single-writer structure: concurrent calls must be
// serialized by the caller, since a lazy rasterize-and-insert is not atomic.
type Cache struct {
	font       *Font
	glyphs     map[Key]*Glyph
	rasterized int
}

// NewCache creates an empty cache over font.
func NewCache(f *Font) *Cache {
	return &Cache{font: f, glyphs: make(map[Key]*Glyph)}
}

// Rasterizations reports how many glyphs have been rasterized so far.
func (c *Cache) Rasterizations() int { return c.rasterized }

// Glyph returns the cached entry for (ch, size), rasterizing it on first
// request. A character missing from the font is substituted with the
// Unicode replacement character's glyph; the entry is still stored under
// the requested key, so the substitution happens once.
func (c *Cache) Glyph(size uint32, ch rune) (*Glyph, error) {
	key := Key{Char: ch, Size: size}
	if g, ok := c.glyphs[key]; ok {
		return g, nil
	}
	g, err := c.rasterize(size, ch)
	if err != nil {
		return nil, err
	}
	c.glyphs[key] = g
	c.rasterized++
	return g, nil
}

// TextWidth returns the sum of advance widths of text at the given size,
// rasterizing any glyph not yet cached.
func (c *Cache) TextWidth(size uint32, text string) (float64, error) {
	var sum float64
	for _, ch := range text {
		g, err := c.Glyph(size, ch)
		if err != nil {
			return 0, err
		}
		sum += g.Advance
	}
	return sum, nil
}

func (c *Cache) rasterize(size uint32, ch rune) (*Glyph, error) {
	f := c.font
	ppem := fixed.I(int(size))

	idx, err := f.sfnt.GlyphIndex(&f.buf, ch)
	if err != nil {
		return nil, fmt.Errorf("glyph: index %q: %w", ch, err)
	}
	if idx == 0 {
		// Missing from the font; fall back to U+FFFD. Index 0 (.notdef)
		// is used when the font has no replacement glyph either.
		if fb, err := f.sfnt.GlyphIndex(&f.buf, '�'); err == nil && fb != 0 {
			idx = fb
		}
	}

	segs, err := f.sfnt.LoadGlyph(&f.buf, idx, ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("glyph: load %q at %dpx: %w", ch, size, err)
	}
	advance, err := f.sfnt.GlyphAdvance(&f.buf, idx, ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("glyph: advance %q at %dpx: %w", ch, size, err)
	}

	var bounds fixed.Rectangle26_6
	if len(segs) > 0 {
		bounds = segs.Bounds()
	}
	minPX := bounds.Min.X.Floor()
	minPY := bounds.Min.Y.Floor()
	bbW := bounds.Max.X.Ceil() - minPX
	bbH := bounds.Max.Y.Ceil() - minPY

	// 1px pad on every side keeps the outline clear of the bitmap edge.
	bitmap := paintCoverage(segs, bbW+2, bbH+2, minPX-1, minPY-1)

	return &Glyph{
		Offset: [2]float64{
			float64(bounds.Min.X)/64 - 1,
			-float64(minPY) + 1,
		},
		Advance: float64(advance) / 64,
		Bitmap:  bitmap,
	}, nil
}

// paintCoverage rasterizes the outline's fractional coverage into a white
// bitmap of the given size. (offX, offY) is the pixel position of the
// bitmap's top-left corner relative to the glyph origin.
func paintCoverage(segs sfnt.Segments, w, h, offX, offY int) *raster.Buffer {
	out := raster.NewBuffer(w, h)
	if len(segs) == 0 {
		return out
	}

	dx, dy := float32(-offX), float32(-offY)
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X)/64 + dx, float32(p.Y)/64 + dy
	}

	rz := vector.NewRasterizer(w, h)
	rz.DrawOp = draw.Src
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			ax, ay := pt(seg.Args[0])
			rz.MoveTo(ax, ay)
		case sfnt.SegmentOpLineTo:
			ax, ay := pt(seg.Args[0])
			rz.LineTo(ax, ay)
		case sfnt.SegmentOpQuadTo:
			ax, ay := pt(seg.Args[0])
			bx, by := pt(seg.Args[1])
			rz.QuadTo(ax, ay, bx, by)
		case sfnt.SegmentOpCubeTo:
			ax, ay := pt(seg.Args[0])
			bx, by := pt(seg.Args[1])
			cx, cy := pt(seg.Args[2])
			rz.CubeTo(ax, ay, bx, by, cx, cy)
		}
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	rz.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := mask.Pix[y*mask.Stride+x]
			if a == 0 {
				continue
			}
			out.Set(x, y, raster.Color{1, 1, 1, float32(a) / 255})
		}
	}
	return out
}
