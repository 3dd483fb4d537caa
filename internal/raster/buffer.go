package raster

import (
	"fmt"
	"image"
	"image/draw"
)

// ErrSizeMismatch reports a pixel slice whose length does not match the
// requested buffer dimensions.
var ErrSizeMismatch = fmt.Errorf("raster: pixel data does not match dimensions")

// Buffer holds an RGBA render target as a flat slice for cache locality.
type Buffer struct {
	Width  int
	Height int
	Pix    []uint8 // RGBA interleaved, row-major, len = W*H*4
}

// NewBuffer allocates a fully transparent buffer.
func NewBuffer(w, h int) *Buffer {
	return &Buffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h*4),
	}
}

// FromPix wraps raw RGBA bytes (e.g. from a decoded image) as a Buffer.
// The slice is taken over, not copied.
func FromPix(w, h int, pix []uint8) (*Buffer, error) {
	if len(pix) != w*h*4 {
		return nil, fmt.Errorf("%w: %d bytes encode %d pixels, but %dx%d needs %d",
			ErrSizeMismatch, len(pix), len(pix)/4, w, h, w*h)
	}
	return &Buffer{Width: w, Height: h, Pix: pix}, nil
}

// FromImage copies any image into a new Buffer.
func FromImage(src image.Image) *Buffer {
	b := src.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(n, n.Bounds(), src, b.Min, draw.Src)
	buf, _ := FromPix(b.Dx(), b.Dy(), n.Pix)
	return buf
}

// Clear overwrites every pixel with color. No blending.
func (b *Buffer) Clear(c Color) {
	px := ToBytes(c)
	for i := 0; i < len(b.Pix); i += 4 {
		b.Pix[i] = px[0]
		b.Pix[i+1] = px[1]
		b.Pix[i+2] = px[2]
		b.Pix[i+3] = px[3]
	}
}

// At returns the pixel color at (x, y). Callers must stay in bounds.
func (b *Buffer) At(x, y int) Color {
	i := (y*b.Width + x) * 4
	return FromBytes([4]uint8{b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]})
}

// Set writes the pixel at (x, y) directly, bypassing compositing.
// Used for glyph coverage painting and decoded-image ingestion.
func (b *Buffer) Set(x, y int, c Color) {
	px := ToBytes(c)
	i := (y*b.Width + x) * 4
	b.Pix[i] = px[0]
	b.Pix[i+1] = px[1]
	b.Pix[i+2] = px[2]
	b.Pix[i+3] = px[3]
}

// Image copies the buffer into a standard NRGBA image for encoding or
// display upload.
func (b *Buffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	copy(img.Pix, b.Pix)
	return img
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{Width: b.Width, Height: b.Height, Pix: pix}
}
