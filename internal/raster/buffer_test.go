package raster

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBufferTransparent(t *testing.T) {
	b := NewBuffer(4, 3)
	require.Len(t, b.Pix, 4*3*4)
	assert.Equal(t, Color{0, 0, 0, 0}, b.At(2, 1))
}

func TestFromPixSizeMismatch(t *testing.T) {
	_, err := FromPix(4, 4, make([]uint8, 10))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSizeMismatch)

	b, err := FromPix(2, 2, make([]uint8, 16))
	require.NoError(t, err)
	assert.Equal(t, 2, b.Width)
}

func TestClearAndPixelAccess(t *testing.T) {
	b := NewBuffer(8, 8)
	b.Clear(Color{1, 0, 0, 1})
	assert.Equal(t, Color{1, 0, 0, 1}, b.At(0, 0))
	assert.Equal(t, Color{1, 0, 0, 1}, b.At(7, 7))

	b.Set(3, 4, Color{0, 1, 0, 0.5})
	got := b.At(3, 4)
	assert.InDelta(t, 0, got[0], 1e-6)
	assert.InDelta(t, 1, got[1], 1e-6)
	assert.InDelta(t, 0.5, got[3], 1.0/255)
}

func TestFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Pix[0] = 255 // (0,0) red channel
	img.Pix[3] = 255 // (0,0) alpha

	b := FromImage(img)
	require.Equal(t, 2, b.Width)
	assert.Equal(t, Color{1, 0, 0, 1}, b.At(0, 0))
	assert.Equal(t, Color{0, 0, 0, 0}, b.At(1, 1))
}

func TestImageRoundTrip(t *testing.T) {
	b := NewBuffer(3, 3)
	b.Set(1, 2, Color{0.2, 0.4, 0.6, 0.8})
	img := b.Image()
	assert.Equal(t, b.Pix, img.Pix)

	// Image returns a copy, not a view.
	img.Pix[0] = 99
	assert.NotEqual(t, b.Pix[0], img.Pix[0])
}

func TestClone(t *testing.T) {
	b := NewBuffer(2, 2)
	b.Set(0, 0, Color{1, 1, 1, 1})
	c := b.Clone()
	c.Set(0, 0, Color{0, 0, 0, 0})
	assert.Equal(t, Color{1, 1, 1, 1}, b.At(0, 0))
}
