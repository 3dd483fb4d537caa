package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soft-raster/internal/raster"
)

func TestRect(t *testing.T) {
	tris := Rect(10, 20, 30, 40)
	require.Len(t, tris, 2)

	// The two triangles share the main diagonal.
	assert.Equal(t, raster.Vertex{10, 20}, tris[0][0])
	assert.Equal(t, raster.Vertex{40, 60}, tris[0][2])
	assert.Equal(t, raster.Vertex{10, 20}, tris[1][0])
	assert.Equal(t, raster.Vertex{40, 60}, tris[1][1])
	assert.Equal(t, raster.Vertex{10, 60}, tris[1][2])
}

func TestRectUVSpansTexture(t *testing.T) {
	tris := RectUV(0, 0, 100, 50)
	require.Len(t, tris, 2)
	assert.Equal(t, raster.Vertex{0, 0}, tris[0].UV[0])
	assert.Equal(t, raster.Vertex{1, 1}, tris[0].UV[2])
	assert.Equal(t, raster.Vertex{0, 1}, tris[1].UV[2])
}

func TestSubRectUV(t *testing.T) {
	tris := SubRectUV(0, 0, 10, 10, 0.25, 0.5, 0.75, 1)
	assert.Equal(t, raster.Vertex{0.25, 0.5}, tris[0].UV[0])
	assert.Equal(t, raster.Vertex{0.75, 0.5}, tris[0].UV[1])
	assert.Equal(t, raster.Vertex{0.75, 1}, tris[0].UV[2])
}

func TestEllipseFan(t *testing.T) {
	tris := Ellipse(50, 50, 20, 10, 16)
	require.Len(t, tris, 16)

	for _, tri := range tris {
		assert.Equal(t, raster.Vertex{50, 50}, tri[0])
	}

	// The fan closes: the last triangle ends where the first began.
	assert.InDelta(t, tris[0][1][0], tris[15][2][0], 1e-9)
	assert.InDelta(t, tris[0][1][1], tris[15][2][1], 1e-9)

	// Vertices stay on the ellipse.
	for _, tri := range tris {
		for _, v := range tri[1:] {
			dx := (v[0] - 50) / 20
			dy := (v[1] - 50) / 10
			assert.InDelta(t, 1, dx*dx+dy*dy, 1e-9)
		}
	}
}

func TestEllipseMinimumSegments(t *testing.T) {
	assert.Len(t, Ellipse(0, 0, 5, 5, 0), 3)
}
