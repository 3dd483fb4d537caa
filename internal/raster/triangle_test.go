package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsBothWindings(t *testing.T) {
	cw := Triangle{{0, 0}, {10, 0}, {0, 10}}
	ccw := Triangle{{0, 0}, {0, 10}, {10, 0}}

	inside := Vertex{2, 2}
	outside := Vertex{8, 8}

	assert.True(t, cw.contains(inside))
	assert.True(t, ccw.contains(inside))
	assert.False(t, cw.contains(outside))
	assert.False(t, ccw.contains(outside))
}

func TestBoundsClipping(t *testing.T) {
	tri := Triangle{{-5.5, 2.3}, {12.8, -1.2}, {6.1, 20.9}}
	minX, minY, maxX, maxY := tri.bounds(10, 10)
	assert.Equal(t, 0, minX)
	assert.Equal(t, 0, minY)
	assert.Equal(t, 10, maxX)
	assert.Equal(t, 10, maxY)

	tri = Triangle{{2.4, 3.6}, {7.2, 4.1}, {5.0, 8.9}}
	minX, minY, maxX, maxY = tri.bounds(10, 10)
	assert.Equal(t, 2, minX)
	assert.Equal(t, 3, minY)
	assert.Equal(t, 8, maxX)
	assert.Equal(t, 9, maxY)
}

func TestBarycentricMapsCorners(t *testing.T) {
	src := Triangle{{0, 0}, {10, 0}, {0, 10}}
	dst := Triangle{{0, 0}, {100, 0}, {0, 100}}
	bc := newBarycentric(src)
	assert.True(t, bc.ok)

	for i := range src {
		got := bc.mapTo(src[i], dst)
		assert.InDelta(t, dst[i][0], got[0], 1e-9)
		assert.InDelta(t, dst[i][1], got[1], 1e-9)
	}

	// Centroid maps to centroid.
	got := bc.mapTo(Vertex{10.0 / 3, 10.0 / 3}, dst)
	assert.InDelta(t, 100.0/3, got[0], 1e-9)
	assert.InDelta(t, 100.0/3, got[1], 1e-9)
}

func TestBarycentricDegenerate(t *testing.T) {
	collinear := Triangle{{0, 0}, {5, 5}, {10, 10}}
	assert.False(t, newBarycentric(collinear).ok)

	point := Triangle{{3, 3}, {3, 3}, {3, 3}}
	assert.False(t, newBarycentric(point).ok)
}

func TestScale(t *testing.T) {
	tri := Triangle{{0, 0}, {1, 0}, {0.5, 1}}.scale(4, 8)
	assert.Equal(t, Triangle{{0, 0}, {4, 0}, {2, 8}}, tri)
}
