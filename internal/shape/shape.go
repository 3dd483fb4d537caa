// Package shape triangulates simple 2D shapes into the triangle lists the
// rasterizer consumes.
package shape

import (
	"math"

	"soft-raster/internal/raster"
)

// Rect returns the two triangles covering an axis-aligned rectangle.
func Rect(x, y, w, h float64) []raster.Triangle {
	a := raster.Vertex{x, y}
	b := raster.Vertex{x + w, y}
	c := raster.Vertex{x + w, y + h}
	d := raster.Vertex{x, y + h}
	return []raster.Triangle{{a, b, c}, {a, c, d}}
}

// RectUV maps the full texture onto an axis-aligned rectangle.
func RectUV(x, y, w, h float64) []raster.TexturedTriangle {
	return SubRectUV(x, y, w, h, 0, 0, 1, 1)
}

// SubRectUV maps the normalized texture sub-rectangle (u0,v0)-(u1,v1) onto
// an axis-aligned destination rectangle. Used for atlas and tile lookups.
func SubRectUV(x, y, w, h, u0, v0, u1, v1 float64) []raster.TexturedTriangle {
	dst := Rect(x, y, w, h)
	ua := raster.Vertex{u0, v0}
	ub := raster.Vertex{u1, v0}
	uc := raster.Vertex{u1, v1}
	ud := raster.Vertex{u0, v1}
	return []raster.TexturedTriangle{
		{Dst: dst[0], UV: raster.Triangle{ua, ub, uc}},
		{Dst: dst[1], UV: raster.Triangle{ua, uc, ud}},
	}
}

// Ellipse approximates a filled ellipse with a triangle fan around the
// center. Adjacent fan triangles share edges; the rasterizer's per-call
// coverage keeps the shared pixels from blending twice.
func Ellipse(cx, cy, rx, ry float64, segments int) []raster.Triangle {
	if segments < 3 {
		segments = 3
	}
	center := raster.Vertex{cx, cy}
	tris := make([]raster.Triangle, 0, segments)
	prev := raster.Vertex{cx + rx, cy}
	for i := 1; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		next := raster.Vertex{cx + rx*math.Cos(theta), cy + ry*math.Sin(theta)}
		tris = append(tris, raster.Triangle{center, prev, next})
		prev = next
	}
	return tris
}

// Circle is an Ellipse with equal radii.
func Circle(cx, cy, r float64, segments int) []raster.Triangle {
	return Ellipse(cx, cy, r, r, segments)
}
