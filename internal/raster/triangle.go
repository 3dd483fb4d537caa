package raster

import "math"

// Vertex is a 2D point, in destination pixel space or texture space.
type Vertex [2]float64

// Triangle is three vertices. Both winding orders fill identically.
type Triangle [3]Vertex

// TexturedTriangle pairs a destination triangle with a UV triangle whose
// coordinates are normalized to [0,1]x[0,1].
type TexturedTriangle struct {
	Dst Triangle
	UV  Triangle
}

// sign is the cross product of p against the edge a->b.
func sign(p, a, b Vertex) float64 {
	return (p[0]-b[0])*(a[1]-b[1]) - (a[0]-b[0])*(p[1]-b[1])
}

// contains reports whether p lies inside t. The three edge signs must
// agree, which makes the test winding-order agnostic.
func (t Triangle) contains(p Vertex) bool {
	b1 := sign(p, t[0], t[1]) < 0
	b2 := sign(p, t[1], t[2]) < 0
	b3 := sign(p, t[2], t[0]) < 0
	return b1 == b2 && b2 == b3
}

// bounds returns the triangle's bounding box clipped to [0,w) x [0,h).
// Low edges floor and clamp to 0, high edges ceil and clamp to the extent.
func (t Triangle) bounds(w, h int) (minX, minY, maxX, maxY int) {
	lox, loy := t[0][0], t[0][1]
	hix, hiy := lox, loy
	for _, v := range t[1:] {
		lox = math.Min(lox, v[0])
		loy = math.Min(loy, v[1])
		hix = math.Max(hix, v[0])
		hiy = math.Max(hiy, v[1])
	}
	minX = int(math.Max(math.Floor(lox), 0))
	minY = int(math.Max(math.Floor(loy), 0))
	maxX = int(math.Min(math.Ceil(hix), float64(w)))
	maxY = int(math.Min(math.Ceil(hiy), float64(h)))
	return
}

// scale multiplies every vertex by (sx, sy). Used to bring normalized UV
// triangles into texture pixel space.
func (t Triangle) scale(sx, sy float64) Triangle {
	for i := range t {
		t[i][0] *= sx
		t[i][1] *= sy
	}
	return t
}

// barycentric precomputes the denominator and edge deltas for mapping
// points from one triangle into another.
type barycentric struct {
	tri    Triangle
	invDet float64
	ok     bool // false for degenerate (zero-area) triangles
}

func newBarycentric(t Triangle) barycentric {
	a := t[1][1] - t[2][1]
	c := t[2][0] - t[1][0]
	e := t[0][0] - t[2][0]
	f := t[0][1] - t[2][1]
	det := a*e + c*f
	if det > -1e-12 && det < 1e-12 {
		return barycentric{tri: t}
	}
	return barycentric{tri: t, invDet: 1 / det, ok: true}
}

// mapTo expresses p as barycentric weights of the source triangle and
// applies those weights to the vertices of dst.
func (bc barycentric) mapTo(p Vertex, dst Triangle) Vertex {
	t := bc.tri
	b := p[0] - t[2][0]
	d := p[1] - t[2][1]
	w0 := ((t[1][1]-t[2][1])*b + (t[2][0]-t[1][0])*d) * bc.invDet
	w1 := ((t[2][1]-t[0][1])*b + (t[0][0]-t[2][0])*d) * bc.invDet
	w2 := 1 - w0 - w1
	return Vertex{
		w0*dst[0][0] + w1*dst[1][0] + w2*dst[2][0],
		w0*dst[0][1] + w1*dst[1][1] + w2*dst[2][1],
	}
}
