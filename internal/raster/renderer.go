package raster

import (
	"math"
	"runtime"
	"sync"
)

// Target is the narrow surface a shape or text producer draws against.
type Target interface {
	Clear(Color)
	FillTriangles(color Color, tris []Triangle)
	FillTexturedTriangles(tint Color, tex *Buffer, tris []TexturedTriangle)
	Size() (width, height int)
}

// Renderer rasterizes triangle lists into a Buffer.
//
// Within one fill call every destination pixel is composited at most once,
// no matter how many triangles of the call cover it: triangle fans and glyph
// contours routinely overlap at shared edges, and double-blending them
// darkens the seams. First hit wins.
type Renderer struct {
	buf     *Buffer
	used    []bool // per-call coverage, column-major: index x*Height+y
	workers int
}

// NewRenderer wraps buf. workers <= 0 means runtime.NumCPU.
// The Renderer is the sole mutator of buf while a fill call is in flight.
func NewRenderer(buf *Buffer, workers int) *Renderer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Renderer{
		buf:     buf,
		used:    make([]bool, buf.Width*buf.Height),
		workers: workers,
	}
}

// Buffer returns the underlying render target.
func (r *Renderer) Buffer() *Buffer { return r.buf }

// Size returns the target dimensions.
func (r *Renderer) Size() (int, int) { return r.buf.Width, r.buf.Height }

// Clear overwrites every pixel with color.
func (r *Renderer) Clear(c Color) { r.buf.Clear(c) }

func (r *Renderer) resetUsed() {
	for i := range r.used {
		r.used[i] = false
	}
}

// colView is one worker's exclusive slice of the iteration space: the
// columns [x0, x1) and their coverage flags. Views handed to concurrent
// workers never overlap, so pixel writes never race.
type colView struct {
	buf  *Buffer
	used []bool // coverage for columns [x0, x1) only
	x0   int
	x1   int
}

func (v colView) covered(x, y int) bool { return v.used[(x-v.x0)*v.buf.Height+y] }
func (v colView) setCovered(x, y int)   { v.used[(x-v.x0)*v.buf.Height+y] = true }

// eachColumnRange splits the columns [minX, maxX) into contiguous disjoint
// ranges, one worker goroutine per range, and blocks until all finish.
func (r *Renderer) eachColumnRange(minX, maxX int, fill func(colView)) {
	cols := maxX - minX
	n := r.workers
	if n > cols {
		n = cols
	}
	if n <= 1 {
		fill(r.view(minX, maxX))
		return
	}
	chunk := (cols + n - 1) / n
	var wg sync.WaitGroup
	for x0 := minX; x0 < maxX; x0 += chunk {
		x1 := x0 + chunk
		if x1 > maxX {
			x1 = maxX
		}
		wg.Add(1)
		go func(v colView) {
			defer wg.Done()
			fill(v)
		}(r.view(x0, x1))
	}
	wg.Wait()
}

func (r *Renderer) view(x0, x1 int) colView {
	h := r.buf.Height
	return colView{buf: r.buf, used: r.used[x0*h : x1*h], x0: x0, x1: x1}
}

// FillTriangles flat-fills a triangle list with color, alpha-blended over
// the existing pixels. The whole list shares one coverage pass.
func (r *Renderer) FillTriangles(c Color, tris []Triangle) {
	r.resetUsed()
	w, h := r.buf.Width, r.buf.Height
	for _, t := range tris {
		minX, minY, maxX, maxY := t.bounds(w, h)
		if minX >= maxX || minY >= maxY {
			continue
		}
		r.eachColumnRange(minX, maxX, func(v colView) {
			for x := v.x0; x < v.x1; x++ {
				entered := false
				for y := minY; y < maxY; y++ {
					if t.contains(Vertex{float64(x), float64(y)}) {
						entered = true
						if !v.covered(x, y) {
							v.setCovered(x, y)
							r.buf.Set(x, y, Layer(c, r.buf.At(x, y)))
						}
					} else if entered {
						// Rows of a convex shape within one column are
						// contiguous; once we leave, we are done.
						break
					}
				}
			}
		})
	}
}

// FillTexturedTriangles fills destination triangles by sampling tex through
// each pair's UV triangle, tinting every texel with tint before compositing.
// UV coordinates are normalized and scaled to the texture dimensions here.
// Zero-area destination triangles are skipped.
func (r *Renderer) FillTexturedTriangles(tint Color, tex *Buffer, tris []TexturedTriangle) {
	r.resetUsed()
	w, h := r.buf.Width, r.buf.Height
	for _, t := range tris {
		bc := newBarycentric(t.Dst)
		if !bc.ok {
			continue
		}
		minX, minY, maxX, maxY := t.Dst.bounds(w, h)
		if minX >= maxX || minY >= maxY {
			continue
		}
		uv := t.UV.scale(float64(tex.Width), float64(tex.Height))
		r.eachColumnRange(minX, maxX, func(v colView) {
			for x := v.x0; x < v.x1; x++ {
				entered := false
				for y := minY; y < maxY; y++ {
					p := Vertex{float64(x), float64(y)}
					if t.Dst.contains(p) {
						entered = true
						if !v.covered(x, y) {
							v.setCovered(x, y)
							texel := tex.At(sampleCoords(bc.mapTo(p, uv), tex.Width, tex.Height))
							over := Multiply(tint, texel)
							r.buf.Set(x, y, Layer(over, r.buf.At(x, y)))
						}
					} else if entered {
						break
					}
				}
			}
		})
	}
}

// sampleCoords rounds a texture-space point to the nearest texel, clamped
// in bounds. No wrapping, no filtering.
func sampleCoords(p Vertex, w, h int) (int, int) {
	x := int(math.Round(p[0]))
	y := int(math.Round(p[1]))
	if x < 0 {
		x = 0
	}
	if x > w-1 {
		x = w - 1
	}
	if y < 0 {
		y = 0
	}
	if y > h-1 {
		y = h - 1
	}
	return x, y
}
