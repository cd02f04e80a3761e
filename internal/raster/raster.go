package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// kappa is the cubic Bézier control distance for a quarter circle of radius 1.
const kappa = 0.5522847498

// Point is a position in canvas space. Integer pixel (x, y) covers the
// square [x, x+1) × [y, y+1).
type Point struct {
	X, Y float32
}

// Canvas is a square RGBA image with a reusable anti-aliasing rasterizer.
// Shapes are composited with draw.Over in call order.
type Canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// New returns a fully transparent size×size canvas.
func New(size int) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, size, size)),
		z:   vector.NewRasterizer(size, size),
	}
}

// Image returns the underlying image. Further drawing mutates it.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size returns the canvas edge length in pixels.
func (c *Canvas) Size() int {
	return c.img.Bounds().Dx()
}

// FillRoundRect fills the rectangle [x0, x1) × [y0, y1) with corners rounded
// to radius r. r is clamped to half the shorter side; r <= 0 gives square
// corners. Empty rectangles draw nothing.
func (c *Canvas) FillRoundRect(x0, y0, x1, y1, r float32, col color.Color) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	r = clampRadius(x0, y0, x1, y1, r)
	z := c.begin()
	if r <= 0 {
		z.MoveTo(x0, y0)
		z.LineTo(x1, y0)
		z.LineTo(x1, y1)
		z.LineTo(x0, y1)
		z.ClosePath()
		c.fill(col)
		return
	}

	k := r * kappa
	z.MoveTo(x0+r, y0)
	z.LineTo(x1-r, y0)
	z.CubeTo(x1-r+k, y0, x1, y0+r-k, x1, y0+r)
	z.LineTo(x1, y1-r)
	z.CubeTo(x1, y1-r+k, x1-r+k, y1, x1-r, y1)
	z.LineTo(x0+r, y1)
	z.CubeTo(x0+r-k, y1, x0, y1-r+k, x0, y1-r)
	z.LineTo(x0, y0+r)
	z.CubeTo(x0, y0+r-k, x0+r-k, y0, x0+r, y0)
	z.ClosePath()
	c.fill(col)
}

// FillEllipse fills the ellipse centred at (cx, cy) with radii rx and ry.
func (c *Canvas) FillEllipse(cx, cy, rx, ry float32, col color.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	kx, ky := rx*kappa, ry*kappa
	z := c.begin()
	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	z.ClosePath()
	c.fill(col)
}

// StrokePolyline draws each segment between consecutive points as a
// butt-ended band of the given width. Segments are composited one at a
// time so overlapping bands at a shared vertex never cancel. Fewer than two
// points, or a non-positive width, draws nothing.
func (c *Canvas) StrokePolyline(pts []Point, width float32, col color.Color) {
	if len(pts) < 2 || width <= 0 {
		return
	}
	half := width / 2
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := float32(math.Hypot(float64(dx), float64(dy)))
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*half, dx/l*half

		z := c.begin()
		z.MoveTo(a.X+nx, a.Y+ny)
		z.LineTo(b.X+nx, b.Y+ny)
		z.LineTo(b.X-nx, b.Y-ny)
		z.LineTo(a.X-nx, a.Y-ny)
		z.ClosePath()
		c.fill(col)
	}
}

func (c *Canvas) begin() *vector.Rasterizer {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	return c.z
}

func (c *Canvas) fill(col color.Color) {
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

func clampRadius(x0, y0, x1, y1, r float32) float32 {
	limit := min(x1-x0, y1-y0) / 2
	if r > limit {
		return limit
	}
	return r
}
