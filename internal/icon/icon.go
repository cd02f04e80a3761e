// Package icon draws the application icon: a dark rounded tile with a cyan
// outline, a green status dot and a cyan waveform.
package icon

import (
	"image"
	"image/color"

	"github.com/Mavwarf/mkicon/internal/raster"
)

// Palette holds the three icon colors.
type Palette struct {
	Fill   color.RGBA // tile body
	Accent color.RGBA // outline and waveform
	Dot    color.RGBA // status dot
}

// DefaultPalette is #0c0c0c / #22d3ee / #4ade80.
var DefaultPalette = Palette{
	Fill:   color.RGBA{R: 0x0c, G: 0x0c, B: 0x0c, A: 0xff},
	Accent: color.RGBA{R: 0x22, G: 0xd3, B: 0xee, A: 0xff},
	Dot:    color.RGBA{R: 0x4a, G: 0xde, B: 0x80, A: 0xff},
}

// Draw renders one size×size frame with the default palette.
func Draw(size int) *image.RGBA {
	return DrawWith(size, DefaultPalette)
}

// DrawWith renders one size×size frame with the given palette.
func DrawWith(size int, p Palette) *image.RGBA {
	l := NewLayout(size)
	c := raster.New(size)

	// Integer coordinates name pixels, so inclusive boxes end one past the
	// last pixel and centres sit at +0.5.
	body := l.Body()
	x0, y0 := float32(body.Min.X), float32(body.Min.Y)
	x1, y1 := float32(body.Max.X), float32(body.Max.Y)
	r := float32(l.Radius)
	w := float32(l.OutlineWidth)
	c.FillRoundRect(x0, y0, x1, y1, r, p.Accent)
	c.FillRoundRect(x0+w, y0+w, x1-w, y1-w, max(0, r-w), p.Fill)

	dr := float32(l.DotRadius) + 0.5
	c.FillEllipse(float32(l.DotCenter.X)+0.5, float32(l.DotCenter.Y)+0.5, dr, dr, p.Dot)

	wave := l.WavePoints()
	pts := make([]raster.Point, len(wave))
	for i, pt := range wave {
		pts[i] = raster.Point{X: float32(pt.X) + 0.5, Y: float32(pt.Y) + 0.5}
	}
	c.StrokePolyline(pts, float32(l.LineWidth), p.Accent)

	return c.Image()
}

// DrawAll renders one frame per size, in the order given.
func DrawAll(sizes []int, p Palette) []image.Image {
	frames := make([]image.Image, 0, len(sizes))
	for _, s := range sizes {
		frames = append(frames, DrawWith(s, p))
	}
	return frames
}
