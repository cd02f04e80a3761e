package icon

import "image"

// Sizes is the default set of frame sizes, smallest first.
var Sizes = []int{16, 32, 48, 64, 128, 256}

// Layout holds the integer geometry of one frame. Every field is a pure
// function of Size.
type Layout struct {
	Size int

	// Rounded-rectangle body over the inclusive pixel box
	// [Inset, Size-Inset] on both axes.
	Inset        int
	Radius       int
	OutlineWidth int

	// Status dot.
	DotCenter image.Point
	DotRadius int

	// Waveform.
	WaveY      int
	WaveHeight int
	WaveStep   int
	LineWidth  int
}

// NewLayout computes the geometry for a size×size frame. Sizes below 8
// have no waveform period and yield an empty waveform.
func NewLayout(size int) Layout {
	return Layout{
		Size:         size,
		Inset:        size / 8,
		Radius:       size / 6,
		OutlineWidth: max(1, size/32),
		DotCenter:    image.Pt(size/2, size/3),
		DotRadius:    size / 10,
		WaveY:        size * 2 / 3,
		WaveHeight:   size / 8,
		WaveStep:     max(1, size/16),
		LineWidth:    max(1, size/20),
	}
}

// Body returns the inclusive pixel box of the rounded rectangle as a
// half-open image.Rectangle.
func (l Layout) Body() image.Rectangle {
	return image.Rect(l.Inset, l.Inset, l.Size-l.Inset+1, l.Size-l.Inset+1)
}

// WavePoints samples the zig-zag waveform. x runs from 2·Inset up to, but
// not including, Size-2·Inset. Within each Inset-wide band the point sits
// WaveHeight below WaveY on even bands and WaveHeight/2 above it on odd ones.
func (l Layout) WavePoints() []image.Point {
	if l.Inset == 0 {
		return nil
	}
	var pts []image.Point
	for x := 2 * l.Inset; x < l.Size-2*l.Inset; x += l.WaveStep {
		offset := l.WaveHeight
		if (x/l.Inset)%2 != 0 {
			offset = -l.WaveHeight / 2
		}
		pts = append(pts, image.Pt(x, l.WaveY+offset))
	}
	return pts
}
