package icon

import (
	"bytes"
	"image"
	"math"
	"testing"
)

func TestNewLayout(t *testing.T) {
	tests := []struct {
		size int
		want Layout
	}{
		{16, Layout{
			Size: 16, Inset: 2, Radius: 2, OutlineWidth: 1,
			DotCenter: image.Pt(8, 5), DotRadius: 1,
			WaveY: 10, WaveHeight: 2, WaveStep: 1, LineWidth: 1,
		}},
		{64, Layout{
			Size: 64, Inset: 8, Radius: 10, OutlineWidth: 2,
			DotCenter: image.Pt(32, 21), DotRadius: 6,
			WaveY: 42, WaveHeight: 8, WaveStep: 4, LineWidth: 3,
		}},
		{256, Layout{
			Size: 256, Inset: 32, Radius: 42, OutlineWidth: 8,
			DotCenter: image.Pt(128, 85), DotRadius: 25,
			WaveY: 170, WaveHeight: 32, WaveStep: 16, LineWidth: 12,
		}},
	}
	for _, tt := range tests {
		if got := NewLayout(tt.size); got != tt.want {
			t.Errorf("NewLayout(%d) = %+v, want %+v", tt.size, got, tt.want)
		}
	}
}

func TestWavePointsSmallest(t *testing.T) {
	want := []image.Point{
		{4, 12}, {5, 12}, {6, 9}, {7, 9},
		{8, 12}, {9, 12}, {10, 9}, {11, 9},
	}
	got := NewLayout(16).WavePoints()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
	if len(got) < 2 {
		t.Error("smallest frame must still stroke its waveform")
	}
}

func TestWavePointsCount(t *testing.T) {
	for _, s := range Sizes {
		inset := s / 8
		step := max(1, s/16)
		want := int(math.Ceil(float64(s-4*inset) / float64(step)))
		if got := len(NewLayout(s).WavePoints()); got != want {
			t.Errorf("size %d: %d points, want %d", s, got, want)
		}
	}
}

func TestWavePointsTinySize(t *testing.T) {
	if pts := NewLayout(4).WavePoints(); len(pts) != 0 {
		t.Errorf("size 4: got %v, want no points", pts)
	}
}

func TestDrawDimensions(t *testing.T) {
	for _, s := range Sizes {
		b := Draw(s).Bounds()
		if b.Min != (image.Point{}) || b.Dx() != s || b.Dy() != s {
			t.Errorf("size %d: bounds %v", s, b)
		}
	}
}

func TestDrawTransparentOutsideBody(t *testing.T) {
	for _, s := range Sizes {
		img := Draw(s)
		body := NewLayout(s).Body()
		for y := 0; y < s; y++ {
			for x := 0; x < s; x++ {
				if image.Pt(x, y).In(body) {
					continue
				}
				if a := img.RGBAAt(x, y).A; a != 0 {
					t.Fatalf("size %d: (%d,%d) alpha = %d, want 0", s, x, y, a)
				}
			}
		}
	}
}

func TestDrawColors(t *testing.T) {
	for _, s := range Sizes {
		l := NewLayout(s)
		img := Draw(s)

		if got := img.RGBAAt(s/2, l.Inset); got != DefaultPalette.Accent {
			t.Errorf("size %d: outline (%d,%d) = %v, want %v", s, s/2, l.Inset, got, DefaultPalette.Accent)
		}
		x := l.Inset + l.OutlineWidth
		if got := img.RGBAAt(x, s/2); got != DefaultPalette.Fill {
			t.Errorf("size %d: body (%d,%d) = %v, want %v", s, x, s/2, got, DefaultPalette.Fill)
		}
		if got := img.RGBAAt(l.DotCenter.X, l.DotCenter.Y); got != DefaultPalette.Dot {
			t.Errorf("size %d: dot centre = %v, want %v", s, got, DefaultPalette.Dot)
		}
	}
}

func TestDrawWaveformStroked(t *testing.T) {
	// At 256 the first two samples (x=64, x=80) share y=202.
	img := Draw(256)
	if got := img.RGBAAt(70, 202); got != DefaultPalette.Accent {
		t.Errorf("waveform (70,202) = %v, want %v", got, DefaultPalette.Accent)
	}
}

func TestDrawDeterministic(t *testing.T) {
	for _, s := range Sizes {
		if !bytes.Equal(Draw(s).Pix, Draw(s).Pix) {
			t.Errorf("size %d: repeated renders differ", s)
		}
	}
}

func TestDrawWithPalette(t *testing.T) {
	p := Palette{
		Fill:   DefaultPalette.Dot,
		Accent: DefaultPalette.Fill,
		Dot:    DefaultPalette.Accent,
	}
	img := DrawWith(64, p)
	l := NewLayout(64)
	if got := img.RGBAAt(l.DotCenter.X, l.DotCenter.Y); got != p.Dot {
		t.Errorf("dot centre = %v, want %v", got, p.Dot)
	}
}

func TestDrawAll(t *testing.T) {
	frames := DrawAll(Sizes, DefaultPalette)
	if len(frames) != len(Sizes) {
		t.Fatalf("len = %d, want %d", len(frames), len(Sizes))
	}
	for i, f := range frames {
		if f.Bounds().Dx() != Sizes[i] {
			t.Errorf("frame %d: width %d, want %d", i, f.Bounds().Dx(), Sizes[i])
		}
	}
}

func TestWavePointsOddHeight(t *testing.T) {
	// 24px: WaveHeight 3, so odd bands rise by 3/2 = 1.
	l := NewLayout(24)
	for _, p := range l.WavePoints() {
		even := (p.X/l.Inset)%2 == 0
		want := l.WaveY + l.WaveHeight
		if !even {
			want = l.WaveY - 1
		}
		if p.Y != want {
			t.Errorf("x=%d: y=%d, want %d", p.X, p.Y, want)
		}
	}
}
