package gamekit

import (
	"image/color"
	"testing"
)

func TestRGB(t *testing.T) {
	c := RGB(0.5, 0.25, 1)
	if c.R != 0.5 || c.G != 0.25 || c.B != 1 || c.A != 1 {
		t.Errorf("RGB(0.5, 0.25, 1) = %+v, want opaque {0.5 0.25 1}", c)
	}
}

func TestColorConversion(t *testing.T) {
	tests := []struct {
		name string
		in   RGBA
		want color.NRGBA
	}{
		{"red", Red, color.NRGBA{R: 255, A: 255}},
		{"white", White, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"black", Black, color.NRGBA{A: 255}},
		{"transparent", Transparent, color.NRGBA{}},
		{"gray", RGB(0.5, 0.5, 0.5), color.NRGBA{R: 128, G: 128, B: 128, A: 255}},
		{"clamped", RGB(2, -1, 0.5), color.NRGBA{R: 255, G: 0, B: 128, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Color(); got != tt.want {
				t.Errorf("Color() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	colors := []RGBA{Red, Green, Blue, White, Black, RGB(0.2, 0.4, 0.6)}
	for _, c := range colors {
		got := FromColor(c.Color())
		// Round-tripping through 8-bit components quantizes.
		const tol = 1.0 / 255
		if !approxEq(got.R, c.R, tol) || !approxEq(got.G, c.G, tol) ||
			!approxEq(got.B, c.B, tol) || !approxEq(got.A, c.A, tol) {
			t.Errorf("FromColor(Color(%+v)) = %+v", c, got)
		}
	}
}

func TestFromColorTransparent(t *testing.T) {
	if got := FromColor(color.NRGBA{}); got != (RGBA{}) {
		t.Errorf("FromColor(transparent) = %+v, want zero RGBA", got)
	}
}

func TestColorLerp(t *testing.T) {
	if got := Black.Lerp(White, 0); got != Black {
		t.Errorf("Lerp(0) = %+v, want black", got)
	}
	if got := Black.Lerp(White, 1); got != White {
		t.Errorf("Lerp(1) = %+v, want white", got)
	}
	mid := Black.Lerp(White, 0.5)
	if mid.R != 0.5 || mid.G != 0.5 || mid.B != 0.5 || mid.A != 1 {
		t.Errorf("Lerp(0.5) = %+v, want mid gray", mid)
	}
}

func TestDarkerLighter(t *testing.T) {
	c := RGB(0.4, 0.6, 0.8)

	darker := c.Darker(0.5)
	if !approxEq(darker.R, 0.2, 1e-12) || !approxEq(darker.G, 0.3, 1e-12) || !approxEq(darker.B, 0.4, 1e-12) {
		t.Errorf("Darker(0.5) = %+v", darker)
	}
	if darker.A != 1 {
		t.Errorf("Darker changed alpha: %v", darker.A)
	}

	lighter := c.Lighter(0.5)
	if !approxEq(lighter.R, 0.7, 1e-12) || !approxEq(lighter.G, 0.8, 1e-12) || !approxEq(lighter.B, 0.9, 1e-12) {
		t.Errorf("Lighter(0.5) = %+v", lighter)
	}

	// Extremes.
	if got := c.Darker(1); got != (RGBA{A: 1}) {
		t.Errorf("Darker(1) = %+v, want black", got)
	}
	if got := c.Lighter(1); got != White {
		t.Errorf("Lighter(1) = %+v, want white", got)
	}
	if got := c.Darker(0); got != c {
		t.Errorf("Darker(0) = %+v, want unchanged", got)
	}
}

func TestWithAlpha(t *testing.T) {
	c := Red.WithAlpha(0.5)
	if c.A != 0.5 || c.R != 1 || c.G != 0 || c.B != 0 {
		t.Errorf("WithAlpha(0.5) = %+v", c)
	}
}
