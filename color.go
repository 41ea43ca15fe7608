package gamekit

import "image/color"

// RGBA is a color with red, green, blue and alpha components, each in
// [0, 1]. Components are not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	// color.Color is alpha-premultiplied, RGBA is not.
	return RGBA{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: float64(a) / 65535,
	}
}

// Color converts the color to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(Clamp(c.R, 0, 1)*255 + 0.5),
		G: uint8(Clamp(c.G, 0, 1)*255 + 0.5),
		B: uint8(Clamp(c.B, 0, 1)*255 + 0.5),
		A: uint8(Clamp(c.A, 0, 1)*255 + 0.5),
	}
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Lerp performs linear interpolation between two colors, component-wise.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: Lerp(c.R, other.R, t),
		G: Lerp(c.G, other.G, t),
		B: Lerp(c.B, other.B, t),
		A: Lerp(c.A, other.A, t),
	}
}

// Darker returns the color darkened by the given fraction: 0 is the color
// itself, 1 is black. Alpha is preserved.
func (c RGBA) Darker(fraction float64) RGBA {
	return c.Lerp(RGBA{A: c.A}, Clamp(fraction, 0, 1))
}

// Lighter returns the color lightened by the given fraction: 0 is the
// color itself, 1 is white. Alpha is preserved.
func (c RGBA) Lighter(fraction float64) RGBA {
	return c.Lerp(RGBA{R: 1, G: 1, B: 1, A: c.A}, Clamp(fraction, 0, 1))
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = RGBA{}
)
