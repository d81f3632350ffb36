package strata

import "github.com/gogpu/strata/internal/color"

// Color represents a color with sRGB-encoded red, green, and blue
// components and a linear alpha component, each in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGB creates an opaque color from sRGB components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from sRGB components and a linear alpha.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Linear resolves the color to the linear color space used for blending,
// returning components in render-record order. Alpha is already linear and
// passes through unchanged.
func (c Color) Linear() [4]float32 {
	return [4]float32{
		color.SRGBToLinearFast(c.R),
		color.SRGBToLinearFast(c.G),
		color.SRGBToLinearFast(c.B),
		c.A,
	}
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = Color{}
)

// Background is the fill of a quad. Only solid colors are supported;
// gradient fills belong to meshes (see the mesh package).
type Background struct {
	Color Color
}
