package mtl

import "github.com/lucasb-eyer/go-colorful"

// Color represents an RGB color with three independent channels.
// Channels are not clamped to any range.
type Color struct {
	R float64 `json:"r,omitempty" yaml:"r,omitempty"` // Red channel component
	G float64 `json:"g,omitempty" yaml:"g,omitempty"` // Green channel component
	B float64 `json:"b,omitempty" yaml:"b,omitempty"` // Blue channel component
}

// Clamp01 clamps v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SetColorRGB creates a Color from RGB values.
func SetColorRGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Set assigns all three channels.
func (c *Color) Set(r, g, b float64) {
	c.R = r
	c.G = g
	c.B = b
}

// SetTo copies the channels of other into c.
func (c *Color) SetTo(other Color) {
	c.R = other.R
	c.G = other.G
	c.B = other.B
}

// ToArray converts color to float array.
func (c Color) ToArray() []float64 {
	return []float64{c.R, c.G, c.B}
}

// Clamped returns a copy with each channel clamped to [0,1].
func (c Color) Clamped() Color {
	return Color{R: Clamp01(c.R), G: Clamp01(c.G), B: Clamp01(c.B)}
}

// Colorful converts c to a colorful.Color for downstream color math.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Hex renders the clamped color as a "#rrggbb" string.
func (c Color) Hex() string {
	return c.Clamped().Colorful().Hex()
}
