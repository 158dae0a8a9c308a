package prim

import "fmt"

// Color is an RGB triple. Arithmetic is unclamped; values are only clamped
// to [0, 1] and scaled to an integer channel when written externally (see
// canvas.go).
type Color struct {
	R, G, B float64
}

// NewColor constructs a Color.
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

var Black = Color{}
var White = Color{R: 1, G: 1, B: 1}

func (c Color) String() string {
	return fmt.Sprintf("Color(%.4f, %.4f, %.4f)", c.R, c.G, c.B)
}

// Add adds two colors componentwise.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Sub subtracts other from c componentwise.
func (c Color) Sub(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Scale multiplies every channel by s.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Mul is the Hadamard (componentwise) product, used for light/filter
// interaction.
func (c Color) Mul(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equal reports whether c and other are equal within Epsilon per channel.
func (c Color) Equal(other Color) bool {
	return floatEqual(c.R, other.R) && floatEqual(c.G, other.G) && floatEqual(c.B, other.B)
}

// Clamp returns c with every channel clamped to [0, 1].
func (c Color) Clamp() Color {
	return Color{clamp(0, 1, c.R), clamp(0, 1, c.G), clamp(0, 1, c.B)}
}

func clamp(lo, hi, x float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
