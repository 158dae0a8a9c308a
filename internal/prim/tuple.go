// Package prim implements the linear-algebra and raster primitives shared by
// the ray tracer: homogeneous tuples, 4x4 matrices, rays, bounding boxes,
// colors and the pixel canvas.
package prim

import (
	"fmt"
	"math"
)

// Epsilon is the fixed tolerance used for float equality and surface offsets
// throughout the ray tracer.
const Epsilon = 1e-5

// Tuple is a homogeneous 4-tuple. W == 1 denotes a point, W == 0 a vector.
type Tuple struct {
	X, Y, Z, W float64
}

// NewPoint constructs a point (W = 1).
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector constructs a vector (W = 0).
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

func (t Tuple) String() string {
	return fmt.Sprintf("Tuple(%.4f, %.4f, %.4f, %.4f)", t.X, t.Y, t.Z, t.W)
}

// IsPoint reports whether t represents a point.
func (t Tuple) IsPoint() bool {
	return t.W == 1
}

// IsVector reports whether t represents a vector.
func (t Tuple) IsVector() bool {
	return t.W == 0
}

// Add adds two tuples componentwise. Point + point is not meaningful but is
// not rejected here; callers are expected to respect the point/vector
// algebra described by the data model.
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Sub subtracts other from t componentwise.
func (t Tuple) Sub(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Neg negates every component.
func (t Tuple) Neg() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Scale multiplies every component by s.
func (t Tuple) Scale(s float64) Tuple {
	return Tuple{t.X * s, t.Y * s, t.Z * s, t.W * s}
}

// Div divides every component by s.
func (t Tuple) Div(s float64) Tuple {
	return Tuple{t.X / s, t.Y / s, t.Z / s, t.W / s}
}

// Magnitude returns the Euclidean length of t (meaningful for vectors).
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns t scaled to unit length.
func (t Tuple) Normalize() Tuple {
	return t.Scale(1.0 / t.Magnitude())
}

// Dot returns the dot product of t and other.
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of t and other, treated as vectors. The
// result always has W = 0.
func (t Tuple) Cross(other Tuple) Tuple {
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect reflects t around normal: t - normal*2*(t.normal).
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Sub(normal.Scale(2 * t.Dot(normal)))
}

// Equal reports whether t and other are equal within Epsilon on every
// component.
func (t Tuple) Equal(other Tuple) bool {
	return floatEqual(t.X, other.X) &&
		floatEqual(t.Y, other.Y) &&
		floatEqual(t.Z, other.Z) &&
		floatEqual(t.W, other.W)
}

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
