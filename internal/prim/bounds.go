package prim

import "math"

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max Tuple
}

// EmptyBounds returns the sentinel empty box: Min at +infinity, Max at
// -infinity on every axis, so that unioning it with anything yields the
// other operand unchanged.
func EmptyBounds() Bounds {
	return Bounds{
		Min: NewPoint(math.Inf(1), math.Inf(1), math.Inf(1)),
		Max: NewPoint(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
	}
}

// NewBounds constructs a Bounds from explicit corners.
func NewBounds(min, max Tuple) Bounds {
	return Bounds{Min: min, Max: max}
}

// ContainsPoint reports whether p lies within b, with Epsilon tolerance on
// the faces.
func (b Bounds) ContainsPoint(p Tuple) bool {
	return p.X >= b.Min.X-Epsilon && p.X <= b.Max.X+Epsilon &&
		p.Y >= b.Min.Y-Epsilon && p.Y <= b.Max.Y+Epsilon &&
		p.Z >= b.Min.Z-Epsilon && p.Z <= b.Max.Z+Epsilon
}

// ContainsBox reports whether other is fully contained within b.
func (b Bounds) ContainsBox(other Bounds) bool {
	return b.ContainsPoint(other.Min) && b.ContainsPoint(other.Max)
}

// UnionPoint returns b expanded to include p.
func (b Bounds) UnionPoint(p Tuple) Bounds {
	return Bounds{
		Min: NewPoint(math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)),
		Max: NewPoint(math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)),
	}
}

// UnionBox returns the smallest box containing both b and other.
func (b Bounds) UnionBox(other Bounds) Bounds {
	return b.UnionPoint(other.Min).UnionPoint(other.Max)
}

// corners returns the 8 corner points of b.
func (b Bounds) corners() [8]Tuple {
	return [8]Tuple{
		NewPoint(b.Min.X, b.Min.Y, b.Min.Z),
		NewPoint(b.Min.X, b.Min.Y, b.Max.Z),
		NewPoint(b.Min.X, b.Max.Y, b.Min.Z),
		NewPoint(b.Min.X, b.Max.Y, b.Max.Z),
		NewPoint(b.Max.X, b.Min.Y, b.Min.Z),
		NewPoint(b.Max.X, b.Min.Y, b.Max.Z),
		NewPoint(b.Max.X, b.Max.Y, b.Min.Z),
		NewPoint(b.Max.X, b.Max.Y, b.Max.Z),
	}
}

// Transform transforms every corner of b by m and returns the AABB of the
// result.
func (b Bounds) Transform(m Matrix) Bounds {
	out := EmptyBounds()
	for _, corner := range b.corners() {
		out = out.UnionPoint(m.MultiplyTuple(corner))
	}
	return out
}

// axisSlab solves the ray-slab intersection for one axis, substituting
// +/-infinity when the direction component is within Epsilon of zero so the
// parallel-to-the-slab case falls out of the min/max naturally.
func axisSlab(origin, direction, min, max float64) (tMin, tMax float64) {
	tMinNumerator := min - origin
	tMaxNumerator := max - origin

	if math.Abs(direction) >= Epsilon {
		tMin = tMinNumerator / direction
		tMax = tMaxNumerator / direction
	} else {
		tMin = tMinNumerator * math.Inf(1)
		tMax = tMaxNumerator * math.Inf(1)
	}
	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}

// Intersects reports whether ray hits b, via a per-axis slab test.
func (b Bounds) Intersects(ray Ray) bool {
	xtMin, xtMax := axisSlab(ray.Origin.X, ray.Direction.X, b.Min.X, b.Max.X)
	ytMin, ytMax := axisSlab(ray.Origin.Y, ray.Direction.Y, b.Min.Y, b.Max.Y)
	ztMin, ztMax := axisSlab(ray.Origin.Z, ray.Direction.Z, b.Min.Z, b.Max.Z)

	tMin := math.Max(xtMin, math.Max(ytMin, ztMin))
	tMax := math.Min(xtMax, math.Min(ytMax, ztMax))

	return tMin <= tMax
}

// Axis identifies a coordinate axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// longestAxis returns the axis with the largest extent, ties broken
// x > y > z.
func (b Bounds) longestAxis() Axis {
	dx := b.Max.X - b.Min.X
	dy := b.Max.Y - b.Min.Y
	dz := b.Max.Z - b.Min.Z

	switch {
	case dx >= dy && dx >= dz:
		return AxisX
	case dy >= dz:
		return AxisY
	default:
		return AxisZ
	}
}

// Split divides b into two halves along its longest axis, splitting at the
// midpoint of that axis.
func (b Bounds) Split() (left, right Bounds) {
	dx := b.Max.X - b.Min.X
	dy := b.Max.Y - b.Min.Y
	dz := b.Max.Z - b.Min.Z

	midX := b.Min.X + dx/2
	midY := b.Min.Y + dy/2
	midZ := b.Min.Z + dz/2

	switch b.longestAxis() {
	case AxisX:
		left = NewBounds(b.Min, NewPoint(midX, b.Max.Y, b.Max.Z))
		right = NewBounds(NewPoint(midX, b.Min.Y, b.Min.Z), b.Max)
	case AxisY:
		left = NewBounds(b.Min, NewPoint(b.Max.X, midY, b.Max.Z))
		right = NewBounds(NewPoint(b.Min.X, midY, b.Min.Z), b.Max)
	default:
		left = NewBounds(b.Min, NewPoint(b.Max.X, b.Max.Y, midZ))
		right = NewBounds(NewPoint(b.Min.X, b.Min.Y, midZ), b.Max)
	}
	return left, right
}
