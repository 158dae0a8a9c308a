package shape

import (
	"sort"

	"github.com/ashcolecarr/go-raytracer/internal/prim"
)

// NewCSG constructs a constructive solid geometry node combining left and
// right under op, reparenting both children to the new node.
func NewCSG(op CSGOperation, left, right *Shape) *Shape {
	s := newShape(KindCSG)
	s.Operation = op
	s.Left = left
	s.Right = right

	registerParent(s)
	left.setParent(s)
	right.setParent(s)

	return s
}

// includeInCSGResult decides, for a hit at the boundary of lhit (true if the
// hit belongs to the left subtree), whether it survives given whether the
// ray is currently inside the left subtree (inL) and inside the right
// subtree (inR). Each CSGOperation has its own rule; an unknown operation
// keeps nothing.
func includeInCSGResult(op CSGOperation, lhit, inL, inR bool) bool {
	switch op {
	case Union:
		return (lhit && !inR) || (!lhit && !inL)
	case Intersect:
		return (lhit && inR) || (!lhit && inL)
	case Difference:
		return (lhit && !inR) || (!lhit && inL)
	default:
		return false
	}
}

// shapeIsPartOf reports whether candidate appears anywhere in subtree's
// descendants (Group children or CSG left/right), recursing through nested
// groups and CSG nodes.
func shapeIsPartOf(subtree, candidate *Shape) bool {
	if subtree == candidate {
		return true
	}
	switch subtree.Kind {
	case KindGroup:
		for _, child := range subtree.Children {
			if shapeIsPartOf(child, candidate) {
				return true
			}
		}
	case KindCSG:
		return shapeIsPartOf(subtree.Left, candidate) || shapeIsPartOf(subtree.Right, candidate)
	}
	return false
}

// filterIntersections applies the CSG set operation across a combined,
// t-sorted intersection list, tracking membership in the left and right
// subtrees as the ray crosses each surface.
func (s *Shape) filterIntersections(xs []Intersection) []Intersection {
	var inL, inR bool
	var result []Intersection

	for _, i := range xs {
		lhit := shapeIsPartOf(s.Left, i.Object)

		if includeInCSGResult(s.Operation, lhit, inL, inR) {
			result = append(result, i)
		}

		if lhit {
			inL = !inL
		} else {
			inR = !inR
		}
	}
	return result
}

// csgIntersect merges the left and right subtrees' intersections, sorts by
// t, and filters them per the governing boolean operation. Unlike groups,
// a CSG node does not bounds-check itself first: csgBounds is intentionally
// empty (see below), so culling is left entirely to the left/right
// children's own intersection tests.
func (s *Shape) csgIntersect(ray prim.Ray) []Intersection {
	var xs []Intersection
	xs = append(xs, s.Left.Intersect(ray)...)
	xs = append(xs, s.Right.Intersect(ray)...)

	sort.Slice(xs, func(i, j int) bool { return xs[i].T < xs[j].T })

	return s.filterIntersections(xs)
}

// csgBounds returns an empty box rather than the union of its children's
// bounds (see DESIGN.md Open Question 3): a CSG node's true surface can be
// smaller than either operand's box (e.g. a thin sliver left by a
// Difference), so bounds-based culling is skipped at this level and pushed
// down to the left/right children's own bounds checks instead.
func (s *Shape) csgBounds() prim.Bounds {
	return prim.EmptyBounds()
}
