package shape

import "github.com/ashcolecarr/go-raytracer/internal/prim"

// NewGroup constructs an empty group, a container for other shapes that
// applies its own transform to all of them.
func NewGroup() *Shape {
	return newShape(KindGroup)
}

// AddChild adds child to g, reparenting it and registering g so parent
// lookups (world/object conversion, material inheritance) can resolve it.
func (g *Shape) AddChild(child *Shape) {
	registerParent(g)
	child.setParent(g)
	g.Children = append(g.Children, child)
}

// groupIntersect bounds-checks the group's own box, then concatenates every
// child's intersections unsorted (see DESIGN.md Open Question 2: a group
// itself never sorts, leaving ordering to the caller that collects the
// world's full intersection list).
func (s *Shape) groupIntersect(ray prim.Ray) []Intersection {
	if !s.Bounds().Intersects(ray) {
		return nil
	}

	var xs []Intersection
	for _, child := range s.Children {
		xs = append(xs, child.Intersect(ray)...)
	}
	return xs
}

// groupBounds is the union of every child's bounds as seen from the group's
// own space (i.e. each child's box transformed by the child's transform).
func (s *Shape) groupBounds() prim.Bounds {
	b := prim.EmptyBounds()
	for _, child := range s.Children {
		b = b.UnionBox(child.ParentSpaceBounds())
	}
	return b
}

// partitionChildren splits g.Children into those that fall entirely within
// leftBox, those entirely within rightBox, and those straddling neither
// (left in the group).
func partitionChildren(children []*Shape, leftBox, rightBox prim.Bounds) (left, right, remaining []*Shape) {
	for _, child := range children {
		box := child.ParentSpaceBounds()
		switch {
		case leftBox.ContainsBox(box):
			left = append(left, child)
		case rightBox.ContainsBox(box):
			right = append(right, child)
		default:
			remaining = append(remaining, child)
		}
	}
	return left, right, remaining
}

// makeSubgroup wraps children in a new group added as a child of g.
func (g *Shape) makeSubgroup(children []*Shape) {
	sub := NewGroup()
	for _, c := range children {
		sub.AddChild(c)
	}
	g.AddChild(sub)
}

// Divide recursively splits a group's children into a bounding volume
// hierarchy: any subset of children that fits entirely within one half of
// the group's bounding box is moved into its own subgroup; a group is split
// only when it has at least threshold children. CSG children have their own subtrees
// divided in place; other non-group children are left untouched.
func (s *Shape) Divide(threshold int) {
	if s.Kind == KindCSG {
		if s.Left != nil {
			s.Left.Divide(threshold)
		}
		if s.Right != nil {
			s.Right.Divide(threshold)
		}
		return
	}

	if s.Kind != KindGroup {
		return
	}

	if len(s.Children) >= threshold {
		leftBox, rightBox := s.groupBounds().Split()
		left, right, remaining := partitionChildren(s.Children, leftBox, rightBox)

		s.Children = remaining
		if len(left) > 0 {
			s.makeSubgroup(left)
		}
		if len(right) > 0 {
			s.makeSubgroup(right)
		}
	}

	for _, child := range s.Children {
		child.Divide(threshold)
	}
}
