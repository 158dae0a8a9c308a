// Package shape implements the unified shape dispatcher: primitives,
// groups, and constructive solid geometry (CSG), all behind one Shape type
// that wraps the world<->object transform, parent chain, material
// fallback, and bounding box.
package shape

import (
	"errors"
	"math"
	"sync"
	"sync/atomic"

	"github.com/ashcolecarr/go-raytracer/internal/material"
	"github.com/ashcolecarr/go-raytracer/internal/prim"
)

// ErrBadShapeOp is returned when NormalAt is called on a Group or CSG node,
// which have no surface of their own.
var ErrBadShapeOp = errors.New("shape: operation not supported on this shape kind")

// Kind tags which variant a Shape holds.
type Kind int

const (
	KindSphere Kind = iota
	KindPlane
	KindCube
	KindCylinder
	KindCone
	KindTriangle
	KindSmoothTriangle
	KindGroup
	KindCSG
	KindTestShape
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "Sphere"
	case KindPlane:
		return "Plane"
	case KindCube:
		return "Cube"
	case KindCylinder:
		return "Cylinder"
	case KindCone:
		return "Cone"
	case KindTriangle:
		return "Triangle"
	case KindSmoothTriangle:
		return "SmoothTriangle"
	case KindGroup:
		return "Group"
	case KindCSG:
		return "CSG"
	case KindTestShape:
		return "TestShape"
	default:
		return "Unknown"
	}
}

// CSGOperation is the boolean operation a CSG node applies to its two
// children.
type CSGOperation int

const (
	Union CSGOperation = iota
	Intersect
	Difference
)

var idCounter atomic.Uint64

// NewID returns the next value from the process-wide monotonic shape id
// allocator.
func NewID() uint64 {
	return idCounter.Add(1)
}

// Shape is a tagged variant over every renderable entity: a stable id, a
// transform, a material, a casts-shadow flag, and an optional parent id,
// plus kind-specific fields used only by the matching Kind.
type Shape struct {
	ID          uint64
	Kind        Kind
	Transform   prim.Matrix
	Material    material.Material
	CastsShadow bool
	ParentID    *uint64

	// Cylinder / Cone
	Minimum, Maximum float64
	Closed           bool

	// Triangle / SmoothTriangle
	P1, P2, P3         prim.Tuple
	Edge1, Edge2       prim.Tuple
	FaceNormal         prim.Tuple
	N1, N2, N3         prim.Tuple // SmoothTriangle only

	// Group
	Children []*Shape

	// CSG
	Operation   CSGOperation
	Left, Right *Shape

	// TestShape: the last ray seen by localIntersect, in object space.
	SavedRay *prim.Ray
}

func newShape(kind Kind) *Shape {
	return &Shape{
		ID:          NewID(),
		Kind:        kind,
		Transform:   prim.Identity4(),
		Material:    material.New(),
		CastsShadow: true,
		Minimum:     negInf,
		Maximum:     posInf,
	}
}

// Intersection is the record produced by intersecting a ray against a
// Shape: the ray parameter, a reference to the hit Shape, and (only for
// SmoothTriangle hits) barycentric u, v coordinates.
type Intersection struct {
	T      float64
	Object *Shape
	U, V   float64
	HasUV  bool
}

// parent registry: an arena of parents keyed by id, so a Shape can carry
// only an optional parent id (breaking what would otherwise be a reference
// cycle between parent and child) while still supporting world-space normal
// composition and material-inheritance lookups. Populated during scene
// construction (AddChild, reparenting into a CSG, Divide); read-only during
// rendering.
var parentRegistry = struct {
	mu sync.RWMutex
	m  map[uint64]*Shape
}{m: make(map[uint64]*Shape)}

func registerParent(s *Shape) {
	parentRegistry.mu.Lock()
	parentRegistry.m[s.ID] = s
	parentRegistry.mu.Unlock()
}

// lookupParent resolves a parent id to its canonical Shape. ok is false if
// the id is not (yet) registered.
func lookupParent(id uint64) (*Shape, bool) {
	parentRegistry.mu.RLock()
	s, ok := parentRegistry.m[id]
	parentRegistry.mu.RUnlock()
	return s, ok
}

func (s *Shape) setParent(parent *Shape) {
	id := parent.ID
	s.ParentID = &id
}

// parent returns the Shape's parent, if any.
func (s *Shape) parent() (*Shape, bool) {
	if s.ParentID == nil {
		return nil, false
	}
	return lookupParent(*s.ParentID)
}

// WorldToObject converts a world-space point into this shape's object
// space, first asking the parent chain to do the same so nested groups
// compose correctly.
func (s *Shape) WorldToObject(worldPoint prim.Tuple) prim.Tuple {
	point := worldPoint
	if parent, ok := s.parent(); ok {
		point = parent.WorldToObject(point)
	}
	inv, err := s.Transform.Inverse()
	if err != nil {
		inv = prim.Identity4()
	}
	return inv.MultiplyTuple(point)
}

// NormalToWorld converts an object-space normal vector into world space via
// the inverse-transpose of this shape's transform, then delegates to the
// parent if any.
func (s *Shape) NormalToWorld(objectNormal prim.Tuple) prim.Tuple {
	inv, err := s.Transform.Inverse()
	if err != nil {
		inv = prim.Identity4()
	}
	normal := inv.Transpose().MultiplyTuple(objectNormal)
	normal.W = 0
	normal = normal.Normalize()
	if parent, ok := s.parent(); ok {
		normal = parent.NormalToWorld(normal)
	}
	return normal
}

// EffectiveMaterial resolves this shape's material, climbing to the
// outermost parent's material when parented. This preserves a known
// upstream ambiguity (see DESIGN.md Open Question 1): a group's material
// unconditionally overrides its children's individually-set materials.
func (s *Shape) EffectiveMaterial() material.Material {
	if parent, ok := s.parent(); ok {
		return parent.EffectiveMaterial()
	}
	return s.Material
}

// Intersect transforms worldRay into object space and dispatches to the
// kind-specific local intersection kernel. Every produced Intersection
// carries a reference back to this Shape.
func (s *Shape) Intersect(worldRay prim.Ray) []Intersection {
	inv, err := s.Transform.Inverse()
	if err != nil {
		return nil
	}
	objectRay := worldRay.Transform(inv)
	return s.localIntersect(objectRay)
}

// NormalAt computes the world-space normal at worldPoint, using hit (for
// SmoothTriangle u,v interpolation) where relevant.
func (s *Shape) NormalAt(worldPoint prim.Tuple, hit Intersection) (prim.Tuple, error) {
	if s.Kind == KindGroup || s.Kind == KindCSG {
		return prim.Tuple{}, ErrBadShapeOp
	}
	objectPoint := s.WorldToObject(worldPoint)
	objectNormal := s.localNormalAt(objectPoint, hit)
	return s.NormalToWorld(objectNormal), nil
}

// Bounds returns this shape's axis-aligned bounding box in object space.
func (s *Shape) Bounds() prim.Bounds {
	return s.localBounds()
}

// ParentSpaceBounds returns Bounds() transformed by this shape's own
// transform, i.e. the box as seen by this shape's parent.
func (s *Shape) ParentSpaceBounds() prim.Bounds {
	return s.Bounds().Transform(s.Transform)
}

var posInf = math.Inf(1)
var negInf = math.Inf(-1)

// localIntersect dispatches to the kind-specific intersection kernel. ray is
// already in object space.
func (s *Shape) localIntersect(ray prim.Ray) []Intersection {
	switch s.Kind {
	case KindSphere:
		return s.sphereIntersect(ray)
	case KindPlane:
		return s.planeIntersect(ray)
	case KindCube:
		return s.cubeIntersect(ray)
	case KindCylinder:
		return s.cylinderIntersect(ray)
	case KindCone:
		return s.coneIntersect(ray)
	case KindTriangle, KindSmoothTriangle:
		return s.triangleIntersect(ray)
	case KindGroup:
		return s.groupIntersect(ray)
	case KindCSG:
		return s.csgIntersect(ray)
	case KindTestShape:
		saved := ray
		s.SavedRay = &saved
		return nil
	default:
		return nil
	}
}

// localNormalAt dispatches to the kind-specific normal kernel. point is
// already in object space.
func (s *Shape) localNormalAt(point prim.Tuple, hit Intersection) prim.Tuple {
	switch s.Kind {
	case KindSphere:
		return s.sphereNormalAt(point)
	case KindPlane:
		return s.planeNormalAt(point)
	case KindCube:
		return s.cubeNormalAt(point)
	case KindCylinder:
		return s.cylinderNormalAt(point)
	case KindCone:
		return s.coneNormalAt(point)
	case KindTriangle, KindSmoothTriangle:
		return s.triangleNormalAt(point, hit)
	case KindTestShape:
		return prim.NewVector(point.X, point.Y, point.Z)
	default:
		return prim.NewVector(0, 0, 0)
	}
}

// localBounds dispatches to the kind-specific local (object-space) AABB.
func (s *Shape) localBounds() prim.Bounds {
	switch s.Kind {
	case KindSphere, KindCube, KindTestShape:
		return prim.NewBounds(prim.NewPoint(-1, -1, -1), prim.NewPoint(1, 1, 1))
	case KindPlane:
		return prim.NewBounds(prim.NewPoint(negInf, 0, negInf), prim.NewPoint(posInf, 0, posInf))
	case KindCylinder:
		return prim.NewBounds(prim.NewPoint(-1, s.Minimum, -1), prim.NewPoint(1, s.Maximum, 1))
	case KindCone:
		limit := math.Max(math.Abs(s.Minimum), math.Abs(s.Maximum))
		return prim.NewBounds(prim.NewPoint(-limit, s.Minimum, -limit), prim.NewPoint(limit, s.Maximum, limit))
	case KindTriangle, KindSmoothTriangle:
		return s.triangleBounds()
	case KindGroup:
		return s.groupBounds()
	case KindCSG:
		return s.csgBounds()
	default:
		return prim.EmptyBounds()
	}
}
