package shape

// NewTestShape constructs a shape used only by tests to record the object
// space ray it was last intersected with (see Shape.SavedRay).
func NewTestShape() *Shape {
	return newShape(KindTestShape)
}
