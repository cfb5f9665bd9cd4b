package component

// LevelBounds stores the world-space size of the scene. Walls are built
// along its edges.
type LevelBounds struct {
	Width  float64
	Height float64
}

// Contains reports whether the point lies inside the bounds, expanded by margin.
func (b *LevelBounds) Contains(x, y, margin float64) bool {
	if b == nil {
		return true
	}
	return x >= -margin && x <= b.Width+margin && y >= -margin && y <= b.Height+margin
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
