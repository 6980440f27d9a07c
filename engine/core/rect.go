package core

// Rect is an axis-aligned bounding box anchored at its top-left corner.
type Rect struct {
	X, Y, W, H int
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Overlaps reports whether an edge of r lies strictly inside o on both axes.
// Touching edges do not count, and neither does r fully containing o.
func (r Rect) Overlaps(o Rect) bool {
	horizontal := strictlyInside(r.X, o.X, o.Right()) || strictlyInside(r.Right(), o.X, o.Right())
	vertical := strictlyInside(r.Y, o.Y, o.Bottom()) || strictlyInside(r.Bottom(), o.Y, o.Bottom())
	return horizontal && vertical
}

func strictlyInside(v, lo, hi int) bool {
	return lo < v && v < hi
}
