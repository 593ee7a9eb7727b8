package voronoi

import "math"

// Predicate decides whether two lines collide for the purposes of pruning. It
// need not be symmetric. Pruner calls it from several goroutines at once, so it
// must be safe for concurrent use.
type Predicate func(l1, l2 Line) bool

// Length is the Euclidean length of the line, truncated toward zero. It is an
// int rather than a Coord because the diagonal of the full coordinate range does
// not fit in a Coord.
func (l Line) Length() int {
	dx := float64(l.A.X) - float64(l.B.X)
	dy := float64(l.A.Y) - float64(l.B.Y)
	return int(math.Sqrt(dx*dx + dy*dy))
}

// MidPoint averages the endpoints in floating point and truncates each
// coordinate toward zero, so (0,0)-(3,3) gives (1,1) and (0,0)-(-3,-3) gives
// (-1,-1).
func (l Line) MidPoint() Point {
	return Point{
		X: truncCoord((float64(l.A.X) + float64(l.B.X)) / 2),
		Y: truncCoord((float64(l.A.Y) + float64(l.B.Y)) / 2),
	}
}

// CrossSignum is the orientation value of p against l used by LegacyCollides.
//
// It is not a cross product: the second term takes the sign of p.Y - l.A.X,
// mixing axes. The formula is kept as is so pruning matches the output of the
// original generator. Arithmetic is done in int64 so it cannot wrap.
func CrossSignum(l Line, p Point) int64 {
	ax, ay := int64(l.A.X), int64(l.A.Y)
	bx, by := int64(l.B.X), int64(l.B.Y)
	py := int64(p.Y)
	return (ax-bx)*(py-ay) - (ay-by)*signum(py-ax)
}

// LegacyCollides reports a collision when both endpoints of l2 have the same
// CrossSignum against l1.
func LegacyCollides(l1, l2 Line) bool {
	return CrossSignum(l1, l2.A) == CrossSignum(l1, l2.B)
}

// Orientation is twice the signed area of the triangle (a, b, c): positive when
// the turn a->b->c is counterclockwise, negative when clockwise, zero when the
// points are collinear.
func Orientation(a, b, c Point) int64 {
	return (int64(b.X)-int64(a.X))*(int64(c.Y)-int64(a.Y)) -
		(int64(b.Y)-int64(a.Y))*(int64(c.X)-int64(a.X))
}

// IntersectCollides reports a proper crossing: each segment has the endpoints
// of the other strictly on opposite sides. Lines that only touch, share an
// endpoint or overlap collinearly do not collide.
func IntersectCollides(l1, l2 Line) bool {
	o1 := signum(Orientation(l1.A, l1.B, l2.A))
	o2 := signum(Orientation(l1.A, l1.B, l2.B))
	o3 := signum(Orientation(l2.A, l2.B, l1.A))
	o4 := signum(Orientation(l2.A, l2.B, l1.B))
	return o1*o2 < 0 && o3*o4 < 0
}

func (l Line) Collides(other Line) bool {
	return LegacyCollides(l, other)
}
