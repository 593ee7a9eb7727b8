package voronoi

import "math"

func NewPoint(x, y Coord) Point {
	return Point{X: x, Y: y}
}

func NewLine(a, b Point) Line {
	return Line{A: a, B: b}
}

func NewLineFromCoords(x0, y0, x1, y1 Coord) Line {
	return NewLine(NewPoint(x0, y0), NewPoint(x1, y1))
}

func NewRect(corners Line) Rect {
	return Rect{Corners: corners}
}

func NewRectFromCoords(x0, y0, x1, y1 Coord) Rect {
	return NewRect(NewLineFromCoords(x0, y0, x1, y1))
}

func NewRectFromPoints(p0, p1 Point) Rect {
	return NewRect(NewLine(p0, p1))
}

// Compare orders points lexicographically by X, then Y. It returns -1, 0 or 1.
func (p Point) Compare(other Point) int {
	switch {
	case p.X < other.X:
		return -1
	case p.X > other.X:
		return 1
	case p.Y < other.Y:
		return -1
	case p.Y > other.Y:
		return 1
	}
	return 0
}

func (p Point) Less(other Point) bool {
	return p.Compare(other) < 0
}

// Compare orders lines lexicographically by A, then B.
func (l Line) Compare(other Line) int {
	if c := l.A.Compare(other.A); c != 0 {
		return c
	}
	return l.B.Compare(other.B)
}

func (l Line) Less(other Line) bool {
	return l.Compare(other) < 0
}

func (l Line) IsDegenerate() bool {
	return l.A == l.B
}

func (r Rect) X0() Coord { return r.Corners.A.X }
func (r Rect) Y0() Coord { return r.Corners.A.Y }
func (r Rect) X1() Coord { return r.Corners.B.X }
func (r Rect) Y1() Coord { return r.Corners.B.Y }

// Min is the corner with the smallest coordinates on both axes.
func (r Rect) Min() Point {
	return Point{X: minCoord(r.X0(), r.X1()), Y: minCoord(r.Y0(), r.Y1())}
}

func (r Rect) Max() Point {
	return Point{X: maxCoord(r.X0(), r.X1()), Y: maxCoord(r.Y0(), r.Y1())}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	lo, hi := r.Min(), r.Max()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// Truncates toward zero, which is what a float to integer conversion does in
// Go. Values outside the Coord range saturate instead of wrapping.
func truncCoord(f float64) Coord {
	switch {
	case math.IsNaN(f):
		fatalf("cannot convert NaN to a coordinate")
	case f >= math.MaxInt16:
		return math.MaxInt16
	case f <= math.MinInt16:
		return math.MinInt16
	}
	return Coord(f)
}

func signum(v int64) int64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func minCoord(a, b Coord) Coord {
	if a < b {
		return a
	}
	return b
}

func maxCoord(a, b Coord) Coord {
	if a > b {
		return a
	}
	return b
}
