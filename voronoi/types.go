package voronoi

// Coord is the integer coordinate type used for every point in the pipeline.
type Coord = int16

type Point struct {
	X Coord
	Y Coord
}

// Lines are value types. A line may be degenerate (A == B); nothing in the
// pipeline forbids it.
type Line struct {
	A Point
	B Point
}

type LineList []Line

// Rect is an axis-aligned region given by two opposite corners. The corners are
// stored as given; use Min and Max for the normalised bounds.
type Rect struct {
	Corners Line
}

// Polygon is the shape of a future Voronoi cell. Nothing fills it in yet.
type Polygon struct {
	Lines []Line
}

// Voronoi is the result of a pipeline run. Polygons is always empty; Lines
// holds the pruned edge skeleton.
type Voronoi struct {
	Polygons []Polygon
	Lines    LineList
}
