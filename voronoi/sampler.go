package voronoi

import "math"

// MaxRedraws bounds how many times LogSampler redraws a non-positive raw value
// for a single coordinate before giving up.
const MaxRedraws = 64

// Source is the randomness consumed by the samplers. A math/rand Source
// satisfies it, which makes seeded runs reproducible. Negative values are
// accepted; samplers only use the bit pattern.
type Source interface {
	Int63() int64
}

// A Sampler produces exactly n points. Negative n is a precondition violation.
type Sampler interface {
	Sample(n int) []Point
}

// LogSampler draws each coordinate from the full Coord range and takes its
// base-2 logarithm, truncated toward zero.
//
// The logarithm is undefined for values <= 0, so those draws are thrown away
// and redrawn. Coordinates therefore always land in [0, 14]. No bounding
// rectangle is applied.
type LogSampler struct {
	Source Source
}

func NewLogSampler(source Source) *LogSampler {
	return &LogSampler{Source: source}
}

func (s *LogSampler) Sample(n int) []Point {
	checkSampleCount(n)
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		x := s.coord()
		y := s.coord()
		points = append(points, Point{X: x, Y: y})
	}
	return points
}

// Raw draw over the whole Coord range: the low 16 bits of the source.
func (s *LogSampler) raw() Coord {
	return Coord(uint16(s.Source.Int63()))
}

func (s *LogSampler) coord() Coord {
	for attempt := 0; attempt < MaxRedraws; attempt++ {
		raw := s.raw()
		if raw <= 0 {
			continue
		}
		return truncCoord(math.Log2(float64(raw)))
	}
	fatalf("no positive raw coordinate after %d draws", MaxRedraws)
	return 0
}

// UniformSampler draws each coordinate uniformly from the closed range of the
// bounding rectangle on that axis.
type UniformSampler struct {
	Source Source
	Bounds Rect
}

func NewUniformSampler(source Source, bounds Rect) *UniformSampler {
	return &UniformSampler{Source: source, Bounds: bounds}
}

func (s *UniformSampler) Sample(n int) []Point {
	checkSampleCount(n)
	lo, hi := s.Bounds.Min(), s.Bounds.Max()
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		x := s.between(lo.X, hi.X)
		y := s.between(lo.Y, hi.Y)
		points = append(points, Point{X: x, Y: y})
	}
	return points
}

// Uniform over [lo, hi]. The draw is reduced as unsigned so negative source
// values stay in range. The span is at most 65536, so the modulo bias is
// negligible.
func (s *UniformSampler) between(lo, hi Coord) Coord {
	span := uint64(int64(hi) - int64(lo) + 1)
	return Coord(int64(lo) + int64(uint64(s.Source.Int63())%span))
}

func checkSampleCount(n int) {
	if n < 0 {
		fatalf("cannot sample a negative number of points: %d", n)
	}
}
