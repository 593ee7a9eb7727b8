package voronoi

// PairCount is the number of unordered pairs of distinct indices among n items.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// Index of the first pair (i, i+1) in the row-major listing of all pairs.
func pairRowOffset(i, n int) int {
	return i*n - i*(i+1)/2
}

// PairLines joins every unordered pair of distinct indices (i < j) once. The
// output is ordered by (i, j), which is deterministic but nothing downstream
// relies on it. Two equal points still produce a (degenerate) line.
func PairLines(points []Point, workers int) LineList {
	n := len(points)
	lines := make(LineList, PairCount(n))
	parallelFor(n, workers, func(i int) {
		offset := pairRowOffset(i, n)
		for j := i + 1; j < n; j++ {
			lines[offset+j-i-1] = Line{A: points[i], B: points[j]}
		}
	})
	return lines
}

// MidPoints returns the midpoint of every line, in order.
func MidPoints(lines LineList) []Point {
	mids := make([]Point, len(lines))
	for i, line := range lines {
		mids[i] = line.MidPoint()
	}
	return mids
}

// MidpointLines joins the midpoints of every unordered pair of lines.
func MidpointLines(lines LineList, workers int) LineList {
	return PairLines(MidPoints(lines), workers)
}
