package voronoi

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Points whose X coordinate is their index, so lines can be traced back to the
// index pair that produced them.
func indexedPoints(n int) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = NewPoint(Coord(i), Coord(-i))
	}
	return points
}

func TestPairCount(t *testing.T) {
	expected := []int{0, 0, 1, 3, 6, 10, 15}
	for n, count := range expected {
		assert.Equal(t, count, PairCount(n))
	}
	assert.Equal(t, 0, PairCount(-1))
}

func TestPairLines(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 7, 70} {
		n := n
		t.Run(fmt.Sprintf("%d points", n), func(t *testing.T) {
			lines := PairLines(indexedPoints(n), 0)
			require.Len(t, lines, n*(n-1)/2)

			seen := make(map[[2]int]int)
			previous := [2]int{-1, -1}
			for _, line := range lines {
				pair := [2]int{int(line.A.X), int(line.B.X)}
				assert.Less(t, pair[0], pair[1], "never pairs an index with itself")
				seen[pair]++

				// Row-major (i, j) order
				assert.True(t, pair[0] > previous[0] || (pair[0] == previous[0] && pair[1] > previous[1]))
				previous = pair
			}
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					assert.Equal(t, 1, seen[[2]int{i, j}], "pair (%d, %d)", i, j)
				}
			}
		})
	}
}

func TestPairLines_DuplicatePoints(t *testing.T) {
	p := NewPoint(3, 3)
	lines := PairLines([]Point{p, p}, 1)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].IsDegenerate())
}

func TestPairLines_Parallel(t *testing.T) {
	points := NewUniformSampler(rand.NewSource(11), NewRectFromCoords(-100, -100, 100, 100)).Sample(150)
	assert.Equal(t, PairLines(points, 1), PairLines(points, 8))
}

func TestMidPoints(t *testing.T) {
	lines := LineList{
		NewLineFromCoords(0, 0, 4, 4),
		NewLineFromCoords(0, 0, 3, 3),
	}
	assert.Equal(t, []Point{{2, 2}, {1, 1}}, MidPoints(lines))
}

func TestMidpointLines(t *testing.T) {
	lines := PairLines([]Point{{0, 0}, {8, 0}, {0, 8}}, 1)
	require.Equal(t, LineList{
		NewLineFromCoords(0, 0, 8, 0),
		NewLineFromCoords(0, 0, 0, 8),
		NewLineFromCoords(8, 0, 0, 8),
	}, lines)

	mids := MidpointLines(lines, 1)
	assert.Equal(t, LineList{
		NewLineFromCoords(4, 0, 0, 4),
		NewLineFromCoords(4, 0, 4, 4),
		NewLineFromCoords(0, 4, 4, 4),
	}, mids)
}

func TestMidpointLines_Count(t *testing.T) {
	for m := 0; m < 12; m++ {
		lines := PairLines(indexedPoints(m), 1)
		assert.Len(t, MidpointLines(lines, 0), PairCount(len(lines)))
	}
}
