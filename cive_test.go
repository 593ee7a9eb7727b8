package cive

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yeliknewo/cive/voronoi"
)

// Smoke test. The internals are already tested.
func TestGenerate(t *testing.T) {
	bounds := voronoi.NewRectFromCoords(-10, -10, 10, 10)
	lines, err := Generate(Config{
		PointCount: 4,
		Bounds:     bounds,
		Sampler:    voronoi.NewUniformSampler(rand.New(rand.NewSource(1)), bounds),
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, lines)
	for _, line := range lines {
		assert.True(t, bounds.Contains(line.A))
		assert.True(t, bounds.Contains(line.B))
	}
}

func TestGenerate_Errors(t *testing.T) {
	lines, err := Generate(Config{PointCount: 3})
	assert.EqualError(t, err, "no sampler configured")
	assert.Nil(t, lines)

	lines, err = Generate(Config{
		PointCount: -1,
		Sampler:    voronoi.NewLogSampler(rand.NewSource(1)),
	})
	assert.EqualError(t, err, "cannot sample a negative number of points: -1")
	assert.Nil(t, lines)
}
