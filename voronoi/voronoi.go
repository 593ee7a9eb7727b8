package voronoi

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Config describes a single pipeline run.
type Config struct {
	PointCount int

	// Bounds is carried through for samplers that honour it. The log sampler
	// ignores it.
	Bounds  Rect
	Sampler Sampler

	// Collides defaults to LegacyCollides.
	Collides Predicate

	// Workers bounds the fan-out of the quadratic stages. 0 means GOMAXPROCS.
	Workers int
}

// New runs the whole pipeline: sample, join every pair of points, join every
// pair of midpoints, prune. The cost is O(n^6) in PointCount, so keep it small.
//
// Precondition violations panic with a PipelineError; use cive.Generate for an
// error return instead.
func New(cfg Config) *Voronoi {
	if cfg.Sampler == nil {
		fatalf("no sampler configured")
	}
	logger := Logger()

	points := cfg.Sampler.Sample(cfg.PointCount)
	if len(points) != cfg.PointCount {
		fatalf("sampler returned %d points, wanted %d", len(points), cfg.PointCount)
	}
	logger.Info("sampled points", "count", len(points), "bounds", cfg.Bounds.String())

	lines := PairLines(points, cfg.Workers)
	logger.Info("built point lines", "count", len(lines))

	lines = MidpointLines(lines, cfg.Workers)
	logger.Info("built midpoint lines", "count", len(lines))

	lines = NewPruner(cfg.Collides, cfg.Workers).Prune(lines)
	logger.Info("pruned lines", "count", len(lines))

	return &Voronoi{Lines: lines}
}

// WriteLines prints one pruned line per row as "a.x a.y b.x b.y".
func (v *Voronoi) WriteLines(w io.Writer) error {
	return v.Lines.Write(w)
}

func (list LineList) Write(w io.Writer) error {
	for _, line := range list {
		if _, err := fmt.Fprintf(w, "%d %d %d %d\n", line.A.X, line.A.Y, line.B.X, line.B.Y); err != nil {
			return errors.Wrap(err, "writing lines")
		}
	}
	return nil
}
