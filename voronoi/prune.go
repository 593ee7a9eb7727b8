package voronoi

import (
	"context"
	"log/slog"
	"sort"
)

// Pruner greedily thins a set of lines. Lines are visited longest first; a line
// survives only if it collides with none of the lines after it in that order.
type Pruner struct {
	// Collides defaults to LegacyCollides when nil.
	Collides Predicate

	// Workers bounds the fan-out of the collision scan. 0 means GOMAXPROCS.
	Workers int
}

func NewPruner(collides Predicate, workers int) *Pruner {
	return &Pruner{Collides: collides, Workers: workers}
}

// SortByLengthDesc sorts lines longest first. The sort is stable, so lines of
// equal length keep their input order and repeated runs agree.
func SortByLengthDesc(lines LineList) {
	lengths := make(map[Line]int, len(lines))
	for _, line := range lines {
		if _, ok := lengths[line]; !ok {
			lengths[line] = line.Length()
		}
	}
	sort.SliceStable(lines, func(i, j int) bool {
		return lengths[lines[i]] > lengths[lines[j]]
	})
}

// Prune returns the kept lines in descending length order. The input slice is
// not modified. Each scan over the later lines is independent, so the scans are
// spread over the workers; the result is the same as a sequential pass.
func (p *Pruner) Prune(lines LineList) LineList {
	collides := p.Collides
	if collides == nil {
		collides = LegacyCollides
	}

	sorted := make(LineList, len(lines))
	copy(sorted, lines)
	SortByLengthDesc(sorted)

	keep := make([]bool, len(sorted))
	parallelFor(len(sorted), p.Workers, func(i int) {
		keep[i] = true
		for j := i + 1; j < len(sorted); j++ {
			if collides(sorted[i], sorted[j]) {
				keep[i] = false
				return
			}
		}
	})

	logger := Logger()
	debug := logger.Enabled(context.Background(), slog.LevelDebug)
	pruned := make(LineList, 0, len(sorted))
	for i, line := range sorted {
		if debug {
			logger.Debug("prune", "line", line.DbgName(keep[i]), "coords", line.String(), "length", line.Length(), "keep", keep[i])
		}
		if keep[i] {
			pruned = append(pruned, line)
		}
	}
	return pruned
}
