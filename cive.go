// Package cive approximates the edge skeleton of a Voronoi diagram by brute
// force.
//
// Random points are joined pairwise, the midpoints of those lines are joined
// pairwise again, and the resulting lines are thinned by a greedy,
// longest-first collision filter. The surviving lines are the result. No cells
// are assembled.
package cive

import "github.com/yeliknewo/cive/voronoi"

type Point = voronoi.Point
type Line = voronoi.Line
type LineList = voronoi.LineList
type Rect = voronoi.Rect
type Config = voronoi.Config

// Generate runs the pipeline described by cfg and returns the pruned lines,
// longest first.
//
// Bad input, such as a negative point count or a missing sampler, is reported
// as an error.
func Generate(cfg Config) (result LineList, err error) {
	defer func() {
		recoveredErr := voronoi.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return voronoi.New(cfg).Lines, nil
}
