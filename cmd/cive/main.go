package main

import (
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/yeliknewo/cive"
	"github.com/yeliknewo/cive/voronoi"
	"github.com/alecthomas/kingpin/v2"
)

// Set when --seed is given, so 0 can be chosen too.
var seedSet bool

var (
	app = kingpin.New("cive", "Approximate a Voronoi edge skeleton from random points.")

	count     = app.Flag("count", "Number of points to sample.").Short('n').Default("10").Int()
	x0        = app.Flag("x0", "Bounding rectangle, first corner X.").Default("-10").Int16()
	y0        = app.Flag("y0", "Bounding rectangle, first corner Y.").Default("-10").Int16()
	x1        = app.Flag("x1", "Bounding rectangle, second corner X.").Default("10").Int16()
	y1        = app.Flag("y1", "Bounding rectangle, second corner Y.").Default("10").Int16()
	seed      = app.Flag("seed", "Random seed. Unset uses the current time.").Short('s').IsSetByUser(&seedSet).Int64()
	samplerID = app.Flag("sampler", "Point sampler: log ignores the rectangle, uniform samples inside it.").Default("log").Enum("log", "uniform")
	predicate = app.Flag("predicate", "Collision test used when pruning.").Default("legacy").Enum("legacy", "intersect")
	workers   = app.Flag("workers", "Goroutines for the quadratic stages; 0 uses GOMAXPROCS.").Short('j').Default("0").Int()
	verbose   = app.Flag("verbose", "Log pipeline progress to stderr.").Short('v').Bool()
	preview   = app.Flag("preview", "Draw the result inline in the terminal (iTerm only).").Bool()
	scale     = app.Flag("preview-scale", "Pixels per coordinate unit in the preview.").Default("20").Float64()
)

// Prints a coarse Voronoi edge skeleton for a handful of random points, one
// line per row as "a.x a.y b.x b.y", longest first.
//
// With no flags it samples 10 points with the log sampler and prunes with the
// legacy collision test. Runtime grows with the sixth power of --count.
func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *verbose {
		voronoi.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	seedValue := resolveSeed(*seed, seedSet, time.Now)
	voronoi.Logger().Info("starting", "seed", seedValue, "count", *count)
	source := rand.New(rand.NewSource(seedValue))
	bounds := voronoi.NewRectFromCoords(*x0, *y0, *x1, *y1)

	lines, err := cive.Generate(cive.Config{
		PointCount: *count,
		Bounds:     bounds,
		Sampler:    newSampler(*samplerID, source, bounds),
		Collides:   newPredicate(*predicate),
		Workers:    *workers,
	})
	app.FatalIfError(err, "generating lines")

	app.FatalIfError(lines.Write(os.Stdout), "")

	if *preview && len(lines) > 0 {
		path := filepath.Join(os.TempDir(), "cive_preview.png")
		app.FatalIfError(voronoi.DrawPreview(lines, *scale, path, os.Stdout), "preview")
	}
}

func newSampler(id string, source voronoi.Source, bounds voronoi.Rect) voronoi.Sampler {
	if id == "uniform" {
		return voronoi.NewUniformSampler(source, bounds)
	}
	return voronoi.NewLogSampler(source)
}

func newPredicate(id string) voronoi.Predicate {
	if id == "intersect" {
		return voronoi.IntersectCollides
	}
	return voronoi.LegacyCollides
}

// The flag value wins whenever it was given, 0 included.
func resolveSeed(seed int64, set bool, now func() time.Time) int64 {
	if set {
		return seed
	}
	return now().UnixNano()
}
