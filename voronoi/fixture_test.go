package voronoi

import (
	"embed"
	"log"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// Test fixtures are SVG files in fixtures/, loaded by name sans extension.
// Every <line> element becomes a Line, in document order. Coordinates must be
// integers. Anything unexpected is fatal.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) LineList {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	lineEls := rootEl.FindAll("line")
	if len(lineEls) == 0 {
		log.Fatalf("No lines found in fixture %q", name)
	}

	lines := make(LineList, 0, len(lineEls))
	for _, lineEl := range lineEls {
		lines = append(lines, NewLineFromCoords(
			fixtureCoord(lineEl, "x1"),
			fixtureCoord(lineEl, "y1"),
			fixtureCoord(lineEl, "x2"),
			fixtureCoord(lineEl, "y2"),
		))
	}
	return lines
}

func fixtureCoord(el *svgparser.Element, attr string) Coord {
	s, ok := el.Attributes[attr]
	if !ok {
		log.Fatalf("Line is missing attribute %q", attr)
	}
	v, err := strconv.ParseInt(s, 10, 16)
	if err != nil {
		log.Fatalf("Invalid %s value %q: %v", attr, s, err)
	}
	return Coord(v)
}

// scriptedSource replays values in order, wrapping around at the end.
type scriptedSource struct {
	values []int64
	next   int
}

func newScriptedSource(values ...int64) *scriptedSource {
	return &scriptedSource{values: values}
}

func (s *scriptedSource) Int63() int64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// Raw values for the triangle (0,0), (8,0), (0,8) under the log sampler.
func trianglePoints() *scriptedSource {
	return newScriptedSource(1, 1, 256, 1, 1, 256)
}
