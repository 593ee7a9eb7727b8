package voronoi

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the drawing, in pixels
const previewPadding = 20

// DrawPreview rasterises the lines to a PNG at path and then prints it to w
// with the iTerm inline image protocol. This is a debugging aid, not an output
// format. Each coordinate unit becomes scale pixels.
func DrawPreview(lines LineList, scale float64, path string, w io.Writer) error {
	if len(lines) == 0 {
		return errors.New("nothing to draw")
	}
	c := renderLines(lines, scale)
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving preview to %s", path)
	}
	return showPreview(path, w)
}

func showPreview(path string, w io.Writer) error {
	return errors.Wrap(imgcat.CatFile(path, w), "showing preview")
}

func renderLines(lines LineList, scale float64) *gg.Context {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, line := range lines {
		for _, p := range []Point{line.A, line.B} {
			minX = math.Min(minX, float64(p.X))
			minY = math.Min(minY, float64(p.Y))
			maxX = math.Max(maxX, float64(p.X))
			maxY = math.Max(maxY, float64(p.Y))
		}
	}

	width := int(scale*(maxX-minX)) + previewPadding*2
	height := int(scale*(maxY-minY)) + previewPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(previewPadding, previewPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// Longest lines come first, so fade from cyan to green along the list
	for i, line := range lines {
		t := float64(i) / float64(len(lines))
		c.SetRGB(0, 1, 1-t)
		c.SetLineWidth(2)
		c.MoveTo(float64(line.A.X), float64(line.A.Y))
		c.LineTo(float64(line.B.X), float64(line.B.Y))
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for _, line := range lines {
		c.DrawCircle(float64(line.A.X), float64(line.A.Y), 3/scale)
		c.DrawCircle(float64(line.B.X), float64(line.B.Y), 3/scale)
		c.Fill()
	}
	return c
}
