package voronoi

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/yeliknewo/cive/dbg"
)

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func (l Line) String() string {
	return fmt.Sprintf("%v-%v", l.A, l.B)
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect%v", r.Corners)
}

// DbgName gives the line a readable name for debug logs, green if it survived
// pruning and red if it was dropped. Degenerate lines are cyan either way.
func (l Line) DbgName(kept bool) string {
	name := dbg.Name(l)
	if l.IsDegenerate() {
		return aurora.Cyan(name).String()
	}
	if kept {
		return aurora.Green(name).String()
	}
	return aurora.Red(name).String()
}
