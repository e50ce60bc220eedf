// SPDX-License-Identifier: EPL-2.0

package render

import (
	"strconv"
	"strings"
)

// Path accumulates SVG path data commands with compact coordinates.
//
// Coordinates are written with at most three decimal places and no
// trailing zeros, keeping the emitted markup small and stable.
type Path struct {
	b strings.Builder
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.command('M')
	p.coords(x, y)
}

// LineTo draws a straight line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.command('L')
	p.coords(x, y)
}

// CurveTo draws a cubic Bézier to (x, y) through the control points
// (c1x, c1y) and (c2x, c2y).
func (p *Path) CurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.command('C')
	p.coords(c1x, c1y)
	p.b.WriteByte(' ')
	p.coords(c2x, c2y)
	p.b.WriteByte(' ')
	p.coords(x, y)
}

// ArcTo draws a circular corner arc of the given radii to (x, y). sweep
// selects the clockwise direction in the y-down coordinate space.
func (p *Path) ArcTo(rx, ry float64, sweep bool, x, y float64) {
	p.command('A')
	p.coords(rx, ry)

	if sweep {
		p.b.WriteString(" 0 0 1 ")
	} else {
		p.b.WriteString(" 0 0 0 ")
	}

	p.coords(x, y)
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.command('Z')
}

// String returns the accumulated path data.
func (p *Path) String() string {
	return p.b.String()
}

func (p *Path) command(c byte) {
	if p.b.Len() > 0 {
		p.b.WriteByte(' ')
	}

	p.b.WriteByte(c)
}

func (p *Path) coords(x, y float64) {
	p.b.WriteString(coord(x))
	p.b.WriteByte(' ')
	p.b.WriteString(coord(y))
}

// coord formats v with up to three decimals, trimming trailing zeros.
func coord(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")

	if s == "-0" {
		s = "0"
	}

	return s
}
