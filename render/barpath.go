// SPDX-License-Identifier: EPL-2.0

package render

import "github.com/ampviz/ampviz/utils"

// BarPath converts reduced amplitudes to a single SVG path outlining one
// rounded rectangle per value. The result draws identically to the Bars
// rectangle list but lives in one primitive, which keeps the node count
// flat for large segment counts. An empty input yields an empty path.
func BarPath(reduced []float64, opts BarOptions) string {
	opts = normalizeBar(opts)

	var p Path

	step := opts.Width + opts.Gap
	for i, v := range reduced {
		hh := halfHeight(v)
		r := utils.Min3(opts.Radius, opts.Width/2, hh)

		barSubpath(&p, float64(i)*step, midline-hh, opts.Width, 2*hh, r)
	}

	return p.String()
}

// barSubpath appends one rounded rectangle subpath, traced clockwise
// from the top-left corner.
func barSubpath(p *Path, x, y, w, h, r float64) {
	if r <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x+w, y)
		p.LineTo(x+w, y+h)
		p.LineTo(x, y+h)
		p.Close()
		return
	}

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.ArcTo(r, r, true, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.ArcTo(r, r, true, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.ArcTo(r, r, true, x, y+h-r)
	p.LineTo(x, y+r)
	p.ArcTo(r, r, true, x+r, y)
	p.Close()
}
