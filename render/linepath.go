// SPDX-License-Identifier: EPL-2.0

package render

import "github.com/ampviz/ampviz/utils"

const (
	// Curvature at or below this threshold draws straight segments.
	jaggedCurvature = 0.05

	// Spline tension spans [0.2, 0.5] as curvature goes 0 to 1.
	baseTension  = 0.2
	tensionRange = 0.3
)

// LinePath converts reduced amplitudes to a closed SVG silhouette path
// mirrored around the midline. Each amplitude anchors the silhouette at
// its segment center.
//
// With Smooth set and Curvature above 0.05 the outline is a cardinal
// spline through the anchors; otherwise it is a straight polyline. A
// silhouette needs at least three anchors to curve, so shorter inputs
// always draw straight. An empty input yields an empty path.
func LinePath(reduced []float64, opts LineOptions) string {
	opts = normalizeLine(opts)

	n := len(reduced)
	if n == 0 {
		return ""
	}

	var p Path

	step := opts.Width + opts.Gap

	if n == 1 {
		// A single anchor has no line to draw; the silhouette
		// degenerates to the segment's own bar.
		hh := halfHeight(reduced[0])
		p.MoveTo(0, midline-hh)
		p.LineTo(opts.Width, midline-hh)
		p.LineTo(opts.Width, midline+hh)
		p.LineTo(0, midline+hh)
		p.Close()

		return p.String()
	}

	tops := make([]utils.Point, n)
	bottoms := make([]utils.Point, n)

	for i, v := range reduced {
		hh := halfHeight(v)
		x := float64(i)*step + opts.Width/2
		tops[i] = utils.Point{X: x, Y: midline - hh}
		bottoms[i] = utils.Point{X: x, Y: midline + hh}
	}

	smooth := opts.Smooth && opts.Curvature > jaggedCurvature && n >= 3

	p.MoveTo(tops[0].X, tops[0].Y)

	if smooth {
		tension := baseTension + opts.Curvature*tensionRange

		splineThrough(&p, tops, tension)
		p.LineTo(bottoms[n-1].X, bottoms[n-1].Y)

		// Trace the mirrored lower edge right to left so the outline
		// closes back at the first anchor.
		rev := make([]utils.Point, n)
		for i := range bottoms {
			rev[i] = bottoms[n-1-i]
		}
		splineThrough(&p, rev, tension)
	} else {
		for _, pt := range tops[1:] {
			p.LineTo(pt.X, pt.Y)
		}

		p.LineTo(bottoms[n-1].X, bottoms[n-1].Y)

		for i := n - 2; i >= 0; i-- {
			p.LineTo(bottoms[i].X, bottoms[i].Y)
		}
	}

	p.Close()

	return p.String()
}

// splineThrough appends cubic segments through pts, assuming the current
// point is pts[0]. Tangents at the open ends are clamped by repeating
// the terminal points.
func splineThrough(p *Path, pts []utils.Point, tension float64) {
	n := len(pts)

	for i := range n - 1 {
		p0 := pts[max(i-1, 0)]
		p3 := pts[min(i+2, n-1)]

		c1, c2 := utils.ControlPoints(p0, pts[i], pts[i+1], p3, tension)
		p.CurveTo(c1.X, c1.Y, c2.X, c2.Y, pts[i+1].X, pts[i+1].Y)
	}
}
