// SPDX-License-Identifier: EPL-2.0

package render

import "github.com/ampviz/ampviz/utils"

// Rect is one bar of the waveform.
//
// X and W are horizontal pixels. Y and H are vertical units of the 100
// unit tall coordinate space, so a full-amplitude bar has Y=0 and H=100.
// R is the corner radius, already clamped for this bar.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
	R float64
}

// Bars converts reduced amplitudes to a list of bar rectangles, one per
// value, centered on the midline. An empty input yields no rectangles.
func Bars(reduced []float64, opts BarOptions) []Rect {
	return BarsInto(nil, reduced, opts)
}

// BarsInto is Bars writing into dst's backing array. It appends from
// dst[:0] and returns the result, so a caller that keeps the returned
// slice reuses its allocation on the next call with an equal or smaller
// segment count.
func BarsInto(dst []Rect, reduced []float64, opts BarOptions) []Rect {
	opts = normalizeBar(opts)
	dst = dst[:0]

	step := opts.Width + opts.Gap
	for i, p := range reduced {
		hh := halfHeight(p)

		dst = append(dst, Rect{
			X: float64(i) * step,
			Y: midline - hh,
			W: opts.Width,
			H: 2 * hh,
			R: utils.Min3(opts.Radius, opts.Width/2, hh),
		})
	}

	return dst
}
