// SPDX-License-Identifier: EPL-2.0

package render

import "github.com/ampviz/ampviz/utils"

const (
	// Vertical geometry lives in a 100 unit tall coordinate space with
	// the midline at 50. A full-amplitude segment spans all 100 units.
	midline    = 50.0
	halfExtent = 50.0

	// minHalfHeight keeps silent segments visible as a sliver.
	minHalfHeight = 1.0

	// maxRadius is the soft cap on corner rounding.
	maxRadius = 5.0
)

// BarOptions configure the bar and bar-outline builders.
//
// Width and Gap are horizontal pixel sizes; Radius rounds the bar
// corners. Out-of-range values are clamped, never rejected: Width floors
// at 1, Gap at 0, and Radius is capped at 5 and further limited per bar
// so a corner never exceeds half the bar width or the bar's half height.
type BarOptions struct {
	Width  float64
	Gap    float64
	Radius float64
}

// DefaultBarOptions returns the standard bar geometry.
func DefaultBarOptions() BarOptions {
	return BarOptions{
		Width:  4,
		Gap:    1,
		Radius: 2,
	}
}

func normalizeBar(o BarOptions) BarOptions {
	if o.Width <= 0 {
		o.Width = 1
	}

	if o.Gap < 0 {
		o.Gap = 0
	}

	o.Radius = utils.Clamp(o.Radius, 0, maxRadius)

	return o
}

// LineOptions configure the line silhouette builder.
//
// Width and Gap define the horizontal pitch of the underlying segments;
// the silhouette anchors each amplitude at its segment center. Smooth
// selects spline smoothing, with Curvature in [0, 1] controlling how
// round the curve is. Low curvature (at or below 0.05) falls back to a
// straight polyline, as do silhouettes of fewer than three points.
type LineOptions struct {
	Width     float64
	Gap       float64
	Smooth    bool
	Curvature float64
}

// DefaultLineOptions returns a moderately smoothed silhouette.
func DefaultLineOptions() LineOptions {
	return LineOptions{
		Width:     4,
		Gap:       1,
		Smooth:    true,
		Curvature: 0.5,
	}
}

func normalizeLine(o LineOptions) LineOptions {
	if o.Width <= 0 {
		o.Width = 1
	}

	if o.Gap < 0 {
		o.Gap = 0
	}

	o.Curvature = utils.Clamp01(o.Curvature)

	return o
}

// GlyphOptions configure the glyph row builder. Thickness maps onto a
// variable font weight axis and must stay within [0.04, 1.0]; unlike the
// geometric inputs it is rejected, not clamped, because a clamped weight
// silently changes typeface rendering.
type GlyphOptions struct {
	Thickness float64
}

// DefaultGlyphOptions returns full-weight glyphs.
func DefaultGlyphOptions() GlyphOptions {
	return GlyphOptions{Thickness: 1}
}

// halfHeight converts a normalized amplitude to the bar's half height in
// vertical units, flooring at minHalfHeight so silence stays visible.
func halfHeight(p float64) float64 {
	hh := utils.Clamp01(p) * halfExtent
	if hh < minHalfHeight {
		hh = minHalfHeight
	}

	return hh
}
