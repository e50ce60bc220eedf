// SPDX-License-Identifier: EPL-2.0

// Package render converts reduced amplitudes into drawable geometry.
//
// Every builder is a pure function over a reduced value slice (see the
// wave package): equal inputs always produce equal geometry, and empty
// inputs produce empty geometry. The builders hold no state of their
// own, which lets callers re-run them freely and cache or diff their
// output.
//
// # Coordinate Space
//
// Horizontal positions are pixels: segment i starts at i*(Width+Gap).
// Vertical positions live in a 100 unit tall space with the midline at
// 50, so geometry scales to any display height. A normalized amplitude p
// maps to a half height of max(1, p*50) above and below the midline; the
// floor of 1 keeps silent segments visible.
//
// # Builders
//
// Bars produces one rectangle per segment:
//
//	rects := render.Bars(reduced, render.DefaultBarOptions())
//
// BarPath produces the same bars as a single path primitive, and
// LinePath produces a closed silhouette through the segment centers,
// optionally smoothed by a cardinal spline:
//
//	d := render.LinePath(reduced, render.LineOptions{
//	    Width: 4, Gap: 1, Smooth: true, Curvature: 0.8,
//	})
//
// Glyphs maps amplitudes onto discrete glyph levels plus a variable font
// weight for text based rendering.
//
// # Progress Gradients
//
// ProgressStops derives the stop list of a played/unplayed gradient from
// a playback fraction. The *Into variants of the builders reuse a
// caller-held slice, so a live view can update geometry without
// allocating per frame.
//
// # Input Handling
//
// Numeric options are clamped rather than rejected: widths floor at 1,
// gaps at 0, corner radii cap at 5 and shrink per bar so they never
// exceed half the bar's width or height. The one exception is glyph
// thickness, which has the hard range [0.04, 1.0] and returns
// ErrThicknessRange outside it.
package render
