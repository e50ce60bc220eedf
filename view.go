// SPDX-License-Identifier: EPL-2.0

package ampviz

import "github.com/ampviz/ampviz/render"

// View is the retained geometry of a container. Exactly one family is
// populated, matching the container's Kind: Rects for KindBars,
// PathData for the path kinds, Glyphs for KindGlyphs.
//
// The View is rebuilt during declarative render passes and mutated in
// place by the imperative Handle; its slices keep their backing arrays
// across updates, so a renderer that holds the View observes imperative
// changes without any new primitives appearing. Treat the contents as
// read-only and read them from the same event loop that drives the
// updates.
type View struct {
	Kind     Kind
	Rects    []render.Rect
	PathData string
	Glyphs   render.GlyphRow
}

// View returns the container's retained geometry. The pointer stays
// valid for the container's lifetime.
func (w *Waveform) View() *View {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	return &w.view
}

// rebuildViewLocked refreshes the retained geometry for the current
// width, visibility, and source.
func (w *Waveform) rebuildViewLocked() {
	w.view.Kind = w.opts.Kind

	if !w.contentVisibleLocked() || w.width <= 0 {
		w.reduced = nil
		w.clearGeometryLocked()
		return
	}

	w.reduced = w.opts.Cache.Reduced(w.segmentCountLocked(), w.src)
	w.buildGeometryLocked()
}

// buildGeometryLocked lays out w.reduced into the retained view,
// reusing the existing backing arrays.
func (w *Waveform) buildGeometryLocked() {
	switch w.opts.Kind {
	case KindBarPath:
		w.view.PathData = render.BarPath(w.reduced, w.opts.Bar)
		w.view.Rects = w.view.Rects[:0]
		w.view.Glyphs.Weight = 0
		w.view.Glyphs.Levels = w.view.Glyphs.Levels[:0]
	case KindLinePath:
		w.view.PathData = render.LinePath(w.reduced, w.opts.Line)
		w.view.Rects = w.view.Rects[:0]
		w.view.Glyphs.Weight = 0
		w.view.Glyphs.Levels = w.view.Glyphs.Levels[:0]
	case KindGlyphs:
		// Thickness was validated at construction; the error cannot
		// recur here.
		row, _ := render.GlyphsInto(w.view.Glyphs.Levels, w.reduced, w.opts.Glyph)
		w.view.Glyphs = row
		w.view.Rects = w.view.Rects[:0]
		w.view.PathData = ""
	default:
		w.view.Rects = render.BarsInto(w.view.Rects, w.reduced, w.opts.Bar)
		w.view.PathData = ""
		w.view.Glyphs.Weight = 0
		w.view.Glyphs.Levels = w.view.Glyphs.Levels[:0]
	}
}

// clearGeometryLocked empties the view while keeping its allocations.
func (w *Waveform) clearGeometryLocked() {
	w.view.Rects = w.view.Rects[:0]
	w.view.PathData = ""
	w.view.Glyphs.Weight = 0
	w.view.Glyphs.Levels = w.view.Glyphs.Levels[:0]
}
