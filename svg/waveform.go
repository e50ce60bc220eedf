// SPDX-License-Identifier: EPL-2.0

package svg

import (
	"fmt"
	"io"

	"github.com/ampviz/ampviz"
)

// DefaultClass is the class RenderWaveform puts on the root element so
// shared stylesheets can target waveform documents.
const DefaultClass = "ampviz"

// RenderWaveform serializes a container's current view. height is the
// emitted pixel height; pass 0 to let the element scale to its host.
//
// Glyph views are text geometry and have no SVG form; rendering one
// returns ErrNoGeometry.
func RenderWaveform(w io.Writer, wf *ampviz.Waveform, height float64) error {
	view := wf.View()

	if view.Kind == ampviz.KindGlyphs {
		return fmt.Errorf("kind %s: %w", view.Kind, ErrNoGeometry)
	}

	doc := Doc{
		Width:    wf.Width(),
		Height:   height,
		Class:    DefaultClass,
		Fill:     wf.Fill(),
		Rects:    view.Rects,
		PathData: view.PathData,
	}

	if o := wf.Overlay(); o != nil {
		doc.Gradient = &Gradient{ID: o.ID(), Stops: o.Stops()}
	}

	return Render(w, doc)
}
