// SPDX-License-Identifier: EPL-2.0

package ampviz

import (
	"math"

	"github.com/ampviz/ampviz/render"
	"github.com/ampviz/ampviz/utils"
	"github.com/ampviz/ampviz/wave"
)

// progressScale fixes progress precision at 4 decimal places, absorbing
// float noise from animation clocks.
const progressScale = 10000

// Handle is the imperative update channel of a container: a retained
// mode escape hatch that mutates already-committed geometry in place.
// None of its operations run a declarative render pass, increment the
// render counter, or fire subscribers; that guarantee is what makes
// per-frame progress and amplitude animation affordable.
type Handle struct {
	w *Waveform
}

// Handle returns the container's imperative update channel. It fails
// with ErrNotRendered before the first render pass completes, and with
// ErrClosed after Close; both are programming-contract violations at
// the call site, not runtime conditions to retry.
func (w *Waveform) Handle() (*Handle, error) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	if w.closed {
		return nil, ErrClosed
	}

	if w.renderCount == 0 {
		return nil, ErrNotRendered
	}

	if w.handle == nil {
		w.handle = &Handle{w: w}
	}

	return w.handle, nil
}

// SetProgress moves the playback position of the progress overlay.
//
// The value is clamped to [0, 1] and rounded to 4 decimal places; if
// the rounded value equals the last applied one the call is a no-op.
// Otherwise every base gradient stop's offset is rescaled by the new
// fraction and the terminal unplayed stop pins to the boundary, all
// written into the overlay's live stop slice in place.
func (h *Handle) SetProgress(v float64) error {
	w := h.w

	w.mtx.Lock()
	defer w.mtx.Unlock()

	if w.closed {
		return ErrClosed
	}

	if w.overlay == nil {
		return ErrNoProgressOverlay
	}

	v = math.Round(utils.Clamp01(v)*progressScale) / progressScale
	if v == w.overlay.last {
		return nil
	}

	w.overlay.last = v
	w.overlay.live = render.ProgressStopsInto(
		w.overlay.live, w.overlay.base, v, w.overlay.unplayed)

	return nil
}

// SetDataPoints replaces the amplitude sequence and rewrites the
// retained geometry for the current segment count, reusing the view's
// backing arrays so no primitives accumulate across calls. Safe to
// call at animation rate.
//
// While the content is suppressed or unmeasured only the sequence is
// recorded; the next render pass picks it up.
func (h *Handle) SetDataPoints(src *wave.Sequence) error {
	w := h.w

	w.mtx.Lock()
	defer w.mtx.Unlock()

	if w.closed {
		return ErrClosed
	}

	w.src = src

	if !w.contentVisibleLocked() || w.width <= 0 {
		return nil
	}

	w.reduced = w.opts.Cache.Reduced(w.segmentCountLocked(), src)
	w.buildGeometryLocked()

	return nil
}

// SegmentCount returns the segment count derived from the current
// width.
func (h *Handle) SegmentCount() int {
	return h.w.SegmentCount()
}

// BarCount returns the number of segments currently laid out in the
// retained geometry. Unlike SegmentCount it reflects what is actually
// rendered, so it reads 0 while content is suppressed.
func (h *Handle) BarCount() int {
	w := h.w

	w.mtx.Lock()
	defer w.mtx.Unlock()

	return len(w.reduced)
}
