// SPDX-License-Identifier: EPL-2.0

package ampviz

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ampviz/ampviz/render"
	"github.com/ampviz/ampviz/wave"
)

// Waveform is the container controller of one rendered waveform.
//
// It owns the measured width, the visibility gate, the interaction
// state, and the correlation id that ties child renderers to the shared
// progress gradient. Environment adapters feed it width and visibility
// reports plus pointer events; it runs the reduce-and-build pipeline and
// retains the resulting geometry in a View.
//
// State changes that arrive through the declarative surface (width,
// visibility, enabling the progress overlay) trigger a render pass:
// the view is rebuilt, the render counter increments, and subscribers
// run. The imperative Handle mutates the same retained view without any
// of that, which is what keeps per-frame animation off the declarative
// path.
//
// All methods are safe for concurrent use, though a typical UI drives a
// container from a single event loop.
type Waveform struct {
	mtx sync.Mutex

	opts       Options
	src        *wave.Sequence
	gradientID string

	width        float64
	pendingWidth float64
	debounce     *time.Timer

	visible bool
	closed  bool

	reduced []float64
	view    View
	overlay *Overlay
	handle  *Handle
	drag    dragState

	renderCount int
	subs        map[int]func()
	nextSubID   int
}

// New constructs a container for src with the given options. src may be
// nil; the container renders nothing until data arrives.
//
// Glyph thickness is the one option with a hard documented bound, so a
// glyph container with an out-of-range thickness fails here rather than
// producing clamped geometry later.
func New(src *wave.Sequence, opts Options) (*Waveform, error) {
	opts = normalizeOptions(opts)

	if opts.Kind == KindGlyphs {
		if _, err := render.Glyphs(nil, opts.Glyph); err != nil {
			return nil, err
		}
	}

	return &Waveform{
		opts:       opts,
		src:        src,
		gradientID: "wf-" + uuid.NewString(),
		subs:       make(map[int]func()),
	}, nil
}

// SetWidth reports a measured width in pixels. Reports inside the
// debounce window coalesce to the most recent value and apply as a
// single render pass; a container with a negative Debounce applies the
// width synchronously. Negative widths count as zero.
func (w *Waveform) SetWidth(px float64) {
	w.mtx.Lock()

	if w.closed {
		w.mtx.Unlock()
		return
	}

	if px < 0 {
		px = 0
	}
	w.pendingWidth = px

	if w.opts.Debounce < 0 {
		fns := w.applyPendingWidthLocked()
		w.mtx.Unlock()
		runAll(fns)
		return
	}

	if w.debounce == nil {
		w.debounce = time.AfterFunc(w.opts.Debounce, w.flushWidth)
	} else {
		w.debounce.Reset(w.opts.Debounce)
	}

	w.mtx.Unlock()
}

// SetVisible reports a visibility change. The first true report reveals
// lazily gated content; a later false report suppresses it again. With
// DisableLazy the report is recorded but content is unaffected.
func (w *Waveform) SetVisible(visible bool) {
	w.mtx.Lock()

	if w.closed || w.visible == visible {
		w.mtx.Unlock()
		return
	}

	w.visible = visible

	var fns []func()
	if !w.opts.DisableLazy {
		fns = w.renderLocked()
	}

	w.mtx.Unlock()
	runAll(fns)
}

// Subscribe registers fn to run after every declarative render pass.
// The returned function cancels the subscription. Imperative updates
// through the Handle never fire subscribers. Subscribing to a closed
// container registers nothing and returns a no-op cancel.
func (w *Waveform) Subscribe(fn func()) func() {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	if w.closed {
		return func() {}
	}

	id := w.nextSubID
	w.nextSubID++
	w.subs[id] = fn

	return func() {
		w.mtx.Lock()
		defer w.mtx.Unlock()

		delete(w.subs, id)
	}
}

// Close stops the debounce timer and rejects further handle operations.
// Closing twice is a no-op.
func (w *Waveform) Close() error {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	if w.closed {
		return nil
	}

	w.closed = true

	if w.debounce != nil {
		w.debounce.Stop()
		w.debounce = nil
	}

	w.subs = nil

	return nil
}

// Width returns the applied (post-debounce) width in pixels.
func (w *Waveform) Width() float64 {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	return w.width
}

// Visible returns the most recent visibility report.
func (w *Waveform) Visible() bool {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	return w.visible
}

// SegmentCount returns the segment count derived from the current
// width, zero while unmeasured.
func (w *Waveform) SegmentCount() int {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	return w.segmentCountLocked()
}

// RenderCount returns how many declarative render passes have run.
func (w *Waveform) RenderCount() int {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	return w.renderCount
}

// GradientID returns the container's correlation id. Child renderers use
// it to reference the shared progress gradient definition.
func (w *Waveform) GradientID() string {
	return w.gradientID
}

// Fill returns the paint reference for the geometry: the flat color, or
// a url(#id) gradient reference once a progress overlay is enabled.
func (w *Waveform) Fill() string {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	return w.fillLocked()
}

// Source returns the current amplitude sequence.
func (w *Waveform) Source() *wave.Sequence {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	return w.src
}

// Reduced returns the reduced values behind the current view. The slice
// may be shared with the reduction cache and must be treated as
// read-only.
func (w *Waveform) Reduced() []float64 {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	return w.reduced
}

// Overlay returns the progress overlay, or nil when none is enabled.
func (w *Waveform) Overlay() *Overlay {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	return w.overlay
}

// Kind returns the active geometry family.
func (w *Waveform) Kind() Kind {
	return w.opts.Kind
}

// flushWidth applies the most recent debounced width report.
func (w *Waveform) flushWidth() {
	w.mtx.Lock()

	if w.closed {
		w.mtx.Unlock()
		return
	}

	fns := w.applyPendingWidthLocked()
	w.mtx.Unlock()
	runAll(fns)
}

// applyPendingWidthLocked commits the pending width. An unchanged width
// does not trigger a pass.
func (w *Waveform) applyPendingWidthLocked() []func() {
	if w.pendingWidth == w.width {
		return nil
	}

	w.width = w.pendingWidth

	return w.renderLocked()
}

// renderLocked runs one declarative render pass and returns the
// subscribers to notify once the lock is released.
func (w *Waveform) renderLocked() []func() {
	w.rebuildViewLocked()
	w.renderCount++

	return w.snapshotSubsLocked()
}

func (w *Waveform) segmentCountLocked() int {
	return SegmentsForWidth(w.width, w.opts.step())
}

func (w *Waveform) contentVisibleLocked() bool {
	return w.opts.DisableLazy || w.visible
}

func (w *Waveform) fillLocked() string {
	if w.overlay != nil {
		return "url(#" + w.gradientID + ")"
	}

	return w.opts.Color
}

func (w *Waveform) snapshotSubsLocked() []func() {
	if len(w.subs) == 0 {
		return nil
	}

	fns := make([]func(), 0, len(w.subs))
	for _, fn := range w.subs {
		fns = append(fns, fn)
	}

	return fns
}

func runAll(fns []func()) {
	for _, fn := range fns {
		fn()
	}
}
