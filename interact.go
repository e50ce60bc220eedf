package ampviz

import "github.com/ampviz/ampviz/utils"

// dragState tracks one pointer-down-to-pointer-up span.
type dragState struct {
	active bool // pointer is down
	moved  bool // the span became a drag
}

// PointerDown begins a potential drag session at pixel offset x from
// the container's left edge.
func (w *Waveform) PointerDown(x float64) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	if w.closed {
		return
	}

	w.drag = dragState{active: true}
}

// PointerMove continues a session. The first move promotes it to a drag
// and emits OnDragStart; every move emits OnDrag. Moves without a prior
// PointerDown are ignored.
func (w *Waveform) PointerMove(x float64) {
	w.mtx.Lock()

	if w.closed || !w.drag.active {
		w.mtx.Unlock()
		return
	}

	first := !w.drag.moved
	w.drag.moved = true

	pos := w.fractionLocked(x)
	onStart := w.opts.OnDragStart
	onDrag := w.opts.OnDrag
	w.mtx.Unlock()

	if first && onStart != nil {
		onStart(pos)
	}

	if onDrag != nil {
		onDrag(pos)
	}
}

// PointerUp ends a session: a tap that never moved emits OnClick, a
// drag emits OnDragEnd with the release position.
func (w *Waveform) PointerUp(x float64) {
	w.mtx.Lock()

	if w.closed || !w.drag.active {
		w.mtx.Unlock()
		return
	}

	moved := w.drag.moved
	w.drag = dragState{}

	pos := w.fractionLocked(x)
	onClick := w.opts.OnClick
	onEnd := w.opts.OnDragEnd
	w.mtx.Unlock()

	if moved {
		if onEnd != nil {
			onEnd(pos)
		}
		return
	}

	if onClick != nil {
		onClick(pos)
	}
}

// IsDragging reports whether a pointer session is currently active.
func (w *Waveform) IsDragging() bool {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	return w.drag.active
}

// fractionLocked converts a pixel offset to the normalized [0, 1]
// position within the rendered width. An unmeasured container reports 0.
func (w *Waveform) fractionLocked(x float64) float64 {
	if w.width <= 0 {
		return 0
	}

	return utils.Clamp01(x / w.width)
}
