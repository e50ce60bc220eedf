// SPDX-License-Identifier: EPL-2.0

package ampviz

import (
	"context"
	"time"

	"github.com/ampviz/ampviz/render"
)

const (
	// DefaultPlayedColor fills the region before the playback position.
	DefaultPlayedColor = "#4f46e5"

	// DefaultUnplayedColor fills the region after it.
	DefaultUnplayedColor = "#c7d2fe"
)

// ProgressOptions configure a played/unplayed progress overlay.
type ProgressOptions struct {
	// Played is the flat color of the played region. Ignored when Stops
	// is set.
	Played string

	// Unplayed is the color of the region past the playback position.
	Unplayed string

	// Stops optionally describes the played region as a multi-stop
	// gradient over the full [0, 1] span; it should end with a stop at
	// offset 1. The slice is aliased and treated as read-only.
	Stops []render.Stop
}

// Overlay is the retained progress gradient of one container. Its stop
// offsets are rescaled in place by Handle.SetProgress; renderers read
// the live stops each frame and reference them through the container's
// gradient id.
type Overlay struct {
	w        *Waveform
	base     []render.Stop
	unplayed render.Stop
	live     []render.Stop
	last     float64
}

// EnableProgress declares a progress overlay on the container. The
// geometry fill switches from the flat color to a gradient reference
// keyed by the container's correlation id, and Handle.SetProgress
// becomes available. This is a declarative change and triggers a render
// pass. Enabling again replaces the overlay's colors and resets its
// position to 0.
func (w *Waveform) EnableProgress(opts ProgressOptions) *Overlay {
	base := opts.Stops
	if len(base) == 0 {
		played := opts.Played
		if played == "" {
			played = DefaultPlayedColor
		}

		base = []render.Stop{
			render.NewStop(0, played),
			render.NewStop(1, played),
		}
	}

	unplayed := opts.Unplayed
	if unplayed == "" {
		unplayed = DefaultUnplayedColor
	}

	o := &Overlay{
		w:        w,
		base:     base,
		unplayed: render.NewStop(1, unplayed),
	}
	o.live = render.ProgressStopsInto(nil, o.base, 0, o.unplayed)

	w.mtx.Lock()

	if w.closed {
		w.mtx.Unlock()
		return o
	}

	w.overlay = o
	fns := w.renderLocked()
	w.mtx.Unlock()
	runAll(fns)

	return o
}

// ID returns the gradient definition id renderers reference.
func (o *Overlay) ID() string {
	return o.w.gradientID
}

// Progress returns the last applied playback fraction.
func (o *Overlay) Progress() float64 {
	o.w.mtx.Lock()
	defer o.w.mtx.Unlock()

	return o.last
}

// Stops returns the live gradient stops. The slice is rescaled in place
// by SetProgress; treat it as read-only and read it from the event loop
// that drives the updates.
func (o *Overlay) Stops() []render.Stop {
	o.w.mtx.Lock()
	defer o.w.mtx.Unlock()

	return o.live
}

// PositionFunc reports a playback position in [0, 1] and whether
// playback is still running.
type PositionFunc func() (progress float64, playing bool)

// DriveProgress polls position at the given interval and pushes each
// value through h.SetProgress, returning nil once position reports
// stopped (the final position is applied first) or the context's error
// once ctx is done. A non-positive interval polls at 60 ticks per
// second.
//
// This is the animation loop convenience; the core pipeline never
// schedules anything itself.
func DriveProgress(ctx context.Context, h *Handle, position PositionFunc, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Second / 60
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p, playing := position()

			if err := h.SetProgress(p); err != nil {
				return err
			}

			if !playing {
				return nil
			}
		}
	}
}
