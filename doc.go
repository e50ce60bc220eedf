// SPDX-License-Identifier: EPL-2.0

// Package ampviz renders audio amplitude data as waveform geometry.
//
// This package provides the container controller that turns a series of
// normalized amplitudes into retained, resizable, seekable waveform
// views. It is designed around one pipeline: reduce the series to the
// segment count that fits the measured width, build geometry from the
// reduced values, and retain that geometry so per-frame updates can
// mutate it in place.
//
// # Quick Start
//
// The simplest way to render a waveform is a one-shot build:
//
//	seq := wave.NewSequence(amplitudes)
//	rects := ampviz.BuildBars(seq, 640, render.DefaultBarOptions())
//
//	// rects is one rectangle per segment, ready to draw
//
// # Container Lifecycle
//
// For live views, construct a Waveform and feed it environment reports:
//
//	wf, err := ampviz.New(seq, ampviz.DefaultOptions())
//	if err != nil {
//	    panic(err)
//	}
//	defer wf.Close()
//
//	wf.SetVisible(true) // lazy gating opens on first visibility
//	wf.SetWidth(640)    // debounced; coalesces resize bursts
//
//	view := wf.View() // retained geometry for the renderer
//
// Width reports are debounced (~30ms) so resize bursts collapse into a
// single recomputation. Content stays suppressed until the container is
// first reported visible, unless lazy gating is disabled in Options.
//
// # Imperative Updates
//
// Animation-rate changes go through the Handle, which mutates the
// retained geometry without triggering declarative render passes:
//
//	h, err := wf.Handle()
//	if err != nil {
//	    panic(err)
//	}
//
//	h.SetProgress(0.5)        // rescales the progress gradient stops
//	h.SetDataPoints(nextSeq)  // rewrites bar geometry in place
//
// Repeated Handle calls never increment the container's render count
// and never fire subscribers; that is the contract that makes 60fps
// playback animation feasible.
//
// # Progress Overlay
//
// EnableProgress declares a played/unplayed overlay. The geometry fill
// switches to a gradient referenced by the container's correlation id,
// and SetProgress drives the played fraction:
//
//	overlay := wf.EnableProgress(ampviz.ProgressOptions{
//	    Played:   "#4f46e5",
//	    Unplayed: "#c7d2fe",
//	})
//
//	go ampviz.DriveProgress(ctx, h, position, 0)
//
// # Interaction
//
// Pointer reports translate to normalized positions in [0, 1] of the
// rendered width and emit click and drag callbacks:
//
//	wf, _ := ampviz.New(seq, ampviz.Options{
//	    OnClick: func(pos float64) { player.SeekTo(pos) },
//	})
//
// # Subpackages
//
// The pipeline stages are usable on their own:
//   - wave: amplitude sequences, the segment reducer, the reduction cache
//   - render: pure geometry builders (bars, paths, glyphs, gradients)
//   - svg: SVG document assembly for the rendered geometry
//   - tui: a terminal renderer driving a container from a TUI event loop
package ampviz
