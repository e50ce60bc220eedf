// SPDX-License-Identifier: EPL-2.0

// Package svg serializes waveform geometry to SVG markup.
//
// The package is a thin, allocation-conscious writer: it knows nothing
// about reduction or layout and simply emits the rectangles, path data
// and gradient stops it is handed. Markup is assembled with a
// strings.Builder and written in one call, so a failing writer never
// observes a partial document.
//
// # Documents
//
// Render emits a complete <svg> element from a Doc. The vertical axis
// is always the fixed 100-unit amplitude space with the midline at 50;
// preserveAspectRatio="none" stretches it to whatever box the host
// gives the element.
//
// # Waveform Containers
//
// RenderWaveform assembles a Doc straight from a live container: its
// retained geometry, its fill, and the progress gradient when an
// overlay is enabled. Call it from the event loop that drives the
// container so the snapshot is consistent.
//
// # Animation Styles
//
// Hosts that animate amplitude changes embed one shared stylesheet per
// document. EnsureAnimationStyles hands it out exactly once per
// process; later calls return the empty string.
package svg
