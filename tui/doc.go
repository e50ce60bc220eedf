// SPDX-License-Identifier: EPL-2.0

// Package tui renders a waveform container as a Bubble Tea component.
//
// The component owns one container configured for cell-sized bars, so a
// terminal column maps to one segment. It translates the Bubble Tea
// message stream into the container's environment reports: window sizes
// become width reports, mouse events become pointer events, and an
// optional position source drives playback progress on every tick.
//
// View draws the reduced amplitudes as block-character columns over a
// configurable number of rows, with the played region left of the
// progress boundary styled in its own color.
package tui
