// SPDX-License-Identifier: EPL-2.0

package render

import "github.com/ampviz/ampviz/utils"

// Stop is one gradient color stop. Offset is the position along the
// gradient vector in [0, 1]. Opacity of 0 renders fully transparent;
// NewStop sets it to 1.
type Stop struct {
	Offset  float64
	Color   string
	Opacity float64
}

// NewStop returns an opaque stop at the given offset.
func NewStop(offset float64, color string) Stop {
	return Stop{
		Offset:  utils.Clamp01(offset),
		Color:   color,
		Opacity: 1,
	}
}

// ProgressStops builds the live stop list for a playback position: every
// base stop's offset scaled by progress, then the unplayed stop pinned
// exactly at the played/unplayed boundary. The base stops describe the
// played region over the full [0, 1] span and should end at offset 1.
func ProgressStops(base []Stop, progress float64, unplayed Stop) []Stop {
	return ProgressStopsInto(nil, base, progress, unplayed)
}

// ProgressStopsInto is ProgressStops writing into dst's backing array,
// so a caller that keeps the returned slice updates its gradient without
// allocating per frame.
func ProgressStopsInto(dst []Stop, base []Stop, progress float64, unplayed Stop) []Stop {
	p := utils.Clamp01(progress)
	dst = dst[:0]

	for _, s := range base {
		s.Offset *= p
		dst = append(dst, s)
	}

	unplayed.Offset = p

	return append(dst, unplayed)
}
