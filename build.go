package ampviz

import (
	"math"

	"github.com/ampviz/ampviz/render"
	"github.com/ampviz/ampviz/wave"
)

// SegmentsForWidth returns how many segments of the given horizontal
// pitch fit into width pixels: floor(width/step), with a minimum of 1
// whenever width is positive and 0 otherwise. A pitch below 1 counts as
// 1 to keep the result finite.
func SegmentsForWidth(width, step float64) int {
	if width <= 0 {
		return 0
	}

	if step < 1 {
		step = 1
	}

	count := int(math.Floor(width / step))
	if count < 1 {
		count = 1
	}

	return count
}

// BuildBars is a high-level convenience for one-shot static rendering:
// it reduces src to the segment count that fits width and lays the
// result out as bar rectangles.
//
// It bypasses the reduction cache and the container lifecycle entirely.
// For live views that resize, animate progress, or respond to pointer
// input, construct a Waveform instead.
func BuildBars(src *wave.Sequence, width float64, opts render.BarOptions) []render.Rect {
	count := SegmentsForWidth(width, opts.Width+opts.Gap)
	return render.Bars(wave.Reduce(count, src), opts)
}

// BuildBarPath is BuildBars emitting a single combined outline path.
func BuildBarPath(src *wave.Sequence, width float64, opts render.BarOptions) string {
	count := SegmentsForWidth(width, opts.Width+opts.Gap)
	return render.BarPath(wave.Reduce(count, src), opts)
}

// BuildLinePath reduces src for the given width and draws the mirrored
// line silhouette.
func BuildLinePath(src *wave.Sequence, width float64, opts render.LineOptions) string {
	count := SegmentsForWidth(width, opts.Width+opts.Gap)
	return render.LinePath(wave.Reduce(count, src), opts)
}
