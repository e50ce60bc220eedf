// SPDX-License-Identifier: EPL-2.0

package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ampviz/ampviz/render"
)

func TestLinePathJagged(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		reduced []float64
		opts    render.LineOptions
		want    string
	}{
		{
			name:    "empty input",
			reduced: nil,
			opts:    render.DefaultLineOptions(),
			want:    "",
		},
		{
			name:    "single anchor degenerates to its bar",
			reduced: []float64{0.5},
			opts:    render.LineOptions{Width: 4, Gap: 1},
			want:    "M0 25 L4 25 L4 75 L0 75 Z",
		},
		{
			name:    "two anchors stay straight even when smoothing is on",
			reduced: []float64{0.5, 1},
			opts:    render.LineOptions{Width: 4, Gap: 1, Smooth: true, Curvature: 0.8},
			want:    "M2 25 L7 0 L7 100 L2 75 Z",
		},
		{
			name:    "smoothing off draws a polyline",
			reduced: []float64{0.5, 1, 0.5},
			opts:    render.LineOptions{Width: 4, Gap: 1},
			want:    "M2 25 L7 0 L12 25 L12 75 L7 100 L2 75 Z",
		},
		{
			name:    "curvature at the threshold draws a polyline",
			reduced: []float64{0.5, 1, 0.5},
			opts:    render.LineOptions{Width: 4, Gap: 1, Smooth: true, Curvature: 0.05},
			want:    "M2 25 L7 0 L12 25 L12 75 L7 100 L2 75 Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := render.LinePath(tt.reduced, tt.opts)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLinePathSmooth(t *testing.T) {
	t.Parallel()

	// Curvature 1 gives tension 0.5. Anchors sit at the segment
	// centers x = 2, 7, 12 with clamped end tangents.
	got := render.LinePath([]float64{0, 1, 0}, render.LineOptions{
		Width:     4,
		Gap:       1,
		Smooth:    true,
		Curvature: 1,
	})

	want := "M2 49" +
		" C4.5 24.5 2 0 7 0" +
		" C12 0 9.5 24.5 12 49" +
		" L12 51" +
		" C9.5 75.5 12 100 7 100" +
		" C2 100 4.5 75.5 2 51" +
		" Z"

	assert.Equal(t, want, got)
}

func TestLinePathSmoothUsesCurves(t *testing.T) {
	t.Parallel()

	reduced := []float64{0.2, 0.9, 0.4, 0.7, 0.1}

	smooth := render.LinePath(reduced, render.LineOptions{
		Width: 4, Gap: 1, Smooth: true, Curvature: 0.5,
	})
	jagged := render.LinePath(reduced, render.LineOptions{
		Width: 4, Gap: 1, Smooth: false, Curvature: 0.5,
	})

	assert.Contains(t, smooth, "C")
	assert.NotContains(t, jagged, "C")

	// Both outlines are single closed subpaths.
	assert.Equal(t, 1, strings.Count(smooth, "M"))
	assert.Equal(t, 1, strings.Count(smooth, "Z"))
	assert.Equal(t, 1, strings.Count(jagged, "M"))
	assert.Equal(t, 1, strings.Count(jagged, "Z"))

	// The smooth pass emits one curve per edge on each side of the
	// silhouette.
	assert.Equal(t, 2*(len(reduced)-1), strings.Count(smooth, "C"))
}

func TestLinePathDeterministic(t *testing.T) {
	t.Parallel()

	reduced := []float64{0.3, 0.6, 0.2, 0.8}
	opts := render.LineOptions{Width: 6, Gap: 2, Smooth: true, Curvature: 0.7}

	assert.Equal(t,
		render.LinePath(reduced, opts),
		render.LinePath(reduced, opts),
		"equal inputs must produce identical output")
}

// BenchmarkLinePath measures smoothed silhouette assembly.
func BenchmarkLinePath(b *testing.B) {
	opts := render.DefaultLineOptions()
	reduced := make([]float64, 512)
	for i := range reduced {
		reduced[i] = float64(i%10) / 10.0
	}

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		_ = render.LinePath(reduced, opts)
	}
}
