// SPDX-License-Identifier: EPL-2.0

package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ampviz/ampviz/render"
)

func TestBarPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		reduced []float64
		opts    render.BarOptions
		want    string
	}{
		{
			name:    "empty input",
			reduced: nil,
			opts:    render.DefaultBarOptions(),
			want:    "",
		},
		{
			name:    "single square bar",
			reduced: []float64{1},
			opts:    render.BarOptions{Width: 4, Gap: 1},
			want:    "M0 0 L4 0 L4 100 L0 100 Z",
		},
		{
			name:    "two square bars advance by width plus gap",
			reduced: []float64{1, 0.5},
			opts:    render.BarOptions{Width: 4, Gap: 1},
			want:    "M0 0 L4 0 L4 100 L0 100 Z M5 25 L9 25 L9 75 L5 75 Z",
		},
		{
			name:    "rounded corners",
			reduced: []float64{1},
			opts:    render.BarOptions{Width: 4, Gap: 1, Radius: 2},
			want: "M2 0 L2 0 A2 2 0 0 1 4 2 L4 98 A2 2 0 0 1 2 100" +
				" L2 100 A2 2 0 0 1 0 98 L0 2 A2 2 0 0 1 2 0 Z",
		},
		{
			name:    "radius shrinks for short bars",
			reduced: []float64{0},
			opts:    render.BarOptions{Width: 4, Gap: 1, Radius: 2},
			want: "M1 49 L3 49 A1 1 0 0 1 4 50 L4 50 A1 1 0 0 1 3 51" +
				" L1 51 A1 1 0 0 1 0 50 L0 50 A1 1 0 0 1 1 49 Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := render.BarPath(tt.reduced, tt.opts)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBarPathOneSubpathPerSegment(t *testing.T) {
	t.Parallel()

	reduced := make([]float64, 37)
	for i := range reduced {
		reduced[i] = float64(i%5) / 5.0
	}

	d := render.BarPath(reduced, render.DefaultBarOptions())

	assert.Equal(t, 37, strings.Count(d, "M"))
	assert.Equal(t, 37, strings.Count(d, "Z"))
}

// BenchmarkBarPath measures path assembly for a typical layout.
func BenchmarkBarPath(b *testing.B) {
	opts := render.DefaultBarOptions()
	reduced := make([]float64, 512)
	for i := range reduced {
		reduced[i] = float64(i%10) / 10.0
	}

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		_ = render.BarPath(reduced, opts)
	}
}
