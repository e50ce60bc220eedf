// SPDX-License-Identifier: EPL-2.0

package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ampviz/ampviz/render"
)

func TestBars(t *testing.T) {
	t.Parallel()

	opts := render.BarOptions{Width: 4, Gap: 1, Radius: 2}
	rects := render.Bars([]float64{0, 0.5, 1}, opts)

	require.Len(t, rects, 3)

	// Silence keeps a 1 unit half height sliver; the radius shrinks to
	// match.
	assert.Equal(t, render.Rect{X: 0, Y: 49, W: 4, H: 2, R: 1}, rects[0])

	// Half amplitude spans half the vertical space.
	assert.Equal(t, render.Rect{X: 5, Y: 25, W: 4, H: 50, R: 2}, rects[1])

	// Full amplitude spans all of it.
	assert.Equal(t, render.Rect{X: 10, Y: 0, W: 4, H: 100, R: 2}, rects[2])
}

func TestBarsEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, render.Bars(nil, render.DefaultBarOptions()))
	assert.Empty(t, render.Bars([]float64{}, render.DefaultBarOptions()))
}

func TestBarsClampsOptions(t *testing.T) {
	t.Parallel()

	rects := render.Bars([]float64{1, 1}, render.BarOptions{
		Width:  -3,
		Gap:    -2,
		Radius: 9,
	})

	require.Len(t, rects, 2)

	// Width floors at 1, gap at 0, radius caps at 5 and then at half
	// the bar width.
	assert.Equal(t, render.Rect{X: 0, Y: 0, W: 1, H: 100, R: 0.5}, rects[0])
	assert.Equal(t, render.Rect{X: 1, Y: 0, W: 1, H: 100, R: 0.5}, rects[1])
}

func TestBarsClampsAmplitude(t *testing.T) {
	t.Parallel()

	rects := render.Bars([]float64{2.5, -1}, render.BarOptions{Width: 4})

	require.Len(t, rects, 2)
	assert.Equal(t, 100.0, rects[0].H, "over-range amplitude clamps to full height")
	assert.Equal(t, 2.0, rects[1].H, "under-range amplitude clamps to the sliver")
}

func TestBarsIntoReusesBacking(t *testing.T) {
	t.Parallel()

	opts := render.DefaultBarOptions()
	dst := render.Bars([]float64{0.1, 0.2, 0.3, 0.4}, opts)
	require.Len(t, dst, 4)

	out := render.BarsInto(dst, []float64{0.9, 0.8}, opts)

	require.Len(t, out, 2)
	assert.True(t, &out[0] == &dst[0], "expected the same backing array")
}

// TestBarsInto_ZeroAllocs verifies steady-state rebuilds allocate nothing
func TestBarsInto_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	opts := render.DefaultBarOptions()
	reduced := make([]float64, 256)
	for i := range reduced {
		reduced[i] = float64(i%10) / 10.0
	}

	dst := render.Bars(reduced, opts)

	allocs := testing.AllocsPerRun(100, func() {
		dst = render.BarsInto(dst, reduced, opts)
	})

	if allocs > 0 {
		t.Errorf("BarsInto allocated %v times, want 0", allocs)
	}
}

// BenchmarkBars measures the rectangle build for a typical layout.
func BenchmarkBars(b *testing.B) {
	opts := render.DefaultBarOptions()
	reduced := make([]float64, 512)
	for i := range reduced {
		reduced[i] = float64(i%10) / 10.0
	}

	var dst []render.Rect

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		dst = render.BarsInto(dst, reduced, opts)
	}
}
