package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ampviz/ampviz/render"
)

func TestGlyphs(t *testing.T) {
	t.Parallel()

	row, err := render.Glyphs([]float64{0, 0.5, 1}, render.GlyphOptions{Thickness: 1})
	require.NoError(t, err)

	assert.Equal(t, 1000, row.Weight)
	assert.Equal(t, []int{0, 50, 100}, row.Levels)
}

func TestGlyphsWeightMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		thickness float64
		want      int
		delta     float64
	}{
		{name: "minimum thickness", thickness: 0.04, want: 1},
		{name: "maximum thickness", thickness: 1.0, want: 1000},
		{name: "midpoint thickness", thickness: 0.52, want: 501, delta: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			row, err := render.Glyphs(nil, render.GlyphOptions{Thickness: tt.thickness})
			require.NoError(t, err)

			if tt.delta > 0 {
				assert.InDelta(t, tt.want, row.Weight, tt.delta)
			} else {
				assert.Equal(t, tt.want, row.Weight)
			}
		})
	}
}

func TestGlyphsThicknessRange(t *testing.T) {
	t.Parallel()

	for _, thickness := range []float64{0, 0.039, -1, 1.001, 2} {
		_, err := render.Glyphs([]float64{0.5}, render.GlyphOptions{Thickness: thickness})
		assert.ErrorIs(t, err, render.ErrThicknessRange, "thickness %v", thickness)
	}
}

func TestGlyphsEmptyInput(t *testing.T) {
	t.Parallel()

	row, err := render.Glyphs(nil, render.DefaultGlyphOptions())
	require.NoError(t, err)
	assert.Empty(t, row.Levels)
}

func TestGlyphsClampsAmplitude(t *testing.T) {
	t.Parallel()

	row, err := render.Glyphs([]float64{-0.5, 1.5}, render.DefaultGlyphOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 100}, row.Levels)
}
