package render

import (
	"fmt"

	"github.com/ampviz/ampviz/utils"
)

const (
	// Hard bounds of the glyph thickness input.
	thicknessMin = 0.04
	thicknessMax = 1.0

	// weightAxisMax is the top of the variable font weight axis.
	weightAxisMax = 1000

	// levelMax is the number of discrete glyph heights above zero.
	levelMax = 100
)

// GlyphRow maps reduced amplitudes onto glyph levels for font based
// rendering. Weight is the variable font weight axis value shared by the
// whole row; Levels holds one glyph height in [0, 100] per segment.
type GlyphRow struct {
	Weight int
	Levels []int
}

// Glyphs converts reduced amplitudes to a glyph row.
//
// Thickness must lie within [0.04, 1.0]; values outside return
// ErrThicknessRange. An empty input yields a row with no levels.
func Glyphs(reduced []float64, opts GlyphOptions) (GlyphRow, error) {
	return GlyphsInto(nil, reduced, opts)
}

// GlyphsInto is Glyphs writing the levels into dst's backing array, so a
// caller that keeps the returned row reuses its allocation.
func GlyphsInto(dst []int, reduced []float64, opts GlyphOptions) (GlyphRow, error) {
	if opts.Thickness < thicknessMin || opts.Thickness > thicknessMax {
		return GlyphRow{}, fmt.Errorf("thickness %v outside [%v, %v]: %w",
			opts.Thickness, thicknessMin, thicknessMax, ErrThicknessRange)
	}

	normalized := (opts.Thickness - thicknessMin) / (thicknessMax - thicknessMin)

	levels := dst[:0]
	for _, p := range reduced {
		levels = append(levels, utils.Quantize(p, levelMax))
	}

	return GlyphRow{
		Weight: 1 + utils.Quantize(normalized, weightAxisMax-1),
		Levels: levels,
	}, nil
}
