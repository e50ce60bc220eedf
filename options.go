// SPDX-License-Identifier: EPL-2.0

package ampviz

import (
	"time"

	"github.com/ampviz/ampviz/render"
	"github.com/ampviz/ampviz/wave"
)

// Kind selects the geometry family a container renders.
type Kind int

const (
	// KindBars renders one rectangle per segment.
	KindBars Kind = iota
	// KindBarPath renders the bars as one combined outline path.
	KindBarPath
	// KindLinePath renders a mirrored silhouette through the segment
	// centers.
	KindLinePath
	// KindGlyphs renders font glyph levels.
	KindGlyphs
)

func (k Kind) String() string {
	switch k {
	case KindBars:
		return "bars"
	case KindBarPath:
		return "bar-path"
	case KindLinePath:
		return "line-path"
	case KindGlyphs:
		return "glyphs"
	default:
		return "unknown"
	}
}

const (
	// DefaultColor is the flat fill used without a progress overlay.
	DefaultColor = "#6366f1"

	// DefaultDebounce is the width coalescing window.
	DefaultDebounce = 30 * time.Millisecond
)

// Options configure a Waveform container. They are fixed at
// construction; a different declarative configuration means a new
// container.
//
// Zero-value sub-options take their package defaults: an all-zero Bar
// becomes DefaultBarOptions, an unset Line inherits the bar pitch, an
// unset glyph thickness becomes 1, an empty Color becomes DefaultColor
// and a zero Debounce becomes DefaultDebounce. A negative Debounce
// applies width changes synchronously, which tests and one-shot
// renderers rely on.
type Options struct {
	Kind Kind

	Bar   render.BarOptions
	Line  render.LineOptions
	Glyph render.GlyphOptions

	Color string

	// DisableLazy renders content unconditionally from the start
	// instead of waiting for the first visibility report.
	DisableLazy bool

	Debounce time.Duration

	// Cache overrides the package-shared reduction cache, isolating
	// this container's memoization.
	Cache *wave.Cache

	// Interaction callbacks. A pointer tap emits OnClick; a drag emits
	// OnDragStart once, OnDrag per move, and OnDragEnd on release. All
	// receive the pointer position as a fraction of the rendered width
	// in [0, 1].
	OnClick     func(pos float64)
	OnDragStart func(pos float64)
	OnDrag      func(pos float64)
	OnDragEnd   func(pos float64)
}

// DefaultOptions returns the standard bar rendering configuration.
func DefaultOptions() Options {
	return Options{
		Bar:      render.DefaultBarOptions(),
		Line:     render.DefaultLineOptions(),
		Glyph:    render.DefaultGlyphOptions(),
		Color:    DefaultColor,
		Debounce: DefaultDebounce,
	}
}

// sharedCache memoizes reductions across every container that does not
// bring its own cache, so two views of the same sequence share work.
var sharedCache = wave.NewCache()

func normalizeOptions(o Options) Options {
	if o.Bar == (render.BarOptions{}) {
		o.Bar = render.DefaultBarOptions()
	}

	if o.Line.Width <= 0 {
		o.Line.Width, o.Line.Gap = o.Bar.Width, o.Bar.Gap
	}

	if o.Glyph.Thickness == 0 {
		o.Glyph = render.DefaultGlyphOptions()
	}

	if o.Color == "" {
		o.Color = DefaultColor
	}

	if o.Debounce == 0 {
		o.Debounce = DefaultDebounce
	}

	if o.Cache == nil {
		o.Cache = sharedCache
	}

	return o
}

// step returns the horizontal pitch of one segment for the active kind.
func (o Options) step() float64 {
	if o.Kind == KindLinePath {
		return o.Line.Width + o.Line.Gap
	}

	return o.Bar.Width + o.Bar.Gap
}
