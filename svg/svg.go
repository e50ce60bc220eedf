// SPDX-License-Identifier: EPL-2.0

package svg

import (
	"io"
	"strconv"
	"strings"

	"github.com/ampviz/ampviz/render"
)

// Gradient is a horizontal linearGradient definition referenced by the
// document's geometry through url(#ID).
type Gradient struct {
	ID    string
	Stops []render.Stop
}

// Doc describes one waveform document. Width is the horizontal extent
// in pixels and becomes the viewBox width; the vertical viewBox span is
// always 100 amplitude units. Height, when positive, is emitted as the
// element's pixel height; otherwise the element scales to its host box.
//
// Exactly one of Rects and PathData should carry geometry. Fill paints
// the geometry and may reference the gradient as "url(#id)".
type Doc struct {
	Width    float64
	Height   float64
	Class    string
	Fill     string
	Gradient *Gradient
	Rects    []render.Rect
	PathData string
}

// escAttr covers the characters that would break out of a double-quoted
// attribute value.
var escAttr = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Render writes doc as a complete <svg> element. The markup is built in
// memory first; the only error source is w itself.
func Render(w io.Writer, doc Doc) error {
	var b strings.Builder

	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `)
	b.WriteString(num(doc.Width))
	b.WriteString(` 100"`)

	if doc.Height > 0 {
		b.WriteString(` width="`)
		b.WriteString(num(doc.Width))
		b.WriteString(`" height="`)
		b.WriteString(num(doc.Height))
		b.WriteString(`"`)
	}

	b.WriteString(` preserveAspectRatio="none"`)

	if doc.Class != "" {
		b.WriteString(` class="`)
		b.WriteString(escAttr.Replace(doc.Class))
		b.WriteString(`"`)
	}

	b.WriteString(">\n")

	if doc.Gradient != nil {
		writeGradient(&b, doc.Gradient)
	}

	fill := ""
	if doc.Fill != "" {
		fill = ` fill="` + escAttr.Replace(doc.Fill) + `"`
	}

	for _, r := range doc.Rects {
		writeRect(&b, r, fill)
	}

	if doc.PathData != "" {
		b.WriteString(`<path d="`)
		b.WriteString(escAttr.Replace(doc.PathData))
		b.WriteString(`"`)
		b.WriteString(fill)
		b.WriteString("/>\n")
	}

	b.WriteString("</svg>\n")

	_, err := io.WriteString(w, b.String())

	return err
}

func writeGradient(b *strings.Builder, g *Gradient) {
	b.WriteString(`<defs><linearGradient id="`)
	b.WriteString(escAttr.Replace(g.ID))
	b.WriteString(`" x1="0" y1="0" x2="1" y2="0">`)

	for _, s := range g.Stops {
		b.WriteString(`<stop offset="`)
		b.WriteString(percent(s.Offset))
		b.WriteString(`" stop-color="`)
		b.WriteString(escAttr.Replace(s.Color))
		b.WriteString(`"`)

		if s.Opacity != 1 {
			b.WriteString(` stop-opacity="`)
			b.WriteString(num(s.Opacity))
			b.WriteString(`"`)
		}

		b.WriteString("/>")
	}

	b.WriteString("</linearGradient></defs>\n")
}

func writeRect(b *strings.Builder, r render.Rect, fill string) {
	b.WriteString(`<rect x="`)
	b.WriteString(num(r.X))
	b.WriteString(`" y="`)
	b.WriteString(num(r.Y))
	b.WriteString(`" width="`)
	b.WriteString(num(r.W))
	b.WriteString(`" height="`)
	b.WriteString(num(r.H))
	b.WriteString(`"`)

	if r.R > 0 {
		b.WriteString(` rx="`)
		b.WriteString(num(r.R))
		b.WriteString(`"`)
	}

	b.WriteString(fill)
	b.WriteString("/>\n")
}

// num renders an attribute number with up to three decimals, trimmed.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")

	if s == "-0" {
		return "0"
	}

	return s
}

// percent renders a [0, 1] gradient offset as a percentage with up to
// two decimals, which is exact for progress values rounded to four.
func percent(v float64) string {
	s := strconv.FormatFloat(v*100, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")

	if s == "-0" {
		s = "0"
	}

	return s + "%"
}
