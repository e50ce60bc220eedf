// SPDX-License-Identifier: EPL-2.0

package svg_test

import (
	"os"

	"github.com/ampviz/ampviz/render"
	"github.com/ampviz/ampviz/svg"
)

// ExampleRender serializes a two-bar document with a progress gradient.
func ExampleRender() {
	doc := svg.Doc{
		Width: 10,
		Fill:  "url(#wf-demo)",
		Gradient: &svg.Gradient{
			ID: "wf-demo",
			Stops: []render.Stop{
				{Offset: 0, Color: "#4f46e5", Opacity: 1},
				{Offset: 0.5, Color: "#4f46e5", Opacity: 1},
				{Offset: 0.5, Color: "#c7d2fe", Opacity: 1},
			},
		},
		Rects: []render.Rect{
			{X: 0, Y: 25, W: 4, H: 50},
			{X: 5, Y: 0, W: 4, H: 100},
		},
	}

	if err := svg.Render(os.Stdout, doc); err != nil {
		panic(err)
	}
	// Output:
	// <svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 100" preserveAspectRatio="none">
	// <defs><linearGradient id="wf-demo" x1="0" y1="0" x2="1" y2="0"><stop offset="0%" stop-color="#4f46e5"/><stop offset="50%" stop-color="#4f46e5"/><stop offset="50%" stop-color="#c7d2fe"/></linearGradient></defs>
	// <rect x="0" y="25" width="4" height="50" fill="url(#wf-demo)"/>
	// <rect x="5" y="0" width="4" height="100" fill="url(#wf-demo)"/>
	// </svg>
}
