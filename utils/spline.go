// SPDX-License-Identifier: EPL-2.0

package utils

// Point is a 2D coordinate used by the spline helpers.
type Point struct {
	X, Y float64
}

// ControlPoints derives the two cubic Bézier control points for the
// segment from p1 to p2 of a cardinal (Catmull-Rom style) spline through
// the four consecutive points p0..p3.
//
// tension scales how far the control points reach along the neighbor
// tangents:
//
//	c1 = p1 + (p2 - p0) * tension
//	c2 = p2 - (p3 - p1) * tension
//
// A tension of 0 collapses both control points onto the segment endpoints,
// producing a straight line. At the open ends of a polyline pass p0 = p1
// (or p3 = p2) to clamp the tangent.
func ControlPoints(p0, p1, p2, p3 Point, tension float64) (c1, c2 Point) {
	c1 = Point{
		X: p1.X + (p2.X-p0.X)*tension,
		Y: p1.Y + (p2.Y-p0.Y)*tension,
	}
	c2 = Point{
		X: p2.X - (p3.X-p1.X)*tension,
		Y: p2.Y - (p3.Y-p1.Y)*tension,
	}

	return c1, c2
}
