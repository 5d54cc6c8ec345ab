package polyround

import (
	"math"

	"github.com/tanius/polyround/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Translate returns a copy of pts displaced by delta.
func Translate(pts []Point, delta r2.Vec) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{V: r2.Add(p.V, delta), R: p.R}
	}
	return out
}

// Rotate returns a copy of pts rotated theta radians anticlockwise
// about the origin.
func Rotate(pts []Point, theta float64) []Point {
	m := d2.Rotate(theta)
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{V: m.ApplyPos(p.V), R: p.R}
	}
	return out
}

// Scale returns a copy of pts scaled uniformly about the origin. The
// fillet radii scale along with the geometry.
func Scale(pts []Point, k float64) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{V: r2.Scale(k, p.V), R: math.Abs(k) * p.R}
	}
	return out
}

// MirrorX returns a copy of pts mirrored about the X axis, in reverse
// order so the outline keeps its winding.
func MirrorX(pts []Point) []Point {
	n := len(pts)
	out := make([]Point, n)
	for i, p := range pts {
		out[n-1-i] = Point{V: r2.Vec{X: p.V.X, Y: -p.V.Y}, R: p.R}
	}
	return out
}

// MirrorY is MirrorX for the Y axis.
func MirrorY(pts []Point) []Point {
	n := len(pts)
	out := make([]Point, n)
	for i, p := range pts {
		out[n-1-i] = Point{V: r2.Vec{X: -p.V.X, Y: p.V.Y}, R: p.R}
	}
	return out
}

// Reverse returns a copy of pts in reverse order.
func Reverse(pts []Point) []Point {
	n := len(pts)
	out := make([]Point, n)
	for i, p := range pts {
		out[n-1-i] = p
	}
	return out
}
