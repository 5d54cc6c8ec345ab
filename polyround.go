// Package polyround builds filleted 2D outlines from relative,
// radius-tagged paths for use as extrusion and revolution profiles.
package polyround

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Step is one leg of a relative path. X and Y displace the previous
// point. R is the fillet radius applied at the corner the step lands on
// (0 == sharp corner). The first step of a path is absolute: it places
// the start point, and its radius matters only once the outline closes.
type Step struct {
	X, Y float64
	R    float64
}

// Point is an absolute outline corner tagged with its fillet radius.
type Point struct {
	V r2.Vec
	R float64
}

// Resolve walks a relative path and returns its absolute corners.
// Radii are carried through untouched. The result has exactly one point
// per step, in step order.
func Resolve(steps []Step) ([]Point, error) {
	if len(steps) == 0 {
		return nil, &InputError{Op: "Resolve", Msg: "empty path"}
	}
	pts := make([]Point, len(steps))
	at := r2.Vec{X: steps[0].X, Y: steps[0].Y}
	pts[0] = Point{V: at, R: steps[0].R}
	for i, s := range steps[1:] {
		at = r2.Add(at, r2.Vec{X: s.X, Y: s.Y})
		pts[i+1] = Point{V: at, R: s.R}
	}
	return pts, nil
}
