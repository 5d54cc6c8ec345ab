package polyround

import (
	"fmt"
	"math"

	"github.com/tanius/polyround/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Polygonize converts a closed outline of radius-tagged points into a
// flat vertex list. A corner with radius 0 passes through as a single
// vertex; a corner with a positive radius becomes a circular arc of
// exactly facets vertices, running tangent point to tangent point, so
// before deduplication the output holds one vertex per sharp corner
// and facets vertices per rounded one. facets == 1 keeps every
// original corner and only validates the radii.
//
// Consecutive coincident vertices (within 1e-9) are merged afterwards,
// including the wrap-around pair, so arcs meeting exactly at edge
// midpoints do not duplicate points.
//
// A corner whose edges are colinear has no bend to round off: it is
// reported as a warning and passes through unchanged. A radius that
// does not fit its corner aborts with a *FilletError.
func Polygonize(points []Point, facets int) ([]r2.Vec, []Warning, error) {
	if len(points) < 3 {
		return nil, nil, &InputError{Op: "Polygonize", Msg: "closed outline needs at least 3 points"}
	}
	return polygonize(points, facets, true)
}

// PolygonizeOpen is Polygonize for open paths: the outline does not
// wrap around and the two endpoints are emitted as-is, whatever their
// radii.
func PolygonizeOpen(points []Point, facets int) ([]r2.Vec, []Warning, error) {
	if len(points) < 2 {
		return nil, nil, &InputError{Op: "PolygonizeOpen", Msg: "open path needs at least 2 points"}
	}
	return polygonize(points, facets, false)
}

// Outline resolves a relative path and polygonizes it as a closed
// outline, discarding warnings. It is the usual one-call route from a
// step list to an extrusion profile.
func Outline(steps []Step, facets int) ([]r2.Vec, error) {
	pts, err := Resolve(steps)
	if err != nil {
		return nil, err
	}
	v, _, err := Polygonize(pts, facets)
	return v, err
}

func polygonize(points []Point, facets int, closed bool) ([]r2.Vec, []Warning, error) {
	if facets < 1 {
		return nil, nil, &InputError{Op: "Polygonize", Msg: "facets < 1"}
	}
	n := len(points)
	var warns []Warning
	verts := make([]r2.Vec, 0, countVertices(points, facets, closed))
	for i, p := range points {
		if p.R < 0 {
			return nil, nil, &InputError{Op: "Polygonize", Msg: fmt.Sprintf("negative radius at corner %d", i)}
		}
		if p.R == 0 || (!closed && (i == 0 || i == n-1)) {
			verts = append(verts, p.V)
			continue
		}
		arc, straight, err := cornerArc(i, points[(i+n-1)%n].V, p, points[(i+1)%n].V, facets)
		if err != nil {
			return nil, nil, err
		}
		if straight {
			warns = append(warns, Warning{Index: i})
		}
		verts = append(verts, arc...)
	}
	return dedup(verts, closed), warns, nil
}

// cornerArc replaces corner i with a tangent circular arc of facets
// vertices. straight is set when the corner's edges are colinear and
// the corner was left as-is.
func cornerArc(i int, prev r2.Vec, v Point, next r2.Vec, facets int) (arc []r2.Vec, straight bool, err error) {
	ep := r2.Sub(prev, v.V)
	en := r2.Sub(next, v.V)
	lp := r2.Norm(ep)
	ln := r2.Norm(en)
	if math.Min(lp, ln) < tolerance {
		// a zero length edge leaves no room for any radius
		return nil, false, &FilletError{Index: i, Radius: v.R, Max: 0}
	}
	v0 := r2.Scale(1/lp, ep)
	v1 := r2.Scale(1/ln, en)
	cross := r2.Cross(v1, v0)
	if math.Abs(cross) < epsilon {
		if r2.Dot(v0, v1) > 0 {
			// the edges double back on themselves, no arc fits a spike
			return nil, false, &FilletError{Index: i, Radius: v.R, Max: 0}
		}
		return []r2.Vec{v.V}, true, nil
	}
	// work out the corner angle
	theta := math.Acos(Clamp(r2.Dot(v0, v1), -1, 1))
	// The tangent points may not pass the midpoint of either edge, so a
	// corner admits at most half its shorter edge, shrunk further on
	// acute corners where the tangent distance outruns the radius.
	rmax := 0.5 * math.Min(lp, ln) * math.Min(1, math.Tan(theta/2))
	if v.R-rmax > tolerance {
		return nil, false, &FilletError{Index: i, Radius: v.R, Max: rmax}
	}
	if facets == 1 {
		return []r2.Vec{v.V}, false, nil
	}
	// distance from the corner to the circle tangents
	d1 := v.R / math.Tan(theta/2)
	p0 := r2.Add(v.V, r2.Scale(d1, v0))
	// distance from the corner to the circle center, along the bisector
	dc := v.R / math.Sin(theta/2)
	c := r2.Add(v.V, r2.Scale(dc, r2.Unit(r2.Add(v0, v1))))
	// sweep the radius vector from tangent to tangent
	dtheta := Sign(cross) * (math.Pi - theta) / float64(facets-1)
	rm := d2.Rotate(dtheta)
	rv := r2.Sub(p0, c)
	arc = make([]r2.Vec, facets)
	for j := range arc {
		arc[j] = r2.Add(c, rv)
		rv = rm.ApplyPos(rv)
	}
	return arc, false, nil
}

// countVertices is the emitted vertex count before deduplication: one
// per sharp corner, facets per rounded one.
func countVertices(points []Point, facets int, closed bool) int {
	n := 0
	last := len(points) - 1
	for i, p := range points {
		if p.R > 0 && facets > 1 && (closed || (i != 0 && i != last)) {
			n += facets
		} else {
			n++
		}
	}
	return n
}

// dedup merges consecutive coincident vertices in place, including the
// wrap-around pair of a closed outline.
func dedup(verts []r2.Vec, closed bool) []r2.Vec {
	if len(verts) < 2 {
		return verts
	}
	out := verts[:1]
	for _, v := range verts[1:] {
		if d2.EqualWithin(v, out[len(out)-1], tolerance) {
			continue
		}
		out = append(out, v)
	}
	if closed && len(out) > 1 && d2.EqualWithin(out[0], out[len(out)-1], tolerance) {
		out = out[:len(out)-1]
	}
	return out
}
