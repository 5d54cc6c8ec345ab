package polyround

import (
	"github.com/tanius/polyround/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Path building code.

// PathBuilder assembles a relative path one step at a time.
type PathBuilder struct {
	closed  bool      // polygonize as a closed outline?
	reverse bool      // return the vertices in reverse order
	steps   []Step    // authored steps
	warns   []Warning // warnings from the last Vertices call
}

// NewPath returns an empty path.
func NewPath() *PathBuilder {
	return &PathBuilder{}
}

// Add appends a step displacing the path by dx,dy. The first Add
// places the absolute start point. The returned step chains the corner
// radius: b.Add(5, 0).Round(1).
func (p *PathBuilder) Add(dx, dy float64) *Step {
	p.steps = append(p.steps, Step{X: dx, Y: dy})
	return &p.steps[len(p.steps)-1]
}

// To appends a step landing on the absolute position x,y.
func (p *PathBuilder) To(x, y float64) *Step {
	at := p.at()
	return p.Add(x-at.X, y-at.Y)
}

// Polar appends a step of length r at angle theta.
func (p *PathBuilder) Polar(r, theta float64) *Step {
	v := d2.PolarToXY(r, theta)
	return p.Add(v.X, v.Y)
}

// Round sets the fillet radius at the corner the step lands on.
func (s *Step) Round(r float64) *Step {
	s.R = r
	return s
}

// at is the absolute position after the authored steps.
func (p *PathBuilder) at() r2.Vec {
	var at r2.Vec
	for _, s := range p.steps {
		at = r2.Add(at, r2.Vec{X: s.X, Y: s.Y})
	}
	return at
}

// Drop removes the last step.
func (p *PathBuilder) Drop() {
	p.steps = p.steps[:len(p.steps)-1]
}

// Close marks the path as a closed outline.
func (p *PathBuilder) Close() {
	p.closed = true
}

// Closed reports whether the path is closed.
func (p *PathBuilder) Closed() bool {
	return p.closed
}

// Reverse makes Vertices return its result in reverse order.
func (p *PathBuilder) Reverse() {
	p.reverse = true
}

// Steps returns a copy of the authored steps.
func (p *PathBuilder) Steps() []Step {
	return append([]Step(nil), p.steps...)
}

// Resolve returns the absolute corners of the authored path.
func (p *PathBuilder) Resolve() ([]Point, error) {
	return Resolve(p.steps)
}

// Vertices polygonizes the path with facets vertices per rounded
// corner, closed or open per Close. Warnings from the run are kept
// for Warnings.
func (p *PathBuilder) Vertices(facets int) ([]r2.Vec, error) {
	pts, err := Resolve(p.steps)
	if err != nil {
		return nil, err
	}
	var v []r2.Vec
	if p.closed {
		v, p.warns, err = Polygonize(pts, facets)
	} else {
		v, p.warns, err = PolygonizeOpen(pts, facets)
	}
	if err != nil {
		return nil, err
	}
	if p.reverse {
		for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
			v[i], v[j] = v[j], v[i]
		}
	}
	return v, nil
}

// Warnings returns the warnings collected by the last Vertices call.
func (p *PathBuilder) Warnings() []Warning {
	return p.warns
}
