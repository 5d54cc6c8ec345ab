package obj

import (
	"errors"
	"math"
	"runtime/debug"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2/must2"
	"github.com/soypat/sdf/form3/must3"
	"github.com/tanius/polyround"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// KnobParams defines a fluted control knob with a D-shaft bore, the
// kind that presses onto a 6mm potentiometer or rotary encoder shaft.
type KnobParams struct {
	Diameter      float64 // outer diameter at the base (0 == 32)
	TopDiameter   float64 // outer diameter at the top (0 == 0.82*Diameter)
	Height        float64 // (0 == 14)
	Flutes        int     // finger flutes around the rim (0 == 7)
	FluteRadius   float64 // (0 == 0.1*Diameter)
	ShaftDiameter float64 // bore diameter (0 == 6, negative == no bore)
	ShaftFlat     float64 // D-shaft across-flat size (0 == 4.5)
	Clearance     float64 // bore oversize for a press fit (0 == 0.2)
	Facets        int     // arc vertices per rounded corner (0 == DefaultFacets)
}

func (k KnobParams) defaults() KnobParams {
	if k.Diameter == 0 {
		k.Diameter = 32
	}
	if k.TopDiameter == 0 {
		k.TopDiameter = 0.82 * k.Diameter
	}
	if k.Height == 0 {
		k.Height = 14
	}
	if k.Flutes == 0 {
		k.Flutes = 7
	}
	if k.FluteRadius == 0 {
		k.FluteRadius = 0.1 * k.Diameter
	}
	if k.ShaftDiameter == 0 {
		k.ShaftDiameter = 6
	}
	if k.ShaftFlat == 0 {
		k.ShaftFlat = 4.5
	}
	if k.Clearance == 0 {
		k.Clearance = 0.2
	}
	if k.Facets == 0 {
		k.Facets = DefaultFacets
	}
	return k
}

// KnobProfile returns the section revolved into the knob body, from
// the axis out to the rim and back. X is the radial direction.
func KnobProfile(k KnobParams) ([]r2.Vec, error) {
	k = k.defaults()
	if k.TopDiameter > k.Diameter {
		return nil, errors.New("knob cannot be wider at the top than at the base")
	}
	steps := []polyround.Step{
		{},
		{X: 0.5 * k.Diameter, R: 0.1 * k.Height},
		{X: 0.5 * (k.TopDiameter - k.Diameter), Y: k.Height, R: 0.2 * k.Height},
		{X: -0.5 * k.TopDiameter},
	}
	verts, err := polyround.Outline(steps, k.Facets)
	return verts, err
}

// Knob returns the knob with its base on z=0 and the bore opening
// downward.
func Knob(k KnobParams) (s sdf.SDF3, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &partErr{panicObj: a, stack: string(debug.Stack())}
		}
	}()
	k = k.defaults()
	verts, err := KnobProfile(k)
	if err != nil {
		return nil, err
	}
	s = sdf.Revolve3D(must2.Polygon(verts), 2*math.Pi)

	// finger flutes bitten out of the rim
	flute := must3.Cylinder(k.Height+2, k.FluteRadius, 0.25*k.FluteRadius)
	m := sdf.Translate3d(r3.Vec{X: 0.5*k.Diameter + 0.625*k.FluteRadius, Z: 0.5 * k.Height})
	s = sdf.Difference3D(s, sdf.RotateCopy3D(sdf.Transform3D(flute, m), k.Flutes))

	if k.ShaftDiameter < 0 {
		return s, err
	}
	// blind D-shaft bore entering from the base, 3 of cap left on top
	rb := 0.5*k.ShaftDiameter + k.Clearance
	if rb+2 > 0.5*k.TopDiameter {
		return nil, errors.New("shaft bore too large for the knob")
	}
	bore := sdf.SDF2(must2.Circle(rb))
	if flat := k.ShaftFlat - 0.5*k.ShaftDiameter + k.Clearance; flat < rb {
		keep := sdf.SDF2(must2.Box(r2.Vec{2 * rb, 3 * rb}, 0))
		keep = sdf.Transform2D(keep, sdf.Translate2d(r2.Vec{flat - rb, 0}))
		bore = sdf.Intersect2D(bore, keep)
	}
	return sdf.Difference3D(s, sdf.Extrude3D(bore, 2*(k.Height-3))), err
}
