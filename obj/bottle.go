package obj

import (
	"errors"
	"math"
	"runtime/debug"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2/must2"
	"github.com/tanius/polyround"
	"gonum.org/v1/gonum/spatial/r2"
)

// BottleBoxParams defines a revolved cup holding a round bottle or
// spray can upright.
type BottleBoxParams struct {
	InnerDiameter float64 // bottle diameter plus fit
	InnerHeight   float64 // cup depth
	Wall          float64 // wall thickness (0 == 2)
	Base          float64 // material under the bottle (0 == 2.4)
	BaseRound     float64 // outer base fillet (0 == 0.8*Wall)
	InnerRound    float64 // fillet where the floor meets the wall (0 == 0.5*Wall)
	LipRound      float64 // rim rounding (0 == 0.45*Wall)
	Facets        int     // arc vertices per rounded corner (0 == DefaultFacets)
}

func (k BottleBoxParams) defaults() BottleBoxParams {
	if k.Wall == 0 {
		k.Wall = 2
	}
	if k.Base == 0 {
		k.Base = 2.4
	}
	if k.BaseRound == 0 {
		k.BaseRound = 0.8 * k.Wall
	}
	if k.InnerRound == 0 {
		k.InnerRound = 0.5 * k.Wall
	}
	if k.LipRound == 0 {
		k.LipRound = 0.45 * k.Wall
	}
	if k.Facets == 0 {
		k.Facets = DefaultFacets
	}
	return k
}

// BottleBoxProfile returns the revolve section of the cup: X is the
// radial direction, Y the height, with the axis of revolution at X=0.
func BottleBoxProfile(k BottleBoxParams) ([]r2.Vec, error) {
	k = k.defaults()
	if k.InnerDiameter <= 0 || k.InnerHeight <= 0 {
		return nil, errors.New("inner measures must be positive")
	}
	r := 0.5 * k.InnerDiameter
	steps := []polyround.Step{
		{X: 0, Y: 0},
		{X: r + k.Wall, Y: 0, R: k.BaseRound},
		{X: 0, Y: k.Base + k.InnerHeight, R: k.LipRound},
		{X: -k.Wall, Y: 0, R: k.LipRound},
		{X: 0, Y: -k.InnerHeight, R: k.InnerRound},
		{X: -r, Y: 0},
	}
	return polyround.Outline(steps, k.Facets)
}

// BottleBox returns the cup with its base on z=0.
func BottleBox(k BottleBoxParams) (s sdf.SDF3, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &partErr{panicObj: a, stack: string(debug.Stack())}
		}
	}()
	verts, err := BottleBoxProfile(k)
	if err != nil {
		return nil, err
	}
	return sdf.Revolve3D(must2.Polygon(verts), 2*math.Pi), err
}
