package obj

import (
	"errors"
	"runtime/debug"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2/must2"
	"github.com/soypat/sdf/form3/must3"
	"github.com/tanius/polyround"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// DeviceHolderParams defines a wall mounted cradle: a back plate
// against the wall, a shelf, and a front lip keeping the device from
// sliding out. The side profile is a C with the slot between lip and
// back plate.
type DeviceHolderParams struct {
	DeviceDepth   float64 // device thickness plus fit
	Width         float64 // cradle width across the device
	Back          float64 // back plate height
	Lip           float64 // lip height above the shelf (0 == 12)
	Thickness     float64 // material thickness (0 == 3)
	SlotRound     float64 // fillet where the device rests (0 == 1.2)
	EdgeRound     float64 // rounding of the extruded side edges (0 == 1)
	ScrewDiameter float64 // mounting holes through the back plate (0 == none)
	Screws        int     // number of mounting holes (0 == 2)
	Facets        int     // arc vertices per rounded corner (0 == DefaultFacets)
}

func (k DeviceHolderParams) defaults() DeviceHolderParams {
	if k.Lip == 0 {
		k.Lip = 12
	}
	if k.Thickness == 0 {
		k.Thickness = 3
	}
	if k.SlotRound == 0 {
		k.SlotRound = 1.2
	}
	if k.EdgeRound == 0 {
		k.EdgeRound = 1
	}
	if k.Screws == 0 {
		k.Screws = 2
	}
	if k.Facets == 0 {
		k.Facets = DefaultFacets
	}
	return k
}

// DeviceHolderProfile returns the C shaped side outline. X points away
// from the wall, Y up, with the wall face on X=0.
func DeviceHolderProfile(k DeviceHolderParams) ([]r2.Vec, error) {
	k = k.defaults()
	if k.DeviceDepth <= 0 {
		return nil, errors.New("device depth must be positive")
	}
	if k.Back <= 2*k.Thickness {
		return nil, errors.New("back plate shorter than twice the material thickness")
	}
	t := k.Thickness
	tip := 0.45 * t
	b := polyround.NewPath()
	b.Add(0, 0)
	b.Add(2*t+k.DeviceDepth, 0).Round(tip)
	b.Add(0, t+k.Lip).Round(tip)
	b.Add(-t, 0).Round(tip)
	b.Add(0, -k.Lip).Round(k.SlotRound)
	b.Add(-k.DeviceDepth, 0).Round(k.SlotRound)
	b.Add(0, k.Back-t).Round(tip)
	b.Add(-t, 0).Round(tip)
	b.Close()
	return b.Vertices(k.Facets)
}

// DeviceHolder returns the cradle. The wall face lies on x=0 and the
// width is extruded symmetric about z=0.
func DeviceHolder(k DeviceHolderParams) (s sdf.SDF3, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &partErr{panicObj: a, stack: string(debug.Stack())}
		}
	}()
	k = k.defaults()
	if k.Width <= 0 {
		return nil, errors.New("width must be positive")
	}
	verts, err := DeviceHolderProfile(k)
	if err != nil {
		return nil, err
	}
	s = sdf.ExtrudeRounded3D(must2.Polygon(verts), k.Width, k.EdgeRound)
	if k.ScrewDiameter > 0 {
		hole := sdf.SDF3(must3.Cylinder(3*k.Thickness, 0.5*k.ScrewDiameter, 0))
		hole = sdf.Transform3D(hole, sdf.RotateY(polyround.DtoR(90)))
		positions := make([]r3.Vec, k.Screws)
		for i := range positions {
			positions[i] = r3.Vec{
				X: 0.5 * k.Thickness,
				Y: k.Back - 2.5*k.ScrewDiameter,
				Z: (float64(i+1)/float64(k.Screws+1) - 0.5) * k.Width,
			}
		}
		s = sdf.Difference3D(s, sdf.Multi3D(hole, positions))
	}
	return s, err
}
