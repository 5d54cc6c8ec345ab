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

// Open battery sleds for cylindrical cells.

// BatterySocketParams defines an open socket strip holding cylindrical
// cells side by side. The cells rest in horizontal bores breaching the
// top face; vertical slits in both end walls take the contact strips.
type BatterySocketParams struct {
	CellDiameter float64 // bare cell diameter
	CellLength   float64
	Cells        int     // cells side by side (0 == 1)
	Wall         float64 // outer wall thickness (0 == 2.4)
	Gap          float64 // material left between neighboring bores (0 == 2)
	Floor        float64 // material under the cells (0 == 1.6)
	Clearance    float64 // fit allowance added to the bore radius
	CornerRound  float64 // footprint corner radius (0 == Wall)
	Facets       int     // arc vertices per rounded corner (0 == DefaultFacets)
}

// AA returns socket parameters for AA cells.
func AA(cells int) BatterySocketParams {
	return BatterySocketParams{CellDiameter: 14.5, CellLength: 50.5, Cells: cells}
}

// Cell18650 returns socket parameters for 18650 lithium cells.
func Cell18650(cells int) BatterySocketParams {
	return BatterySocketParams{CellDiameter: 18.6, CellLength: 65.2, Cells: cells}
}

func (k BatterySocketParams) defaults() BatterySocketParams {
	if k.Cells == 0 {
		k.Cells = 1
	}
	if k.Wall == 0 {
		k.Wall = 2.4
	}
	if k.Gap == 0 {
		k.Gap = 2
	}
	if k.Floor == 0 {
		k.Floor = 1.6
	}
	if k.CornerRound == 0 {
		k.CornerRound = k.Wall
	}
	if k.Facets == 0 {
		k.Facets = DefaultFacets
	}
	return k
}

// footprint is the outer block size in X (across cells) and Y (along
// cells).
func (k BatterySocketParams) footprint() (w, l float64) {
	w = float64(k.Cells-1)*(k.CellDiameter+k.Gap) + k.CellDiameter + 2*k.Wall
	l = k.CellLength + 2*k.Wall
	return w, l
}

// BatterySocketProfile returns the rounded footprint outline of the
// socket body, centered on the origin.
func BatterySocketProfile(k BatterySocketParams) ([]r2.Vec, error) {
	k = k.defaults()
	if k.CellDiameter <= 0 || k.CellLength <= 0 {
		return nil, errors.New("cell measures must be positive")
	}
	w, l := k.footprint()
	b := polyround.NewPath()
	b.Add(-w/2, -l/2).Round(k.CornerRound)
	b.Add(w, 0).Round(k.CornerRound)
	b.Add(0, l).Round(k.CornerRound)
	b.Add(-w, 0).Round(k.CornerRound)
	b.Close()
	return b.Vertices(k.Facets)
}

// BatterySocket returns an open cell sled with its floor on z=0.
func BatterySocket(k BatterySocketParams) (s sdf.SDF3, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &partErr{panicObj: a, stack: string(debug.Stack())}
		}
	}()
	k = k.defaults()
	verts, err := BatterySocketProfile(k)
	if err != nil {
		return nil, err
	}
	// the bores breach the top face so the cells drop in from above
	h := k.Floor + 0.62*k.CellDiameter
	body := sdf.Extrude3D(must2.Polygon(verts), h)
	body = sdf.Transform3D(body, sdf.Translate3d(r3.Vec{0, 0, h / 2}))

	pitch := k.CellDiameter + k.Gap
	positions := make([]r3.Vec, k.Cells)
	for i := range positions {
		positions[i] = r3.Vec{
			X: (float64(i) - float64(k.Cells-1)/2) * pitch,
			Z: k.Floor + 0.5*k.CellDiameter,
		}
	}
	bore := sdf.SDF3(must3.Cylinder(k.CellLength, 0.5*k.CellDiameter+k.Clearance, 0))
	bore = sdf.Transform3D(bore, sdf.RotateX(polyround.DtoR(90)))
	s = sdf.Difference3D(body, sdf.Multi3D(bore, positions))

	// contact strip slits through both end walls, one per bore
	_, l := k.footprint()
	slit := must3.Box(r3.Vec{0.55 * k.CellDiameter, l + 2, 0.4 * k.CellDiameter}, 0)
	s = sdf.Difference3D(s, sdf.Multi3D(slit, positions))
	return s, err
}
