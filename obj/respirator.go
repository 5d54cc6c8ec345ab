package obj

import (
	"errors"
	"runtime/debug"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2/must2"
	"github.com/tanius/polyround"
	"gonum.org/v1/gonum/spatial/r2"
)

// RespiratorHookParams defines a behind-the-head strap hook that takes
// mask ear loops off the ears. Each end of the strip carries a slit
// hook; extra notches along the top edge give intermediate strap
// positions.
type RespiratorHookParams struct {
	Length    float64 // overall length (0 == 150)
	Width     float64 // strip width (0 == 18)
	Thickness float64 // extruded thickness (0 == 2.4)
	HookDepth float64 // how far the end slits reach in (0 == 7)
	HookOpen  float64 // slit opening height (0 == 4)
	Notches   int     // extra strap notches per side along the top edge
	Facets    int     // arc vertices per rounded corner (0 == DefaultFacets)
}

func (k RespiratorHookParams) defaults() RespiratorHookParams {
	if k.Length == 0 {
		k.Length = 150
	}
	if k.Width == 0 {
		k.Width = 18
	}
	if k.Thickness == 0 {
		k.Thickness = 2.4
	}
	if k.HookDepth == 0 {
		k.HookDepth = 7
	}
	if k.HookOpen == 0 {
		k.HookOpen = 4
	}
	if k.Facets == 0 {
		k.Facets = DefaultFacets
	}
	return k
}

// RespiratorHookProfile returns the strip outline with both end hooks,
// centered on the origin. The right half is authored and the left half
// is its mirror image.
func RespiratorHookProfile(k RespiratorHookParams) ([]r2.Vec, error) {
	k = k.defaults()
	if k.Length < 6*k.HookDepth {
		return nil, errors.New("strip too short for its hooks")
	}
	if k.Width < 2*k.HookOpen+6 {
		return nil, errors.New("strip too narrow for its hook slits")
	}
	w := 0.5 * k.Width
	x := 0.5 * k.Length
	mouth := w - k.HookOpen - 2 // bottom lip of the slit, 2 of material above
	half := []polyround.Point{
		{V: r2.Vec{0, -w}},
		{V: r2.Vec{x, -w}, R: 3},
		{V: r2.Vec{x, mouth}, R: 1},
		{V: r2.Vec{x - k.HookDepth, mouth}, R: 1.6},
		{V: r2.Vec{x - k.HookDepth, mouth + k.HookOpen}, R: 1.6},
		{V: r2.Vec{x, mouth + k.HookOpen}, R: 0.8},
		{V: r2.Vec{x, w}, R: 0.8},
		{V: r2.Vec{0, w}},
	}
	outline := append(half, polyround.MirrorY(half)[1:]...)
	verts, _, err := polyround.Polygonize(outline, k.Facets)
	return verts, err
}

// RespiratorHook returns the flat strap hook extruded symmetric about
// z=0.
func RespiratorHook(k RespiratorHookParams) (s sdf.SDF3, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &partErr{panicObj: a, stack: string(debug.Stack())}
		}
	}()
	k = k.defaults()
	verts, err := RespiratorHookProfile(k)
	if err != nil {
		return nil, err
	}
	strip := must2.Polygon(verts)
	if k.Notches > 0 {
		// crescent bites along the top edge, symmetric about x=0
		bite := must2.Circle(0.55 * k.HookOpen)
		cuts := make([]sdf.SDF2, 0, 2*k.Notches)
		for i := 1; i <= k.Notches; i++ {
			dx := 0.5*k.Length - 2.5*k.HookDepth - float64(i-1)*3*k.HookDepth
			if dx < 0.5*k.HookDepth {
				return nil, errors.New("too many notches for the strip length")
			}
			for _, side := range []float64{-1, 1} {
				m := sdf.Translate2d(r2.Vec{side * dx, 0.5*k.Width + 0.25*k.HookOpen})
				cuts = append(cuts, sdf.Transform2D(bite, m))
			}
		}
		strip = sdf.Difference2D(strip, sdf.Union2D(cuts...))
	}
	return sdf.Extrude3D(strip, k.Thickness), err
}
