package matter

import "github.com/soypat/sdf"

// Material compensates part geometry for the print process so that the
// cooled print matches the modelled measures.
type Material interface {
	// Scale counters bulk thermal contraction of the printed part.
	Scale(sdf.SDF3) sdf.SDF3
	// InternalDimScale returns the modelled size an internal dimension
	// (bore, socket, slot) needs so it measures real once printed.
	InternalDimScale(real float64) float64
}

var (
	// PLA (polylactic acid) is the most widely used plastic filament material in 3D printing.
	PLA Material = ViscousMaterial{shrink: 0.2e-2, pullShrink: .45}
	// PETG shrinks more than PLA but relaxes less once deposited.
	PETG Material = ViscousMaterial{shrink: 0.5e-2, pullShrink: .35}
)

type ViscousMaterial struct {
	// shrink is the thermal contraction shrinkage of a material once the material
	// cools to room temperature after the heated bed is turned off.
	shrink float64
	// pullShrink takes into account viscoelastic shrinkage.
	pullShrink float64
}

func (m ViscousMaterial) Scale(s sdf.SDF3) sdf.SDF3 {
	scale := 1 / (1 - m.shrink)
	return sdf.ScaleUniform3D(s, scale)
}

// InternalDimScale panics on non-positive dimensions, which have no
// meaningful correction.
func (m ViscousMaterial) InternalDimScale(real float64) float64 {
	if real <= 0 {
		panic("InternalDimScale only works for non-zero dimensions")
	}
	return real*(m.shrink+1) + m.pullShrink
}
