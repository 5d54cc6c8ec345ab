package polyround

import "fmt"

// InputError reports a path or argument that cannot be processed at
// all: an empty path, an undersized outline, facets < 1, a negative
// radius.
type InputError struct {
	Op  string // operation that rejected the input
	Msg string
}

func (e *InputError) Error() string {
	return "polyround: " + e.Op + ": " + e.Msg
}

// FilletError reports a corner whose radius does not fit between its
// adjacent edges. Max is the largest radius that corner admits.
type FilletError struct {
	Index  int     // corner index into the point list
	Radius float64 // requested radius
	Max    float64 // largest permissible radius at this corner
}

func (e *FilletError) Error() string {
	return fmt.Sprintf("polyround: corner %d: fillet radius %g exceeds maximum %g", e.Index, e.Radius, e.Max)
}

// Warning flags a corner with a positive radius whose edges are
// colinear, so there is no bend to fillet. The corner passes through
// unchanged and polygonization continues.
type Warning struct {
	Index int // corner index into the point list
}

func (w Warning) String() string {
	return fmt.Sprintf("polyround: corner %d is straight, fillet skipped", w.Index)
}
