// Package obj holds parametric 3D printable parts whose outlines are
// built with polyround and handed to the sdf kernel.
package obj

import (
	"fmt"
)

// DefaultFacets is the arc vertex count parts fall back on when their
// Facets parameter is zero. It matches Standard quality.
const DefaultFacets = 16

// Quality selects how finely rounded corners are tessellated.
type Quality int

const (
	Draft Quality = iota
	Standard
	Fine
)

// Facets returns the arc vertices per rounded corner for a quality.
func (q Quality) Facets() int {
	switch q {
	case Draft:
		return 8
	case Fine:
		return 32
	}
	return DefaultFacets
}

func (q Quality) String() string {
	switch q {
	case Draft:
		return "draft"
	case Standard:
		return "standard"
	case Fine:
		return "fine"
	}
	return fmt.Sprintf("Quality(%d)", int(q))
}

type partErr struct {
	panicObj interface{}
	stack    string
}

func (p *partErr) Error() string {
	return fmt.Sprintf("%s", p.panicObj)
}
