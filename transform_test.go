package polyround

import (
	"math"
	"testing"

	"github.com/tanius/polyround/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

var lshape = []Point{
	{V: r2.Vec{0, 0}, R: 1},
	{V: r2.Vec{20, 0}, R: 1},
	{V: r2.Vec{20, 5}, R: 1},
	{V: r2.Vec{5, 5}, R: 2},
	{V: r2.Vec{5, 15}, R: 1},
	{V: r2.Vec{0, 15}, R: 1},
}

func TestTranslate(t *testing.T) {
	got := Translate(lshape, r2.Vec{3, -2})
	for i, p := range lshape {
		want := Point{V: r2.Vec{p.V.X + 3, p.V.Y - 2}, R: p.R}
		if got[i] != want {
			t.Errorf("point %d: got %+v, want %+v", i, got[i], want)
		}
	}
	if lshape[0].V != (r2.Vec{0, 0}) {
		t.Fatal("input mutated")
	}
}

func TestRotate(t *testing.T) {
	got := Rotate([]Point{{V: r2.Vec{1, 0}, R: 0.5}}, math.Pi/2)
	if !d2.EqualWithin(got[0].V, r2.Vec{0, 1}, 1e-12) {
		t.Errorf("quarter turn of (1,0) gave %v", got[0].V)
	}
	if got[0].R != 0.5 {
		t.Errorf("radius changed to %g", got[0].R)
	}
}

func TestScale(t *testing.T) {
	got := Scale(lshape, 2)
	for i, p := range lshape {
		if got[i].V != r2.Scale(2, p.V) || got[i].R != 2*p.R {
			t.Errorf("point %d: got %+v", i, got[i])
		}
	}
	// radii stay positive under a flipping scale
	flipped := Scale(lshape, -1)
	for i, p := range flipped {
		if p.R != lshape[i].R {
			t.Errorf("point %d: radius %g, want %g", i, p.R, lshape[i].R)
		}
	}
}

func TestMirrorPreservesWinding(t *testing.T) {
	verts, _, err := Polygonize(lshape, 4)
	if err != nil {
		t.Fatal(err)
	}
	mx, _, err := Polygonize(MirrorX(lshape), 4)
	if err != nil {
		t.Fatal(err)
	}
	my, _, err := Polygonize(MirrorY(lshape), 4)
	if err != nil {
		t.Fatal(err)
	}
	a := area(verts)
	if got := area(mx); !EqualFloat64(got, a, 1e-9) {
		t.Errorf("MirrorX signed area %g, want %g", got, a)
	}
	if got := area(my); !EqualFloat64(got, a, 1e-9) {
		t.Errorf("MirrorY signed area %g, want %g", got, a)
	}
}

func TestReverseRoundTrip(t *testing.T) {
	got := Reverse(Reverse(lshape))
	for i := range lshape {
		if got[i] != lshape[i] {
			t.Errorf("point %d: got %+v, want %+v", i, got[i], lshape[i])
		}
	}
}

// area is the shoelace signed area of a closed outline.
func area(verts []r2.Vec) float64 {
	var a float64
	for i, v := range verts {
		w := verts[(i+1)%len(verts)]
		a += v.X*w.Y - w.X*v.Y
	}
	return a / 2
}
