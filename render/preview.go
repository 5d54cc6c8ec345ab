// Package render draws filleted outlines to image files for checking a
// profile before committing to a print.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/tanius/polyround/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const imgSize = 14 * vg.Centimeter

// WriteImage draws the outlines into w, one colored closed line each,
// to scale on both axes. Format is any the plot package encodes: png,
// svg, pdf, eps, tif, jpg or tex.
func WriteImage(w io.Writer, format string, profiles ...[]r2.Vec) error {
	p, err := assemble(profiles)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(imgSize, imgSize, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// SavePNG writes the outlines to a png file at path.
func SavePNG(path string, profiles ...[]r2.Vec) error {
	return saveImage(path, "png", profiles)
}

// SaveSVG writes the outlines to an svg file at path.
func SaveSVG(path string, profiles ...[]r2.Vec) error {
	return saveImage(path, "svg", profiles)
}

func saveImage(path, format string, profiles [][]r2.Vec) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteImage(fp, format, profiles...); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}

func assemble(profiles [][]r2.Vec) (*plot.Plot, error) {
	if len(profiles) == 0 {
		return nil, errors.New("no profiles to draw")
	}
	p := plot.New()
	p.X.Label.Text = "mm"
	p.Y.Label.Text = "mm"
	p.Add(plotter.NewGrid())
	bb := d2.Box{
		Min: d2.Elem(math.Inf(1)),
		Max: d2.Elem(math.Inf(-1)),
	}
	for i, verts := range profiles {
		if len(verts) < 2 {
			return nil, fmt.Errorf("profile %d has fewer than 2 vertices", i)
		}
		xys := make(plotter.XYs, len(verts)+1)
		for j, v := range verts {
			xys[j].X = v.X
			xys[j].Y = v.Y
			bb = bb.Include(v)
		}
		xys[len(verts)] = xys[0] // close the loop
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
	}
	// pad the view and keep the scale equal on both axes
	bb = squared(bb.ScaleAboutCenter(1.1))
	p.X.Min, p.X.Max = bb.Min.X, bb.Max.X
	p.Y.Min, p.Y.Max = bb.Min.Y, bb.Max.Y
	return p, nil
}

func squared(b d2.Box) d2.Box {
	s := b.Size()
	return d2.NewBox2(b.Center(), d2.Elem(math.Max(s.X, s.Y)))
}
