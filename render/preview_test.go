package render_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tanius/polyround"
	"github.com/tanius/polyround/render"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot/cmpimg"
)

var plate = []polyround.Step{
	{R: 2},
	{X: 30, R: 2},
	{Y: 20, R: 2},
	{X: -30, R: 2},
}

func plateOutline(t testing.TB) []r2.Vec {
	t.Helper()
	verts, err := polyround.Outline(plate, 8)
	if err != nil {
		t.Fatal(err)
	}
	return verts
}

func TestWriteImagePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := render.WriteImage(&buf, "png", plateOutline(t)); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("output does not start with the png signature")
	}
}

func TestWriteImageDeterministic(t *testing.T) {
	pts, err := polyround.Resolve(plate)
	if err != nil {
		t.Fatal(err)
	}
	turned, _, err := polyround.Polygonize(polyround.Rotate(pts, math.Pi/4), 8)
	if err != nil {
		t.Fatal(err)
	}
	var b1, b2 bytes.Buffer
	if err := render.WriteImage(&b1, "png", plateOutline(t), turned); err != nil {
		t.Fatal(err)
	}
	if err := render.WriteImage(&b2, "png", plateOutline(t), turned); err != nil {
		t.Fatal(err)
	}
	equal, err := cmpimg.EqualApprox("png", b1.Bytes(), b2.Bytes(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if !equal {
		t.Error("the same profiles must render to the same image")
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plate.png")
	if err := render.SavePNG(path, plateOutline(t)); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("\x89PNG")) {
		t.Error("saved file is not a png")
	}
}

func TestSaveSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plate.svg")
	if err := render.SaveSVG(path, plateOutline(t)); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "<svg") {
		t.Error("saved file is not an svg")
	}
}

func TestWriteImageErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := render.WriteImage(&buf, "png"); err == nil {
		t.Error("expected an error with no profiles")
	}
	if err := render.WriteImage(&buf, "png", nil); err == nil {
		t.Error("expected an error for an empty profile")
	}
	if err := render.WriteImage(&buf, "bmp", plateOutline(t)); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}
