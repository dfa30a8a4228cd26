package tubetab_test

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/frk2/tubetab"
	"github.com/frk2/tubetab/doc"
)

func TestExtractTubeHollow(t *testing.T) {
	body := &fakeBody{
		name: "tube",
		faces: []doc.Face{
			cylFace(r3.Vec{X: 1}, r3.Vec{}, 8.5e-3, 0.9),
			cylFace(r3.Vec{X: 1}, r3.Vec{}, 10e-3, 1),
			{Kind: doc.FacePlanar, Area: 5},
		},
	}
	tube, err := tubetab.ExtractTube(body)
	if err != nil {
		t.Fatal(err)
	}
	if tube.OuterRadius != 10e-3 {
		t.Errorf("outer radius %g, want 10e-3", tube.OuterRadius)
	}
	if math.Abs(tube.Wall-1.5e-3) > 1e-12 {
		t.Errorf("wall %g, want 1.5e-3", tube.Wall)
	}
	if tube.AxisDir != (r3.Vec{X: 1}) {
		t.Errorf("axis %v, want +X", tube.AxisDir)
	}
}

func TestExtractTubeSingleRadiusDefaultWall(t *testing.T) {
	body := &fakeBody{
		name:  "rod",
		faces: []doc.Face{cylFace(r3.Vec{Z: 1}, r3.Vec{}, 6e-3, 1)},
	}
	tube, err := tubetab.ExtractTube(body)
	if err != nil {
		t.Fatal(err)
	}
	if tube.Wall != 2e-3 {
		t.Errorf("wall %g, want the 2mm default", tube.Wall)
	}
}

func TestExtractTubeNoCylindricalFace(t *testing.T) {
	body := &fakeBody{name: "block", faces: []doc.Face{{Kind: doc.FacePlanar, Area: 1}}}
	_, err := tubetab.ExtractTube(body)
	if !errors.Is(err, tubetab.ErrSelectionType) {
		t.Errorf("got %v, want ErrSelectionType", err)
	}
}
