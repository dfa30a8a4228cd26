package tubetab_test

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/frk2/tubetab"
	"github.com/frk2/tubetab/doc"
)

func TestResolvePlaneFromStructure(t *testing.T) {
	d, tab, _ := tubePair()
	pl, err := tubetab.ResolvePlane(tab.Structure(), r3.Vec{X: 1}, d)
	if err != nil {
		t.Fatal(err)
	}
	if pl.Name != "tab tube cross section" {
		t.Errorf("resolved %q, want the tube's own cross section plane", pl.Name)
	}
}

func TestResolvePlaneDefaultFallback(t *testing.T) {
	// A structure plane whose normal is not parallel to the tab axis is
	// skipped; the best aligned default plane wins.
	front := doc.NewPlane("misaligned", r3.Vec{}, r3.Vec{Z: 1})
	member := &doc.Feature{
		Kind: doc.KindMember,
		Name: "tube",
		Sub:  []*doc.Feature{{Kind: doc.KindPlane, Name: front.Name, Plane: &front}},
	}
	d := &fakeDoc{defaults: []doc.Plane{
		doc.NewPlane("Front", r3.Vec{}, r3.Vec{Z: 1}),
		doc.NewPlane("Top", r3.Vec{}, r3.Vec{Y: 1}),
		doc.NewPlane("Right", r3.Vec{}, r3.Vec{X: 1}),
	}}
	pl, err := tubetab.ResolvePlane(member, r3.Vec{X: 1}, d)
	if err != nil {
		t.Fatal(err)
	}
	if pl.Name != "Right" {
		t.Errorf("resolved %q, want Right", pl.Name)
	}
}

func TestResolvePlaneZeroNormalBestEffort(t *testing.T) {
	// A structure plane with no computable normal is accepted anyway.
	degenerate := doc.Plane{Name: "no normal"}
	member := &doc.Feature{
		Kind: doc.KindMember,
		Name: "tube",
		Sub:  []*doc.Feature{{Kind: doc.KindPlane, Name: degenerate.Name, Plane: &degenerate}},
	}
	pl, err := tubetab.ResolvePlane(member, r3.Vec{X: 1}, &fakeDoc{})
	if err != nil {
		t.Fatal(err)
	}
	if pl.Name != "no normal" {
		t.Errorf("resolved %q, want the degenerate plane", pl.Name)
	}
}

func TestResolvePlaneFailure(t *testing.T) {
	_, err := tubetab.ResolvePlane(nil, r3.Vec{X: 1}, &fakeDoc{})
	if !errors.Is(err, tubetab.ErrPlaneResolutionFailure) {
		t.Errorf("got %v, want ErrPlaneResolutionFailure", err)
	}
}

func TestApplyPlaneOffsetsAndSides(t *testing.T) {
	const tol = 1e-12
	p := tubetab.Placement{
		P1:     r3.Vec{X: -0.001},
		P2:     r3.Vec{X: 0.004},
		SlotP1: r3.Vec{X: 0.001, Y: -0.01},
		SlotP2: r3.Vec{X: 0.001, Y: 0.01},
	}
	p.ApplyPlane(doc.NewPlane("xsec", r3.Vec{}, r3.Vec{X: 1}))

	// Raw offsets -0.001 and 0.004 with the -5mm corrective constant
	// subtracted.
	if math.Abs(p.Offset1-0.004) > tol || math.Abs(p.Offset2-0.009) > tol {
		t.Errorf("offsets (%g, %g), want (0.004, 0.009)", p.Offset1, p.Offset2)
	}
	// The slot segment midpoint sits at x=0.001: P1 is closer along
	// the plane normal, so it is the near side.
	nearPt, nearOff := p.Near()
	if nearPt != p.P1 || math.Abs(nearOff-0.004) > tol {
		t.Errorf("near side (%v, %g), want (%v, 0.004)", nearPt, nearOff, p.P1)
	}
	farPt, farOff := p.Far()
	if farPt != p.P2 || math.Abs(farOff-0.009) > tol {
		t.Errorf("far side (%v, %g), want (%v, 0.009)", farPt, farOff, p.P2)
	}
}
