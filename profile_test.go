package tubetab_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/frk2/tubetab"
	"github.com/frk2/tubetab/doc"
	"github.com/frk2/tubetab/internal/d2"
)

func TestProfileContainment(t *testing.T) {
	const (
		outer     = 10e-3
		wall      = 2e-3
		clearance = 0.5e-3
		tol       = 1e-12
	)
	pl := doc.NewPlane("xsec", r3.Vec{}, r3.Vec{X: 1})
	center := r3.Vec{Y: -0.01}
	slotDir := r3.Vec{Y: 1}

	tab := tubetab.GenerateProfile(pl, center, outer, wall, slotDir, false, 0)
	slot := tubetab.GenerateProfile(pl, center, outer, wall, slotDir, false, clearance)

	if math.Abs(tab.OuterRadius-outer) > tol || math.Abs(tab.InnerRadius-(outer-wall)) > tol {
		t.Errorf("tab radii (%g, %g), want (%g, %g)", tab.OuterRadius, tab.InnerRadius, outer, outer-wall)
	}
	if math.Abs(slot.OuterRadius-(outer+clearance)) > tol || math.Abs(slot.InnerRadius-(outer-wall-clearance)) > tol {
		t.Errorf("slot radii (%g, %g), want (%g, %g)",
			slot.OuterRadius, slot.InnerRadius, outer+clearance, outer-wall-clearance)
	}
	tabHalf := (tab.End - tab.Start) / 2
	slotHalf := (slot.End - slot.Start) / 2
	if slotHalf < tabHalf {
		t.Errorf("slot half angle %g smaller than tab half angle %g", slotHalf, tabHalf)
	}
}

func TestProfileFarSide(t *testing.T) {
	const tol = 1e-12
	pl := doc.NewPlane("xsec", r3.Vec{}, r3.Vec{Z: 1})
	slotDir := r3.Vec{Y: 1} // projects to angle pi/2 in the plane frame

	near := tubetab.GenerateProfile(pl, r3.Vec{}, 10e-3, 2e-3, slotDir, false, 0)
	far := tubetab.GenerateProfile(pl, r3.Vec{}, 10e-3, 2e-3, slotDir, true, 0)

	nearBase := (near.Start + near.End) / 2
	farBase := (far.Start + far.End) / 2
	if math.Abs(nearBase-math.Pi/2) > tol {
		t.Errorf("near base angle %g, want pi/2", nearBase)
	}
	if math.Abs(farBase-nearBase-math.Pi) > tol {
		t.Errorf("far base angle %g, want near + pi", farBase)
	}
}

func TestProfileDrawEntities(t *testing.T) {
	pl := doc.NewPlane("xsec", r3.Vec{}, r3.Vec{X: 1})
	p := tubetab.GenerateProfile(pl, r3.Vec{Y: -0.01}, 10e-3, 2e-3, r3.Vec{Y: 1}, false, 0)

	var sk fakeSketch
	p.Draw(&sk)
	if len(sk.arcs) != 2 || sk.lines != 2 {
		t.Fatalf("drew %d arcs and %d lines, want 2 and 2", len(sk.arcs), sk.lines)
	}
	if sk.arcs[0] != p.OuterRadius || sk.arcs[1] != p.InnerRadius {
		t.Errorf("arc radii %v, want outer then inner", sk.arcs)
	}
}

func TestProfileVerticesClosed(t *testing.T) {
	pl := doc.NewPlane("xsec", r3.Vec{}, r3.Vec{X: 1})
	p := tubetab.GenerateProfile(pl, r3.Vec{Y: -0.01}, 10e-3, 2e-3, r3.Vec{Y: 1}, false, 0)

	verts := p.Vertices(16)
	if len(verts) < 7 {
		t.Fatalf("only %d vertices", len(verts))
	}
	if !d2.EqualWithin(verts[0], verts[len(verts)-1], 1e-15) {
		t.Errorf("boundary not closed: %v vs %v", verts[0], verts[len(verts)-1])
	}
}
