package tubetab_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/frk2/tubetab/doc"
)

// fakeBody implements doc.Body from literal face data.
type fakeBody struct {
	name      string
	faces     []doc.Face
	structure *doc.Feature
}

func (b *fakeBody) Name() string            { return b.name }
func (b *fakeBody) Faces() []doc.Face       { return b.faces }
func (b *fakeBody) Structure() *doc.Feature { return b.structure }

// fakeSketch records boundary entities.
type fakeSketch struct {
	arcs  []float64 // radii in call order
	lines int
}

func (s *fakeSketch) Arc(center r2.Vec, radius, start, end float64) {
	s.arcs = append(s.arcs, radius)
}

func (s *fakeSketch) Line(a, b r2.Vec) { s.lines++ }

// fakeDoc implements doc.Document and records every feature-creating
// call in order.
type fakeDoc struct {
	features []*doc.Feature
	defaults []doc.Plane

	events     []string
	extrusions []doc.Extrusion
	rebuilds   int
}

func (d *fakeDoc) Features() []*doc.Feature   { return d.features }
func (d *fakeDoc) DefaultPlanes() []doc.Plane { return d.defaults }

func (d *fakeDoc) NewSketch(p doc.Plane) (doc.Sketch, error) {
	d.events = append(d.events, "sketch")
	return &fakeSketch{}, nil
}

func (d *fakeDoc) BossExtrude(s doc.Sketch, target doc.Body, x doc.Extrusion) error {
	d.events = append(d.events, fmt.Sprintf("boss %s", target.Name()))
	d.extrusions = append(d.extrusions, x)
	return nil
}

func (d *fakeDoc) CutExtrude(s doc.Sketch, target doc.Body, x doc.Extrusion) error {
	d.events = append(d.events, fmt.Sprintf("cut %s", target.Name()))
	d.extrusions = append(d.extrusions, x)
	return nil
}

func (d *fakeDoc) Rebuild() error {
	d.rebuilds++
	return nil
}

// cylFace is a cylindrical face helper.
func cylFace(axis, origin r3.Vec, radius, area float64) doc.Face {
	return doc.Face{
		Kind:   doc.FaceCylindrical,
		Axis:   axis,
		Origin: origin,
		Radius: radius,
		Area:   area,
	}
}

// tubeMember builds a member feature holding a path profile with the
// given axis line and a cross-section plane at the line start.
func tubeMember(name string, axis doc.Line) *doc.Feature {
	xsec := doc.NewPlane(name+" cross section", axis.Start, axis.Direction())
	return &doc.Feature{
		Kind: doc.KindMember,
		Name: name,
		Sub: []*doc.Feature{
			{Kind: doc.KindProfile, Name: axis.Sketch, Lines: []doc.Line{axis}},
			{Kind: doc.KindPlane, Name: xsec.Name, Plane: &xsec},
		},
	}
}

// tubePair builds a fake document with a perpendicular tab/slot tube
// pair: tab along X with radius 10mm, slot along Y with radius 8mm.
func tubePair() (*fakeDoc, *fakeBody, *fakeBody) {
	tabAxis := doc.Line{Sketch: "tab path", Start: r3.Vec{X: -0.1}, End: r3.Vec{X: 0.1}}
	slotAxis := doc.Line{Sketch: "slot path", Start: r3.Vec{Y: -0.1}, End: r3.Vec{Y: 0.1}}
	tabMember := tubeMember("tab tube", tabAxis)
	slotMember := tubeMember("slot tube", slotAxis)

	tab := &fakeBody{
		name: "tab tube",
		faces: []doc.Face{
			cylFace(r3.Vec{X: 1}, r3.Vec{}, 10e-3, 1),
			cylFace(r3.Vec{X: 1}, r3.Vec{}, 8.5e-3, 0.9),
		},
		structure: tabMember,
	}
	slot := &fakeBody{
		name: "slot tube",
		faces: []doc.Face{
			cylFace(r3.Vec{Y: 1}, r3.Vec{}, 8e-3, 1),
			cylFace(r3.Vec{Y: 1}, r3.Vec{}, 6.5e-3, 0.9),
		},
		structure: slotMember,
	}
	d := &fakeDoc{
		features: []*doc.Feature{tabMember, slotMember},
		defaults: []doc.Plane{
			doc.NewPlane("Front", r3.Vec{}, r3.Vec{Z: 1}),
			doc.NewPlane("Top", r3.Vec{}, r3.Vec{Y: 1}),
			doc.NewPlane("Right", r3.Vec{}, r3.Vec{X: 1}),
		},
	}
	return d, tab, slot
}
