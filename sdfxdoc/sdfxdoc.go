// Package sdfxdoc is an in-memory doc.Document backed by the
// github.com/deadsy/sdfx geometry kernel. Tube bodies, boss extrusions
// and cuts are realized as signed distance solids so the joint
// pipeline's output can be evaluated, meshed and exported. It plays the
// role of the host CAD document a production deployment would adapt.
package sdfxdoc

import (
	"errors"
	"fmt"

	sdfxrender "github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/frk2/tubetab/doc"
	"github.com/frk2/tubetab/internal/d2"
	"github.com/frk2/tubetab/internal/d3"
	"github.com/frk2/tubetab/render"
)

// defaultMeshCells controls marching cubes tessellation resolution.
const defaultMeshCells = 200

// Compile-time interface check.
var _ doc.Document = (*Document)(nil)

// Document is an in-memory feature tree whose bodies carry sdfx solids.
type Document struct {
	features []*doc.Feature
	defaults []doc.Plane
	bodies   []*Body
}

// New returns an empty document with the three default reference
// planes.
func New() *Document {
	return &Document{
		defaults: []doc.Plane{
			doc.NewPlane("Front", r3.Vec{}, r3.Vec{Z: 1}),
			doc.NewPlane("Top", r3.Vec{}, r3.Vec{Y: 1}),
			doc.NewPlane("Right", r3.Vec{}, r3.Vec{X: 1}),
		},
	}
}

// Features returns the top-level features in creation order.
func (d *Document) Features() []*doc.Feature { return d.features }

// DefaultPlanes returns the document default reference planes.
func (d *Document) DefaultPlanes() []doc.Plane { return d.defaults }

// Bodies returns the document's solid bodies in creation order.
func (d *Document) Bodies() []*Body { return d.bodies }

// Body is a solid tube body with analytic face data and a realized sdfx
// solid. Pending boss and cut operations accumulate until Rebuild.
type Body struct {
	name      string
	faces     []doc.Face
	structure *doc.Feature
	base      sdf.SDF3
	solid     sdf.SDF3
	ops       []bodyOp
}

type bodyOp struct {
	tool sdf.SDF3
	cut  bool
}

func (b *Body) Name() string            { return b.name }
func (b *Body) Faces() []doc.Face       { return b.faces }
func (b *Body) Structure() *doc.Feature { return b.structure }

// Evaluate returns the signed distance from p to the body's rebuilt
// solid. Negative means inside.
func (b *Body) Evaluate(p r3.Vec) float64 {
	return b.solid.Evaluate(v3.Vec{X: p.X, Y: p.Y, Z: p.Z})
}

// Triangles meshes the body's rebuilt solid with marching cubes. A
// cells value of 0 selects the default resolution.
func (b *Body) Triangles(cells int) []render.Triangle3 {
	if cells <= 0 {
		cells = defaultMeshCells
	}
	return toTriangles(b.solid, cells)
}

// TubeSpec describes a tube body to add to a document. Lengths are
// meters.
type TubeSpec struct {
	Name        string
	Start, End  r3.Vec // axis segment the tube follows
	OuterRadius float64
	Wall        float64 // 0 for a solid rod
}

// AddTube builds a tube body along its axis segment. The body gets a
// member feature with a construction profile holding the axis line and
// a cross-section reference plane at the segment start, mirroring how a
// weldment tube carries its path sketch.
func (d *Document) AddTube(ts TubeSpec) (*Body, error) {
	length := r3.Norm(r3.Sub(ts.End, ts.Start))
	if length == 0 {
		return nil, fmt.Errorf("tube %s: zero length axis", ts.Name)
	}
	if ts.OuterRadius <= 0 {
		return nil, fmt.Errorf("tube %s: outer radius must be positive", ts.Name)
	}
	if ts.Wall < 0 || ts.Wall >= ts.OuterRadius {
		return nil, fmt.Errorf("tube %s: wall %g outside [0, outer radius)", ts.Name, ts.Wall)
	}
	axisDir := r3.Unit(r3.Sub(ts.End, ts.Start))

	solid, err := tubeSolid(ts, length, axisDir)
	if err != nil {
		return nil, err
	}

	xsec := doc.NewPlane(ts.Name+" cross section", ts.Start, axisDir)
	member := &doc.Feature{
		Kind: doc.KindMember,
		Name: ts.Name,
		Sub: []*doc.Feature{
			{
				Kind: doc.KindProfile,
				Name: ts.Name + " path",
				Lines: []doc.Line{{
					Sketch:  ts.Name + " path",
					Segment: 0,
					Start:   ts.Start,
					End:     ts.End,
				}},
			},
			{Kind: doc.KindPlane, Name: xsec.Name, Plane: &xsec},
		},
	}
	d.features = append(d.features, member)

	body := &Body{
		name:      ts.Name,
		faces:     tubeFaces(ts, length, axisDir),
		structure: member,
		base:      solid,
		solid:     solid,
	}
	d.bodies = append(d.bodies, body)
	return body, nil
}

// tubeSolid realizes the hollow cylinder along its axis. The bore
// overshoots the tube length so the ends are open.
func tubeSolid(ts TubeSpec, length float64, axisDir r3.Vec) (sdf.SDF3, error) {
	outer, err := sdf.Cylinder3D(length, ts.OuterRadius, 0)
	if err != nil {
		return nil, fmt.Errorf("tube %s: %w", ts.Name, err)
	}
	solid := outer
	if ts.Wall > 0 {
		bore, err := sdf.Cylinder3D(length+2*ts.OuterRadius, ts.OuterRadius-ts.Wall, 0)
		if err != nil {
			return nil, fmt.Errorf("tube %s: %w", ts.Name, err)
		}
		solid = sdf.Difference3D(outer, bore)
	}
	mid := r3.Scale(0.5, r3.Add(ts.Start, ts.End))
	return sdf.Transform3D(solid, frameTransform(mid, axisDir, 0)), nil
}

// tubeFaces builds the analytic face table for a tube body.
func tubeFaces(ts TubeSpec, length float64, axisDir r3.Vec) []doc.Face {
	const twoPi = 2 * 3.141592653589793
	faces := []doc.Face{{
		Kind:   doc.FaceCylindrical,
		Axis:   axisDir,
		Origin: ts.Start,
		Radius: ts.OuterRadius,
		Area:   twoPi * ts.OuterRadius * length,
	}}
	inner := ts.OuterRadius - ts.Wall
	if ts.Wall > 0 {
		faces = append(faces, doc.Face{
			Kind:   doc.FaceCylindrical,
			Axis:   axisDir,
			Origin: ts.Start,
			Radius: inner,
			Area:   twoPi * inner * length,
		})
	}
	capArea := twoPi / 2 * (ts.OuterRadius*ts.OuterRadius - inner*inner)
	for _, at := range []r3.Vec{ts.Start, ts.End} {
		faces = append(faces, doc.Face{
			Kind:   doc.FacePlanar,
			Axis:   axisDir,
			Origin: at,
			Area:   capArea,
		})
	}
	return faces
}

// sketch accumulates a closed 2D boundary on a plane.
type sketch struct {
	plane doc.Plane
	verts []r2.Vec
	arcs  int
	lines int
}

const sketchArcFacets = 20

func (s *sketch) push(v r2.Vec) {
	if n := len(s.verts); n > 0 && d2.EqualWithin(s.verts[n-1], v, 1e-12) {
		return
	}
	s.verts = append(s.verts, v)
}

func (s *sketch) Arc(center r2.Vec, radius, start, end float64) {
	for i := 0; i <= sketchArcFacets; i++ {
		a := start + (end-start)*float64(i)/sketchArcFacets
		s.push(r2.Add(center, d2.PolarVec(radius, a)))
	}
	s.arcs++
}

func (s *sketch) Line(a, b r2.Vec) {
	s.push(a)
	s.push(b)
	s.lines++
}

// NewSketch opens a sketch on the given plane.
func (d *Document) NewSketch(p doc.Plane) (doc.Sketch, error) {
	return &sketch{plane: p}, nil
}

// BossExtrude realizes a sketch as a boss merged into the target body.
func (d *Document) BossExtrude(s doc.Sketch, target doc.Body, x doc.Extrusion) error {
	return d.extrude(s, target, x, false)
}

// CutExtrude realizes a sketch as a cut scoped to the target body.
func (d *Document) CutExtrude(s doc.Sketch, target doc.Body, x doc.Extrusion) error {
	return d.extrude(s, target, x, true)
}

func (d *Document) extrude(s doc.Sketch, target doc.Body, x doc.Extrusion, cut bool) error {
	sk, ok := s.(*sketch)
	if !ok {
		return errors.New("sketch was not created by this document")
	}
	body, ok := target.(*Body)
	if !ok {
		return errors.New("target body does not belong to this document")
	}
	if x.Depth <= 0 {
		return fmt.Errorf("extrusion depth %g must be positive", x.Depth)
	}
	tool, err := sk.extrusionSolid(x)
	if err != nil {
		return err
	}
	body.ops = append(body.ops, bodyOp{tool: tool, cut: cut})

	kind := "boss"
	if cut {
		kind = "cut"
	}
	d.features = append(d.features,
		&doc.Feature{Kind: doc.KindProfile, Name: fmt.Sprintf("%s %s sketch %d", body.name, kind, len(d.features))},
		&doc.Feature{Kind: doc.KindOther, Name: fmt.Sprintf("%s %s %d", body.name, kind, len(d.features))},
	)
	return nil
}

// extrusionSolid extrudes the sketch boundary along the plane normal
// per the extrusion start condition, then places it with the plane
// frame.
func (sk *sketch) extrusionSolid(x doc.Extrusion) (sdf.SDF3, error) {
	if len(sk.verts) < 3 {
		return nil, errors.New("sketch boundary has fewer than 3 vertices")
	}
	verts := sk.verts
	// Polygon2D closes the loop itself.
	if d2.EqualWithin(verts[0], verts[len(verts)-1], 1e-12) {
		verts = verts[:len(verts)-1]
	}
	poly := make([]v2.Vec, len(verts))
	for i, v := range verts {
		poly[i] = v2.Vec{X: v.X, Y: v.Y}
	}
	profile, err := sdf.Polygon2D(poly)
	if err != nil {
		return nil, err
	}
	prism := sdf.Extrude3D(profile, x.Depth)

	sign := 1.0
	if x.Flip {
		sign = -1
	}
	start := 0.0
	if x.Start == doc.StartOffset {
		start = sign * x.Offset
	}
	// Extrude3D spans [-depth/2, depth/2] about the sketch plane; shift
	// so the blind extrusion grows from the start position.
	local := start + sign*x.Depth/2
	return sdf.Transform3D(prism, frameTransform(sk.plane.Origin, sk.plane.Z, local)), nil
}

// Rebuild applies pending boss and cut operations to every body, in the
// order the features were created.
func (d *Document) Rebuild() error {
	for _, b := range d.bodies {
		s := b.base
		for _, op := range b.ops {
			if op.cut {
				s = sdf.Difference3D(s, op.tool)
			} else {
				s = sdf.Union3D(s, op.tool)
			}
		}
		b.solid = s
	}
	return nil
}

// Triangles meshes every body in the document.
func (d *Document) Triangles(cells int) []render.Triangle3 {
	var model []render.Triangle3
	for _, b := range d.bodies {
		model = append(model, b.Triangles(cells)...)
	}
	return model
}

// frameTransform maps solid-local coordinates into world space: first a
// translation of localZ along the local Z axis, then the rotation
// taking Z to the given normal, then a translation to origin. The
// rotation matches the frames produced by doc.NewPlane.
func frameTransform(origin, normal r3.Vec, localZ float64) sdf.M44 {
	theta, phi := d3.SphericalAngles(normal)
	m := sdf.Translate3d(v3.Vec{X: origin.X, Y: origin.Y, Z: origin.Z})
	m = m.Mul(sdf.RotateZ(phi))
	m = m.Mul(sdf.RotateY(theta))
	return m.Mul(sdf.Translate3d(v3.Vec{Z: localZ}))
}

func toTriangles(s sdf.SDF3, cells int) []render.Triangle3 {
	mesher := sdfxrender.NewMarchingCubesUniform(cells)
	tris := sdfxrender.ToTriangles(s, mesher)
	model := make([]render.Triangle3, len(tris))
	for i, t := range tris {
		for j := 0; j < 3; j++ {
			model[i].V[j] = r3.Vec{X: t[j].X, Y: t[j].Y, Z: t[j].Z}
		}
	}
	return model
}
