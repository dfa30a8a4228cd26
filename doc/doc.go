// Package doc defines the capability surface the joint pipeline needs
// from a host CAD document: an ordered feature tree to inspect, bodies
// with face data, and commands to create sketches and extrusions.
// Implementations (such as sdfxdoc) provide the geometry behind this
// interface; the pipeline never holds document state of its own.
package doc

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// FeatureKind is a closed tag over the feature kinds the pipeline
// distinguishes. Anything else in a document's tree is KindOther.
type FeatureKind uint8

const (
	// KindOther is any feature the pipeline does not inspect.
	KindOther FeatureKind = iota
	// KindProfile is a sketch bearing construction line segments.
	KindProfile
	// KindPlane is a reference plane.
	KindPlane
	// KindMember is a structural member: a tube body together with the
	// construction sub-tree it was built from.
	KindMember
)

// Feature is one entry of a document's feature tree. Documents expose
// features as an explicit ordered slice in creation order; there is no
// traversal state to mutate. The payload fields other than the one
// selected by Kind are zero.
type Feature struct {
	Kind  FeatureKind
	Name  string
	Lines []Line     // KindProfile: sketch line segments
	Plane *Plane     // KindPlane
	Sub   []*Feature // KindMember: construction sub-tree
}

// ProfileLines returns all construction line segments in f's sub-tree,
// including f itself, in creation order.
func (f *Feature) ProfileLines() []Line {
	if f == nil {
		return nil
	}
	var lines []Line
	if f.Kind == KindProfile {
		lines = append(lines, f.Lines...)
	}
	for _, sub := range f.Sub {
		lines = append(lines, sub.ProfileLines()...)
	}
	return lines
}

// Planes returns all reference planes in f's sub-tree, including f
// itself, in creation order.
func (f *Feature) Planes() []Plane {
	if f == nil {
		return nil
	}
	var planes []Plane
	if f.Kind == KindPlane && f.Plane != nil {
		planes = append(planes, *f.Plane)
	}
	for _, sub := range f.Sub {
		planes = append(planes, sub.Planes()...)
	}
	return planes
}

// Line is a construction line segment with its source identity. Sketch
// and Segment together identify the segment within the document; two
// tube bodies sharing the same identity share an axis.
type Line struct {
	Sketch     string
	Segment    int
	Start, End r3.Vec
}

// Direction returns the unit direction of the line, or the zero vector
// for a degenerate segment.
func (l Line) Direction() r3.Vec {
	d := r3.Sub(l.End, l.Start)
	if r3.Norm(d) == 0 {
		return r3.Vec{}
	}
	return r3.Unit(d)
}

// SameIdentity reports whether l and o refer to the same source sketch
// segment.
func (l Line) SameIdentity(o Line) bool {
	return l.Sketch == o.Sketch && l.Segment == o.Segment
}

// Plane is a reference plane with its placement frame. X, Y and Z are
// the unit axes of the plane's local frame; Z is the plane normal.
type Plane struct {
	Name    string
	Origin  r3.Vec
	X, Y, Z r3.Vec
}

// To2D projects a world point into the plane's local XY coordinates.
func (p Plane) To2D(pt r3.Vec) r2.Vec {
	d := r3.Sub(pt, p.Origin)
	return r2.Vec{X: r3.Dot(d, p.X), Y: r3.Dot(d, p.Y)}
}

// To3D maps local plane coordinates and a normal offset back to world
// space.
func (p Plane) To3D(v r2.Vec, z float64) r3.Vec {
	w := p.Origin
	w = r3.Add(w, r3.Scale(v.X, p.X))
	w = r3.Add(w, r3.Scale(v.Y, p.Y))
	w = r3.Add(w, r3.Scale(z, p.Z))
	return w
}

// FaceKind tags the surface type of a body face.
type FaceKind uint8

const (
	FaceOther FaceKind = iota
	FaceCylindrical
	FacePlanar
)

// Face is surface data for one face of a body. Axis, Origin and Radius
// are meaningful for cylindrical faces only.
type Face struct {
	Kind   FaceKind
	Axis   r3.Vec // unit axis direction
	Origin r3.Vec // point on the axis
	Radius float64
	Area   float64
}

// Body is a handle to a solid body in a document.
type Body interface {
	Name() string
	Faces() []Face
	// Structure returns the member feature the body was built under, or
	// nil when the body has no construction sub-tree.
	Structure() *Feature
}

// StartCondition selects where an extrusion begins relative to its
// sketch plane.
type StartCondition uint8

const (
	// StartAtPlane begins the extrusion on the sketch plane.
	StartAtPlane StartCondition = iota
	// StartOffset begins the extrusion Offset away from the sketch
	// plane, on the side selected by Flip.
	StartOffset
)

// Extrusion is the parameter set for one boss-extrude or cut feature.
// Lengths are in meters. The target body is passed alongside the spec;
// extrusions never auto-select other bodies in the document.
type Extrusion struct {
	Start  StartCondition
	Offset float64 // offset magnitude, used when Start == StartOffset
	Flip   bool    // offset (and extrusion) on the negative normal side
	Depth  float64 // blind extrusion depth
	Merge  bool    // merge result into the target body (boss only)
}

// Sketch receives the 2D boundary entities of one profile, in plane
// local coordinates. Angles are radians from the plane X axis.
type Sketch interface {
	Arc(center r2.Vec, radius, start, end float64)
	Line(a, b r2.Vec)
}

// Document is the feature-tree adapter. All mutation happens through
// this single sequential caller; implementations are not required to be
// safe for concurrent use.
type Document interface {
	// Features returns the document's top-level features in creation
	// order. The returned slice must not be mutated.
	Features() []*Feature
	// DefaultPlanes returns the document's default reference planes.
	DefaultPlanes() []Plane
	// NewSketch opens a sketch on the given plane.
	NewSketch(p Plane) (Sketch, error)
	// BossExtrude realizes a sketch as a boss extrusion on target and
	// appends the corresponding features to the tree.
	BossExtrude(s Sketch, target Body, x Extrusion) error
	// CutExtrude realizes a sketch as a cut on target and appends the
	// corresponding features to the tree.
	CutExtrude(s Sketch, target Body, x Extrusion) error
	// Rebuild regenerates document geometry after feature creation.
	Rebuild() error
}
