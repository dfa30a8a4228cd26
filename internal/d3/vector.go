package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// R3 vector helper routines shared by the joint placement pipeline.

func Elem(sides float64) r3.Vec {
	return r3.Vec{
		X: sides,
		Y: sides,
		Z: sides,
	}
}

func EqualWithin(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

func AbsElem(a r3.Vec) r3.Vec {
	return r3.Vec{
		X: math.Abs(a.X),
		Y: math.Abs(a.Y),
		Z: math.Abs(a.Z),
	}
}

// LineDistance returns the perpendicular distance from p to the infinite
// line through q with unit direction dir.
func LineDistance(p, q, dir r3.Vec) float64 {
	return r3.Norm(r3.Cross(r3.Sub(p, q), dir))
}

// SphericalAngles returns the polar angle from +Z and the azimuthal angle
// from +X of the unit vector n.
func SphericalAngles(n r3.Vec) (theta, phi float64) {
	theta = math.Acos(clamp(n.Z, -1, 1))
	phi = math.Atan2(n.Y, n.X)
	return theta, phi
}

// Frame returns two unit vectors completing a right-handed orthonormal
// basis with n, such that x×y = n. The basis is the image of the world
// axes under RotZ(phi)*RotY(theta) with n as the rotated Z axis, so
// frames built here agree with rotation matrices composed from the same
// angles.
func Frame(n r3.Vec) (x, y r3.Vec) {
	theta, phi := SphericalAngles(n)
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	x = r3.Vec{X: cp * ct, Y: sp * ct, Z: -st}
	y = r3.Vec{X: -sp, Y: cp}
	return x, y
}

// Clamp x between a and b, assume a <= b
func clamp(x, a, b float64) float64 {
	return math.Min(b, math.Max(x, a))
}
