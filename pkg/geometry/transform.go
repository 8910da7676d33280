package geometry

import "math"

// Epsilon is the tolerance used for approximate float comparisons
// throughout the package.
const Epsilon = 1e-6

// ApproxEqualFloat reports whether two floats are equal within Epsilon
func ApproxEqualFloat(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// Transform represents the placement of a local coordinate frame in world
// space: a 3x3 basis (the X, Y, Z column vectors) plus an origin. The basis
// may carry rotation and scale.
type Transform struct {
	X, Y, Z Vector3 // basis column vectors
	Origin  Vector3
}

// Identity returns the identity transform at the world origin
func Identity() Transform {
	return Transform{
		X: NewVector3(1, 0, 0),
		Y: NewVector3(0, 1, 0),
		Z: NewVector3(0, 0, 1),
	}
}

// At returns an identity-basis transform placed at the given origin
func At(origin Vector3) Transform {
	t := Identity()
	t.Origin = origin
	return t
}

// Apply transforms a local-space point into world space
func (t Transform) Apply(p Vector3) Vector3 {
	return t.X.Mul(p.X).
		Add(t.Y.Mul(p.Y)).
		Add(t.Z.Mul(p.Z)).
		Add(t.Origin)
}

// ApproxEqual reports whether two transforms are equal within Epsilon
func (t Transform) ApproxEqual(other Transform) bool {
	return t.X.ApproxEqual(other.X) &&
		t.Y.ApproxEqual(other.Y) &&
		t.Z.ApproxEqual(other.Z) &&
		t.Origin.ApproxEqual(other.Origin)
}

// Scaled returns the transform with its basis uniformly scaled
func (t Transform) Scaled(s float64) Transform {
	return Transform{
		X:      t.X.Mul(s),
		Y:      t.Y.Mul(s),
		Z:      t.Z.Mul(s),
		Origin: t.Origin,
	}
}

// Between returns a transform centered between two points with its Y axis
// pointing from a to b, along with the distance between them. A degenerate
// (zero-length) axis yields an identity basis at a.
func Between(a, b Vector3) (Transform, float64) {
	axis := b.Sub(a)
	length := axis.Length()
	if length <= Epsilon {
		return At(a), 0
	}

	y := axis.Mul(1 / length)
	x := y.Perpendicular()
	z := x.Cross(y).Normalize()

	return Transform{
		X:      x,
		Y:      y,
		Z:      z,
		Origin: a.Lerp(b, 0.5),
	}, length
}
