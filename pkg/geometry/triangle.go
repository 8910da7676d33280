package geometry

import "math"

// TriangleFromSides places a triangle with the given side lengths in the XY
// plane. The first vertex sits at the origin, the second at (a, 0, 0), and
// the third is solved via the law of cosines so that |v2-v3| = b and
// |v3-v1| = c. Side lengths violating the triangle inequality produce NaN
// coordinates; validating the inputs is the caller's responsibility.
func TriangleFromSides(a, b, c float64) [3]Vector3 {
	// Angle at the first vertex, between the a and c sides
	cosAngle := (a*a + c*c - b*b) / (2 * a * c)
	sinAngle := math.Sqrt(1 - cosAngle*cosAngle)

	return [3]Vector3{
		{},
		NewVector3(a, 0, 0),
		NewVector3(c*cosAngle, c*sinAngle, 0),
	}
}
