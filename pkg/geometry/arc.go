package geometry

import "math"

// ArcPoints samples an elliptical arc in the placement's XY plane.
// The arc starts at startAngle and spans sweep radians; each sample is
// (sin(angle)*radiusX, cos(angle)*radiusY, 0) transformed into world space
// by the placement. resolution is the number of segments, so resolution+1
// points are returned. resolution must be >= 1.
func ArcPoints(placement Transform, startAngle, sweep, radiusX, radiusY float64, resolution int) []Vector3 {
	points := make([]Vector3, resolution+1)
	step := sweep / float64(resolution)

	for i := 0; i <= resolution; i++ {
		angle := startAngle + step*float64(i)
		local := NewVector3(math.Sin(angle)*radiusX, math.Cos(angle)*radiusY, 0)
		points[i] = placement.Apply(local)
	}

	return points
}
