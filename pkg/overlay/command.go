package overlay

import "github.com/philipparndt/godraw/pkg/geometry"

// commandKind tags a queued draw command with the shape it renders
type commandKind int

const (
	cmdPoint commandKind = iota
	cmdLine
	cmdArrow
	cmdPolyline
	cmdArc
	cmdSphere
	cmdHemisphere
	cmdCylinder
	cmdCapsule
	cmdSquare
	cmdCube
	cmdTriangle
	cmdPyramid
	cmdCone
	cmdText
)

// command is one deferred draw action. All shape parameters are captured by
// value at enqueue time; projection and silhouette lookups happen at drain
// time against the then-current camera. Only the fields relevant to the
// tagged kind are meaningful.
type command struct {
	kind commandKind

	placement geometry.Transform
	from, to  geometry.Vector3
	points    []geometry.Vector3

	startAngle float64
	sweep      float64
	radiusX    float64
	radiusY    float64
	height     float64
	size       float64
	sides      [3]float64
	text       string

	opts Options
}
