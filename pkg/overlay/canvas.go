package overlay

import (
	"image/color"

	"github.com/philipparndt/godraw/pkg/geometry"
)

// Canvas is the 2D drawing surface the overlay system paints onto. The
// system calls RequestRepaint at most once per empty-to-pending queue
// transition; the host is expected to call System.Repainted from its paint
// handler.
type Canvas interface {
	// DrawLine draws a single line segment in screen space
	DrawLine(from, to geometry.Vector2, col color.RGBA, thickness float64, antialiased bool)

	// DrawPolyline draws connected line segments through the given points
	DrawPolyline(points []geometry.Vector2, col color.RGBA, thickness float64, antialiased bool)

	// DrawText draws (possibly multiline) text anchored at the given
	// screen position
	DrawText(pos geometry.Vector2, text string, col color.RGBA, size float64)

	// RequestRepaint asks the host to schedule one canvas repaint
	RequestRepaint()
}

// Camera projects world-space points to screen space. Transform exposes the
// camera's current world placement so results derived from a projection can
// be cached against it.
type Camera interface {
	Project(p geometry.Vector3) geometry.Vector2
	Transform() geometry.Transform
}
