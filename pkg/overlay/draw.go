package overlay

import "github.com/philipparndt/godraw/pkg/geometry"

// Public drawing API. Every entry point is fire-and-forget: it applies the
// package defaults, captures its arguments by value, and enqueues exactly
// one deferred command for the next repaint. Nothing is projected or
// painted until the host calls Repainted.

// DrawPoint draws a small three-axis cross of the given size centered at
// position
func (s *System) DrawPoint(position geometry.Vector3, size float64, opts ...Option) {
	s.enqueue(command{
		kind: cmdPoint,
		from: position,
		size: size,
		opts: applyOptions(opts),
	})
}

// DrawLine draws a line segment between two world-space points
func (s *System) DrawLine(from, to geometry.Vector3, opts ...Option) {
	s.enqueue(command{
		kind: cmdLine,
		from: from,
		to:   to,
		opts: applyOptions(opts),
	})
}

// DrawArrow draws a direction arrow from one point to another: a shaft line
// with a cone head at the tip
func (s *System) DrawArrow(from, to geometry.Vector3, opts ...Option) {
	s.enqueue(command{
		kind: cmdArrow,
		from: from,
		to:   to,
		opts: applyOptions(opts),
	})
}

// DrawPolyline draws connected segments through the given points. The
// points are copied, so the caller may reuse the slice.
func (s *System) DrawPolyline(points []geometry.Vector3, opts ...Option) {
	captured := make([]geometry.Vector3, len(points))
	copy(captured, points)
	s.enqueue(command{
		kind:   cmdPolyline,
		points: captured,
		opts:   applyOptions(opts),
	})
}

// DrawArc draws an elliptical arc in the placement's XY plane, starting at
// startAngle and sweeping sweep radians
func (s *System) DrawArc(placement geometry.Transform, startAngle, sweep, radiusX, radiusY float64, opts ...Option) {
	s.enqueue(command{
		kind:       cmdArc,
		placement:  placement,
		startAngle: startAngle,
		sweep:      sweep,
		radiusX:    radiusX,
		radiusY:    radiusY,
		opts:       applyOptions(opts),
	})
}

// DrawEllipse draws a full ellipse in the placement's XY plane
func (s *System) DrawEllipse(placement geometry.Transform, radiusX, radiusY float64, opts ...Option) {
	s.DrawArc(placement, 0, fullSweep, radiusX, radiusY, opts...)
}

// DrawCircle draws a circle of the given radius in the placement's XY plane
func (s *System) DrawCircle(placement geometry.Transform, radius float64, opts ...Option) {
	s.DrawArc(placement, 0, fullSweep, radius, radius, opts...)
}

// DrawHemisphere draws a wireframe hemisphere: the base circle, two
// vertical rib arcs, and the silhouette contour
func (s *System) DrawHemisphere(placement geometry.Transform, radius float64, opts ...Option) {
	s.enqueue(command{
		kind:      cmdHemisphere,
		placement: placement,
		radiusX:   radius,
		opts:      applyOptions(opts),
	})
}

// DrawSphere draws a wireframe sphere: three great circles and the
// silhouette contour
func (s *System) DrawSphere(placement geometry.Transform, radius float64, opts ...Option) {
	s.enqueue(command{
		kind:      cmdSphere,
		placement: placement,
		radiusX:   radius,
		opts:      applyOptions(opts),
	})
}

// DrawCylinder draws a wireframe cylinder centered on the placement with
// its axis along local Y: the two cap circles and the silhouette contour
func (s *System) DrawCylinder(placement geometry.Transform, radius, height float64, opts ...Option) {
	s.enqueue(command{
		kind:      cmdCylinder,
		placement: placement,
		radiusX:   radius,
		height:    height,
		opts:      applyOptions(opts),
	})
}

// DrawCapsule draws a wireframe capsule between the origins of the start
// and end placements. Coincident origins degrade to a single sphere of the
// same radius.
func (s *System) DrawCapsule(start, end geometry.Transform, radius float64, opts ...Option) {
	s.enqueue(command{
		kind:    cmdCapsule,
		from:    start.Origin,
		to:      end.Origin,
		radiusX: radius,
		opts:    applyOptions(opts),
	})
}

// DrawSquare draws the outline of a square of the given edge length in the
// placement's XZ plane
func (s *System) DrawSquare(placement geometry.Transform, size float64, opts ...Option) {
	s.enqueue(command{
		kind:      cmdSquare,
		placement: placement,
		size:      size,
		opts:      applyOptions(opts),
	})
}

// DrawCube draws the 12 edges of a cube of the given edge length centered
// on the placement
func (s *System) DrawCube(placement geometry.Transform, size float64, opts ...Option) {
	s.enqueue(command{
		kind:      cmdCube,
		placement: placement,
		size:      size,
		opts:      applyOptions(opts),
	})
}

// DrawTriangle draws a triangle with the given side lengths, placed in the
// placement's XY plane via the law of cosines. Side lengths violating the
// triangle inequality produce undefined geometry.
func (s *System) DrawTriangle(placement geometry.Transform, sideA, sideB, sideC float64, opts ...Option) {
	s.enqueue(command{
		kind:      cmdTriangle,
		placement: placement,
		sides:     [3]float64{sideA, sideB, sideC},
		opts:      applyOptions(opts),
	})
}

// DrawPyramid draws a four-sided pyramid: a square base of the given edge
// length in the placement's XZ plane with the apex at local (0, height, 0)
func (s *System) DrawPyramid(placement geometry.Transform, baseSize, height float64, opts ...Option) {
	s.enqueue(command{
		kind:      cmdPyramid,
		placement: placement,
		size:      baseSize,
		height:    height,
		opts:      applyOptions(opts),
	})
}

// DrawCone draws a wireframe cone with its base circle in the placement's
// XZ plane and the apex at local (0, height, 0), plus the silhouette
// contour
func (s *System) DrawCone(placement geometry.Transform, radius, height float64, opts ...Option) {
	s.enqueue(command{
		kind:      cmdCone,
		placement: placement,
		radiusX:   radius,
		height:    height,
		opts:      applyOptions(opts),
	})
}

// DrawText draws text anchored at the projection of a world-space point.
// size is the text height in pixels; lines are separated by '\n'.
func (s *System) DrawText(position geometry.Vector3, text string, size float64, opts ...Option) {
	s.enqueue(command{
		kind: cmdText,
		from: position,
		text: text,
		size: size,
		opts: applyOptions(opts),
	})
}
