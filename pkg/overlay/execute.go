package overlay

import (
	"fmt"
	"math"

	"github.com/philipparndt/godraw/pkg/geometry"
)

const fullSweep = 2 * math.Pi

// Arrow head proportions relative to the shaft length
const (
	arrowHeadLength = 0.2
	arrowHeadRadius = 0.08
)

// execute runs one drained command: generation, projection, optional
// silhouette lookup, and delegation to the canvas primitives. Composite
// shapes decompose here, at drain time, by calling the shared helpers.
func (s *System) execute(c *command) error {
	o := c.opts

	switch c.kind {
	case cmdPoint:
		half := c.size / 2
		for _, axis := range []geometry.Vector3{
			geometry.NewVector3(half, 0, 0),
			geometry.NewVector3(0, half, 0),
			geometry.NewVector3(0, 0, half),
		} {
			s.strokeLine(c.from.Sub(axis), c.from.Add(axis), o)
		}
		return nil

	case cmdLine:
		s.strokeLine(c.from, c.to, o)
		return nil

	case cmdArrow:
		return s.executeArrow(c.from, c.to, o)

	case cmdPolyline:
		s.strokePath(c.points, o)
		return nil

	case cmdArc:
		return s.executeArc(c.placement, c.startAngle, c.sweep, c.radiusX, c.radiusY, o)

	case cmdSphere:
		return s.executeSphere(c.placement, c.radiusX, o)

	case cmdHemisphere:
		return s.executeHemisphere(c.placement, c.radiusX, o)

	case cmdCylinder:
		return s.executeCylinder(c.placement, c.radiusX, c.height, o)

	case cmdCapsule:
		return s.executeCapsule(c.from, c.to, c.radiusX, o)

	case cmdSquare:
		corners := squareCorners(c.placement, c.size)
		s.strokePath(closed(corners[:]), o)
		return nil

	case cmdCube:
		s.executeCube(c.placement, c.size, o)
		return nil

	case cmdTriangle:
		verts := geometry.TriangleFromSides(c.sides[0], c.sides[1], c.sides[2])
		points := make([]geometry.Vector3, 3)
		for i, v := range verts {
			points[i] = c.placement.Apply(v)
		}
		s.strokePath(closed(points), o)
		return nil

	case cmdPyramid:
		return s.executePyramid(c.placement, c.size, c.height, o)

	case cmdCone:
		return s.executeCone(c.placement, c.radiusX, c.height, o)

	case cmdText:
		s.canvas.DrawText(s.camera.Project(c.from), c.text, o.Color, c.size)
		return nil
	}

	return fmt.Errorf("overlay: unknown command kind %d", c.kind)
}

// executeArrow draws a shaft line plus a cone head whose apex sits at the
// tip
func (s *System) executeArrow(from, to geometry.Vector3, o Options) error {
	length := from.Distance(to)
	if length <= geometry.Epsilon {
		return nil
	}

	headLength := length * arrowHeadLength
	dir := to.Sub(from).Mul(1 / length)
	base := to.Sub(dir.Mul(headLength))

	s.strokeLine(from, base, o)

	head, _ := geometry.Between(base, to)
	head.Origin = base
	return s.executeCone(head, length*arrowHeadRadius, headLength, o)
}

// executeArc samples the arc and strokes it as one polyline
func (s *System) executeArc(placement geometry.Transform, startAngle, sweep, radiusX, radiusY float64, o Options) error {
	if err := checkResolution(o.Resolution); err != nil {
		return err
	}
	points := geometry.ArcPoints(placement, startAngle, sweep, radiusX, radiusY, o.Resolution)
	s.strokePath(points, o)
	return nil
}

// executeSphere draws three orthogonal great circles and the silhouette
// contour
func (s *System) executeSphere(placement geometry.Transform, radius float64, o Options) error {
	if err := checkResolution(o.Resolution); err != nil {
		return err
	}

	for _, plane := range []geometry.Transform{
		planeXY(placement, placement.Origin),
		planeXZ(placement, placement.Origin),
		planeYZ(placement, placement.Origin),
	} {
		if err := s.executeArc(plane, 0, fullSweep, radius, radius, o); err != nil {
			return err
		}
	}

	if o.Contour {
		s.strokeContour(solidSphere, solidParams{
			radius:   radius,
			rings:    solidRings(o.Resolution),
			segments: o.Resolution,
		}, placement, o)
	}
	return nil
}

// executeHemisphere draws the base circle, two vertical rib arcs over the
// dome, and the silhouette contour
func (s *System) executeHemisphere(placement geometry.Transform, radius float64, o Options) error {
	if err := checkResolution(o.Resolution); err != nil {
		return err
	}

	if err := s.executeArc(planeXZ(placement, placement.Origin), 0, fullSweep, radius, radius, o); err != nil {
		return err
	}

	// Rib arcs sweep pole to pole through the top of the dome
	ribs := []geometry.Transform{
		planeXY(placement, placement.Origin),
		planeZY(placement, placement.Origin),
	}
	for _, rib := range ribs {
		if err := s.executeArc(rib, -math.Pi/2, math.Pi, radius, radius, o); err != nil {
			return err
		}
	}

	if o.Contour {
		s.strokeContour(solidHemisphere, solidParams{
			radius:   radius,
			rings:    solidRings(o.Resolution),
			segments: o.Resolution,
		}, placement, o)
	}
	return nil
}

// executeCylinder draws the two cap circles and the silhouette contour
func (s *System) executeCylinder(placement geometry.Transform, radius, height float64, o Options) error {
	if err := checkResolution(o.Resolution); err != nil {
		return err
	}

	half := height / 2
	for _, y := range []float64{half, -half} {
		center := placement.Apply(geometry.NewVector3(0, y, 0))
		if err := s.executeArc(planeXZ(placement, center), 0, fullSweep, radius, radius, o); err != nil {
			return err
		}
	}

	if o.Contour {
		s.strokeContour(solidCylinder, solidParams{
			radius:   radius,
			height:   height,
			segments: o.Resolution,
		}, placement, o)
	}
	return nil
}

// executeCapsule draws a capsule between two points: cap circles, side
// lines, and the silhouette contour. Coincident endpoints degrade to a
// single sphere.
func (s *System) executeCapsule(from, to geometry.Vector3, radius float64, o Options) error {
	placement, height := geometry.Between(from, to)
	if height <= geometry.Epsilon {
		return s.executeSphere(geometry.At(from), radius, o)
	}

	if err := checkResolution(o.Resolution); err != nil {
		return err
	}

	half := height / 2
	for _, y := range []float64{half, -half} {
		center := placement.Apply(geometry.NewVector3(0, y, 0))
		if err := s.executeArc(planeXZ(placement, center), 0, fullSweep, radius, radius, o); err != nil {
			return err
		}
	}

	// Side lines along the midsection
	rimX := geometry.NewVector3(radius, 0, 0)
	rimZ := geometry.NewVector3(0, 0, radius)
	for _, offset := range []geometry.Vector3{rimX, rimX.Neg(), rimZ, rimZ.Neg()} {
		a := placement.Apply(offset.Add(geometry.NewVector3(0, -half, 0)))
		b := placement.Apply(offset.Add(geometry.NewVector3(0, half, 0)))
		s.strokeLine(a, b, o)
	}

	if o.Contour {
		s.strokeContour(solidCapsule, solidParams{
			radius:   radius,
			height:   height,
			rings:    solidRings(o.Resolution),
			segments: o.Resolution,
		}, placement, o)
	}
	return nil
}

// executeCube strokes the 12 edges as two squares plus four verticals
func (s *System) executeCube(placement geometry.Transform, size float64, o Options) {
	half := size / 2
	bottom := squareAt(placement, size, -half)
	top := squareAt(placement, size, half)

	s.strokePath(closed(bottom[:]), o)
	s.strokePath(closed(top[:]), o)
	for i := range bottom {
		s.strokeLine(bottom[i], top[i], o)
	}
}

// executePyramid strokes the square base and the four edges to the apex
func (s *System) executePyramid(placement geometry.Transform, baseSize, height float64, o Options) error {
	base := squareCorners(placement, baseSize)
	apex := placement.Apply(geometry.NewVector3(0, height, 0))

	s.strokePath(closed(base[:]), o)
	for _, corner := range base {
		s.strokeLine(corner, apex, o)
	}
	return nil
}

// executeCone draws the base circle, four edge lines to the apex, and the
// silhouette contour
func (s *System) executeCone(placement geometry.Transform, radius, height float64, o Options) error {
	if err := checkResolution(o.Resolution); err != nil {
		return err
	}

	if err := s.executeArc(planeXZ(placement, placement.Origin), 0, fullSweep, radius, radius, o); err != nil {
		return err
	}

	apex := placement.Apply(geometry.NewVector3(0, height, 0))
	rimX := geometry.NewVector3(radius, 0, 0)
	rimZ := geometry.NewVector3(0, 0, radius)
	for _, rim := range []geometry.Vector3{rimX, rimX.Neg(), rimZ, rimZ.Neg()} {
		s.strokeLine(placement.Apply(rim), apex, o)
	}

	if o.Contour {
		s.strokeContour(solidCone, solidParams{
			radius:   radius,
			height:   height,
			segments: o.Resolution,
		}, placement, o)
	}
	return nil
}

// strokeLine projects both endpoints and draws one canvas line
func (s *System) strokeLine(from, to geometry.Vector3, o Options) {
	s.canvas.DrawLine(s.camera.Project(from), s.camera.Project(to), o.Color, o.Thickness, o.Antialiased)
}

// strokePath projects all points and draws one canvas polyline
func (s *System) strokePath(points []geometry.Vector3, o Options) {
	if len(points) < 2 {
		return
	}
	projected := make([]geometry.Vector2, len(points))
	for i, p := range points {
		projected[i] = s.camera.Project(p)
	}
	s.canvas.DrawPolyline(projected, o.Color, o.Thickness, o.Antialiased)
}

// strokeContour looks up the memoized silhouette hull and strokes it as a
// closed polyline. Degenerate hulls are skipped.
func (s *System) strokeContour(kind solidKind, params solidParams, placement geometry.Transform, o Options) {
	hull := s.contour(kind, params, placement)
	if len(hull) <= 2 {
		return
	}
	outline := make([]geometry.Vector2, len(hull)+1)
	copy(outline, hull)
	outline[len(hull)] = hull[0]
	s.canvas.DrawPolyline(outline, o.Color, o.Thickness, o.Antialiased)
}

func checkResolution(resolution int) error {
	if resolution < 1 {
		return fmt.Errorf("overlay: resolution must be >= 1, got %d", resolution)
	}
	return nil
}

// closed appends the first point to the end, producing a closed outline
func closed(points []geometry.Vector3) []geometry.Vector3 {
	return append(points, points[0])
}

// squareCorners returns the corners of a square in the placement's XZ plane
func squareCorners(placement geometry.Transform, size float64) [4]geometry.Vector3 {
	return squareAt(placement, size, 0)
}

// squareAt returns the corners of a square in the plane at local height y
func squareAt(placement geometry.Transform, size float64, y float64) [4]geometry.Vector3 {
	half := size / 2
	return [4]geometry.Vector3{
		placement.Apply(geometry.NewVector3(-half, y, -half)),
		placement.Apply(geometry.NewVector3(half, y, -half)),
		placement.Apply(geometry.NewVector3(half, y, half)),
		placement.Apply(geometry.NewVector3(-half, y, half)),
	}
}

// Plane transforms: reorient a placement so the requested local plane
// becomes the XY sampling plane of ArcPoints, keeping the basis scale.

func planeXY(t geometry.Transform, origin geometry.Vector3) geometry.Transform {
	return geometry.Transform{X: t.X, Y: t.Y, Z: t.Z, Origin: origin}
}

func planeXZ(t geometry.Transform, origin geometry.Vector3) geometry.Transform {
	return geometry.Transform{X: t.X, Y: t.Z, Z: t.Y, Origin: origin}
}

func planeYZ(t geometry.Transform, origin geometry.Vector3) geometry.Transform {
	return geometry.Transform{X: t.Y, Y: t.Z, Z: t.X, Origin: origin}
}

func planeZY(t geometry.Transform, origin geometry.Vector3) geometry.Transform {
	return geometry.Transform{X: t.Z, Y: t.Y, Z: t.X, Origin: origin}
}
