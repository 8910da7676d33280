package overlay

import "github.com/philipparndt/godraw/pkg/geometry"

// Silhouette-contour cache. The visual outline of a curved solid is the 2D
// convex hull of its projected tessellation vertices; computing it is the
// most expensive step in the draw path and depends on the shape parameters,
// the placement, and the camera. Each solid kind keeps an independent cache
// entry holding the last inputs and the last hull, so repeated draws of a
// static solid under a static camera reuse the stored hull untouched.

// solidKind identifies one of the curved solids with a cached silhouette
type solidKind int

const (
	solidSphere solidKind = iota
	solidHemisphere
	solidCylinder
	solidCone
	solidCapsule

	solidKinds
)

// solidParams is the tessellation descriptor shared by all solid kinds.
// Unused fields stay zero for kinds that do not need them.
type solidParams struct {
	radius   float64
	height   float64
	rings    int
	segments int
}

// approxEqual compares float fields within epsilon and integer fields
// exactly
func (p solidParams) approxEqual(q solidParams) bool {
	return geometry.ApproxEqualFloat(p.radius, q.radius) &&
		geometry.ApproxEqualFloat(p.height, q.height) &&
		p.rings == q.rings &&
		p.segments == q.segments
}

// contourCache is one cache entry: the scratch descriptor for its solid
// kind plus the snapshot of the inputs the stored hull was computed from.
// The hull is valid only while descriptor, placement, and camera transform
// all still match the snapshot.
type contourCache struct {
	params    solidParams // scratch descriptor, updated in place per request
	snapshot  solidParams
	placement geometry.Transform
	camera    geometry.Transform
	hull      []geometry.Vector2
	valid     bool
}

// contour returns the silhouette hull for the given solid, recomputing it
// only when the descriptor, placement, or camera transform changed since
// the previous request for the same kind. On a hit the stored hull slice is
// returned as is. Hulls of 2 or fewer points are degenerate; callers must
// skip drawing them.
func (s *System) contour(kind solidKind, params solidParams, placement geometry.Transform) []geometry.Vector2 {
	c := &s.contours[kind]

	// The scratch descriptor is updated before comparison. Interleaving two
	// different parameter sets for the same kind within one frame therefore
	// recomputes on every call; output stays correct, only the hit rate
	// degrades.
	c.params = params

	camera := s.camera.Transform()
	if c.valid &&
		c.snapshot.approxEqual(c.params) &&
		c.placement.ApproxEqual(placement) &&
		c.camera.ApproxEqual(camera) {
		return c.hull
	}

	verts := tessellateSolid(kind, c.params)
	projected := make([]geometry.Vector2, len(verts))
	for i, v := range verts {
		projected[i] = s.camera.Project(placement.Apply(v))
	}

	c.hull = geometry.ConvexHull(projected)
	c.snapshot = c.params
	c.placement = placement
	c.camera = camera
	c.valid = true
	return c.hull
}

// tessellateSolid produces the vertex set for a solid kind at the
// descriptor's resolution. Vertices are lazily generated only on a cache
// miss.
func tessellateSolid(kind solidKind, p solidParams) []geometry.Vector3 {
	switch kind {
	case solidSphere:
		return geometry.SphereVertices(p.radius, p.rings, p.segments)
	case solidHemisphere:
		return geometry.HemisphereVertices(p.radius, p.rings, p.segments)
	case solidCylinder:
		return geometry.CylinderVertices(p.radius, p.height, p.segments)
	case solidCone:
		return geometry.ConeVertices(p.radius, p.height, p.segments)
	case solidCapsule:
		return geometry.CapsuleVertices(p.radius, p.height, p.rings, p.segments)
	}
	return nil
}

// solidRings derives the ring count for a solid from the requested
// resolution
func solidRings(resolution int) int {
	rings := resolution / 2
	if rings < 2 {
		rings = 2
	}
	return rings
}
