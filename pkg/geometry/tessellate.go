package geometry

import "math"

// Tessellation of the curved solids into local-space vertex sets. All solids
// are generated around the origin with Y as their main axis:
//   - sphere: centered at the origin
//   - hemisphere: dome over the XZ plane, flat side at y = 0
//   - cylinder: centered, caps at y = +/- height/2
//   - cone: base circle at y = 0, apex at (0, height, 0)
//   - capsule: centered, cap centers at y = +/- height/2
//
// The vertex sets are meant for silhouette extraction, so seam duplicates
// and pole repeats are harmless and not removed.

// SphereVertices tessellates a sphere into rings x segments vertices plus
// the two poles
func SphereVertices(radius float64, rings, segments int) []Vector3 {
	verts := make([]Vector3, 0, (rings-1)*segments+2)
	verts = append(verts, NewVector3(0, radius, 0))

	for ring := 1; ring < rings; ring++ {
		phi := math.Pi * float64(ring) / float64(rings)
		y := radius * math.Cos(phi)
		r := radius * math.Sin(phi)
		verts = append(verts, circleVertices(r, y, segments)...)
	}

	verts = append(verts, NewVector3(0, -radius, 0))
	return verts
}

// HemisphereVertices tessellates the upper half of a sphere, including the
// base circle at y = 0
func HemisphereVertices(radius float64, rings, segments int) []Vector3 {
	verts := make([]Vector3, 0, rings*segments+1)
	verts = append(verts, NewVector3(0, radius, 0))

	for ring := 1; ring <= rings; ring++ {
		phi := math.Pi / 2 * float64(ring) / float64(rings)
		y := radius * math.Cos(phi)
		r := radius * math.Sin(phi)
		verts = append(verts, circleVertices(r, y, segments)...)
	}

	return verts
}

// CylinderVertices tessellates the two cap rims of a cylinder. The rims
// alone span the full silhouette of the solid.
func CylinderVertices(radius, height float64, segments int) []Vector3 {
	verts := make([]Vector3, 0, 2*segments)
	verts = append(verts, circleVertices(radius, height/2, segments)...)
	verts = append(verts, circleVertices(radius, -height/2, segments)...)
	return verts
}

// ConeVertices tessellates the base rim of a cone plus its apex
func ConeVertices(radius, height float64, segments int) []Vector3 {
	verts := make([]Vector3, 0, segments+1)
	verts = append(verts, circleVertices(radius, 0, segments)...)
	verts = append(verts, NewVector3(0, height, 0))
	return verts
}

// CapsuleVertices tessellates a capsule: a cylindrical midsection of the
// given height capped by two hemispheres of the given radius
func CapsuleVertices(radius, height float64, rings, segments int) []Vector3 {
	verts := make([]Vector3, 0, 2*rings*segments+2*segments+2)
	half := height / 2

	// Upper cap
	verts = append(verts, NewVector3(0, half+radius, 0))
	for ring := 1; ring <= rings; ring++ {
		phi := math.Pi / 2 * float64(ring) / float64(rings)
		y := half + radius*math.Cos(phi)
		r := radius * math.Sin(phi)
		verts = append(verts, circleVertices(r, y, segments)...)
	}

	// Lower cap
	for ring := 1; ring <= rings; ring++ {
		phi := math.Pi / 2 * float64(ring) / float64(rings)
		y := -half - radius*math.Cos(phi)
		r := radius * math.Sin(phi)
		verts = append(verts, circleVertices(r, y, segments)...)
	}
	verts = append(verts, NewVector3(0, -half-radius, 0))

	return verts
}

// circleVertices samples a circle of the given radius in the y plane
func circleVertices(radius, y float64, segments int) []Vector3 {
	verts := make([]Vector3, segments)
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		verts[i] = NewVector3(radius*math.Cos(theta), y, radius*math.Sin(theta))
	}
	return verts
}
