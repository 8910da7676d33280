package geometry

import "sort"

// ConvexHull computes the 2D convex hull of a point set using Andrew's
// monotone chain algorithm. The hull is returned in counter-clockwise order
// without a repeated closing point. Inputs with fewer than 3 distinct
// non-collinear points yield a degenerate hull of 2 or fewer points.
func ConvexHull(points []Vector2) []Vector2 {
	if len(points) < 3 {
		hull := make([]Vector2, len(points))
		copy(hull, points)
		return hull
	}

	sorted := make([]Vector2, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	// Lower hull
	var lower []Vector2
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	// Upper hull
	var upper []Vector2
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Drop the last point of each chain: it repeats the start of the other
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	return hull
}

// cross returns the z component of (b-a) x (c-a): positive when the turn
// a->b->c is counter-clockwise
func cross(a, b, c Vector2) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// PointInHull reports whether p lies inside or on the given convex polygon
// (counter-clockwise winding), within tolerance
func PointInHull(p Vector2, hull []Vector2, tolerance float64) bool {
	if len(hull) < 3 {
		return false
	}
	for i := range hull {
		a := hull[i]
		b := hull[(i+1)%len(hull)]
		if cross(a, b, p) < -tolerance {
			return false
		}
	}
	return true
}
