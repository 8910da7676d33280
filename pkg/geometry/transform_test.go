package geometry

import (
	"math"
	"testing"
)

func TestApproxEqualFloat(t *testing.T) {
	if !ApproxEqualFloat(1, 1+Epsilon/2) {
		t.Error("Sub-epsilon difference should compare equal")
	}
	if ApproxEqualFloat(1, 1+Epsilon*2) {
		t.Error("Super-epsilon difference should compare unequal")
	}
	if !ApproxEqualFloat(-1, -1-Epsilon/2) {
		t.Error("Comparison should be symmetric around negative values")
	}
}

func TestTransformIdentityApply(t *testing.T) {
	p := NewVector3(1, 2, 3)
	result := Identity().Apply(p)

	if result != p {
		t.Errorf("Identity apply failed: expected %v, got %v", p, result)
	}
}

func TestTransformAtApply(t *testing.T) {
	placement := At(NewVector3(10, 20, 30))
	result := placement.Apply(NewVector3(1, 2, 3))

	expected := NewVector3(11, 22, 33)
	if result != expected {
		t.Errorf("At apply failed: expected %v, got %v", expected, result)
	}
}

func TestTransformRotatedApply(t *testing.T) {
	// Basis rotated 90 degrees around Z: local X maps to world Y
	placement := Transform{
		X: NewVector3(0, 1, 0),
		Y: NewVector3(-1, 0, 0),
		Z: NewVector3(0, 0, 1),
	}
	result := placement.Apply(NewVector3(1, 0, 0))

	expected := NewVector3(0, 1, 0)
	if !result.ApproxEqual(expected) {
		t.Errorf("Rotated apply failed: expected %v, got %v", expected, result)
	}
}

func TestTransformScaled(t *testing.T) {
	placement := At(NewVector3(1, 1, 1)).Scaled(2)
	result := placement.Apply(NewVector3(1, 2, 3))

	expected := NewVector3(3, 5, 7)
	if !result.ApproxEqual(expected) {
		t.Errorf("Scaled apply failed: expected %v, got %v", expected, result)
	}
}

func TestTransformApproxEqual(t *testing.T) {
	a := At(NewVector3(1, 2, 3))
	b := At(NewVector3(1, 2, 3+Epsilon/2))
	c := At(NewVector3(1, 2, 4))

	if !a.ApproxEqual(b) {
		t.Error("Transforms within epsilon should compare equal")
	}
	if a.ApproxEqual(c) {
		t.Error("Transforms differing by 1 should not compare equal")
	}
}

func TestBetween(t *testing.T) {
	a := NewVector3(0, 0, 0)
	b := NewVector3(0, 0, 10)
	placement, length := Between(a, b)

	if math.Abs(length-10) > 1e-10 {
		t.Errorf("Between length failed: expected 10, got %v", length)
	}

	expectedOrigin := NewVector3(0, 0, 5)
	if !placement.Origin.ApproxEqual(expectedOrigin) {
		t.Errorf("Between origin failed: expected %v, got %v", expectedOrigin, placement.Origin)
	}

	// Y axis points from a to b
	if !placement.Y.ApproxEqual(NewVector3(0, 0, 1)) {
		t.Errorf("Between Y axis failed: got %v", placement.Y)
	}

	// Basis is orthonormal
	if math.Abs(placement.X.Dot(placement.Y)) > 1e-10 ||
		math.Abs(placement.Y.Dot(placement.Z)) > 1e-10 ||
		math.Abs(placement.X.Dot(placement.Z)) > 1e-10 {
		t.Error("Between basis is not orthogonal")
	}
}

func TestBetweenDegenerate(t *testing.T) {
	a := NewVector3(1, 2, 3)
	placement, length := Between(a, a)

	if length != 0 {
		t.Errorf("Coincident points should have zero length, got %v", length)
	}
	if !placement.ApproxEqual(At(a)) {
		t.Errorf("Degenerate Between should return identity basis at a, got %v", placement)
	}
}
