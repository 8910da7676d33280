package geometry

import (
	"math"
	"testing"
)

func TestSphereVerticesOnSurface(t *testing.T) {
	verts := SphereVertices(2, 8, 16)

	for i, v := range verts {
		if math.Abs(v.Length()-2) > 1e-10 {
			t.Errorf("Vertex %d not on sphere surface: %v (radius %v)", i, v, v.Length())
		}
	}
}

func TestSphereVerticesIncludePoles(t *testing.T) {
	verts := SphereVertices(1, 4, 8)

	top := NewVector3(0, 1, 0)
	bottom := NewVector3(0, -1, 0)
	if !verts[0].ApproxEqual(top) {
		t.Errorf("First vertex should be the top pole, got %v", verts[0])
	}
	if !verts[len(verts)-1].ApproxEqual(bottom) {
		t.Errorf("Last vertex should be the bottom pole, got %v", verts[len(verts)-1])
	}
}

func TestHemisphereVerticesAboveBase(t *testing.T) {
	verts := HemisphereVertices(3, 4, 12)

	for i, v := range verts {
		if v.Y < -1e-10 {
			t.Errorf("Vertex %d below the base plane: %v", i, v)
		}
		if math.Abs(v.Length()-3) > 1e-10 {
			t.Errorf("Vertex %d not on sphere surface: %v", i, v)
		}
	}
}

func TestCylinderVerticesOnRims(t *testing.T) {
	verts := CylinderVertices(1.5, 4, 10)

	if len(verts) != 20 {
		t.Fatalf("Expected 20 rim vertices, got %d", len(verts))
	}
	for i, v := range verts {
		if math.Abs(math.Abs(v.Y)-2) > 1e-10 {
			t.Errorf("Vertex %d not on a cap plane: %v", i, v)
		}
		r := math.Sqrt(v.X*v.X + v.Z*v.Z)
		if math.Abs(r-1.5) > 1e-10 {
			t.Errorf("Vertex %d not on the rim: %v", i, v)
		}
	}
}

func TestConeVerticesApex(t *testing.T) {
	verts := ConeVertices(1, 5, 8)

	apex := verts[len(verts)-1]
	if !apex.ApproxEqual(NewVector3(0, 5, 0)) {
		t.Errorf("Cone apex failed: got %v", apex)
	}
	for i, v := range verts[:len(verts)-1] {
		if v.Y != 0 {
			t.Errorf("Base vertex %d not at y=0: %v", i, v)
		}
	}
}

func TestCapsuleVerticesExtent(t *testing.T) {
	verts := CapsuleVertices(1, 4, 4, 8)

	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, v := range verts {
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}

	// Total extent is the midsection plus both cap radii
	if math.Abs(maxY-3) > 1e-10 || math.Abs(minY+3) > 1e-10 {
		t.Errorf("Capsule extent failed: y in [%v, %v], expected [-3, 3]", minY, maxY)
	}
}

func TestCapsuleVerticesWithinRadius(t *testing.T) {
	verts := CapsuleVertices(1, 4, 4, 8)

	for i, v := range verts {
		r := math.Sqrt(v.X*v.X + v.Z*v.Z)
		if r > 1+1e-10 {
			t.Errorf("Vertex %d outside capsule radius: %v", i, v)
		}
	}
}
