package scene

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/godraw/pkg/geometry"
	"github.com/philipparndt/godraw/pkg/overlay"
)

const sampleScene = `
[[shape]]
kind = "sphere"
position = [0.0, 1.0, 0.0]
radius = 1.5
color = "#00ff88"

[[shape]]
kind = "line"
from = [0.0, 0.0, 0.0]
to = [1.0, 1.0, 1.0]
thickness = 2.0

[[shape]]
kind = "text"
position = [0.0, 2.0, 0.0]
text = "hello"
size = 14.0
`

func TestParseScene(t *testing.T) {
	s, err := Parse([]byte(sampleScene))
	require.NoError(t, err)
	require.Len(t, s.Shapes, 3)

	sphere := s.Shapes[0]
	assert.Equal(t, "sphere", sphere.Kind)
	assert.Equal(t, Vec{0, 1, 0}, sphere.Position)
	assert.Equal(t, 1.5, sphere.Radius)

	line := s.Shapes[1]
	assert.Equal(t, Vec{1, 1, 1}, line.To)
	assert.Equal(t, 2.0, line.Thickness)

	assert.Equal(t, "hello", s.Shapes[2].Text)
}

func TestParseRejectsUnknownKind(t *testing.T) {
	_, err := Parse([]byte("[[shape]]\nkind = \"dodecahedron\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")
}

func TestParseRejectsBadColor(t *testing.T) {
	_, err := Parse([]byte("[[shape]]\nkind = \"sphere\"\ncolor = \"red\"\n"))
	assert.Error(t, err)
}

type nullCanvas struct{}

func (nullCanvas) DrawLine(_, _ geometry.Vector2, _ color.RGBA, _ float64, _ bool)      {}
func (nullCanvas) DrawPolyline(_ []geometry.Vector2, _ color.RGBA, _ float64, _ bool)   {}
func (nullCanvas) DrawText(_ geometry.Vector2, _ string, _ color.RGBA, _ float64)       {}
func (nullCanvas) RequestRepaint()                                                      {}

type flatCamera struct{}

func (flatCamera) Project(p geometry.Vector3) geometry.Vector2 {
	return geometry.NewVector2(p.X, p.Y)
}

func (flatCamera) Transform() geometry.Transform {
	return geometry.Identity()
}

func TestSceneDrawEnqueuesOnePerShape(t *testing.T) {
	s, err := Parse([]byte(sampleScene))
	require.NoError(t, err)

	sys := overlay.New(nullCanvas{}, flatCamera{})
	s.Draw(sys)

	assert.Equal(t, 3, sys.Pending())
	require.NoError(t, sys.Repainted())
}

func TestParseColor(t *testing.T) {
	col, err := ParseColor("#00ff88")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{G: 255, B: 0x88, A: 255}, col)

	col, err = ParseColor("#11223344")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}, col)

	_, err = ParseColor("#123")
	assert.Error(t, err)
	_, err = ParseColor("123456")
	assert.Error(t, err)
}
