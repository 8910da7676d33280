package app

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/godraw/pkg/geometry"
)

// rlCanvas renders overlay primitives through raylib's 2D drawing API.
// Raylib redraws every frame anyway, so RequestRepaint only latches a
// flag that the main loop consumes inside BeginDrawing.
type rlCanvas struct {
	wantRepaint bool
}

func (c *rlCanvas) DrawLine(from, to geometry.Vector2, col color.RGBA, thickness float64, antialiased bool) {
	rl.DrawLineEx(rlVec2(from), rlVec2(to), lineWidth(thickness), rlColor(col))
}

func (c *rlCanvas) DrawPolyline(points []geometry.Vector2, col color.RGBA, thickness float64, antialiased bool) {
	for i := 1; i < len(points); i++ {
		rl.DrawLineEx(rlVec2(points[i-1]), rlVec2(points[i]), lineWidth(thickness), rlColor(col))
	}
}

func (c *rlCanvas) DrawText(pos geometry.Vector2, text string, col color.RGBA, size float64) {
	rl.DrawText(text, int32(pos.X), int32(pos.Y), int32(size), rlColor(col))
}

func (c *rlCanvas) RequestRepaint() {
	c.wantRepaint = true
}

// rlCamera projects world points through the current raylib camera.
type rlCamera struct {
	app *App
}

func (c *rlCamera) Project(p geometry.Vector3) geometry.Vector2 {
	screen := rl.GetWorldToScreen(rlVec3(p), c.app.Camera.camera)
	return geometry.NewVector2(float64(screen.X), float64(screen.Y))
}

func (c *rlCamera) Transform() geometry.Transform {
	cam := c.app.Camera.camera
	position := fromRlVec3(cam.Position)
	forward := fromRlVec3(cam.Target).Sub(position).Normalize()
	right := forward.Cross(fromRlVec3(cam.Up)).Normalize()
	up := right.Cross(forward)
	return geometry.Transform{X: right, Y: up, Z: forward, Origin: position}
}

// lineWidth keeps sub-pixel overlay thicknesses visible on screen
func lineWidth(thickness float64) float32 {
	if thickness < 1 {
		return 1
	}
	return float32(thickness)
}

func rlVec2(v geometry.Vector2) rl.Vector2 {
	return rl.Vector2{X: float32(v.X), Y: float32(v.Y)}
}

func rlVec3(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func fromRlVec3(v rl.Vector3) geometry.Vector3 {
	return geometry.NewVector3(float64(v.X), float64(v.Y), float64(v.Z))
}

func rlColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
