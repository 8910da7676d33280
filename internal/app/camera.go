package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type CameraState struct {
	camera   rl.Camera3D
	distance float32
	angleX   float32
	angleY   float32
	target   rl.Vector3

	defaultDist   float32
	defaultAngleX float32
	defaultAngleY float32
}

func (app *App) setupCamera() {
	app.Camera.distance = 12
	app.Camera.angleX = 0.3
	app.Camera.angleY = 0.3
	app.Camera.target = rl.Vector3{}

	// Save default camera settings for reset
	app.Camera.defaultDist = app.Camera.distance
	app.Camera.defaultAngleX = app.Camera.angleX
	app.Camera.defaultAngleY = app.Camera.angleY

	app.Camera.camera = rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: 0, Z: app.Camera.distance},
		Target:     app.Camera.target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
}

// resetCameraView resets the camera to the default view
func (app *App) resetCameraView() {
	app.Camera.distance = app.Camera.defaultDist
	app.Camera.angleX = app.Camera.defaultAngleX
	app.Camera.angleY = app.Camera.defaultAngleY
	app.Camera.target = rl.Vector3{}
}

// setCameraTopView sets the camera to look down from the top (along -Y axis)
func (app *App) setCameraTopView() {
	app.Camera.angleX = math.Pi/2 - 0.001
	app.Camera.angleY = 0
}

// setCameraFrontView sets the camera to look from the front (along -Z axis)
func (app *App) setCameraFrontView() {
	app.Camera.angleX = 0
	app.Camera.angleY = 0
}

// setCameraSideView sets the camera to look from the right (along -X axis)
func (app *App) setCameraSideView() {
	app.Camera.angleX = 0
	app.Camera.angleY = math.Pi / 2
}

// updateCamera updates camera position based on angles
func (app *App) updateCamera() {
	x := app.Camera.distance * float32(math.Cos(float64(app.Camera.angleX))) * float32(math.Sin(float64(app.Camera.angleY)))
	y := app.Camera.distance * float32(math.Sin(float64(app.Camera.angleX)))
	z := app.Camera.distance * float32(math.Cos(float64(app.Camera.angleX))) * float32(math.Cos(float64(app.Camera.angleY)))

	app.Camera.camera.Position = rl.Vector3{
		X: app.Camera.target.X + x,
		Y: app.Camera.target.Y + y,
		Z: app.Camera.target.Z + z,
	}
	app.Camera.camera.Target = app.Camera.target
}

// doPan performs camera panning based on mouse delta
func (app *App) doPan(delta rl.Vector2) {
	// Calculate camera right and up vectors for panning
	forward := rl.Vector3Normalize(rl.Vector3Subtract(app.Camera.target, app.Camera.camera.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, app.Camera.camera.Up))
	up := rl.Vector3Normalize(rl.Vector3CrossProduct(right, forward))

	// Pan speed based on distance from target
	panSpeed := app.Camera.distance * 0.001

	rightMove := rl.Vector3Scale(right, -delta.X*panSpeed)
	upMove := rl.Vector3Scale(up, delta.Y*panSpeed)

	app.Camera.target = rl.Vector3Add(app.Camera.target, rightMove)
	app.Camera.target = rl.Vector3Add(app.Camera.target, upMove)
}

// doZoom adjusts camera distance from the wheel delta
func (app *App) doZoom(wheel float32) {
	app.Camera.distance -= wheel * app.Camera.distance * 0.1
	if app.Camera.distance < 0.5 {
		app.Camera.distance = 0.5
	}
}
