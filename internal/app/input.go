package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes user input
func (app *App) handleInput() {
	// Camera view preset shortcuts
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.setCameraTopView()
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		app.setCameraFrontView()
	}
	if rl.IsKeyPressed(rl.KeyTwo) {
		app.setCameraSideView()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		app.needsReload.Store(true)
	}

	shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)

	// Camera panning with Shift + mouse drag or middle mouse button drag
	if (rl.IsMouseButtonDown(rl.MouseLeftButton) && shiftPressed) || rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			app.doPan(delta)
		}
	} else if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		// Plain drag orbits around the target
		delta := rl.GetMouseDelta()
		app.Camera.angleY -= delta.X * 0.01
		app.Camera.angleX += delta.Y * 0.01

		// Clamp vertical angle to avoid flipping over the poles
		limit := float32(math.Pi/2 - 0.01)
		if app.Camera.angleX > limit {
			app.Camera.angleX = limit
		}
		if app.Camera.angleX < -limit {
			app.Camera.angleX = -limit
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.doZoom(wheel)
	}
}
