// Package app implements the interactive raylib viewer for scene files.
package app

import (
	"fmt"
	"sync/atomic"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/godraw/pkg/overlay"
	"github.com/philipparndt/godraw/pkg/scene"
	"github.com/philipparndt/godraw/pkg/watcher"
)

// tickInterval is the fixed step driving the overlay system. Rendering
// runs at display rate; ticks accumulate independently.
const tickInterval = time.Second / 60

type App struct {
	Camera CameraState

	canvas *rlCanvas
	system *overlay.System
	scene  *scene.Scene

	scenePath   string
	needsReload atomic.Bool
}

// Run starts the viewer for the given scene file.
func Run(scenePath string) error {
	sc, err := scene.Load(scenePath)
	if err != nil {
		return fmt.Errorf("failed to load scene: %w", err)
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(1400, 900, "godraw")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	app := &App{
		scene:     sc,
		scenePath: scenePath,
		canvas:    &rlCanvas{},
	}
	app.setupCamera()
	app.system = overlay.New(app.canvas, &rlCamera{app: app})

	// Reload the scene when the file changes on disk
	fw, err := watcher.Watch(scenePath, 200*time.Millisecond, func() {
		app.needsReload.Store(true)
	})
	if err != nil {
		fmt.Printf("Warning: Failed to set up file watching: %v\n", err)
		fmt.Println("Auto-reload will not be available")
	} else {
		defer fw.Close()
	}

	var accumulated time.Duration

	// Main loop
	for !rl.WindowShouldClose() {
		if app.needsReload.CompareAndSwap(true, false) {
			app.reloadScene()
		}

		app.handleInput()
		app.updateCamera()

		// Re-enqueue the scene once the previous batch has been drained
		if app.system.Pending() == 0 {
			app.scene.Draw(app.system)
		}

		accumulated += time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		for accumulated >= tickInterval {
			app.system.Tick()
			accumulated -= tickInterval
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		if app.canvas.wantRepaint {
			app.canvas.wantRepaint = false
			if err := app.system.Repainted(); err != nil {
				fmt.Printf("Draw error: %v\n", err)
			}
		}

		app.drawStatus()
		rl.EndDrawing()
	}

	return nil
}

// reloadScene re-reads the scene file. A broken file keeps the previous
// scene on screen until the next valid save.
func (app *App) reloadScene() {
	sc, err := scene.Load(app.scenePath)
	if err != nil {
		fmt.Printf("Reload failed: %v\n", err)
		return
	}
	app.scene = sc
	app.system.Reset()
	fmt.Printf("Reloaded %s (%d shapes)\n", app.scenePath, len(sc.Shapes))
}

func (app *App) drawStatus() {
	status := fmt.Sprintf("%s | %d shapes", app.scenePath, len(app.scene.Shapes))
	rl.DrawText(status, 10, 10, 16, rl.NewColor(160, 170, 190, 255))
	rl.DrawText("Drag: rotate | Shift+drag: pan | Wheel: zoom | Home: reset", 10, 30, 14, rl.NewColor(110, 118, 135, 255))
}
