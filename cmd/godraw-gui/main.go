package main

import (
	"fmt"
	"image/color"
	"os"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"github.com/philipparndt/godraw/pkg/geometry"
	"github.com/philipparndt/godraw/pkg/overlay"
	"github.com/philipparndt/godraw/pkg/scene"
	"github.com/philipparndt/godraw/pkg/viewer"
	"github.com/philipparndt/godraw/pkg/watcher"
)

func main() {
	a := fyneapp.New()
	w := a.NewWindow("godraw")

	v := viewer.NewOverlayViewer(geometry.NewVector3(0, 0, 0), 12)

	if len(os.Args) > 1 {
		fw, err := watchScene(v, os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer fw.Close()
	} else {
		v.Draw = demoScene
	}

	w.SetContent(container.NewStack(v))
	w.Resize(fyne.NewSize(1000, 700))
	w.ShowAndRun()
}

// watchScene binds the viewer to a scene file and reloads it on change
func watchScene(v *viewer.OverlayViewer, path string) (*watcher.FileWatcher, error) {
	sc, err := scene.Load(path)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	v.Draw = func(sys *overlay.System) {
		mu.Lock()
		defer mu.Unlock()
		sc.Draw(sys)
	}

	return watcher.Watch(path, 200*time.Millisecond, func() {
		reloaded, err := scene.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Reload failed: %v\n", err)
			return
		}
		mu.Lock()
		sc = reloaded
		mu.Unlock()
		fyne.Do(v.Redraw)
	})
}

// demoScene shows the overlay primitives without requiring a scene file
func demoScene(sys *overlay.System) {
	red := overlay.WithColor(color.RGBA{R: 235, G: 80, B: 70, A: 255})
	green := overlay.WithColor(color.RGBA{R: 90, G: 200, B: 120, A: 255})
	blue := overlay.WithColor(color.RGBA{R: 80, G: 140, B: 235, A: 255})

	// World axes
	sys.DrawArrow(geometry.NewVector3(0, 0, 0), geometry.NewVector3(3, 0, 0), red)
	sys.DrawArrow(geometry.NewVector3(0, 0, 0), geometry.NewVector3(0, 3, 0), green)
	sys.DrawArrow(geometry.NewVector3(0, 0, 0), geometry.NewVector3(0, 0, 3), blue)

	sys.DrawSphere(geometry.At(geometry.NewVector3(-3, 0, 0)), 1)
	sys.DrawCube(geometry.At(geometry.NewVector3(3, 0, -2)), 1.5, green)
	sys.DrawCone(geometry.At(geometry.NewVector3(0, 0, -4)), 0.8, 2, blue)
	sys.DrawCapsule(
		geometry.At(geometry.NewVector3(-2, -2, 2)),
		geometry.At(geometry.NewVector3(2, -2, 2)),
		0.5, red)
	sys.DrawText(geometry.NewVector3(0, 3.5, 0), "godraw", 18)
}
