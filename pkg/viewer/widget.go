package viewer

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/godraw/pkg/geometry"
	"github.com/philipparndt/godraw/pkg/overlay"
)

// OverlayViewer is a fyne widget hosting an overlay system. The Draw
// callback is invoked once per redraw to issue that frame's debug draw
// calls; the widget drains the queue into retained fyne canvas objects.
type OverlayViewer struct {
	widget.BaseWidget

	// Draw issues this frame's overlay calls. May be nil.
	Draw func(*overlay.System)

	system    *overlay.System
	camera    *Camera
	surface   *fyneSurface
	width     float64
	height    float64
	dragStart *fyne.Position
}

// NewOverlayViewer creates a viewer orbiting the given target
func NewOverlayViewer(target geometry.Vector3, distance float64) *OverlayViewer {
	v := &OverlayViewer{
		camera:  NewCamera(target, distance),
		surface: &fyneSurface{},
	}
	v.system = overlay.New(v.surface, v)
	v.ExtendBaseWidget(v)
	return v
}

// System returns the hosted overlay system
func (v *OverlayViewer) System() *overlay.System {
	return v.system
}

// Camera returns the orbit camera
func (v *OverlayViewer) Camera() *Camera {
	return v.camera
}

// Project adapts the orbit camera to the overlay camera contract at the
// widget's current size
func (v *OverlayViewer) Project(p geometry.Vector3) geometry.Vector2 {
	return Viewport{Camera: v.camera, Width: v.width, Height: v.height}.Project(p)
}

// Transform returns the orbit camera's current world transform
func (v *OverlayViewer) Transform() geometry.Transform {
	return v.camera.WorldTransform()
}

// Redraw runs one overlay frame: issue draw calls, tick the repaint
// trigger, and drain into fresh canvas objects if anything was queued
func (v *OverlayViewer) Redraw() {
	if v.Draw == nil {
		return
	}

	v.Draw(v.system)
	v.system.Tick()

	if v.surface.repaintWanted {
		v.surface.repaintWanted = false
		v.surface.objects = nil
		_ = v.system.Repainted()
		v.Refresh()
	}
}

// CreateRenderer creates the renderer for the widget
func (v *OverlayViewer) CreateRenderer() fyne.WidgetRenderer {
	return &overlayWidgetRenderer{viewer: v}
}

// Dragged handles mouse drag events for rotation
func (v *OverlayViewer) Dragged(event *fyne.DragEvent) {
	if v.dragStart != nil {
		deltaX := event.Position.X - v.dragStart.X
		deltaY := event.Position.Y - v.dragStart.Y

		v.camera.Rotate(float64(-deltaY)*0.01, float64(deltaX)*0.01)
		v.Redraw()
	}
	v.dragStart = &event.Position
}

// DragEnd handles the end of a drag event
func (v *OverlayViewer) DragEnd() {
	v.dragStart = nil
}

// Scrolled handles scroll events for zooming
func (v *OverlayViewer) Scrolled(event *fyne.ScrollEvent) {
	delta := -float64(event.Scrolled.DY) * 0.001
	v.camera.Zoom(delta)
	v.Redraw()
}

// fyneSurface implements the overlay canvas by building retained fyne
// canvas objects during each drain
type fyneSurface struct {
	objects       []fyne.CanvasObject
	repaintWanted bool
}

func (s *fyneSurface) DrawLine(from, to geometry.Vector2, col color.RGBA, thickness float64, _ bool) {
	line := canvas.NewLine(col)
	line.StrokeWidth = float32(thickness)
	line.Position1 = fyne.NewPos(float32(from.X), float32(from.Y))
	line.Position2 = fyne.NewPos(float32(to.X), float32(to.Y))
	s.objects = append(s.objects, line)
}

func (s *fyneSurface) DrawPolyline(points []geometry.Vector2, col color.RGBA, thickness float64, antialiased bool) {
	for i := 0; i+1 < len(points); i++ {
		s.DrawLine(points[i], points[i+1], col, thickness, antialiased)
	}
}

func (s *fyneSurface) DrawText(pos geometry.Vector2, text string, col color.RGBA, size float64) {
	label := canvas.NewText(text, col)
	label.TextSize = float32(size)
	label.Move(fyne.NewPos(float32(pos.X), float32(pos.Y)))
	s.objects = append(s.objects, label)
}

func (s *fyneSurface) RequestRepaint() {
	s.repaintWanted = true
}

// overlayWidgetRenderer implements fyne.WidgetRenderer
type overlayWidgetRenderer struct {
	viewer *OverlayViewer
}

func (r *overlayWidgetRenderer) Layout(size fyne.Size) {
	r.viewer.width = float64(size.Width)
	r.viewer.height = float64(size.Height)
	r.viewer.Redraw()
}

func (r *overlayWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *overlayWidgetRenderer) Refresh() {
	canvas.Refresh(r.viewer)
}

func (r *overlayWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.viewer.surface.objects
}

func (r *overlayWidgetRenderer) Destroy() {}
