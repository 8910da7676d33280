package overlay

import (
	"image/color"

	"github.com/philipparndt/godraw/pkg/geometry"
)

// canvasCall records one primitive invocation on the recording canvas
type canvasCall struct {
	op          string // "line", "polyline", "text"
	from, to    geometry.Vector2
	points      []geometry.Vector2
	text        string
	col         color.RGBA
	thickness   float64
	antialiased bool
}

// recordingCanvas captures every primitive call for assertions
type recordingCanvas struct {
	calls    []canvasCall
	repaints int
}

func (r *recordingCanvas) DrawLine(from, to geometry.Vector2, col color.RGBA, thickness float64, antialiased bool) {
	r.calls = append(r.calls, canvasCall{
		op: "line", from: from, to: to,
		col: col, thickness: thickness, antialiased: antialiased,
	})
}

func (r *recordingCanvas) DrawPolyline(points []geometry.Vector2, col color.RGBA, thickness float64, antialiased bool) {
	captured := make([]geometry.Vector2, len(points))
	copy(captured, points)
	r.calls = append(r.calls, canvasCall{
		op: "polyline", points: captured,
		col: col, thickness: thickness, antialiased: antialiased,
	})
}

func (r *recordingCanvas) DrawText(pos geometry.Vector2, text string, col color.RGBA, size float64) {
	r.calls = append(r.calls, canvasCall{op: "text", from: pos, text: text, col: col})
}

func (r *recordingCanvas) RequestRepaint() {
	r.repaints++
}

// testCamera is a movable orthographic camera. Moving its transform changes
// every projection, which is what the cache tests need.
type testCamera struct {
	transform geometry.Transform
	projected int // number of Project calls, to count recomputations
}

func newTestCamera() *testCamera {
	return &testCamera{transform: geometry.At(geometry.NewVector3(0, 0, -10))}
}

func (c *testCamera) Project(p geometry.Vector3) geometry.Vector2 {
	c.projected++
	rel := p.Sub(c.transform.Origin)
	return geometry.NewVector2(400+rel.X*40, 300-rel.Y*40)
}

func (c *testCamera) Transform() geometry.Transform {
	return c.transform
}

func newTestSystem() (*System, *recordingCanvas, *testCamera) {
	canvas := &recordingCanvas{}
	camera := newTestCamera()
	return New(canvas, camera), canvas, camera
}
