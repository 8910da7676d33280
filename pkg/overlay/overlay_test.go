package overlay

import (
	"image/color"
	"testing"

	"github.com/philipparndt/godraw/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueHoldsAllDrawsUntilDrain(t *testing.T) {
	sys, _, _ := newTestSystem()

	sys.DrawLine(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0))
	sys.DrawPoint(geometry.NewVector3(1, 1, 1), 0.2)
	sys.DrawText(geometry.NewVector3(0, 1, 0), "hello", 14)

	assert.Equal(t, 3, sys.Pending())

	require.NoError(t, sys.Repainted())
	assert.Equal(t, 0, sys.Pending())
}

func TestRepaintRequestedOncePerTransition(t *testing.T) {
	sys, canvas, _ := newTestSystem()

	// Empty queue: ticking never requests a repaint
	sys.Tick()
	sys.Tick()
	assert.Equal(t, 0, canvas.repaints)

	// First enqueue makes the queue pending; one tick requests one repaint
	sys.DrawLine(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0))
	sys.Tick()
	assert.Equal(t, 1, canvas.repaints)

	// Further enqueues and ticks before the drain request nothing more
	sys.DrawLine(geometry.NewVector3(0, 0, 0), geometry.NewVector3(0, 1, 0))
	sys.DrawLine(geometry.NewVector3(0, 0, 0), geometry.NewVector3(0, 0, 1))
	sys.Tick()
	sys.Tick()
	assert.Equal(t, 1, canvas.repaints)

	// After the drain the next transition requests again
	require.NoError(t, sys.Repainted())
	sys.DrawLine(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 1, 1))
	sys.Tick()
	assert.Equal(t, 2, canvas.repaints)
}

func TestEmptyDrainsIssueNothing(t *testing.T) {
	sys, canvas, _ := newTestSystem()

	require.NoError(t, sys.Repainted())
	require.NoError(t, sys.Repainted())

	assert.Equal(t, 0, canvas.repaints)
	assert.Empty(t, canvas.calls)
}

func TestDrainExecutesInInsertionOrder(t *testing.T) {
	sys, canvas, _ := newTestSystem()

	sys.DrawLine(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0))
	sys.DrawText(geometry.NewVector3(0, 0, 0), "label", 14)

	require.NoError(t, sys.Repainted())

	require.Len(t, canvas.calls, 2)
	assert.Equal(t, "line", canvas.calls[0].op)
	assert.Equal(t, "text", canvas.calls[1].op)
	assert.Equal(t, "label", canvas.calls[1].text)
}

func TestPointDrawsThreeAxisSegments(t *testing.T) {
	sys, canvas, _ := newTestSystem()

	sys.DrawPoint(geometry.NewVector3(0, 0, 0), 1)
	require.NoError(t, sys.Repainted())

	require.Len(t, canvas.calls, 3)
	for _, call := range canvas.calls {
		assert.Equal(t, "line", call.op)
	}
}

func TestDefaultsApplied(t *testing.T) {
	sys, canvas, _ := newTestSystem()

	sys.DrawLine(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0))
	require.NoError(t, sys.Repainted())

	require.Len(t, canvas.calls, 1)
	call := canvas.calls[0]
	assert.Equal(t, color.RGBA{R: 255, B: 255, A: 255}, call.col)
	assert.Equal(t, 0.5, call.thickness)
	assert.True(t, call.antialiased)
}

func TestOptionsOverrideDefaults(t *testing.T) {
	sys, canvas, _ := newTestSystem()

	red := color.RGBA{R: 255, A: 255}
	sys.DrawLine(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0),
		WithColor(red), WithThickness(2), WithAntialiased(false))
	require.NoError(t, sys.Repainted())

	require.Len(t, canvas.calls, 1)
	call := canvas.calls[0]
	assert.Equal(t, red, call.col)
	assert.Equal(t, 2.0, call.thickness)
	assert.False(t, call.antialiased)
}

func TestInvalidResolutionSurfacesError(t *testing.T) {
	sys, _, _ := newTestSystem()

	sys.DrawSphere(geometry.Identity(), 1, WithResolution(0))
	err := sys.Repainted()

	assert.Error(t, err)
	// The queue is cleared unconditionally, error or not
	assert.Equal(t, 0, sys.Pending())
}

func TestFailingCommandDoesNotSkipLaterOnes(t *testing.T) {
	sys, canvas, _ := newTestSystem()

	sys.DrawArc(geometry.Identity(), 0, 1, 1, 1, WithResolution(-1))
	sys.DrawText(geometry.NewVector3(0, 0, 0), "after", 14)

	assert.Error(t, sys.Repainted())
	require.Len(t, canvas.calls, 1)
	assert.Equal(t, "text", canvas.calls[0].op)
}

func TestPolylineCapturesPointsByValue(t *testing.T) {
	sys, canvas, _ := newTestSystem()

	points := []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(1, 1, 0),
	}
	sys.DrawPolyline(points)

	// Mutating the caller's slice after the call must not affect the queued
	// command
	points[0] = geometry.NewVector3(99, 99, 99)
	require.NoError(t, sys.Repainted())

	require.Len(t, canvas.calls, 1)
	assert.Equal(t, geometry.NewVector2(400, 300), canvas.calls[0].points[0])
}

func TestArcSampleCount(t *testing.T) {
	sys, canvas, _ := newTestSystem()

	sys.DrawArc(geometry.Identity(), 0, 1, 1, 1, WithResolution(8))
	require.NoError(t, sys.Repainted())

	require.Len(t, canvas.calls, 1)
	assert.Len(t, canvas.calls[0].points, 9)
}

func TestCubeEdgeCount(t *testing.T) {
	sys, canvas, _ := newTestSystem()

	sys.DrawCube(geometry.Identity(), 2)
	require.NoError(t, sys.Repainted())

	// Two closed squares plus four vertical lines
	polylines, lines := 0, 0
	for _, call := range canvas.calls {
		switch call.op {
		case "polyline":
			polylines++
		case "line":
			lines++
		}
	}
	assert.Equal(t, 2, polylines)
	assert.Equal(t, 4, lines)
}

func TestResetClearsQueueAndCaches(t *testing.T) {
	sys, canvas, _ := newTestSystem()

	sys.DrawSphere(geometry.Identity(), 1)
	require.NoError(t, sys.Repainted())
	require.True(t, sys.contours[solidSphere].valid)

	sys.DrawLine(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0))
	sys.Reset()

	assert.Equal(t, 0, sys.Pending())
	assert.False(t, sys.contours[solidSphere].valid)

	// A reset system issues no stale repaint requests
	before := canvas.repaints
	sys.Tick()
	assert.Equal(t, before, canvas.repaints)
}
