// Package overlay renders transient, per-frame debug overlays (points,
// lines, parametric solids, text) onto a 2D canvas, projected from a 3D
// scene by a camera.
//
// Draw calls do not paint immediately: each one appends a deferred command
// to a queue. A fixed-step Tick requests a single canvas repaint when the
// queue has become non-empty, and the host's paint handler calls Repainted
// to execute every queued command in order and clear the queue. Curved
// solids additionally run through a memoized silhouette-contour cache, so a
// static shape under a static camera is hulled once, not once per frame.
//
// The system is single-threaded by design: all Draw calls, Tick, and
// Repainted must happen on the same goroutine.
package overlay

// System owns the draw queue, the repaint trigger, and the per-solid
// silhouette caches. Construct one per canvas/camera pair with New; tests
// construct a fresh System for isolation.
type System struct {
	canvas Canvas
	camera Camera

	queue     []command
	requested bool

	contours [solidKinds]contourCache
}

// New creates an overlay system drawing through the given canvas and
// projecting with the given camera
func New(canvas Canvas, camera Camera) *System {
	return &System{
		canvas: canvas,
		camera: camera,
	}
}

// Pending returns the number of queued draw commands
func (s *System) Pending() int {
	return len(s.queue)
}

// Reset discards all queued commands and invalidates every silhouette
// cache entry
func (s *System) Reset() {
	s.queue = s.queue[:0]
	s.requested = false
	for i := range s.contours {
		s.contours[i] = contourCache{}
	}
}

// enqueue appends one deferred command. Enqueueing never requests a
// repaint by itself; that decision belongs to the fixed-step Tick.
func (s *System) enqueue(c command) {
	s.queue = append(s.queue, c)
}

// Tick is the fixed-step clock input. If the queue has become non-empty
// since the last drain, it issues exactly one repaint request; further
// enqueues before the next drain issue no additional requests.
func (s *System) Tick() {
	if len(s.queue) > 0 && !s.requested {
		s.requested = true
		s.canvas.RequestRepaint()
	}
}

// Repainted is the canvas repaint hook: it executes every queued command in
// insertion order, then clears the queue unconditionally. A failing command
// does not stop later ones; the first error is returned after the drain
// completes. Enqueueing from within a command is not supported.
func (s *System) Repainted() error {
	var firstErr error
	for i := range s.queue {
		if err := s.execute(&s.queue[i]); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.queue = s.queue[:0]
	s.requested = false
	return firstErr
}
