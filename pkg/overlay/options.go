package overlay

import "image/color"

// Options control how a single shape is drawn. Every Draw call starts from
// the package defaults; callers override individual fields with the With*
// functions.
type Options struct {
	Color       color.RGBA
	Thickness   float64
	Resolution  int
	Contour     bool
	Antialiased bool
}

// Option overrides a single drawing option
type Option func(*Options)

// defaultOptions returns the documented per-shape defaults
func defaultOptions() Options {
	return Options{
		Color:       color.RGBA{R: 255, B: 255, A: 255}, // magenta
		Thickness:   0.5,
		Resolution:  32,
		Contour:     true,
		Antialiased: true,
	}
}

func applyOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithColor sets the stroke color
func WithColor(col color.RGBA) Option {
	return func(o *Options) { o.Color = col }
}

// WithThickness sets the stroke thickness in pixels
func WithThickness(thickness float64) Option {
	return func(o *Options) { o.Thickness = thickness }
}

// WithResolution sets the number of segments used to sample arcs and to
// tessellate curved solids. Must be >= 1.
func WithResolution(resolution int) Option {
	return func(o *Options) { o.Resolution = resolution }
}

// WithContour toggles the silhouette contour outline of curved solids
func WithContour(contour bool) Option {
	return func(o *Options) { o.Contour = contour }
}

// WithAntialiased toggles antialiased stroking
func WithAntialiased(antialiased bool) Option {
	return func(o *Options) { o.Antialiased = antialiased }
}
