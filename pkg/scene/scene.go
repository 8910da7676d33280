// Package scene loads declarative overlay scenes from TOML files. A scene
// is a list of shapes that a host re-issues against an overlay system every
// frame, which makes it a convenient driver for the demo apps and for
// hot-reload workflows.
package scene

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/philipparndt/godraw/pkg/geometry"
	"github.com/philipparndt/godraw/pkg/overlay"
)

// Vec is a TOML-friendly 3D vector
type Vec [3]float64

// Vector3 converts to a geometry vector
func (v Vec) Vector3() geometry.Vector3 {
	return geometry.NewVector3(v[0], v[1], v[2])
}

// Shape describes one overlay shape. Kind selects the entry point; only the
// fields that kind uses are read. Styling fields are optional and fall back
// to the overlay defaults.
type Shape struct {
	Kind string `toml:"kind"`

	Position Vec   `toml:"position"`
	From     Vec   `toml:"from"`
	To       Vec   `toml:"to"`
	Points   []Vec `toml:"points"`

	Radius     float64    `toml:"radius"`
	RadiusY    float64    `toml:"radius_y"`
	Height     float64    `toml:"height"`
	Size       float64    `toml:"size"`
	Sides      [3]float64 `toml:"sides"`
	StartAngle float64    `toml:"start_angle"`
	Sweep      float64    `toml:"sweep"`
	Text       string     `toml:"text"`

	Color       string   `toml:"color"` // "#rrggbb" or "#rrggbbaa"
	Thickness   float64  `toml:"thickness"`
	Resolution  int      `toml:"resolution"`
	Contour     *bool    `toml:"contour"`
	Antialiased *bool    `toml:"antialiased"`
}

// Scene is a parsed scene file
type Scene struct {
	Shapes []Shape `toml:"shape"`
}

// Load reads and parses a scene file
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	return Parse(data)
}

// Parse parses scene TOML and validates every shape kind
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	for i, shape := range s.Shapes {
		if !knownKinds[shape.Kind] {
			return nil, fmt.Errorf("shape %d: unknown kind %q", i, shape.Kind)
		}
		if shape.Color != "" {
			if _, err := ParseColor(shape.Color); err != nil {
				return nil, fmt.Errorf("shape %d: %w", i, err)
			}
		}
	}

	return &s, nil
}

var knownKinds = map[string]bool{
	"point": true, "line": true, "arrow": true, "polyline": true,
	"arc": true, "ellipse": true, "circle": true,
	"hemisphere": true, "sphere": true, "cylinder": true, "capsule": true,
	"square": true, "cube": true, "triangle": true, "pyramid": true,
	"cone": true, "text": true,
}

// Draw issues one overlay draw call per shape, in file order
func (s *Scene) Draw(sys *overlay.System) {
	for i := range s.Shapes {
		s.Shapes[i].draw(sys)
	}
}

func (sh *Shape) draw(sys *overlay.System) {
	opts := sh.options()
	at := geometry.At(sh.Position.Vector3())

	switch sh.Kind {
	case "point":
		sys.DrawPoint(sh.Position.Vector3(), sh.Size, opts...)
	case "line":
		sys.DrawLine(sh.From.Vector3(), sh.To.Vector3(), opts...)
	case "arrow":
		sys.DrawArrow(sh.From.Vector3(), sh.To.Vector3(), opts...)
	case "polyline":
		points := make([]geometry.Vector3, len(sh.Points))
		for i, p := range sh.Points {
			points[i] = p.Vector3()
		}
		sys.DrawPolyline(points, opts...)
	case "arc":
		sys.DrawArc(at, sh.StartAngle, sh.Sweep, sh.Radius, sh.radiusY(), opts...)
	case "ellipse":
		sys.DrawEllipse(at, sh.Radius, sh.radiusY(), opts...)
	case "circle":
		sys.DrawCircle(at, sh.Radius, opts...)
	case "hemisphere":
		sys.DrawHemisphere(at, sh.Radius, opts...)
	case "sphere":
		sys.DrawSphere(at, sh.Radius, opts...)
	case "cylinder":
		sys.DrawCylinder(at, sh.Radius, sh.Height, opts...)
	case "capsule":
		sys.DrawCapsule(geometry.At(sh.From.Vector3()), geometry.At(sh.To.Vector3()), sh.Radius, opts...)
	case "square":
		sys.DrawSquare(at, sh.Size, opts...)
	case "cube":
		sys.DrawCube(at, sh.Size, opts...)
	case "triangle":
		sys.DrawTriangle(at, sh.Sides[0], sh.Sides[1], sh.Sides[2], opts...)
	case "pyramid":
		sys.DrawPyramid(at, sh.Size, sh.Height, opts...)
	case "cone":
		sys.DrawCone(at, sh.Radius, sh.Height, opts...)
	case "text":
		sys.DrawText(sh.Position.Vector3(), sh.Text, sh.Size, opts...)
	}
}

// radiusY falls back to the primary radius when unset
func (sh *Shape) radiusY() float64 {
	if sh.RadiusY != 0 {
		return sh.RadiusY
	}
	return sh.Radius
}

// options translates the optional styling fields into overlay options
func (sh *Shape) options() []overlay.Option {
	var opts []overlay.Option

	if sh.Color != "" {
		if col, err := ParseColor(sh.Color); err == nil {
			opts = append(opts, overlay.WithColor(col))
		}
	}
	if sh.Thickness != 0 {
		opts = append(opts, overlay.WithThickness(sh.Thickness))
	}
	if sh.Resolution != 0 {
		opts = append(opts, overlay.WithResolution(sh.Resolution))
	}
	if sh.Contour != nil {
		opts = append(opts, overlay.WithContour(*sh.Contour))
	}
	if sh.Antialiased != nil {
		opts = append(opts, overlay.WithAntialiased(*sh.Antialiased))
	}

	return opts
}
