package viewer

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/philipparndt/godraw/pkg/geometry"
)

// ImageCanvas is a software canvas drawing into an RGBA image. It is used
// for headless rendering and for tests; RequestRepaint invokes an optional
// callback so a host loop can schedule the next frame.
type ImageCanvas struct {
	img       *image.RGBA
	face      font.Face
	OnRepaint func()
}

// NewImageCanvas creates a software canvas of the given pixel size
func NewImageCanvas(width, height int) *ImageCanvas {
	return &ImageCanvas{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		face: basicfont.Face7x13,
	}
}

// Image returns the backing image
func (c *ImageCanvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the whole canvas with the given color
func (c *ImageCanvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// DrawLine draws a line segment. Thickness below 1.5 pixels renders a
// single Bresenham line; thicker strokes render parallel offset lines. The
// software canvas ignores the antialiasing hint.
func (c *ImageCanvas) DrawLine(from, to geometry.Vector2, col color.RGBA, thickness float64, _ bool) {
	if thickness < 1.5 {
		c.bresenham(from, to, col)
		return
	}

	// Offset perpendicular to the segment, one line per pixel of thickness
	dir := to.Sub(from)
	length := dir.Length()
	if length == 0 {
		c.bresenham(from, to, col)
		return
	}
	normal := geometry.NewVector2(-dir.Y/length, dir.X/length)

	half := thickness / 2
	for offset := -half; offset <= half; offset++ {
		shift := normal.Mul(offset)
		c.bresenham(from.Add(shift), to.Add(shift), col)
	}
}

// DrawPolyline draws connected line segments through the given points
func (c *ImageCanvas) DrawPolyline(points []geometry.Vector2, col color.RGBA, thickness float64, antialiased bool) {
	for i := 0; i+1 < len(points); i++ {
		c.DrawLine(points[i], points[i+1], col, thickness, antialiased)
	}
}

// DrawText draws multiline text anchored at the given position. The basic
// bitmap face ignores the requested size.
func (c *ImageCanvas) DrawText(pos geometry.Vector2, text string, col color.RGBA, _ float64) {
	metrics := c.face.Metrics()
	lineHeight := metrics.Height.Ceil()

	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: c.face,
	}

	for i, line := range strings.Split(text, "\n") {
		d.Dot = fixed.P(int(pos.X), int(pos.Y)+metrics.Ascent.Ceil()+i*lineHeight)
		d.DrawString(line)
	}
}

// RequestRepaint notifies the host that a repaint is wanted
func (c *ImageCanvas) RequestRepaint() {
	if c.OnRepaint != nil {
		c.OnRepaint()
	}
}

// bresenham draws a one-pixel line using Bresenham's algorithm
func (c *ImageCanvas) bresenham(from, to geometry.Vector2, col color.RGBA) {
	bounds := c.img.Bounds()

	x1, y1 := int(math.Round(from.X)), int(math.Round(from.Y))
	x2, y2 := int(math.Round(to.X)), int(math.Round(to.Y))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	var sx, sy int
	if x1 < x2 {
		sx = 1
	} else {
		sx = -1
	}
	if y1 < y2 {
		sy = 1
	} else {
		sy = -1
	}

	err := dx - dy

	for {
		// Check bounds
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			c.img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
