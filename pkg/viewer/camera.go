package viewer

import (
	"math"

	"github.com/philipparndt/godraw/pkg/geometry"
)

// Camera represents an orbiting 3D camera for viewing a scene
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // Field of view in radians
	Distance  float64
	RotationX float64 // Rotation around X axis (vertical)
	RotationY float64 // Rotation around Y axis (horizontal)
}

// NewCamera creates a new camera orbiting the given target at the given
// distance
func NewCamera(target geometry.Vector3, distance float64) *Camera {
	return &Camera{
		Position: target.Add(geometry.NewVector3(0, 0, distance)),
		Target:   target,
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      math.Pi / 4, // 45 degrees
		Distance: distance,
	}
}

// UpdatePosition updates camera position based on rotation angles
func (c *Camera) UpdatePosition() {
	// Calculate position based on spherical coordinates
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate rotates the camera by the given angles
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX += deltaX
	c.RotationY += deltaY

	// Clamp X rotation to prevent gimbal lock
	maxAngle := math.Pi/2 - 0.1
	if c.RotationX > maxAngle {
		c.RotationX = maxAngle
	}
	if c.RotationX < -maxAngle {
		c.RotationX = -maxAngle
	}

	c.UpdatePosition()
}

// Zoom changes the camera distance
func (c *Camera) Zoom(delta float64) {
	c.Distance *= (1.0 + delta)
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
	c.UpdatePosition()
}

// axes returns the camera's right, up, and forward unit vectors
func (c *Camera) axes() (right, up, forward geometry.Vector3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return right, up, forward
}

// WorldTransform returns the camera's placement in world space. Any change
// to position or orientation changes the result, which makes it usable as a
// cache key for projection-derived results.
func (c *Camera) WorldTransform() geometry.Transform {
	right, up, forward := c.axes()
	return geometry.Transform{
		X:      right,
		Y:      up,
		Z:      forward,
		Origin: c.Position,
	}
}

// Project projects a 3D point to 2D screen coordinates, returning the
// screen position and the view-space depth
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	right, up, forward := c.axes()

	// Transform to camera space
	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	// Perspective projection
	if z <= 0.01 {
		z = 0.01 // Prevent division by zero
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}

// Unproject converts 2D screen coordinates back to a 3D ray
func (c *Camera) Unproject(screenX, screenY, width, height float64) (origin, direction geometry.Vector3) {
	// Convert screen coordinates to normalized device coordinates (-1 to 1)
	ndcX := (2.0 * screenX / width) - 1.0
	ndcY := 1.0 - (2.0 * screenY / height)

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	right, up, forward := c.axes()

	// Calculate direction in world space
	rayDir := forward.Add(right.Mul(ndcX * fovScale * aspect)).Add(up.Mul(ndcY * fovScale))
	rayDir = rayDir.Normalize()

	return c.Position, rayDir
}

// Viewport binds a camera to a screen size, adapting it to the overlay
// system's camera contract
type Viewport struct {
	Camera *Camera
	Width  float64
	Height float64
}

// Project projects a world-space point to screen space
func (v Viewport) Project(p geometry.Vector3) geometry.Vector2 {
	x, y, _ := v.Camera.Project(p, v.Width, v.Height)
	return geometry.NewVector2(x, y)
}

// Transform returns the camera's current world transform
func (v Viewport) Transform() geometry.Transform {
	return v.Camera.WorldTransform()
}
