package scene

import "math"

// Default camera settings, matching the perspective the cards were designed for.
const (
	DefaultFOV     = 75.0
	DefaultCameraZ = 20.0
	DefaultNear    = 0.1
	DefaultFar     = 1000.0
)

// Camera is a perspective camera looking down the -Z axis with no rotation.
// Position and Zoom are mutated by the navigation controller; the host keeps
// the viewport size current.
type Camera struct {
	Position Vec3
	Zoom     float64

	FOV  float64 // vertical field of view in degrees
	Near float64
	Far  float64

	ViewportWidth  float64
	ViewportHeight float64
}

// NewCamera returns a camera at the default distance for a viewport of w×h pixels.
func NewCamera(w, h float64) *Camera {
	return &Camera{
		Position:       Vec3{Z: DefaultCameraZ},
		Zoom:           1,
		FOV:            DefaultFOV,
		Near:           DefaultNear,
		Far:            DefaultFar,
		ViewportWidth:  w,
		ViewportHeight: h,
	}
}

// Aspect returns the viewport aspect ratio (1 when the viewport is unknown).
func (c *Camera) Aspect() float64 {
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return 1
	}
	return c.ViewportWidth / c.ViewportHeight
}

// SetViewport updates the viewport size, e.g. after a window resize.
func (c *Camera) SetViewport(w, h float64) {
	c.ViewportWidth = w
	c.ViewportHeight = h
}

// halfHeight returns tan(fov/2) adjusted by zoom, i.e. the half height of the
// view frustum at distance 1.
func (c *Camera) halfHeight() float64 {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return math.Tan(c.FOV*math.Pi/360) / zoom
}

// ScreenToNDC converts pixel coordinates to normalized device coordinates in
// [-1, 1], with +Y pointing up.
func (c *Camera) ScreenToNDC(sx, sy float64) Vec2 {
	w, h := c.ViewportWidth, c.ViewportHeight
	if w <= 0 || h <= 0 {
		return Vec2{}
	}
	return Vec2{
		X: sx/w*2 - 1,
		Y: -(sy/h)*2 + 1,
	}
}

// Ray unprojects ndc through the camera and returns the ray from the camera
// position through that point.
func (c *Camera) Ray(ndc Vec2) Ray {
	hh := c.halfHeight()
	dir := Vec3{
		X: ndc.X * hh * c.Aspect(),
		Y: ndc.Y * hh,
		Z: -1,
	}
	return Ray{Origin: c.Position, Direction: dir.Normalize()}
}

// ScreenToPlane returns the point where the ray through the given pixel meets
// the card plane z=0. ok is false when the ray runs parallel to the plane.
func (c *Camera) ScreenToPlane(sx, sy float64) (Vec2, bool) {
	r := c.Ray(c.ScreenToNDC(sx, sy))
	t, ok := r.IntersectPlaneZ(0)
	if !ok {
		return Vec2{}, false
	}
	return r.At(t).XY(), true
}

// Project maps a world point to pixel coordinates. ok is false for points at
// or behind the camera.
func (c *Camera) Project(p Vec3) (Vec2, bool) {
	depth := c.Position.Z - p.Z
	if depth <= 0 {
		return Vec2{}, false
	}
	hh := c.halfHeight()
	ndcX := (p.X - c.Position.X) / (depth * hh * c.Aspect())
	ndcY := (p.Y - c.Position.Y) / (depth * hh)
	return Vec2{
		X: (ndcX + 1) / 2 * c.ViewportWidth,
		Y: (1 - ndcY) / 2 * c.ViewportHeight,
	}, true
}

// PixelsPerUnit returns how many screen pixels one world unit spans on the
// plane z=0.
func (c *Camera) PixelsPerUnit() float64 {
	depth := c.Position.Z
	if depth <= 0 {
		return 0
	}
	return c.ViewportHeight / (2 * depth * c.halfHeight())
}
