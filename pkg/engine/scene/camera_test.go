package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenToNDC_Corners(t *testing.T) {
	cam := NewCamera(800, 600)

	assert.Equal(t, Vec2{-1, 1}, cam.ScreenToNDC(0, 0))
	assert.Equal(t, Vec2{1, -1}, cam.ScreenToNDC(800, 600))
	assert.Equal(t, Vec2{0, 0}, cam.ScreenToNDC(400, 300))
}

func TestScreenToPlane_CenterHitsCameraXY(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.Position.X = 12
	cam.Position.Y = -7

	p, ok := cam.ScreenToPlane(400, 300)
	require.True(t, ok)
	assert.InDelta(t, 12, p.X, 1e-9)
	assert.InDelta(t, -7, p.Y, 1e-9)
}

func TestProjectRoundTrip(t *testing.T) {
	cam := NewCamera(1024, 768)
	cam.Position = Vec3{X: 3, Y: 4, Z: DefaultCameraZ}
	cam.Zoom = 1.5

	world := Vec3{X: 5.5, Y: 1.25}
	screen, ok := cam.Project(world)
	require.True(t, ok)

	back, ok := cam.ScreenToPlane(screen.X, screen.Y)
	require.True(t, ok)
	assert.InDelta(t, world.X, back.X, 1e-9)
	assert.InDelta(t, world.Y, back.Y, 1e-9)
}

func TestProject_BehindCamera(t *testing.T) {
	cam := NewCamera(800, 600)
	_, ok := cam.Project(Vec3{Z: DefaultCameraZ + 1})
	assert.False(t, ok)
}

func TestPixelsPerUnit_ScalesWithZoom(t *testing.T) {
	cam := NewCamera(800, 600)
	base := cam.PixelsPerUnit()
	cam.Zoom = 2
	assert.InDelta(t, base*2, cam.PixelsPerUnit(), 1e-9)
}

func TestIntersectCard(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.Position.X = 1
	r := cam.Ray(Vec2{})

	hit, ok := r.IntersectCard(Vec3{X: 1}, 4, 6)
	require.True(t, ok)
	assert.InDelta(t, DefaultCameraZ, hit.Distance, 1e-9)
	assert.InDelta(t, 0.5, hit.UV.X, 1e-9)
	assert.InDelta(t, 0.5, hit.UV.Y, 1e-9)

	_, ok = r.IntersectCard(Vec3{X: 10}, 4, 6)
	assert.False(t, ok)
}

func TestIntersectPlaneZ_Parallel(t *testing.T) {
	r := Ray{Direction: Vec3{X: 1}}
	_, ok := r.IntersectPlaneZ(0)
	assert.False(t, ok)
}
