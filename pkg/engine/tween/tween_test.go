package tween

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gallerygrid/pkg/engine/scene"
)

func TestEasingEndpoints(t *testing.T) {
	for name, e := range map[string]Easing{"linear": Linear, "quadOut": QuadOut} {
		assert.InDelta(t, 0, e(0), 1e-12, name)
		assert.InDelta(t, 1, e(1), 1e-12, name)
	}
	assert.InDelta(t, 0.75, QuadOut(0.5), 1e-12)
}

func TestTween_ValueAndDone(t *testing.T) {
	start := time.Unix(0, 0)
	tw := New(scene.Vec2{X: 0, Y: 10}, scene.Vec2{X: 10, Y: 0}, start, 500*time.Millisecond, QuadOut)

	assert.Equal(t, scene.Vec2{X: 0, Y: 10}, tw.Value(start))
	mid := tw.Value(start.Add(250 * time.Millisecond))
	assert.InDelta(t, 7.5, mid.X, 1e-9)
	assert.InDelta(t, 2.5, mid.Y, 1e-9)
	assert.False(t, tw.Done(start.Add(499*time.Millisecond)))
	assert.True(t, tw.Done(start.Add(500*time.Millisecond)))
	assert.Equal(t, scene.Vec2{X: 10, Y: 0}, tw.Value(start.Add(time.Second)))
}

func TestTween_ZeroDurationIsDone(t *testing.T) {
	now := time.Unix(5, 0)
	tw := New(scene.Vec2{}, scene.Vec2{X: 1}, now, 0, nil)
	assert.True(t, tw.Done(now))
	assert.Equal(t, scene.Vec2{X: 1}, tw.Value(now))
}
