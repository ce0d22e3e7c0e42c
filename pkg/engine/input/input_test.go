package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPhaseOf(t *testing.T) {
	assert.Equal(t, PhaseStart, PhaseOf(MouseDown))
	assert.Equal(t, PhaseStart, PhaseOf(TouchStart))
	assert.Equal(t, PhaseMove, PhaseOf(TouchMove))
	assert.Equal(t, PhaseEnd, PhaseOf(MouseUp))
	assert.Equal(t, PhaseCancel, PhaseOf(MouseLeave))
	assert.Equal(t, PhaseCancel, PhaseOf(TouchCancel))
	assert.Equal(t, PhaseNone, PhaseOf("wheel"))
}

func TestAllEventTypes_CoversMouseAndTouch(t *testing.T) {
	types := AllEventTypes()
	assert.Len(t, types, 8)
	for _, ev := range types {
		assert.NotEqual(t, PhaseNone, PhaseOf(ev), ev)
		assert.NotEqual(t, DeviceUnknown, DeviceOf(ev), ev)
	}
}

func TestTarget_EmitAndRemove(t *testing.T) {
	target := NewTarget()
	var got []PointerEvent
	h := target.On(MouseDown, func(ev PointerEvent) { got = append(got, ev) })

	target.Emit(PointerEvent{Type: MouseDown, X: 1, Y: 2})
	target.Emit(PointerEvent{Type: MouseUp})
	if assert.Len(t, got, 1) {
		assert.Equal(t, DeviceMouse, got[0].Device)
	}

	h.Remove()
	h.Remove()
	target.Emit(PointerEvent{Type: MouseDown})
	assert.Len(t, got, 1)
	assert.Zero(t, target.ListenerCount(MouseDown))
}

func TestTarget_ListenerRemovingItself(t *testing.T) {
	target := NewTarget()
	calls := 0
	var h Handle
	h = target.On(TouchEnd, func(PointerEvent) {
		calls++
		h.Remove()
	})
	target.On(TouchEnd, func(PointerEvent) { calls++ })

	target.Emit(PointerEvent{Type: TouchEnd})
	target.Emit(PointerEvent{Type: TouchEnd})
	assert.Equal(t, 3, calls)
}

func TestCooldown(t *testing.T) {
	start := time.Unix(1000, 0)
	c := NewCooldown(500 * time.Millisecond)

	assert.True(t, c.Allow(start))
	c.Mark(start)
	assert.False(t, c.Allow(start.Add(100*time.Millisecond)))
	assert.False(t, c.Allow(start.Add(499*time.Millisecond)))
	assert.True(t, c.Allow(start.Add(500*time.Millisecond)))

	c.Reset()
	assert.True(t, c.Allow(start))
}
