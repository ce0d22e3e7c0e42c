package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func recordAll(target *Target) *[]EventType {
	var got []EventType
	for _, ev := range AllEventTypes() {
		target.On(ev, func(e PointerEvent) { got = append(got, e.Type) })
	}
	return &got
}

func TestTracker_MouseClick(t *testing.T) {
	target := NewTarget()
	got := recordAll(target)
	tr := NewTracker(target)
	now := time.Unix(0, 0)

	tr.Mouse(10, 10, false, true, now)
	tr.Mouse(10, 10, true, true, now)
	tr.Mouse(10, 10, true, true, now)
	tr.Mouse(10, 10, false, true, now)

	assert.Equal(t, []EventType{MouseMove, MouseDown, MouseUp}, *got)
}

func TestTracker_MouseLeavesWhileDragging(t *testing.T) {
	target := NewTarget()
	got := recordAll(target)
	tr := NewTracker(target)
	now := time.Unix(0, 0)

	tr.Mouse(10, 10, true, true, now)
	tr.Mouse(30, 10, true, true, now)
	tr.Mouse(-5, 10, true, false, now)
	// release outside the window produces nothing further
	tr.Mouse(-5, 10, false, false, now)

	assert.Equal(t, []EventType{MouseMove, MouseDown, MouseMove, MouseLeave}, *got)
}

func TestTracker_ReenterWhileHeldIsNotAPress(t *testing.T) {
	target := NewTarget()
	got := recordAll(target)
	tr := NewTracker(target)
	now := time.Unix(0, 0)

	tr.Mouse(100, 100, true, true, now)
	tr.Mouse(300, 100, true, true, now)
	tr.Mouse(-10, 100, true, false, now)
	tr.Mouse(300, 100, true, true, now)
	tr.Mouse(300, 100, false, true, now)

	assert.Equal(t, []EventType{MouseMove, MouseDown, MouseMove, MouseLeave, MouseMove}, *got)

	// a fresh press after the release is reported again
	tr.Mouse(300, 100, true, true, now)
	tr.Mouse(300, 100, false, true, now)
	assert.Equal(t, []EventType{MouseMove, MouseDown, MouseMove, MouseLeave, MouseMove, MouseDown, MouseUp}, *got)
}

func TestTracker_PressStartedOutsideIsNotAPress(t *testing.T) {
	target := NewTarget()
	got := recordAll(target)
	tr := NewTracker(target)
	now := time.Unix(0, 0)

	tr.Mouse(-10, 10, true, false, now)
	tr.Mouse(10, 10, true, true, now)
	tr.Mouse(10, 10, false, true, now)

	assert.Equal(t, []EventType{MouseMove}, *got)
}

func TestTracker_CancelThenStillHeld(t *testing.T) {
	target := NewTarget()
	got := recordAll(target)
	tr := NewTracker(target)
	now := time.Unix(0, 0)

	tr.Mouse(10, 10, true, true, now)
	tr.Cancel(now)
	tr.Mouse(12, 10, true, true, now)
	tr.Mouse(12, 10, false, true, now)

	assert.Equal(t, []EventType{MouseMove, MouseDown, MouseLeave, MouseMove}, *got)
}

func TestTracker_FollowsFirstTouch(t *testing.T) {
	target := NewTarget()
	var events []PointerEvent
	for _, ev := range AllEventTypes() {
		target.On(ev, func(e PointerEvent) { events = append(events, e) })
	}
	tr := NewTracker(target)
	now := time.Unix(0, 0)

	tr.Touches([]Touch{{ID: 7, X: 1, Y: 1}}, now)
	tr.Touches([]Touch{{ID: 8, X: 50, Y: 50}, {ID: 7, X: 3, Y: 1}}, now)
	tr.Touches([]Touch{{ID: 8, X: 60, Y: 50}}, now)
	tr.Touches(nil, now)

	if assert.Len(t, events, 3) {
		assert.Equal(t, TouchStart, events[0].Type)
		assert.Equal(t, TouchMove, events[1].Type)
		assert.Equal(t, 3.0, events[1].X)
		assert.Equal(t, TouchEnd, events[2].Type)
		assert.Equal(t, DeviceTouch, events[2].Device)
		assert.Equal(t, 3.0, events[2].X)
	}
}

func TestTracker_Cancel(t *testing.T) {
	target := NewTarget()
	got := recordAll(target)
	tr := NewTracker(target)
	now := time.Unix(0, 0)

	tr.Touches([]Touch{{ID: 1}}, now)
	tr.Mouse(0, 0, true, true, now)
	tr.Cancel(now)
	tr.Cancel(now)

	assert.Equal(t, []EventType{TouchStart, MouseMove, MouseDown, TouchCancel, MouseLeave}, *got)
}
