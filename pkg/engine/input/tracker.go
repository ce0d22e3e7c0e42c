package input

import "time"

// Touch is one active touch point as reported by the host.
type Touch struct {
	ID   int
	X, Y float64
}

// Tracker turns polled device state into events on a Target. Hosts that only
// see per-frame snapshots (cursor position, button state, touch list) call it
// once per frame. Only the first touch is followed; further fingers are
// ignored until it lifts.
type Tracker struct {
	target *Target

	// mouseDown is set between a delivered MouseDown and its MouseUp or
	// MouseLeave. buttonHeld is the raw button state of the last frame.
	mouseDown   bool
	buttonHeld  bool
	mouseInside bool
	mouseX      float64
	mouseY      float64

	touchActive bool
	touchID     int
	touchX      float64
	touchY      float64
}

// NewTracker creates a tracker emitting to t.
func NewTracker(t *Target) *Tracker {
	return &Tracker{target: t}
}

func (tr *Tracker) emit(ev EventType, x, y float64, now time.Time) {
	tr.target.Emit(PointerEvent{Type: ev, X: x, Y: y, Time: now})
}

// Mouse records the cursor state of one frame. inside reports whether the
// cursor is over the surface. A press is only reported on a released to
// pressed edge seen inside the surface; coming back in with the button still
// held from an earlier drag reports movement only.
func (tr *Tracker) Mouse(x, y float64, pressed, inside bool, now time.Time) {
	edge := pressed && !tr.buttonHeld
	tr.buttonHeld = pressed

	if !inside {
		if tr.mouseInside {
			tr.emit(MouseLeave, x, y, now)
		}
		tr.mouseInside = false
		tr.mouseDown = false
		tr.mouseX, tr.mouseY = x, y
		return
	}

	moved := !tr.mouseInside || x != tr.mouseX || y != tr.mouseY
	tr.mouseInside = true
	tr.mouseX, tr.mouseY = x, y

	if moved {
		tr.emit(MouseMove, x, y, now)
	}
	switch {
	case edge && !tr.mouseDown:
		tr.mouseDown = true
		tr.emit(MouseDown, x, y, now)
	case !pressed && tr.mouseDown:
		tr.mouseDown = false
		tr.emit(MouseUp, x, y, now)
	}
}

// Touches records the active touches of one frame.
func (tr *Tracker) Touches(touches []Touch, now time.Time) {
	if !tr.touchActive {
		if len(touches) == 0 {
			return
		}
		t := touches[0]
		tr.touchActive = true
		tr.touchID = t.ID
		tr.touchX, tr.touchY = t.X, t.Y
		tr.emit(TouchStart, t.X, t.Y, now)
		return
	}

	for _, t := range touches {
		if t.ID != tr.touchID {
			continue
		}
		if t.X != tr.touchX || t.Y != tr.touchY {
			tr.touchX, tr.touchY = t.X, t.Y
			tr.emit(TouchMove, t.X, t.Y, now)
		}
		return
	}

	tr.touchActive = false
	tr.emit(TouchEnd, tr.touchX, tr.touchY, now)
}

// Cancel ends any gesture in progress without a release, for example when the
// window loses focus.
func (tr *Tracker) Cancel(now time.Time) {
	if tr.touchActive {
		tr.touchActive = false
		tr.emit(TouchCancel, tr.touchX, tr.touchY, now)
	}
	if tr.mouseDown {
		tr.mouseDown = false
		tr.emit(MouseLeave, tr.mouseX, tr.mouseY, now)
	}
}
