// Package input provides the layered pointer input model used by the grid
// engine. Hosts turn device state into raw events, the bindings classify
// them into phases, and listeners registered on a Target react to them.
package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceMouse
	DeviceTouch
)

// String returns the device name.
func (d Device) String() string {
	switch d {
	case DeviceMouse:
		return "mouse"
	case DeviceTouch:
		return "touch"
	default:
		return "unknown"
	}
}

// EventType names a raw pointer event, using the browser event names so the
// listener wiring reads the same on every host.
type EventType string

const (
	MouseDown   EventType = "mousedown"
	MouseMove   EventType = "mousemove"
	MouseUp     EventType = "mouseup"
	MouseLeave  EventType = "mouseleave"
	TouchStart  EventType = "touchstart"
	TouchMove   EventType = "touchmove"
	TouchEnd    EventType = "touchend"
	TouchCancel EventType = "touchcancel"
)

// Phase is the high-level meaning of an event for a drag gesture.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseStart
	PhaseMove
	PhaseEnd    // released normally; may become a click
	PhaseCancel // left the surface or was cancelled; never a click
)

// PointerEvent is one pointer sample in screen pixels.
type PointerEvent struct {
	Type   EventType
	Device Device
	X, Y   float64
	Time   time.Time
}

// bindings maps raw event types to gesture phases.
var bindings = map[EventType]Phase{
	MouseDown:   PhaseStart,
	TouchStart:  PhaseStart,
	MouseMove:   PhaseMove,
	TouchMove:   PhaseMove,
	MouseUp:     PhaseEnd,
	TouchEnd:    PhaseEnd,
	MouseLeave:  PhaseCancel,
	TouchCancel: PhaseCancel,
}

// PhaseOf returns the gesture phase of an event type.
func PhaseOf(t EventType) Phase {
	if p, ok := bindings[t]; ok {
		return p
	}
	return PhaseNone
}

// DeviceOf returns the device that produces the given event type.
func DeviceOf(t EventType) Device {
	switch t {
	case MouseDown, MouseMove, MouseUp, MouseLeave:
		return DeviceMouse
	case TouchStart, TouchMove, TouchEnd, TouchCancel:
		return DeviceTouch
	default:
		return DeviceUnknown
	}
}

// AllEventTypes returns every bound event type in a stable order.
func AllEventTypes() []EventType {
	types := make([]EventType, 0, len(bindings))
	for t := range bindings {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
