// Package tween animates a 2-D value between two points over a fixed duration.
package tween

import (
	"math"
	"time"

	"gallerygrid/pkg/engine/scene"
)

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// QuadOut decelerates to the target (quadratic ease-out).
func QuadOut(t float64) float64 { return t * (2 - t) }

// Tween moves from From to To, starting at Start and lasting Duration.
type Tween struct {
	From     scene.Vec2
	To       scene.Vec2
	Start    time.Time
	Duration time.Duration
	Easing   Easing
}

// New creates a tween starting at now.
func New(from, to scene.Vec2, now time.Time, d time.Duration, easing Easing) *Tween {
	if easing == nil {
		easing = Linear
	}
	return &Tween{From: from, To: to, Start: now, Duration: d, Easing: easing}
}

// Progress returns the linear progress at now, clamped to [0,1].
func (t *Tween) Progress(now time.Time) float64 {
	if t.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(t.Start)) / float64(t.Duration)
	return math.Max(0, math.Min(1, p))
}

// Value returns the eased position at now.
func (t *Tween) Value(now time.Time) scene.Vec2 {
	p := t.Progress(now)
	if p >= 1 {
		return t.To
	}
	e := t.Easing(p)
	return scene.Vec2{
		X: t.From.X + (t.To.X-t.From.X)*e,
		Y: t.From.Y + (t.To.Y-t.From.Y)*e,
	}
}

// Done reports whether the tween has reached its target at now.
func (t *Tween) Done(now time.Time) bool {
	return t.Progress(now) >= 1
}
