// Package navigation turns pointer and touch input into camera motion: drags
// pan the camera, releases snap it to the nearest grid cell, and releases
// without movement become clicks.
package navigation

import (
	"math"
	"time"

	"go.uber.org/zap"

	"gallerygrid/pkg/engine/input"
	"gallerygrid/pkg/engine/scene"
	"gallerygrid/pkg/engine/tween"
)

// State is the drag state of a Controller.
type State int

// States
const (
	Idle State = iota
	Dragging
	Snapping
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Snapping:
		return "snapping"
	default:
		return "unknown"
	}
}

// Default tuning.
const (
	DefaultThreshold    = 5.0
	DefaultScaleFactor  = 200.0
	DefaultSnapDuration = 500 * time.Millisecond
)

// Options tunes a Controller.
type Options struct {
	// Threshold is the per-axis pointer movement, in pixels, that turns a
	// press into a drag.
	Threshold float64
	// ScaleFactor converts pixels to world units before zoom is applied.
	ScaleFactor  float64
	SnapDuration time.Duration
	// MaxRotation is the largest card tilt towards the pointer, in radians.
	MaxRotation float64
}

func (o Options) withDefaults() Options {
	if o.Threshold <= 0 {
		o.Threshold = DefaultThreshold
	}
	if o.ScaleFactor <= 0 {
		o.ScaleFactor = DefaultScaleFactor
	}
	if o.SnapDuration <= 0 {
		o.SnapDuration = DefaultSnapDuration
	}
	return o
}

// Grid is the card grid the controller keeps in step with the camera.
type Grid interface {
	// Step wraps, culls and populates cards around the camera.
	Step(cam *scene.Camera)
	Tilt(pointer scene.Vec2, maxRotation float64)
	// CellPeriod is the snap spacing.
	CellPeriod() scene.Vec2
}

// Clicker receives releases that did not move the pointer.
type Clicker interface {
	Dispatch(x, y float64, now time.Time) bool
}

// PointerState is the last known pointer position, on screen and on the card
// plane.
type PointerState struct {
	Screen scene.Vec2
	Scene  scene.Vec2
	Valid  bool
}

// Stats counts controller outcomes.
type Stats struct {
	Clicks int
	Snaps  int
}

// Controller is the drag state machine for one camera. All state lives in the
// instance, so several grids can be driven independently.
type Controller struct {
	opts    Options
	cam     *scene.Camera
	grid    Grid
	clicks  Clicker
	pointer *PointerState
	log     *zap.Logger

	state State
	moved bool
	last  scene.Vec2
	snap  *tween.Tween
	stats Stats

	handles map[*input.Target][]input.Handle
}

// NewController creates a controller moving cam over g. pointer may be nil.
func NewController(cam *scene.Camera, g Grid, clicks Clicker, pointer *PointerState, opts Options, log *zap.Logger) *Controller {
	if pointer == nil {
		pointer = &PointerState{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		opts:    opts.withDefaults(),
		cam:     cam,
		grid:    g,
		clicks:  clicks,
		pointer: pointer,
		log:     log,
		handles: make(map[*input.Target][]input.Handle),
	}
}

// State returns the current drag state.
func (c *Controller) State() State { return c.state }

// Stats returns the outcome counters.
func (c *Controller) Stats() Stats { return c.stats }

// Pointer returns the shared pointer state.
func (c *Controller) Pointer() *PointerState { return c.pointer }

// Handle routes one pointer event through the state machine.
func (c *Controller) Handle(ev input.PointerEvent) {
	switch input.PhaseOf(ev.Type) {
	case input.PhaseStart:
		c.start(ev)
	case input.PhaseMove:
		c.move(ev)
	case input.PhaseEnd:
		c.end(ev, true)
	case input.PhaseCancel:
		c.end(ev, false)
	}
}

func (c *Controller) start(ev input.PointerEvent) {
	if c.state == Snapping {
		c.log.Debug("snap interrupted by new drag")
	}
	c.snap = nil
	c.state = Dragging
	c.moved = false
	c.last = scene.Vec2{X: ev.X, Y: ev.Y}
	c.track(ev)
}

func (c *Controller) move(ev input.PointerEvent) {
	c.track(ev)
	if c.state == Dragging {
		dx := ev.X - c.last.X
		dy := ev.Y - c.last.Y
		if math.Abs(dx) > c.opts.Threshold || math.Abs(dy) > c.opts.Threshold {
			c.moved = true
			zoom := c.cam.Zoom
			if zoom <= 0 {
				zoom = 1
			}
			// Content follows the pointer: the camera moves against it.
			c.cam.Position.X -= dx / c.opts.ScaleFactor * zoom
			c.cam.Position.Y += dy / c.opts.ScaleFactor * zoom
			c.grid.Step(c.cam)
			c.last = scene.Vec2{X: ev.X, Y: ev.Y}
		}
	}
	if c.pointer.Valid {
		c.grid.Tilt(c.pointer.Scene, c.opts.MaxRotation)
	}
}

// end finishes a drag. Only a normal release can become a click; leaving the
// surface or a cancelled touch never does.
func (c *Controller) end(ev input.PointerEvent, release bool) {
	if c.state != Dragging {
		return
	}
	c.state = Idle
	if !c.moved && release {
		c.stats.Clicks++
		c.clicks.Dispatch(ev.X, ev.Y, ev.Time)
	}
	c.startSnap(ev.Time)
}

func (c *Controller) startSnap(now time.Time) {
	cell := c.grid.CellPeriod()
	from := c.cam.Position.XY()
	to := scene.Vec2{
		X: math.Round(from.X/cell.X) * cell.X,
		Y: math.Round(from.Y/cell.Y) * cell.Y,
	}
	c.snap = tween.New(from, to, now, c.opts.SnapDuration, tween.QuadOut)
	c.state = Snapping
	c.stats.Snaps++
}

// Update advances a running snap animation to now.
func (c *Controller) Update(now time.Time) {
	if c.state != Snapping || c.snap == nil {
		return
	}
	p := c.snap.Value(now)
	c.cam.Position.X, c.cam.Position.Y = p.X, p.Y
	c.grid.Step(c.cam)
	if c.snap.Done(now) {
		c.snap = nil
		c.state = Idle
	}
}

// Stop abandons a running snap and returns to Idle. A drag in progress is
// left alone.
func (c *Controller) Stop() {
	if c.state != Snapping {
		return
	}
	c.snap = nil
	c.state = Idle
}

// SnapTarget returns where the running snap ends.
func (c *Controller) SnapTarget() (scene.Vec2, bool) {
	if c.snap == nil {
		return scene.Vec2{}, false
	}
	return c.snap.To, true
}

func (c *Controller) track(ev input.PointerEvent) {
	c.pointer.Screen = scene.Vec2{X: ev.X, Y: ev.Y}
	if p, ok := c.cam.ScreenToPlane(ev.X, ev.Y); ok {
		c.pointer.Scene = p
		c.pointer.Valid = true
	}
}

// AddEventListeners attaches the state machine to every mouse and touch
// event of t.
func (c *Controller) AddEventListeners(t *input.Target) {
	c.RemoveEventListeners(t)
	for _, ev := range input.AllEventTypes() {
		c.handles[t] = append(c.handles[t], t.On(ev, c.Handle))
	}
}

// RemoveEventListeners detaches everything AddEventListeners attached to t.
func (c *Controller) RemoveEventListeners(t *input.Target) {
	for _, h := range c.handles[t] {
		h.Remove()
	}
	delete(c.handles, t)
}
