// Package dispatch resolves clicks to cards by casting a ray from the camera
// and invokes the bound activation.
package dispatch

import (
	"time"

	"go.uber.org/zap"

	"gallerygrid/pkg/engine/input"
	"gallerygrid/pkg/engine/scene"
	"gallerygrid/pkg/gallery/grid"
	"gallerygrid/pkg/gallery/items"
)

// DefaultCooldown is the quiet period after a successful activation.
const DefaultCooldown = 500 * time.Millisecond

// Picker finds the nearest live card along a ray.
type Picker interface {
	Intersect(ray scene.Ray) (*grid.CardObject, scene.Hit, bool)
}

// Dispatcher owns the activation callbacks, keyed by item id, and a global
// cooldown. Cards themselves carry no callbacks.
type Dispatcher struct {
	cam      *scene.Camera
	picker   Picker
	cooldown *input.Cooldown
	log      *zap.Logger

	actions map[string]func()
	onLink  func(url string)
	loading bool
}

// New creates a dispatcher. A non-positive cooldown uses DefaultCooldown.
func New(cam *scene.Camera, picker Picker, cooldown time.Duration, log *zap.Logger) *Dispatcher {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{
		cam:      cam,
		picker:   picker,
		cooldown: input.NewCooldown(cooldown),
		log:      log,
		actions:  make(map[string]func()),
	}
}

// Bind replaces the callbacks with the activations of the given items.
func (d *Dispatcher) Bind(list []items.Item, cb items.Callbacks) {
	d.Reset()
	for _, it := range list {
		if act := cb.Action(it); act != nil {
			d.actions[it.ID()] = act
		}
	}
	d.onLink = cb.OnLink
}

// Reset forgets every callback.
func (d *Dispatcher) Reset() {
	d.actions = make(map[string]func())
	d.onLink = nil
}

// Bound reports whether the item with id has an activation.
func (d *Dispatcher) Bound(id string) bool {
	_, ok := d.actions[id]
	return ok
}

// SetLoading suppresses every dispatch while an external page transition runs.
func (d *Dispatcher) SetLoading(loading bool) {
	d.loading = loading
}

// Dispatch handles a click at screen position (x, y). It reports whether a
// callback ran. Clicks during the cooldown or while loading are dropped, and
// clicks that hit nothing are ignored.
func (d *Dispatcher) Dispatch(x, y float64, now time.Time) bool {
	if d.loading {
		d.log.Debug("click ignored while loading")
		return false
	}
	if !d.cooldown.Allow(now) {
		d.log.Debug("click ignored during cooldown")
		return false
	}

	ray := d.cam.Ray(d.cam.ScreenToNDC(x, y))
	card, hit, ok := d.picker.Intersect(ray)
	if !ok {
		return false
	}

	// Links inside a text panel take precedence over the card itself.
	if url, ok := card.Content.LinkAt(hit.UV); ok && d.onLink != nil {
		d.cooldown.Mark(now)
		d.log.Info("link activated", zap.String("url", url))
		d.onLink(url)
		return true
	}

	act := d.actions[card.Item.ID()]
	if act == nil {
		return false
	}
	d.cooldown.Mark(now)
	d.log.Info("card activated", zap.String("item", card.Item.ID()), zap.Int("slot", card.Slot))
	act()
	return true
}
