package grid

import (
	"image"

	"gallerygrid/pkg/engine/scene"
	"gallerygrid/pkg/gallery/cards"
	"gallerygrid/pkg/gallery/items"
)

// CardObject is a live card bound to one slot. It reads its item but the item
// never points back at it.
type CardObject struct {
	Slot int
	// Lattice is the unbounded grid coordinate the card currently sits at.
	// Wrapping moves it by whole grid periods.
	Lattice image.Point
	Item    items.Item

	Position scene.Vec3
	Width    float64
	Height   float64
	// Rotation is the tilt around the X and Y axes, in radians.
	Rotation scene.Vec2
	Content  *cards.Content

	alive bool
}

// Alive reports whether the card is still attached to its container.
func (c *CardObject) Alive() bool {
	return c != nil && c.alive
}

// Dispose detaches the card and releases its surfaces.
func (c *CardObject) Dispose() {
	if c == nil || !c.alive {
		return
	}
	c.alive = false
	c.Content.Dispose()
}

// Bounds returns the card's rectangle on the plane.
func (c *CardObject) Bounds() scene.Rect {
	return scene.RectCentered(c.Position.XY(), c.Width, c.Height)
}

// Intersect tests ray against the card as drawn, tilt included.
func (c *CardObject) Intersect(r scene.Ray) (scene.Hit, bool) {
	return r.IntersectTiltedCard(c.Position, c.Width, c.Height, c.Rotation)
}

// Corners returns the tilted card corners in world space, clockwise from the
// top-left. The Y rotation applies before the X rotation.
func (c *CardObject) Corners() [4]scene.Vec3 {
	hw, hh := c.Width/2, c.Height/2
	local := [4]scene.Vec3{{X: -hw, Y: hh}, {X: hw, Y: hh}, {X: hw, Y: -hh}, {X: -hw, Y: -hh}}

	var out [4]scene.Vec3
	for i, p := range local {
		out[i] = c.Position.Add(p.RotateY(c.Rotation.Y).RotateX(c.Rotation.X))
	}
	return out
}
