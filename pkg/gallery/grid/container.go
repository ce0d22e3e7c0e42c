package grid

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"gallerygrid/pkg/engine/scene"
)

// Container is the arena of live cards, keyed by slot index. It holds at most
// one card per slot.
type Container struct {
	cards map[int]*CardObject
	slots mapset.Set[int]
}

// NewContainer returns an empty container.
func NewContainer() *Container {
	return &Container{
		cards: make(map[int]*CardObject),
		slots: mapset.New[int](),
	}
}

// Add attaches card. It reports false when the slot is already occupied.
func (c *Container) Add(card *CardObject) bool {
	if c.slots.Has(card.Slot) {
		return false
	}
	card.alive = true
	c.cards[card.Slot] = card
	c.slots.Put(card.Slot)
	return true
}

// Get returns the card in slot.
func (c *Container) Get(slot int) (*CardObject, bool) {
	card, ok := c.cards[slot]
	return card, ok
}

// Has reports whether slot holds a card.
func (c *Container) Has(slot int) bool {
	return c.slots.Has(slot)
}

// Remove detaches and disposes the card in slot.
func (c *Container) Remove(slot int) {
	card, ok := c.cards[slot]
	if !ok {
		return
	}
	delete(c.cards, slot)
	c.slots.Remove(slot)
	card.Dispose()
}

// Len returns the number of live cards.
func (c *Container) Len() int {
	return c.slots.Size()
}

// Each calls fn for every live card in no particular order. fn must not add
// or remove cards.
func (c *Container) Each(fn func(*CardObject)) {
	c.slots.Each(func(slot int) {
		fn(c.cards[slot])
	})
}

// Cards returns the live cards ordered by slot.
func (c *Container) Cards() []*CardObject {
	out := make([]*CardObject, 0, len(c.cards))
	for _, card := range c.cards {
		out = append(out, card)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slot < out[j].Slot })
	return out
}

// Clear disposes every card.
func (c *Container) Clear() {
	for slot := range c.cards {
		c.Remove(slot)
	}
}

// Intersect returns the card nearest along ray and the hit on it.
func (c *Container) Intersect(ray scene.Ray) (*CardObject, scene.Hit, bool) {
	var (
		best    *CardObject
		bestHit scene.Hit
	)
	for _, card := range c.Cards() {
		hit, ok := card.Intersect(ray)
		if !ok {
			continue
		}
		if best == nil || hit.Distance < bestHit.Distance {
			best, bestHit = card, hit
		}
	}
	return best, bestHit, best != nil
}
