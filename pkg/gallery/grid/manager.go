// Package grid keeps the live set of card objects for an infinite, wrapping
// card wall. Only the cards inside a window around the camera exist; the
// window follows the camera by wrapping, culling and populating cards.
package grid

import (
	"errors"
	"fmt"
	"image"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gallerygrid/pkg/engine/layout"
	"gallerygrid/pkg/engine/scene"
	"gallerygrid/pkg/gallery/cards"
	"gallerygrid/pkg/gallery/items"
)

// ErrInvalidParams is returned by BuildGrid for unusable geometry.
var ErrInvalidParams = errors.New("invalid grid parameters")

// ContentBuilder renders card content.
type ContentBuilder interface {
	Build(it items.Item, w, h float64) *cards.Content
	ImageURL(it items.Item) string
	ApplyImage(c *cards.Content, img image.Image)
}

// ImageLoader loads card images asynchronously. Callbacks run on the frame
// thread.
type ImageLoader interface {
	Request(ref string, fn func(image.Image, error)) cards.Ticket
}

// Params describes one grid build.
type Params struct {
	ItemWidth  float64
	ItemHeight float64
	Padding    float64
	MinCols    int
	MinRows    int
	// CullRadius is the half-size of the live window around the camera.
	CullRadius float64
	// Seed fixes the shuffle; zero picks a time-based seed.
	Seed int64
}

// Plan is the result of a grid build: the slot grid and which item sits in
// each slot. It does not change until the next build.
type Plan struct {
	ID         uuid.UUID
	Grid       layout.Grid
	Assignment []items.Item
	Seed       int64
}

// Manager owns the live cards of the current grid.
type Manager struct {
	content   ContentBuilder
	loader    ImageLoader
	container *Container
	plan      *Plan
	params    Params
	log       *zap.Logger
}

// NewManager creates a manager. loader may be nil, in which case cards keep
// their placeholder backgrounds.
func NewManager(content ContentBuilder, loader ImageLoader, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		content:   content,
		loader:    loader,
		container: NewContainer(),
		log:       log,
	}
}

// Container returns the live card arena.
func (m *Manager) Container() *Container { return m.container }

// Plan returns the current build, or nil before the first one.
func (m *Manager) Plan() *Plan { return m.plan }

// Params returns the parameters of the current build.
func (m *Manager) Params() Params { return m.params }

// CellPeriod returns the distance between neighbouring card centres.
func (m *Manager) CellPeriod() scene.Vec2 {
	return scene.Vec2{X: m.params.ItemWidth + m.params.Padding, Y: m.params.ItemHeight + m.params.Padding}
}

// Live returns the number of live cards.
func (m *Manager) Live() int { return m.container.Len() }

// BuildGrid sizes the grid for the pool, tiles and shuffles the items into
// its slots and drops every card of the previous build. Cards are created by
// the next Populate or Step.
func (m *Manager) BuildGrid(pool items.Pool, p Params) (*Plan, error) {
	if p.ItemWidth <= 0 || p.ItemHeight <= 0 || p.Padding < 0 {
		return nil, fmt.Errorf("%w: item %vx%v padding %v", ErrInvalidParams, p.ItemWidth, p.ItemHeight, p.Padding)
	}
	if len(pool.Items) == 0 {
		return nil, fmt.Errorf("%w: empty item pool", ErrInvalidParams)
	}
	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	size := layout.ComputeGridSize(pool.Len(), p.MinCols, p.MinRows)
	g := layout.NewGrid(size, p.ItemWidth, p.ItemHeight, p.Padding)
	assignment := layout.Assign(pool.Items, size.Total(), pool.Extras, rand.New(rand.NewSource(seed)))

	m.Clear()
	m.params = p
	m.plan = &Plan{
		ID:         uuid.New(),
		Grid:       g,
		Assignment: assignment,
		Seed:       seed,
	}
	m.log.Info("grid built",
		zap.Stringer("build", m.plan.ID),
		zap.Int("cols", size.Cols),
		zap.Int("rows", size.Rows),
		zap.Int("items", len(pool.Items)),
		zap.Int("extras", len(pool.Extras)),
		zap.Int64("seed", seed),
	)
	return m.plan, nil
}

// Clear disposes every live card.
func (m *Manager) Clear() {
	m.container.Clear()
}

// Radius returns the effective half-size of the live window per axis. The
// requested radius is raised to at least one cell period, so the card nearest
// the camera always survives, and capped at half the wrap period, so no slot
// can be visible twice.
func (m *Manager) Radius(requested float64) scene.Vec2 {
	if m.plan == nil {
		return scene.Vec2{X: requested, Y: requested}
	}
	cell := m.plan.Grid.CellPeriod()
	period := m.plan.Grid.Period()
	clamp := func(cell, period float64) float64 {
		return math.Min(math.Max(requested, cell), period/2)
	}
	return scene.Vec2{X: clamp(cell.X, period.X), Y: clamp(cell.Y, period.Y)}
}

// Wrap moves every card by whole grid periods so it lies within half a period
// of the camera on both axes. Calling it again with the same camera position
// changes nothing.
func (m *Manager) Wrap(cam *scene.Camera) {
	if m.plan == nil {
		return
	}
	g := m.plan.Grid
	period := g.Period()
	span := m.span(cam, scene.Vec2{X: period.X / 2, Y: period.Y / 2})
	cols, rows := g.Cols(), g.Rows()

	m.container.Each(func(c *CardObject) {
		c.Lattice.X = span.Min.X + mod(c.Lattice.X-span.Min.X, cols)
		c.Lattice.Y = span.Min.Y + mod(c.Lattice.Y-span.Min.Y, rows)
		c.Position = m.position(c.Lattice)
	})
}

// Cull disposes every card outside the window of the given radius around the
// camera. The window is half-open: [c-r, c+r) on each axis. It returns the
// number of cards removed.
func (m *Manager) Cull(cam *scene.Camera, radius float64) int {
	if m.plan == nil {
		return 0
	}
	span := m.span(cam, m.Radius(radius))
	var doomed []int
	m.container.Each(func(c *CardObject) {
		if !c.Lattice.In(span) {
			doomed = append(doomed, c.Slot)
		}
	})
	for _, slot := range doomed {
		m.container.Remove(slot)
	}
	if len(doomed) > 0 {
		m.log.Debug("cards culled", zap.Int("removed", len(doomed)), zap.Int("live", m.container.Len()))
	}
	return len(doomed)
}

// Populate creates the cards for every lattice point inside the window that
// has no card yet. It returns the number of cards created.
func (m *Manager) Populate(cam *scene.Camera, radius float64) int {
	if m.plan == nil {
		return 0
	}
	g := m.plan.Grid
	span := m.span(cam, m.Radius(radius))

	created := 0
	for j := span.Min.Y; j < span.Max.Y; j++ {
		for i := span.Min.X; i < span.Max.X; i++ {
			slot := g.SlotForLattice(i, j)
			if m.container.Has(slot) {
				continue
			}
			m.create(slot, image.Pt(i, j))
			created++
		}
	}
	return created
}

// span returns the lattice coordinates whose positions fall inside the
// half-open window [c-r, c+r) as a rectangle with exclusive Max.
func (m *Manager) span(cam *scene.Camera, r scene.Vec2) image.Rectangle {
	cell := m.plan.Grid.CellPeriod()
	cx, cy := cam.Position.X, cam.Position.Y
	// x = i*cell.X, and y = -j*cell.Y because rows grow downwards.
	return image.Rectangle{
		Min: image.Pt(
			int(math.Ceil((cx-r.X)/cell.X)),
			int(math.Floor(-(cy+r.Y)/cell.Y))+1,
		),
		Max: image.Pt(
			int(math.Ceil((cx+r.X)/cell.X)),
			int(math.Floor((r.Y-cy)/cell.Y))+1,
		),
	}
}

func (m *Manager) position(lattice image.Point) scene.Vec3 {
	cell := m.plan.Grid.CellPeriod()
	return scene.Vec3{X: float64(lattice.X) * cell.X, Y: -float64(lattice.Y) * cell.Y}
}

// Step runs one camera update: wrap, then cull, then populate. Cull bounds
// only make sense once cards have been wrapped around the camera.
func (m *Manager) Step(cam *scene.Camera) {
	m.Wrap(cam)
	m.Cull(cam, m.params.CullRadius)
	m.Populate(cam, m.params.CullRadius)
}

// Tilt turns every card towards the pointer, up to maxRotation radians per
// axis. Cards a full cell or more away from the pointer get the full tilt.
func (m *Manager) Tilt(pointer scene.Vec2, maxRotation float64) {
	if m.plan == nil {
		return
	}
	cell := m.plan.Grid.CellPeriod()
	m.container.Each(func(c *CardObject) {
		dx := clampUnit((pointer.X - c.Position.X) / cell.X)
		dy := clampUnit((pointer.Y - c.Position.Y) / cell.Y)
		c.Rotation = scene.Vec2{X: -dy * maxRotation, Y: dx * maxRotation}
	})
}

func (m *Manager) create(slot int, lattice image.Point) {
	w, h := m.plan.Grid.ItemSize()
	it := m.plan.Assignment[slot]

	card := &CardObject{
		Slot:     slot,
		Lattice:  lattice,
		Item:     it,
		Position: m.position(lattice),
		Width:    w,
		Height:   h,
		Content:  m.content.Build(it, w, h),
	}
	m.container.Add(card)

	if m.loader == nil {
		return
	}
	ref := m.content.ImageURL(it)
	if ref == "" {
		return
	}
	build := m.plan.ID
	m.loader.Request(ref, func(img image.Image, err error) {
		switch {
		case m.plan == nil || m.plan.ID != build:
			m.log.Debug("image arrived for previous grid",
				zap.String("url", ref), zap.Int("slot", slot), zap.Stringer("build", build))
			return
		case !card.Alive():
			// Culled before the image arrived; nothing to upload.
			m.log.Debug("image arrived for released card",
				zap.String("url", ref), zap.Int("slot", slot), zap.Stringer("build", build))
			return
		}
		if err != nil {
			m.log.Warn("card image failed, keeping placeholder", zap.String("url", ref), zap.Error(err))
			return
		}
		m.content.ApplyImage(card.Content, img)
	})
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
