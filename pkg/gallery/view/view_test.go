package view

import (
	"context"
	"errors"
	"io"
	"math"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"gallerygrid/pkg/engine/input"
	"gallerygrid/pkg/gallery/catalog"
	"gallerygrid/pkg/gallery/config"
	"gallerygrid/pkg/gallery/items"
	"gallerygrid/pkg/gallery/navigation"
)

type offlineFetcher struct{}

func (offlineFetcher) Fetch(ctx context.Context, ref string) (io.ReadCloser, error) {
	return nil, errors.New("offline")
}

type countingFetcher struct {
	mu    sync.Mutex
	calls int
}

func (f *countingFetcher) Fetch(ctx context.Context, ref string) (io.ReadCloser, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return nil, errors.New("offline")
}

func (f *countingFetcher) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func drainLoader(t *testing.T, v *View) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for v.Loader().Pending() > 0 && time.Now().Before(deadline) {
		v.Loader().Poll()
		time.Sleep(5 * time.Millisecond)
	}
	v.Loader().Poll()
	require.Zero(t, v.Loader().Pending())
}

func loadDataset(t *testing.T) *catalog.Dataset {
	t.Helper()
	ds, err := catalog.Load(filepath.Join("..", "..", "..", "testdata", "gallery.yaml"))
	require.NoError(t, err)
	return ds
}

func newTestView(t *testing.T) *View {
	t.Helper()
	cfg := config.Default()
	cfg.Grid.Seed = 7
	v, err := New(&cfg, Deps{Fetcher: offlineFetcher{}})
	require.NoError(t, err)
	t.Cleanup(v.Close)
	return v
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.ItemWidth = 0
	_, err := New(&cfg, Deps{})
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestBuildGridLanding(t *testing.T) {
	defer goleak.VerifyNone(t)
	v := newTestView(t)
	defer v.Close()

	plan, err := v.BuildGrid(loadDataset(t), items.PageContext{Kind: items.PageLanding}, items.Callbacks{})
	require.NoError(t, err)
	assert.Equal(t, 5, plan.Grid.Cols())
	assert.Equal(t, 5, plan.Grid.Rows())

	live := len(v.Cards())
	assert.Positive(t, live)
	assert.LessOrEqual(t, live, 25)
}

func TestBuildGridUnknownCategory(t *testing.T) {
	v := newTestView(t)
	_, err := v.BuildGrid(loadDataset(t), items.PageContext{Kind: items.PageCategory, CategoryID: "nope"}, items.Callbacks{})
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestClickActivatesCardUnderPointer(t *testing.T) {
	v := newTestView(t)
	var activated []string
	cb := items.Callbacks{
		OnWork:     func(c *items.WorkCard) { activated = append(activated, c.ID()) },
		OnCategory: func(c *items.CategoryCard) { activated = append(activated, c.ID()) },
		OnOwner:    func(c *items.OwnerCard) { activated = append(activated, c.ID()) },
	}
	_, err := v.BuildGrid(loadDataset(t), items.PageContext{Kind: items.PageLanding}, cb)
	require.NoError(t, err)

	target := input.NewTarget()
	v.AddEventListeners(target)

	cfg := config.Default()
	x, y := float64(cfg.Window.Width)/2, float64(cfg.Window.Height)/2
	t0 := time.Unix(1000, 0)
	target.Emit(input.PointerEvent{Type: input.MouseDown, Device: input.DeviceMouse, X: x, Y: y, Time: t0})
	target.Emit(input.PointerEvent{Type: input.MouseUp, Device: input.DeviceMouse, X: x, Y: y, Time: t0.Add(50 * time.Millisecond)})

	require.Len(t, activated, 1)
	assert.Equal(t, 1, v.Controller().Stats().Clicks)
}

func TestLoadingSuppressesClicks(t *testing.T) {
	v := newTestView(t)
	clicked := 0
	cb := items.Callbacks{
		OnWork:     func(*items.WorkCard) { clicked++ },
		OnCategory: func(*items.CategoryCard) { clicked++ },
		OnOwner:    func(*items.OwnerCard) { clicked++ },
	}
	_, err := v.BuildGrid(loadDataset(t), items.PageContext{Kind: items.PageLanding}, cb)
	require.NoError(t, err)

	target := input.NewTarget()
	v.AddEventListeners(target)
	v.SetLoading(true)

	t0 := time.Unix(1000, 0)
	target.Emit(input.PointerEvent{Type: input.MouseDown, X: 640, Y: 400, Time: t0})
	target.Emit(input.PointerEvent{Type: input.MouseUp, X: 640, Y: 400, Time: t0})
	assert.Zero(t, clicked)
}

func TestDragThenSnapSettlesOnCell(t *testing.T) {
	v := newTestView(t)
	_, err := v.BuildGrid(loadDataset(t), items.PageContext{Kind: items.PageLanding}, items.Callbacks{})
	require.NoError(t, err)

	target := input.NewTarget()
	v.AddEventListeners(target)

	t0 := time.Unix(1000, 0)
	target.Emit(input.PointerEvent{Type: input.TouchStart, Device: input.DeviceTouch, X: 600, Y: 400, Time: t0})
	for i := 1; i <= 20; i++ {
		target.Emit(input.PointerEvent{Type: input.TouchMove, Device: input.DeviceTouch, X: 600 - float64(i*37), Y: 400 + float64(i*11), Time: t0})
		assert.LessOrEqual(t, len(v.Cards()), 25)
	}
	target.Emit(input.PointerEvent{Type: input.TouchEnd, Device: input.DeviceTouch, X: -140, Y: 620, Time: t0})
	require.Equal(t, navigation.Snapping, v.Controller().State())

	v.Animate(t0.Add(time.Second))
	assert.Equal(t, navigation.Idle, v.Controller().State())

	cell := v.Grid().CellPeriod()
	pos := v.Camera().Position
	assert.InDelta(t, 0, math.Remainder(pos.X, cell.X), 1e-9)
	assert.InDelta(t, 0, math.Remainder(pos.Y, cell.Y), 1e-9)
	assert.Zero(t, v.Controller().Stats().Clicks)
}

func TestBuildGridStartsAtFirstSlot(t *testing.T) {
	defer goleak.VerifyNone(t)
	fetch := &countingFetcher{}
	cfg := config.Default()
	cfg.Grid.Seed = 7
	v, err := New(&cfg, Deps{Fetcher: fetch})
	require.NoError(t, err)
	defer v.Close()
	ds := loadDataset(t)

	_, err = v.BuildGrid(ds, items.PageContext{Kind: items.PageLanding}, items.Callbacks{})
	require.NoError(t, err)
	drainLoader(t, v)

	v.Camera().Position.X, v.Camera().Position.Y = 1000, -750
	v.Grid().Step(v.Camera())
	drainLoader(t, v)
	before := fetch.Calls()

	_, err = v.BuildGrid(ds, items.PageContext{Kind: items.PageCategory, CategoryID: "cat-video"}, items.Callbacks{})
	require.NoError(t, err)
	assert.Zero(t, v.Camera().Position.X)
	assert.Zero(t, v.Camera().Position.Y)

	r := v.Grid().Radius(cfg.Grid.CullRadius)
	for _, card := range v.Cards() {
		assert.LessOrEqual(t, math.Abs(card.Position.X), r.X, card.Item.ID())
		assert.LessOrEqual(t, math.Abs(card.Position.Y), r.Y, card.Item.ID())
	}

	// only cards of the new window ask for images
	drainLoader(t, v)
	assert.LessOrEqual(t, fetch.Calls()-before, len(v.Cards()))
}

func TestAnimateDeliversFailedLoads(t *testing.T) {
	defer goleak.VerifyNone(t)
	v := newTestView(t)
	defer v.Close()
	_, err := v.BuildGrid(loadDataset(t), items.PageContext{Kind: items.PageLanding}, items.Callbacks{})
	require.NoError(t, err)

	deadline := time.Now().Add(2 * time.Second)
	for v.Loader().Pending() > 0 && time.Now().Before(deadline) {
		v.Animate(time.Now())
		time.Sleep(5 * time.Millisecond)
	}
	v.Animate(time.Now())
	require.Zero(t, v.Loader().Pending())

	for _, card := range v.Cards() {
		assert.NotNil(t, card.Content)
	}
}

func TestCloseDetachesListeners(t *testing.T) {
	v := newTestView(t)
	target := input.NewTarget()
	v.AddEventListeners(target)
	require.Equal(t, 1, target.ListenerCount(input.MouseDown))

	v.Close()
	assert.Zero(t, target.ListenerCount(input.MouseDown))
	assert.Zero(t, v.Grid().Live())

	// closing twice is harmless
	v.Close()
}
