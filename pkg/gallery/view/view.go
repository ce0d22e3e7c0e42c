// Package view wires the card factory, image loader, grid manager, drag
// controller and click dispatcher into one object a host can drive.
package view

import (
	"fmt"
	"time"

	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"gallerygrid/pkg/engine/input"
	"gallerygrid/pkg/engine/scene"
	"gallerygrid/pkg/engine/surface"
	"gallerygrid/pkg/gallery/cards"
	"gallerygrid/pkg/gallery/catalog"
	"gallerygrid/pkg/gallery/config"
	"gallerygrid/pkg/gallery/dispatch"
	"gallerygrid/pkg/gallery/grid"
	"gallerygrid/pkg/gallery/items"
	"gallerygrid/pkg/gallery/logging"
	"gallerygrid/pkg/gallery/navigation"
)

// Deps are the collaborators a host supplies. Every field is optional.
type Deps struct {
	// Camera defaults to a camera sized to the configured window.
	Camera *scene.Camera
	// Uploader turns card surfaces into GPU textures. Without one surfaces
	// stay CPU-only.
	Uploader surface.Uploader
	// Fetcher defaults to the local image root when configured, else HTTP.
	Fetcher cards.Fetcher
	Logger  *zap.Logger
}

// View is one infinite card grid.
type View struct {
	cfg     config.Config
	cam     *scene.Camera
	log     *zap.Logger
	factory *cards.Factory
	loader  *cards.Loader
	grid    *grid.Manager
	clicks  *dispatch.Dispatcher
	nav     *navigation.Controller
	pointer *navigation.PointerState
	targets mapset.Set[*input.Target]
	closed  bool
}

// New builds a view from cfg.
func New(cfg *config.Config, deps Deps) (*View, error) {
	if cfg == nil {
		cfg = config.Current()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := logging.OrNop(deps.Logger)

	cam := deps.Camera
	if cam == nil {
		cam = scene.NewCamera(float64(cfg.Window.Width), float64(cfg.Window.Height))
	}

	lang, err := language.Parse(cfg.Locale.Language)
	if err != nil {
		log.Warn("unknown locale, using English", zap.String("locale", cfg.Locale.Language), zap.Error(err))
		lang = language.English
	}

	factory, err := cards.NewFactory(cards.Options{
		PixelsPerUnit: cfg.Cards.PixelsPerUnit,
		Resolver:      catalog.NewResolver(cfg.Catalog.APIBase),
		ThumbSize:     cfg.Cards.ThumbSize,
		Uploader:      deps.Uploader,
		Language:      lang,
		Logger:        log,
	})
	if err != nil {
		return nil, fmt.Errorf("card factory: %w", err)
	}

	fetch := deps.Fetcher
	if fetch == nil {
		if cfg.Loader.ImageRoot != "" {
			fetch = cards.FileFetcher{Root: cfg.Loader.ImageRoot}
		} else {
			fetch = cards.HTTPFetcher{}
		}
	}
	loader := cards.NewLoader(fetch, cfg.Loader.Concurrency, log)

	mgr := grid.NewManager(factory, loader, log)
	clicks := dispatch.New(cam, mgr.Container(), cfg.Navigation.ClickCooldown, log)
	pointer := &navigation.PointerState{}
	nav := navigation.NewController(cam, mgr, clicks, pointer, navigation.Options{
		Threshold:    cfg.Navigation.DragThreshold,
		ScaleFactor:  cfg.Navigation.ScaleFactor,
		SnapDuration: cfg.Navigation.SnapDuration,
		MaxRotation:  cfg.Grid.MaxRotation,
	}, log)

	return &View{
		cfg:     *cfg,
		cam:     cam,
		log:     log,
		factory: factory,
		loader:  loader,
		grid:    mgr,
		clicks:  clicks,
		nav:     nav,
		pointer: pointer,
		targets: mapset.New[*input.Target](),
	}, nil
}

// Camera returns the camera the view moves.
func (v *View) Camera() *scene.Camera { return v.cam }

// Grid returns the grid manager.
func (v *View) Grid() *grid.Manager { return v.grid }

// Controller returns the drag controller.
func (v *View) Controller() *navigation.Controller { return v.nav }

// Factory returns the card content factory.
func (v *View) Factory() *cards.Factory { return v.factory }

// Loader returns the background image loader.
func (v *View) Loader() *cards.Loader { return v.loader }

// Params returns the grid parameters taken from the configuration.
func (v *View) Params() grid.Params {
	g := v.cfg.Grid
	return grid.Params{
		ItemWidth:  g.ItemWidth,
		ItemHeight: g.ItemHeight,
		Padding:    g.Padding,
		MinCols:    g.MinCols,
		MinRows:    g.MinRows,
		CullRadius: g.CullRadius,
		Seed:       g.Seed,
	}
}

// BuildGrid replaces the grid with the cards of page, binds the callbacks to
// the new items, moves the camera back to the first slot and fills the window
// around it.
func (v *View) BuildGrid(ds *catalog.Dataset, page items.PageContext, cb items.Callbacks) (*grid.Plan, error) {
	pool, err := items.BuildPool(ds, page)
	if err != nil {
		return nil, fmt.Errorf("build pool: %w", err)
	}
	plan, err := v.grid.BuildGrid(pool, v.Params())
	if err != nil {
		return nil, err
	}
	v.clicks.Bind(plan.Assignment, cb)
	v.nav.Stop()
	v.cam.Position.X, v.cam.Position.Y = 0, 0
	v.grid.Step(v.cam)
	return plan, nil
}

// SetLoading suppresses clicks while the host changes page.
func (v *View) SetLoading(loading bool) {
	v.clicks.SetLoading(loading)
}

// Resize updates the camera viewport.
func (v *View) Resize(w, h float64) {
	v.cam.SetViewport(w, h)
}

// AddEventListeners attaches the drag controller to t.
func (v *View) AddEventListeners(t *input.Target) {
	v.nav.AddEventListeners(t)
	v.targets.Put(t)
}

// RemoveEventListeners detaches the drag controller from t.
func (v *View) RemoveEventListeners(t *input.Target) {
	v.nav.RemoveEventListeners(t)
	v.targets.Remove(t)
}

// Animate advances the view to now: it runs the snap animation, delivers
// finished image loads, keeps the window populated and tilts the cards
// towards the pointer. Hosts call it once per frame.
func (v *View) Animate(now time.Time) {
	if v.closed {
		return
	}
	v.nav.Update(now)
	v.loader.Poll()
	v.grid.Step(v.cam)
	if v.pointer.Valid {
		v.grid.Tilt(v.pointer.Scene, v.cfg.Grid.MaxRotation)
	}
}

// Cards returns the live cards in a stable order.
func (v *View) Cards() []*grid.CardObject {
	return v.grid.Container().Cards()
}

// Close detaches every input target, releases all cards and stops the loader.
func (v *View) Close() {
	if v.closed {
		return
	}
	v.closed = true

	var targets []*input.Target
	v.targets.Each(func(t *input.Target) {
		targets = append(targets, t)
	})
	for _, t := range targets {
		v.RemoveEventListeners(t)
	}
	v.loader.Close()
	v.grid.Clear()
	v.clicks.Reset()
	v.factory.Close()
}
