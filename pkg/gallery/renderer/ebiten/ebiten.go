// Package ebiten is the desktop host of the gallery: it owns the window,
// feeds mouse and touch input to the view and draws the live cards.
package ebiten

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"

	"gallerygrid/pkg/engine/input"
	"gallerygrid/pkg/gallery/catalog"
	"gallerygrid/pkg/gallery/config"
	"gallerygrid/pkg/gallery/items"
	"gallerygrid/pkg/gallery/logging"
	"gallerygrid/pkg/gallery/view"
)

// Renderer runs one gallery view inside an ebiten window.
type Renderer struct {
	cfg     *config.Config
	log     *zap.Logger
	view    *view.View
	router  *view.Router
	target  *input.Target
	tracker *input.Tracker
	reloads chan *catalog.Dataset

	width  int
	height int

	touchIDs []ebiten.TouchID
	touches  []input.Touch

	regularSource   *text.GoTextFaceSource
	boldSource      *text.GoTextFaceSource
	cachedHUDFace   *text.GoTextFace
	cachedTitleFace *text.GoTextFace
	cachedHUDSize   float64

	status             string
	statusUntil        time.Time
	windowOpenedLogged bool
}

// New creates a renderer showing the landing page of ds.
func New(cfg *config.Config, ds *catalog.Dataset, log *zap.Logger) (*Renderer, error) {
	log = logging.OrNop(log)
	regular, bold, err := loadFontSources()
	if err != nil {
		return nil, err
	}

	v, err := view.New(cfg, view.Deps{Uploader: uploader, Logger: log})
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		cfg:           cfg,
		log:           log,
		view:          v,
		target:        input.NewTarget(),
		reloads:       make(chan *catalog.Dataset, 1),
		width:         cfg.Window.Width,
		height:        cfg.Window.Height,
		touchIDs:      make([]ebiten.TouchID, 0, touchIDCapacity),
		regularSource: regular,
		boldSource:    bold,
	}
	r.tracker = input.NewTracker(r.target)
	r.router = view.NewRouter(v, ds)
	r.router.OnLink = func(url string) {
		log.Info("link activated", zap.String("url", url))
		r.showStatus(url)
	}
	v.AddEventListeners(r.target)

	if err := r.router.Go(items.PageContext{Kind: items.PageLanding}); err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to show landing page: %w", err)
	}
	return r, nil
}

// Watch reloads the dataset at path whenever it changes, until ctx is done.
// Reloaded datasets are applied on the next frame.
func (r *Renderer) Watch(ctx context.Context, path string) {
	go func() {
		err := catalog.Watch(ctx, path, r.log, func(ds *catalog.Dataset) {
			// Only this goroutine sends, so after draining there is room.
			select {
			case <-r.reloads:
			default:
			}
			r.reloads <- ds
		})
		if err != nil {
			r.log.Warn("dataset watch stopped", zap.Error(err))
		}
	}()
}

// Layout tracks the window size and keeps the camera viewport in sync.
func (r *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != r.width || outsideHeight != r.height {
		r.width, r.height = outsideWidth, outsideHeight
		r.view.Resize(float64(outsideWidth), float64(outsideHeight))
		r.invalidateFontCache()
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it closes.
func (r *Renderer) Run() error {
	defer r.view.Close()

	ebiten.SetWindowSize(r.cfg.Window.Width, r.cfg.Window.Height)
	ebiten.SetWindowTitle(r.cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(r)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (r *Renderer) showStatus(msg string) {
	r.status = msg
	r.statusUntil = time.Now().Add(statusLifetime)
}
