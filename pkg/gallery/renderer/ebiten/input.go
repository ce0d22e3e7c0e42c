package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"

	"gallerygrid/pkg/engine/input"
)

// Update handles input and advances the view (Ebiten interface)
func (r *Renderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !r.windowOpenedLogged {
		r.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		r.log.Info("main window opened", zap.Int("width", w), zap.Int("height", h))
	}

	now := time.Now()

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	r.handleKeys()

	select {
	case ds := <-r.reloads:
		if err := r.router.Reload(ds); err != nil {
			r.log.Warn("failed to apply reloaded dataset", zap.Error(err))
		}
	default:
	}

	r.pollPointers(now)
	r.view.Animate(now)
	return nil
}

// handleKeys maps the few keyboard shortcuts onto the router
func (r *Renderer) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if !r.router.Back() {
			r.showStatus(gotext.Get("Already at the start"))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := r.router.Reload(r.router.Dataset()); err != nil {
			r.log.Warn("failed to reshuffle", zap.Error(err))
		}
	}
}

// pollPointers feeds this frame's mouse and touch state to the tracker
func (r *Renderer) pollPointers(now time.Time) {
	if !ebiten.IsFocused() {
		r.tracker.Cancel(now)
		return
	}

	mx, my := ebiten.CursorPosition()
	inside := mx >= 0 && my >= 0 && mx < r.width && my < r.height
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	r.tracker.Mouse(float64(mx), float64(my), pressed, inside, now)

	r.touchIDs = ebiten.AppendTouchIDs(r.touchIDs[:0])
	r.touches = r.touches[:0]
	for _, id := range r.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		r.touches = append(r.touches, input.Touch{ID: int(id), X: float64(tx), Y: float64(ty)})
	}
	r.tracker.Touches(r.touches, now)
}
