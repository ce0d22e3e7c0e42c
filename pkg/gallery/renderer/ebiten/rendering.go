package ebiten

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"gallerygrid/pkg/engine/scene"
	"gallerygrid/pkg/gallery/grid"
)

var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

// Draw renders the gallery to the screen (Ebiten interface)
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	r.drawDots(screen)

	cam := r.view.Camera()
	for _, card := range r.view.Cards() {
		r.drawCard(screen, cam, card)
	}

	r.drawHUD(screen)
}

// drawDots draws a dot at every cell corner visible on the card plane, so the
// background moves with the cards while dragging.
func (r *Renderer) drawDots(screen *ebiten.Image) {
	cam := r.view.Camera()
	cell := r.view.Grid().CellPeriod()
	if cell.X <= 0 || cell.Y <= 0 {
		return
	}
	lo, ok1 := cam.ScreenToPlane(0, float64(r.height))
	hi, ok2 := cam.ScreenToPlane(float64(r.width), 0)
	if !ok1 || !ok2 {
		return
	}

	// Dots sit halfway between card centres.
	x0 := math.Floor(lo.X/cell.X)*cell.X + cell.X/2
	y0 := math.Floor(lo.Y/cell.Y)*cell.Y + cell.Y/2
	drawn := 0
	for y := y0; y <= hi.Y+cell.Y; y += cell.Y {
		for x := x0; x <= hi.X+cell.X; x += cell.X {
			p, ok := cam.Project(scene.Vec3{X: x, Y: y})
			if !ok {
				continue
			}
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), dotRadius, colorDot, true)
			drawn++
			if drawn >= maxDots {
				return
			}
		}
	}
}

// drawCard maps the card's background and overlay onto its projected,
// tilted quad.
func (r *Renderer) drawCard(screen *ebiten.Image, cam *scene.Camera, card *grid.CardObject) {
	if card.Content == nil {
		return
	}
	corners := card.Corners()
	var pts [4]scene.Vec2
	for i, c := range corners {
		p, ok := cam.Project(c)
		if !ok {
			return
		}
		pts[i] = p
	}

	for _, img := range []*ebiten.Image{imageOf(card.Content.Background), imageOf(card.Content.Overlay)} {
		if img == nil {
			continue
		}
		drawQuad(screen, img, pts)
	}
}

func drawQuad(dst, src *ebiten.Image, pts [4]scene.Vec2) {
	b := src.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	uv := [4][2]float32{{0, 0}, {w, 0}, {w, h}, {0, h}}

	vs := make([]ebiten.Vertex, 4)
	for i := range vs {
		vs[i] = ebiten.Vertex{
			DstX:   float32(pts[i].X),
			DstY:   float32(pts[i].Y),
			SrcX:   uv[i][0],
			SrcY:   uv[i][1],
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}
	op := &ebiten.DrawTrianglesOptions{Filter: ebiten.FilterLinear}
	dst.DrawTriangles(vs, quadIndices, src, op)
}

// drawHUD draws the page title, the live card count and the status line
func (r *Renderer) drawHUD(screen *ebiten.Image) {
	face := r.getHUDFace()
	title := r.router.Page().Title(r.router.Dataset())
	_, titleHeight := text.Measure(title, r.getTitleFace(), 0)

	stripHeight := float32(titleHeight) + float32(face.Size) + hudPadding*3
	vector.DrawFilledRect(screen, 0, 0, float32(r.width), stripHeight, colorPanelBackground, false)

	r.drawText(screen, title, hudPadding, hudPadding, colorText, r.getTitleFace())

	stats := r.view.Controller().Stats()
	info := gotext.Get("%d cards live, %d images loading, %d clicks", r.view.Grid().Live(), r.view.Loader().Pending(), stats.Clicks)
	r.drawText(screen, info, hudPadding, hudPadding*2+titleHeight, colorSubtle, face)

	if r.status != "" && time.Now().Before(r.statusUntil) {
		w, _ := text.Measure(r.status, face, 0)
		r.drawText(screen, r.status, float64(r.width)-w-hudPadding, hudPadding, colorSubtle, face)
	}
}

func (r *Renderer) drawText(screen *ebiten.Image, s string, x, y float64, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, s, face, op)
}
