package cards

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"gallerygrid/pkg/engine/scene"
)

// CoverFit computes the texture repeat and offset that fill a card of
// cardW×cardH with an image of imgW×imgH without distortion. The wider side
// is cropped symmetrically.
func CoverFit(imgW, imgH, cardW, cardH float64) (repeat, offset scene.Vec2) {
	if imgW <= 0 || imgH <= 0 || cardW <= 0 || cardH <= 0 {
		return scene.Vec2{X: 1, Y: 1}, scene.Vec2{}
	}
	aspect := imgW / imgH
	cardAspect := cardW / cardH
	if aspect > cardAspect {
		repeat = scene.Vec2{X: cardAspect / aspect, Y: 1}
		offset = scene.Vec2{X: (1 - repeat.X) / 2}
	} else {
		repeat = scene.Vec2{X: 1, Y: aspect / cardAspect}
		offset = scene.Vec2{Y: (1 - repeat.Y) / 2}
	}
	return repeat, offset
}

// CoverCrop converts a repeat and offset into the source rectangle of b they
// select.
func CoverCrop(b image.Rectangle, repeat, offset scene.Vec2) image.Rectangle {
	w, h := float64(b.Dx()), float64(b.Dy())
	x0 := b.Min.X + int(offset.X*w+0.5)
	y0 := b.Min.Y + int(offset.Y*h+0.5)
	x1 := x0 + int(repeat.X*w+0.5)
	y1 := y0 + int(repeat.Y*h+0.5)
	return image.Rect(x0, y0, x1, y1).Intersect(b)
}

// CoverImage scales src to w×h using the cover strategy.
func CoverImage(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	b := src.Bounds()
	if b.Empty() || w <= 0 || h <= 0 {
		return dst
	}
	repeat, offset := CoverFit(float64(b.Dx()), float64(b.Dy()), float64(w), float64(h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, CoverCrop(b, repeat, offset), xdraw.Src, nil)
	return dst
}
