package surface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// RoundedRectMask returns an alpha mask of size w×h that is opaque inside a
// rectangle with corner radius r.
func RoundedRectMask(w, h int, r float64) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return mask
	}
	fw, fh := float32(w), float32(h)
	rad := float32(math.Min(r, math.Min(float64(w), float64(h))/2))

	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src
	z.MoveTo(rad, 0)
	z.LineTo(fw-rad, 0)
	z.QuadTo(fw, 0, fw, rad)
	z.LineTo(fw, fh-rad)
	z.QuadTo(fw, fh, fw-rad, fh)
	z.LineTo(rad, fh)
	z.QuadTo(0, fh, 0, fh-rad)
	z.LineTo(0, rad)
	z.QuadTo(0, 0, rad, 0)
	z.ClosePath()
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// FillDisc paints a filled circle of radius r centred on (cx, cy).
func FillDisc(dst draw.Image, cx, cy, r float64, c color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	// Four cubic arcs approximate the circle; k is the usual control distance.
	const k = 0.5522847498
	x, y := float32(cx-float64(b.Min.X)), float32(cy-float64(b.Min.Y))
	rr := float32(r)
	kr := float32(k * r)
	z.MoveTo(x+rr, y)
	z.CubeTo(x+rr, y+kr, x+kr, y+rr, x, y+rr)
	z.CubeTo(x-kr, y+rr, x-rr, y+kr, x-rr, y)
	z.CubeTo(x-rr, y-kr, x-kr, y-rr, x, y-rr)
	z.CubeTo(x+kr, y-rr, x+rr, y-kr, x+rr, y)
	z.ClosePath()
	z.DrawOp = draw.Over
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// FillMasked paints c into dst through mask.
func FillMasked(dst draw.Image, mask image.Image, c color.Color) {
	draw.DrawMask(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
}

// ApplyMask multiplies the alpha of src by mask and writes the result into a
// new image.
func ApplyMask(src image.Image, mask *image.Alpha) *image.RGBA {
	out := image.NewRGBA(mask.Bounds())
	draw.DrawMask(out, out.Bounds(), src, src.Bounds().Min, mask, image.Point{}, draw.Src)
	return out
}
