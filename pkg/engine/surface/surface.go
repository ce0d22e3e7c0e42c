// Package surface pairs a CPU raster with the GPU texture uploaded from it.
// Card content is composed on the CPU; hosts supply an Uploader that turns
// the raster into whatever their renderer draws.
package surface

import (
	"image"
)

// Texture is a GPU-side resource created from a raster.
type Texture interface {
	Dispose()
}

// Uploader creates textures from rasters.
type Uploader interface {
	Upload(img *image.RGBA) Texture
}

// UploaderFunc adapts a function to the Uploader interface.
type UploaderFunc func(img *image.RGBA) Texture

// Upload calls f(img).
func (f UploaderFunc) Upload(img *image.RGBA) Texture { return f(img) }

// Surface is a composed raster and its texture.
type Surface struct {
	img      *image.RGBA
	tex      Texture
	disposed bool
}

// New uploads img through up and returns the resulting surface. A nil
// uploader keeps the surface CPU-only.
func New(img *image.RGBA, up Uploader) *Surface {
	s := &Surface{img: img}
	if up != nil {
		s.tex = up.Upload(img)
	}
	return s
}

// Image returns the CPU raster.
func (s *Surface) Image() *image.RGBA {
	if s == nil {
		return nil
	}
	return s.img
}

// Texture returns the uploaded texture, nil once disposed or when CPU-only.
func (s *Surface) Texture() Texture {
	if s == nil || s.disposed {
		return nil
	}
	return s.tex
}

// Bounds returns the raster size.
func (s *Surface) Bounds() image.Rectangle {
	if s == nil || s.img == nil {
		return image.Rectangle{}
	}
	return s.img.Bounds()
}

// Disposed reports whether Dispose has been called.
func (s *Surface) Disposed() bool {
	return s != nil && s.disposed
}

// Dispose releases the texture and the raster. Calling it again is a no-op.
func (s *Surface) Dispose() {
	if s == nil || s.disposed {
		return
	}
	s.disposed = true
	if s.tex != nil {
		s.tex.Dispose()
	}
	s.tex = nil
	s.img = nil
}
