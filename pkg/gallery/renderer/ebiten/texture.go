package ebiten

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"gallerygrid/pkg/engine/surface"
)

// texture is a card surface living on the GPU.
type texture struct {
	img *ebiten.Image
}

// Dispose frees the GPU memory right away instead of waiting for the GC.
func (t *texture) Dispose() {
	t.img.Deallocate()
}

// uploader copies card rasters into ebiten images.
var uploader = surface.UploaderFunc(func(img *image.RGBA) surface.Texture {
	return &texture{img: ebiten.NewImageFromImage(img)}
})

func imageOf(s *surface.Surface) *ebiten.Image {
	if s == nil || s.Disposed() {
		return nil
	}
	t, ok := s.Texture().(*texture)
	if !ok {
		return nil
	}
	return t.img
}
