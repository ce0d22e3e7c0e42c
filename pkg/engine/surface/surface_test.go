package surface

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurface_DisposeReleasesTextureOnce(t *testing.T) {
	up := &CountingUploader{}
	s := New(image.NewRGBA(image.Rect(0, 0, 4, 4)), up)
	require.NotNil(t, s.Texture())
	assert.Equal(t, 1, up.Live())

	s.Dispose()
	s.Dispose()
	assert.Equal(t, 0, up.Live())
	assert.True(t, s.Disposed())
	assert.Nil(t, s.Texture())
	assert.Nil(t, s.Image())
}

func TestSurface_NilUploaderIsCPUOnly(t *testing.T) {
	s := New(image.NewRGBA(image.Rect(0, 0, 2, 3)), nil)
	assert.Nil(t, s.Texture())
	assert.Equal(t, image.Rect(0, 0, 2, 3), s.Bounds())
	s.Dispose()
}

func TestSurface_NilSafe(t *testing.T) {
	var s *Surface
	assert.Nil(t, s.Image())
	assert.False(t, s.Disposed())
	s.Dispose()
}

func TestRoundedRectMask_CornersTransparent(t *testing.T) {
	m := RoundedRectMask(64, 96, 8)
	assert.Equal(t, uint8(0), m.AlphaAt(0, 0).A)
	assert.Equal(t, uint8(0), m.AlphaAt(63, 95).A)
	assert.Equal(t, uint8(0xff), m.AlphaAt(32, 48).A)
	assert.Equal(t, uint8(0xff), m.AlphaAt(32, 1).A)
}

func TestFillDisc(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	FillDisc(img, 20, 20, 10, color.RGBA{255, 0, 0, 255})
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(20, 20))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(2, 2))
}

func TestApplyMask(t *testing.T) {
	src := image.NewUniform(color.RGBA{10, 20, 30, 255})
	mask := RoundedRectMask(16, 16, 4)
	out := ApplyMask(src, mask)
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, out.RGBAAt(8, 8))
	assert.Equal(t, uint8(0), out.RGBAAt(0, 0).A)
}
