package surface

import (
	"image"
	"sync/atomic"
)

// CountingUploader creates placeholder textures and tracks how many are live.
// It is used by headless tools and tests to verify that every uploaded
// texture is eventually released.
type CountingUploader struct {
	uploaded atomic.Int64
	disposed atomic.Int64
}

// Upload records a new live texture.
func (c *CountingUploader) Upload(img *image.RGBA) Texture {
	c.uploaded.Add(1)
	return &countedTexture{owner: c}
}

// Live returns the number of textures uploaded and not yet disposed.
func (c *CountingUploader) Live() int {
	return int(c.uploaded.Load() - c.disposed.Load())
}

// Uploaded returns the total number of uploads.
func (c *CountingUploader) Uploaded() int {
	return int(c.uploaded.Load())
}

type countedTexture struct {
	owner *CountingUploader
	done  bool
}

func (t *countedTexture) Dispose() {
	if t.done {
		return
	}
	t.done = true
	t.owner.disposed.Add(1)
}
