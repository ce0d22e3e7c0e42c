package cards

import (
	"image"

	"gallerygrid/pkg/engine/scene"
	"gallerygrid/pkg/engine/surface"
)

// LinkRegion is a clickable area of an overlay, in raster pixels.
type LinkRegion struct {
	Rect image.Rectangle
	URL  string
}

// Content is the rendered surface pair of one card.
type Content struct {
	Width  int
	Height int

	Background *surface.Surface
	Overlay    *surface.Surface // nil when the card has no text or icon
	Links      []LinkRegion

	// Placeholder is true until a decoded image replaces the solid background.
	Placeholder bool
}

// LinkAt returns the link under uv, where uv is (0,0) at the top-left corner
// of the card and (1,1) at the bottom-right.
func (c *Content) LinkAt(uv scene.Vec2) (string, bool) {
	if c == nil {
		return "", false
	}
	p := image.Pt(int(uv.X*float64(c.Width)), int(uv.Y*float64(c.Height)))
	for _, l := range c.Links {
		if l.URL != "" && p.In(l.Rect) {
			return l.URL, true
		}
	}
	return "", false
}

// Dispose releases both surfaces.
func (c *Content) Dispose() {
	if c == nil {
		return
	}
	c.Background.Dispose()
	c.Overlay.Dispose()
}
