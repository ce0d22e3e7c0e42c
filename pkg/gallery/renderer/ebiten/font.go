package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

func loadFontSources() (regular, bold *text.GoTextFaceSource, err error) {
	regular, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	bold, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load bold font: %w", err)
	}
	return regular, bold, nil
}

// getHUDFontSize scales the HUD font with the window height.
func (r *Renderer) getHUDFontSize() float64 {
	size := baseFontSize * float64(r.height) / 800.0
	if size < minFontSize {
		size = minFontSize
	}
	return size
}

// getHUDFace returns a cached regular face for HUD text
func (r *Renderer) getHUDFace() *text.GoTextFace {
	size := r.getHUDFontSize()
	if r.cachedHUDFace == nil || r.cachedHUDSize != size {
		r.cachedHUDSize = size
		r.cachedHUDFace = &text.GoTextFace{Source: r.regularSource, Size: size}
		r.cachedTitleFace = &text.GoTextFace{Source: r.boldSource, Size: size + 2}
	}
	return r.cachedHUDFace
}

// getTitleFace returns a cached bold face 2pt larger than the HUD text
func (r *Renderer) getTitleFace() *text.GoTextFace {
	r.getHUDFace()
	return r.cachedTitleFace
}

// invalidateFontCache drops cached faces after a resize
func (r *Renderer) invalidateFontCache() {
	r.cachedHUDFace = nil
	r.cachedTitleFace = nil
}
