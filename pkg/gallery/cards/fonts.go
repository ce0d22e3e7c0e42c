package cards

import (
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Face sizes are clamped to this range, in pixels.
const (
	minFaceSize = 1
	maxFaceSize = 512
)

type faceKey struct {
	size float64
	bold bool
}

// Fonts caches font faces per size and weight. Faces are not safe for
// concurrent use; a Fonts value belongs to the frame thread.
type Fonts struct {
	regular *opentype.Font
	bold    *opentype.Font
	faces   map[faceKey]font.Face
}

// NewFonts parses the bundled Go fonts.
func NewFonts() (*Fonts, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	return &Fonts{
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]font.Face),
	}, nil
}

// Face returns a cached face of the given pixel size, clamped to a sane
// range. It never fails: a bold face that cannot be built falls back to the
// regular one, and the regular one to the fixed basic face.
func (f *Fonts) Face(size float64, bold bool) font.Face {
	if math.IsNaN(size) {
		size = minFaceSize
	}
	size = math.Max(minFaceSize, math.Min(maxFaceSize, size))

	key := faceKey{size: size, bold: bold}
	if face, ok := f.faces[key]; ok {
		return face
	}
	src := f.regular
	if bold {
		src = f.bold
	}
	face, err := newFace(src, size)
	if err != nil && bold {
		face, err = newFace(f.regular, size)
	}
	if err != nil {
		return basicfont.Face7x13
	}
	f.faces[key] = face
	return face
}

func newFace(src *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Close releases every cached face.
func (f *Fonts) Close() {
	for k, face := range f.faces {
		face.Close()
		delete(f.faces, k)
	}
}
