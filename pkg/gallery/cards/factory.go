// Package cards composes the surfaces of a card: a background (decoded image
// or solid colour, masked to rounded corners) and a text or icon overlay.
package cards

import (
	"image"
	"image/color"
	"math"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"gallerygrid/pkg/engine/surface"
	"gallerygrid/pkg/gallery/catalog"
	"gallerygrid/pkg/gallery/items"
)

// Reference layout the overlay positions are expressed in. Rasters of other
// sizes scale every measure by width/RefWidth.
const (
	RefWidth  = 640
	RefHeight = 1024

	cornerRadius    = 8
	margin          = 10
	titleBottom     = 40
	formatTitleGap  = 20
	entryGap        = 10
	fontSize        = 18
	listFontSize    = 12
	lineSpacingPlus = 5
)

// DefaultThumbSize is the thumbnail size requested for card images.
const DefaultThumbSize = "0x600"

// Options configures a Factory.
type Options struct {
	// PixelsPerUnit converts card world size to raster pixels.
	PixelsPerUnit float64
	Resolver      catalog.Resolver
	ThumbSize     string
	Uploader      surface.Uploader
	Language      language.Tag
	Logger        *zap.Logger
}

// Factory builds card content from items.
type Factory struct {
	ppu       float64
	resolver  catalog.Resolver
	thumbSize string
	uploader  surface.Uploader
	title     cases.Caser
	fonts     *Fonts
	log       *zap.Logger
	masks     map[image.Point]*image.Alpha
}

// NewFactory creates a factory. Zero option fields take defaults.
func NewFactory(opts Options) (*Factory, error) {
	fonts, err := NewFonts()
	if err != nil {
		return nil, err
	}
	if opts.PixelsPerUnit <= 0 {
		opts.PixelsPerUnit = 100
	}
	if opts.ThumbSize == "" {
		opts.ThumbSize = DefaultThumbSize
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Language == language.Und {
		opts.Language = language.English
	}
	return &Factory{
		ppu:       opts.PixelsPerUnit,
		resolver:  opts.Resolver,
		thumbSize: opts.ThumbSize,
		uploader:  opts.Uploader,
		title:     cases.Title(opts.Language),
		fonts:     fonts,
		log:       opts.Logger,
		masks:     make(map[image.Point]*image.Alpha),
	}, nil
}

// RasterSize returns the pixel size of a card of w×h world units.
func (f *Factory) RasterSize(w, h float64) (int, int) {
	pw := max(1, int(math.Round(w*f.ppu)))
	ph := max(1, int(math.Round(h*f.ppu)))
	return pw, ph
}

// Build renders the content of it for a card of w×h world units. The
// background is a solid placeholder; images arrive later through ApplyImage.
func (f *Factory) Build(it items.Item, w, h float64) *Content {
	pw, ph := f.RasterSize(w, h)
	c := &Content{Width: pw, Height: ph, Placeholder: true}

	bg := image.NewRGBA(image.Rect(0, 0, pw, ph))
	surface.FillMasked(bg, f.mask(pw, ph), f.placeholderColor(it))
	c.Background = surface.New(bg, f.uploader)

	ov := &overlay{f: f, w: pw, h: ph, s: float64(pw) / RefWidth}
	if img := items.Match[*image.RGBA](it, ov); img != nil {
		c.Overlay = surface.New(img, f.uploader)
	}
	c.Links = ov.links
	return c
}

// ImageURL returns the image shown behind it, or "" when it has none.
func (f *Factory) ImageURL(it items.Item) string {
	switch c := it.(type) {
	case *items.WorkCard:
		return f.resolver.WorkThumb(c.Work, f.thumbSize)
	case *items.CategoryCard:
		return f.resolver.CategoryThumb(c.Category, f.thumbSize)
	case *items.OwnerCard:
		return f.resolver.OwnerAvatar(c.Owner, f.thumbSize)
	}
	return ""
}

// ApplyImage replaces the placeholder background of c with img, cover
// fitted and masked to rounded corners.
func (f *Factory) ApplyImage(c *Content, img image.Image) {
	if c == nil || img == nil {
		return
	}
	fitted := CoverImage(img, c.Width, c.Height)
	masked := surface.ApplyMask(fitted, f.mask(c.Width, c.Height))
	old := c.Background
	c.Background = surface.New(masked, f.uploader)
	c.Placeholder = false
	old.Dispose()
}

// Close releases cached font faces.
func (f *Factory) Close() {
	f.fonts.Close()
}

func (f *Factory) mask(w, h int) *image.Alpha {
	key := image.Pt(w, h)
	if m, ok := f.masks[key]; ok {
		return m
	}
	m := surface.RoundedRectMask(w, h, cornerRadius*float64(w)/RefWidth)
	f.masks[key] = m
	return m
}

func (f *Factory) placeholderColor(it items.Item) color.Color {
	switch c := it.(type) {
	case *items.TextPanel:
		return White
	case *items.NavigationCard:
		return f.parseColor(c.Color)
	}
	if cat := items.CategoryOf(it); cat != nil {
		return f.parseColor(cat.Color)
	}
	return Neutral
}

// parseColor never fails; bad input is logged and replaced by Neutral.
func (f *Factory) parseColor(s string) color.RGBA {
	c, ok := ParseColor(s)
	if !ok {
		f.log.Warn("invalid colour, using neutral", zap.String("color", s))
		return Neutral
	}
	return c
}

func (f *Factory) titleCase(s string) string {
	return f.title.String(s)
}
