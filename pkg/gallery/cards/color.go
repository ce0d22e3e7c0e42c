package cards

import (
	"image/color"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// Neutral is used whenever a card has no usable colour.
var Neutral = color.RGBA{0xbb, 0xbb, 0xbb, 0xff}

// Fixed card palette.
var (
	White = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Black = color.RGBA{0x00, 0x00, 0x00, 0xff}
	Link  = color.RGBA{0x00, 0x00, 0xff, 0xff}
)

// ParseColor parses a CSS colour (hex, rgb(), hsl(), hwb() or a named
// colour) into the premultiplied form image/color uses. ok is false for
// anything else.
func ParseColor(s string) (c color.RGBA, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, false
	}
	parsed, err := csscolorparser.Parse(s)
	if err != nil {
		return color.RGBA{}, false
	}
	return premultiply(parsed.RGBA255()), true
}

// premultiply converts straight alpha to the premultiplied form image/color uses.
func premultiply(r, g, b, a uint8) color.RGBA {
	if a == 0xff {
		return color.RGBA{r, g, b, a}
	}
	m := func(v uint8) uint8 { return uint8(uint32(v) * uint32(a) / 0xff) }
	return color.RGBA{m(r), m(g), m(b), a}
}
