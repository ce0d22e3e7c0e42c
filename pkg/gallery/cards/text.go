package cards

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Align is the horizontal anchor of a text run.
type Align int

// Alignments
const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Baseline is the vertical anchor of a text run.
type Baseline int

// Baselines
const (
	BaselineTop Baseline = iota
	BaselineMiddle
	BaselineBottom
)

// MeasureWidth returns the advance width of s in pixels.
func MeasureWidth(face font.Face, s string) float64 {
	return fixedToFloat(font.MeasureString(face, s))
}

// Wrap splits s into lines no wider than maxWidth. Words are added to a line
// while it still fits; a single word wider than maxWidth gets its own line.
func Wrap(face font.Face, s string, maxWidth float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if MeasureWidth(face, candidate) <= maxWidth {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}

// DrawText draws s anchored at (x, y) and returns the rectangle it covers.
func DrawText(dst draw.Image, face font.Face, s string, x, y float64, col color.Color, align Align, base Baseline) image.Rectangle {
	if s == "" {
		return image.Rectangle{}
	}
	m := face.Metrics()
	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	w := MeasureWidth(face, s)

	switch align {
	case AlignRight:
		x -= w
	case AlignCenter:
		x -= w / 2
	}
	// Convert the anchor to a baseline position.
	switch base {
	case BaselineTop:
		y += ascent
	case BaselineMiddle:
		y += (ascent - descent) / 2
	case BaselineBottom:
		y -= descent
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}
	d.DrawString(s)
	return image.Rect(int(x), int(y-ascent), int(x+w+0.5), int(y+descent+0.5))
}

// breaking elements separate the words on either side of them.
var breaking = map[atom.Atom]bool{
	atom.P: true, atom.Br: true, atom.Div: true, atom.Li: true,
	atom.Ul: true, atom.Ol: true, atom.H1: true, atom.H2: true,
	atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Blockquote: true, atom.Tr: true, atom.Td: true,
}

// PlainText returns the text of a rich text field with the markup removed,
// entities decoded and whitespace collapsed. Script and style bodies are
// dropped.
func PlainText(s string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.DataAtom {
			case atom.Script, atom.Style:
				if tok.Type == html.StartTagToken {
					skip++
				} else if tok.Type == html.EndTagToken && skip > 0 {
					skip--
				}
			}
			if breaking[tok.DataAtom] {
				b.WriteByte(' ')
			}
		}
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
