package cards

import (
	"image"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_FitsMaxWidth(t *testing.T) {
	fonts, err := NewFonts()
	require.NoError(t, err)
	defer fonts.Close()
	face := fonts.Face(18, false)

	text := "A slow survey of the estuary filmed over one year of tides and weather"
	lines := Wrap(face, text, 150)
	require.Greater(t, len(lines), 1)
	for _, l := range lines {
		if strings.Contains(l, " ") {
			assert.LessOrEqual(t, MeasureWidth(face, l), 150.0, l)
		}
	}
	assert.Equal(t, strings.Fields(text), strings.Fields(strings.Join(lines, " ")))
}

func TestFontsFace_ClampsSize(t *testing.T) {
	fonts, err := NewFonts()
	require.NoError(t, err)
	defer fonts.Close()

	for _, size := range []float64{0, -4, math.NaN(), math.Inf(1), 1e6} {
		for _, bold := range []bool{false, true} {
			face := fonts.Face(size, bold)
			require.NotNil(t, face, "size %v bold %v", size, bold)
			assert.Positive(t, int(face.Metrics().Height), "size %v bold %v", size, bold)
		}
	}
	assert.Same(t, fonts.Face(0, false), fonts.Face(-1, false))
}

func TestWrap_LongWordKeepsOwnLine(t *testing.T) {
	fonts, err := NewFonts()
	require.NoError(t, err)
	face := fonts.Face(18, false)

	lines := Wrap(face, "a Pneumonoultramicroscopicsilicovolcanoconiosis b", 40)
	assert.Equal(t, []string{"a", "Pneumonoultramicroscopicsilicovolcanoconiosis", "b"}, lines)
	assert.Nil(t, Wrap(face, "   ", 100))
}

func TestDrawText_ReturnsCoveredRect(t *testing.T) {
	fonts, err := NewFonts()
	require.NoError(t, err)
	face := fonts.Face(18, false)

	img := image.NewRGBA(image.Rect(0, 0, 200, 50))
	r := DrawText(img, face, "Hello", 10, 10, Black, AlignLeft, BaselineTop)
	assert.Equal(t, 10, r.Min.X)
	assert.InDelta(t, 10, r.Min.Y, 1)
	assert.InDelta(t, MeasureWidth(face, "Hello"), float64(r.Dx()), 1)

	right := DrawText(img, face, "Hello", 190, 10, Black, AlignRight, BaselineTop)
	assert.InDelta(t, 190, right.Max.X, 1)
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "Bold and & more", PlainText("<p><b>Bold</b> and &amp; more</p>"))
	assert.Equal(t, "one two", PlainText("<p>one</p><p>two</p>"))
	assert.Equal(t, "inline", PlainText("in<em>line</em>"))
	assert.Equal(t, "kept", PlainText("<script>alert('x')</script>kept<style>p{}</style>"))
	assert.Equal(t, "a < b", PlainText("a &lt; b"))
	assert.Equal(t, "plain", PlainText("plain"))
}

func TestMonthYear(t *testing.T) {
	assert.Equal(t, "May 2023", MonthYear(time.Date(2023, 5, 12, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1 September 2023", DayMonthYear(time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)))
	assert.Empty(t, MonthYear(time.Time{}))
	assert.Empty(t, MonthName(0))
}
