package cards

import (
	"image"

	"golang.org/x/image/font"

	"gallerygrid/pkg/engine/surface"
	"gallerygrid/pkg/gallery/catalog"
	"gallerygrid/pkg/gallery/items"
)

// overlay draws the text or icon layer of each item kind. It is used once
// per card.
type overlay struct {
	f     *Factory
	w, h  int
	s     float64
	links []LinkRegion
}

func (o *overlay) canvas() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, o.w, o.h))
}

func (o *overlay) face(size float64, bold bool) font.Face {
	return o.f.fonts.Face(size*o.s, bold)
}

// px scales a reference-layout measure to raster pixels.
func (o *overlay) px(v float64) float64 { return v * o.s }

func (o *overlay) Work(c *items.WorkCard) *image.RGBA {
	w := c.Work
	img := o.canvas()
	regular := o.face(fontSize, false)
	width, height := float64(o.w), float64(o.h)
	top := o.px(margin + fontSize)

	// Without a type the corner names the category instead.
	kind := o.f.titleCase(w.Type)
	if kind == "" {
		kind = categoryTitle(w.Category)
	}
	DrawText(img, regular, MonthYear(w.Time()), o.px(margin), top, Black, AlignLeft, BaselineTop)
	DrawText(img, regular, kind, width-o.px(margin), top, Black, AlignRight, BaselineTop)
	if w.Format != "" {
		y := height - o.px(titleBottom+formatTitleGap+fontSize)
		DrawText(img, regular, o.f.titleCase(w.Format), o.px(margin), y, Black, AlignLeft, BaselineBottom)
	}
	DrawText(img, o.face(fontSize, true), w.Title, o.px(margin), height-o.px(titleBottom), Black, AlignLeft, BaselineBottom)
	return img
}

func (o *overlay) Category(c *items.CategoryCard) *image.RGBA {
	img := o.canvas()
	DrawText(img, o.face(fontSize, true), categoryTitle(c.Category),
		o.px(margin), float64(o.h)-o.px(titleBottom), Black, AlignLeft, BaselineBottom)
	return img
}

func (o *overlay) Navigation(c *items.NavigationCard) *image.RGBA {
	img := o.canvas()
	cx, cy := float64(o.w)/2, float64(o.h)/2
	r := float64(min(o.w, o.h)) / 6
	surface.FillDisc(img, cx, cy, r, Black)
	glyph := o.f.fonts.Face(r, true)
	DrawText(img, glyph, c.Direction.Glyph(), cx, cy, o.f.parseColor(c.Color), AlignCenter, BaselineMiddle)
	return img
}

func (o *overlay) Owner(c *items.OwnerCard) *image.RGBA {
	img := o.canvas()
	if c.Owner.Bio != "" {
		o.paragraph(img, c.Owner.Bio, o.face(fontSize, false), fontSize)
	}
	DrawText(img, o.face(fontSize, true), c.Owner.Name,
		o.px(margin), float64(o.h)-o.px(titleBottom), Black, AlignLeft, BaselineBottom)
	return img
}

func (o *overlay) Panel(c *items.TextPanel) *image.RGBA {
	switch c.Kind {
	case items.PanelDetail:
		return o.detail(c.Work)
	case items.PanelSynopsis:
		img := o.canvas()
		o.paragraph(img, labelSynopsis(PlainText(c.Work.Synopsis)), o.face(fontSize, false), fontSize)
		return img
	case items.PanelExhibitions:
		return o.exhibitions(c.Work.Exhibitions)
	case items.PanelColabs:
		return o.colabs(c.Work.Colabs)
	}
	return nil
}

func (o *overlay) Placeholder(*items.PlaceholderCard) *image.RGBA {
	return nil
}

// paragraph draws wrapped text from the top margin and returns the y below it.
func (o *overlay) paragraph(img *image.RGBA, text string, face font.Face, size float64) float64 {
	y := o.px(margin)
	for _, line := range Wrap(face, text, float64(o.w)-o.px(2*margin)) {
		DrawText(img, face, line, o.px(margin), y, Black, AlignLeft, BaselineTop)
		y += o.px(size + lineSpacingPlus)
	}
	return y
}

func (o *overlay) detail(w *catalog.Work) *image.RGBA {
	img := o.canvas()
	regular := o.face(fontSize, false)
	bold := o.face(fontSize, true)
	width, height := float64(o.w), float64(o.h)
	step := o.px(fontSize + lineSpacingPlus)
	y := o.px(margin + fontSize)

	if date := MonthYear(w.Time()); date != "" || w.Type != "" {
		DrawText(img, regular, date, o.px(margin), y, Black, AlignLeft, BaselineTop)
		DrawText(img, regular, o.f.titleCase(w.Type), width-o.px(margin), y, Black, AlignRight, BaselineTop)
		y += step
	}
	if w.Edition != "" {
		DrawText(img, regular, labelEdition(w.Edition), o.px(margin), y, Black, AlignLeft, BaselineTop)
		y += step
	}
	if w.Dimension != "" {
		DrawText(img, regular, w.Dimension, o.px(margin), y, Black, AlignLeft, BaselineTop)
	}
	if w.Format != "" {
		fy := height - o.px(titleBottom+formatTitleGap+fontSize)
		DrawText(img, regular, labelFormat(o.f.titleCase(w.Format)), o.px(margin), fy, Black, AlignLeft, BaselineBottom)
	}
	if w.Title != "" {
		lines := Wrap(bold, w.Title, width-o.px(2*margin))
		ty := height - o.px(titleBottom) - float64(len(lines)-1)*step
		for _, line := range lines {
			DrawText(img, bold, line, o.px(margin), ty, Black, AlignLeft, BaselineBottom)
			ty += step
		}
	}
	return img
}

func (o *overlay) exhibitions(list []catalog.Exhibition) *image.RGBA {
	img := o.canvas()
	face := o.face(listFontSize, false)
	maxWidth := float64(o.w) - o.px(2*margin)
	step := o.px(listFontSize + lineSpacingPlus)
	y := o.px(margin)

	for _, ex := range list {
		if ex.Title != "" {
			for _, line := range Wrap(face, ex.Title, maxWidth) {
				o.link(img, face, line, y, ex.Link)
				y += step
			}
			y += o.px(entryGap)
		}
		if ex.Date != "" {
			for _, line := range Wrap(face, labelDate(DayMonthYear(catalog.ParseDate(ex.Date))), maxWidth) {
				DrawText(img, face, line, o.px(margin), y, Black, AlignLeft, BaselineTop)
				y += step
			}
		}
		if ex.Location != "" {
			for _, line := range Wrap(face, labelLocation(ex.Location), maxWidth) {
				DrawText(img, face, line, o.px(margin), y, Black, AlignLeft, BaselineTop)
				y += step
			}
		}
	}
	return img
}

func (o *overlay) colabs(list []catalog.Colab) *image.RGBA {
	img := o.canvas()
	face := o.face(fontSize, false)
	maxWidth := float64(o.w) - o.px(2*margin)
	step := o.px(fontSize + lineSpacingPlus)
	y := o.px(margin)

	for _, cb := range list {
		if cb.Title == "" {
			continue
		}
		for _, line := range Wrap(face, cb.Title, maxWidth) {
			o.link(img, face, line, y, cb.Link)
			y += step
		}
		y += o.px(entryGap)
	}
	return img
}

// link draws a hyperlink line and registers its clickable region.
func (o *overlay) link(img *image.RGBA, face font.Face, line string, y float64, url string) {
	col := Black
	if url != "" {
		col = Link
	}
	r := DrawText(img, face, line, o.px(margin), y, col, AlignLeft, BaselineTop)
	if url != "" {
		o.links = append(o.links, LinkRegion{Rect: r, URL: url})
	}
}

func categoryTitle(c *catalog.Category) string {
	if c == nil || c.Title == "" {
		return labelNoCategory()
	}
	return c.Title
}
