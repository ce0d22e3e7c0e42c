// Package tui prints grid plans to a terminal, one coloured cell per slot.
package tui

import (
	"fmt"
	imgcolor "image/color"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"gallerygrid/pkg/engine/terminal"
	"gallerygrid/pkg/gallery/cards"
	"gallerygrid/pkg/gallery/grid"
	"gallerygrid/pkg/gallery/items"
)

// Cell width limits, in runes
const (
	minCellWidth = 6
	maxCellWidth = 18
)

// Printer writes plans to out. Colour is on only when out is a terminal.
type Printer struct {
	out   io.Writer
	color bool
	width int

	colorTitle  color.Style
	colorSubtle color.Style
	colorBorder color.Style
}

// New creates a printer sized to the terminal behind out.
func New(out io.Writer) *Printer {
	return &Printer{
		out:         out,
		color:       terminal.IsTerminal(out),
		width:       terminal.GetWidth(out),
		colorTitle:  color.Style{color.FgDefault, color.OpBold},
		colorSubtle: color.Style{color.FgGray},
		colorBorder: color.Style{color.FgGray, color.OpBold},
	}
}

// SetColor forces colour on or off.
func (p *Printer) SetColor(on bool) { p.color = on }

// SetWidth overrides the terminal width.
func (p *Printer) SetWidth(w int) {
	if w > 0 {
		p.width = w
	}
}

func (p *Printer) style(s color.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Sprint(text)
}

// CellWidth returns the rune width of one cell for a grid of cols columns.
func (p *Printer) CellWidth(cols int) int {
	if cols <= 0 {
		return minCellWidth
	}
	w := (p.width - cols - 1) / cols
	return max(minCellWidth, min(maxCellWidth, w))
}

// PrintPlan writes title, a summary line and the slot table of plan.
func (p *Printer) PrintPlan(plan *grid.Plan, title string) error {
	if plan == nil {
		return fmt.Errorf("no grid plan")
	}
	var b strings.Builder
	cols, rows := plan.Grid.Cols(), plan.Grid.Rows()
	cw := p.CellWidth(cols)

	b.WriteString(p.style(p.colorTitle, title))
	b.WriteString("\n")
	b.WriteString(p.style(p.colorSubtle, gotext.Get("%d x %d grid, seed %d, id %s", cols, rows, plan.Seed, plan.ID)))
	b.WriteString("\n")

	border := p.style(p.colorBorder, "+"+strings.Repeat(strings.Repeat("-", cw)+"+", cols))
	b.WriteString(border)
	b.WriteString("\n")
	for row := 0; row < rows; row++ {
		b.WriteString(p.style(p.colorBorder, "|"))
		for col := 0; col < cols; col++ {
			slot := row*cols + col
			var it items.Item = &items.PlaceholderCard{}
			if slot < len(plan.Assignment) && plan.Assignment[slot] != nil {
				it = plan.Assignment[slot]
			}
			b.WriteString(p.cell(it, cw))
			b.WriteString(p.style(p.colorBorder, "|"))
		}
		b.WriteString("\n")
		b.WriteString(border)
		b.WriteString("\n")
	}

	_, err := io.WriteString(p.out, b.String())
	return err
}

func (p *Printer) cell(it items.Item, width int) string {
	text := fit(items.Match[string](it, labeler{}), width)
	if !p.color {
		return text
	}
	if c, ok := p.itemColor(it); ok {
		return color.RGB(c.R, c.G, c.B).Sprint(text)
	}
	return p.colorSubtle.Sprint(text)
}

func (p *Printer) itemColor(it items.Item) (imgcolor.RGBA, bool) {
	if nav, ok := it.(*items.NavigationCard); ok {
		return cards.ParseColor(nav.Color)
	}
	if cat := items.CategoryOf(it); cat != nil {
		return cards.ParseColor(cat.Color)
	}
	return imgcolor.RGBA{}, false
}

// fit truncates or pads s to exactly width runes.
func fit(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n > width {
		r := []rune(s)
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-n)
}

// labeler names each card kind in a few characters.
type labeler struct{}

func (labeler) Work(c *items.WorkCard) string         { return c.Work.Title }
func (labeler) Category(c *items.CategoryCard) string { return "[" + c.Category.Title + "]" }
func (labeler) Navigation(c *items.NavigationCard) string {
	return c.Direction.Glyph() + " " + c.Direction.String()
}
func (labeler) Owner(c *items.OwnerCard) string           { return "@ " + c.Owner.Name }
func (labeler) Panel(c *items.TextPanel) string           { return "¶ " + c.Kind.String() }
func (labeler) Placeholder(*items.PlaceholderCard) string { return "·" }
