package devtools

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/draw"

	"gallerygrid/pkg/gallery/cards"
	"gallerygrid/pkg/gallery/grid"
)

const sheetGap = 16

var sheetBackground = color.RGBA{240, 240, 236, 255}

// SheetOptions controls SaveContactSheet.
type SheetOptions struct {
	// ItemWidth and ItemHeight are the card size in world units.
	ItemWidth  float64
	ItemHeight float64
	// Loader, when set, fetches card images before the sheet is drawn.
	// Cards whose images fail keep their placeholders.
	Loader *cards.Loader
}

// SaveContactSheet renders every slot of plan into one PNG at path, laid
// out like the grid itself. It needs no window.
func SaveContactSheet(ctx context.Context, path string, f *cards.Factory, plan *grid.Plan, opts SheetOptions) (string, error) {
	if plan == nil {
		return "", fmt.Errorf("no grid plan to render")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	contents := make([]*cards.Content, len(plan.Assignment))
	for slot, it := range plan.Assignment {
		if it == nil {
			continue
		}
		c := f.Build(it, opts.ItemWidth, opts.ItemHeight)
		contents[slot] = c
		if opts.Loader == nil {
			continue
		}
		if ref := f.ImageURL(it); ref != "" {
			opts.Loader.Request(ref, func(img image.Image, err error) {
				if err == nil {
					f.ApplyImage(c, img)
				}
			})
		}
	}
	defer func() {
		for _, c := range contents {
			c.Dispose()
		}
	}()

	if opts.Loader != nil {
		if err := drain(ctx, opts.Loader); err != nil {
			return absPath, err
		}
	}

	sheet := compose(plan, contents)

	out, err := os.Create(path)
	if err != nil {
		return absPath, fmt.Errorf("create contact sheet: %w", err)
	}
	defer out.Close()
	if err := png.Encode(out, sheet); err != nil {
		return absPath, fmt.Errorf("encode contact sheet: %w", err)
	}
	return absPath, out.Sync()
}

// drain delivers loader results until nothing is pending.
func drain(ctx context.Context, l *cards.Loader) error {
	tick := time.NewTicker(10 * time.Millisecond)
	defer tick.Stop()
	for {
		l.Poll()
		if l.Pending() == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
		}
	}
}

func compose(plan *grid.Plan, contents []*cards.Content) *image.RGBA {
	cols, rows := plan.Grid.Cols(), plan.Grid.Rows()
	cw, ch := 1, 1
	for _, c := range contents {
		if c != nil {
			cw, ch = c.Width, c.Height
			break
		}
	}

	sheet := image.NewRGBA(image.Rect(0, 0, cols*cw+(cols+1)*sheetGap, rows*ch+(rows+1)*sheetGap))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(sheetBackground), image.Point{}, draw.Src)

	for slot, c := range contents {
		if c == nil {
			continue
		}
		col, row := slot%cols, slot/cols
		origin := image.Pt(sheetGap+col*(cw+sheetGap), sheetGap+row*(ch+sheetGap))
		for _, s := range []*image.RGBA{c.Background.Image(), c.Overlay.Image()} {
			if s == nil {
				continue
			}
			r := image.Rectangle{Min: origin, Max: origin.Add(s.Bounds().Size())}
			draw.Draw(sheet, r, s, s.Bounds().Min, draw.Over)
		}
	}
	return sheet
}
