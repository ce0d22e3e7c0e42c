// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"gallerygrid/pkg/engine/scene"
	"gallerygrid/pkg/gallery/grid"
	"gallerygrid/pkg/gallery/items"
)

const layoutDumpFilename = "layout.txt"

// symbol returns the single-character symbol for a card kind.
type symbol struct{}

func (symbol) Work(*items.WorkCard) rune               { return 'W' }
func (symbol) Category(*items.CategoryCard) rune       { return 'C' }
func (symbol) Navigation(c *items.NavigationCard) rune { return []rune(c.Direction.Glyph())[0] }
func (symbol) Owner(*items.OwnerCard) rune             { return 'O' }
func (symbol) Panel(*items.TextPanel) rune             { return 'P' }
func (symbol) Placeholder(*items.PlaceholderCard) rune { return '.' }

// Symbol returns the layout dump character for it.
func Symbol(it items.Item) rune {
	if it == nil {
		return ' '
	}
	return items.Match[rune](it, symbol{})
}

// Snapshot is the state a layout dump describes.
type Snapshot struct {
	Title  string
	Plan   *grid.Plan
	Camera *scene.Camera
	Cell   scene.Vec2
	Live   []*grid.CardObject
}

// WriteLayoutDump writes a plain-text dump of s to layout.txt in dir:
// metadata, legend, the slot map and the live card list. It returns the
// absolute path of the file.
func WriteLayoutDump(dir string, s Snapshot) (string, error) {
	if s.Plan == nil {
		return "", fmt.Errorf("no grid plan to dump")
	}
	path := filepath.Join(dir, layoutDumpFilename)
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	f, err := os.Create(path)
	if err != nil {
		return absPath, fmt.Errorf("create layout dump: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	writeLayout(w, s)
	if err := w.Flush(); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}

func writeLayout(w *bufio.Writer, s Snapshot) {
	plan := s.Plan
	cols, rows := plan.Grid.Cols(), plan.Grid.Rows()

	fmt.Fprintln(w, "=== LAYOUT DUMP ===")
	fmt.Fprintf(w, "title: %q\n", s.Title)
	fmt.Fprintf(w, "grid_id: %s\n", plan.ID)
	fmt.Fprintf(w, "seed: %d\n", plan.Seed)
	fmt.Fprintf(w, "cols: %d rows: %d\n", cols, rows)
	fmt.Fprintf(w, "cell_period: %.3f x %.3f\n", s.Cell.X, s.Cell.Y)
	if s.Camera != nil {
		p := s.Camera.Position
		fmt.Fprintf(w, "camera: x=%.3f y=%.3f z=%.3f zoom=%.3f\n", p.X, p.Y, p.Z, s.Camera.Zoom)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Legend: W work, C category, O owner, P text panel, . placeholder, arrows navigation")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Slot map (row 0 at the top):")
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			slot := row*cols + col
			var it items.Item
			if slot < len(plan.Assignment) {
				it = plan.Assignment[slot]
			}
			fmt.Fprintf(w, "%c", Symbol(it))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Slot assignment:")
	for slot, it := range plan.Assignment {
		if it == nil {
			continue
		}
		fmt.Fprintf(w, "  slot: %d item: %q\n", slot, it.ID())
	}
	fmt.Fprintln(w, "")

	fmt.Fprintf(w, "Live cards (%d):\n", len(s.Live))
	if len(s.Live) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, c := range s.Live {
		placeholder := c.Content != nil && c.Content.Placeholder
		fmt.Fprintf(w, "  slot: %d lattice: %d,%d x: %.3f y: %.3f item: %q placeholder: %v\n",
			c.Slot, c.Lattice.X, c.Lattice.Y, c.Position.X, c.Position.Y, c.Item.ID(), placeholder)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "=== END LAYOUT DUMP ===")
}
