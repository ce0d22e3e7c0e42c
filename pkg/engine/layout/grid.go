// Package layout provides the pure grid math behind the infinite card wall:
// grid sizing, slot coordinates and the tiled, shuffled item assignment.
// Nothing here knows about rendering.
package layout

import (
	"math"

	"gallerygrid/pkg/engine/scene"
)

// Size is a grid dimension in slots.
type Size struct {
	Cols int
	Rows int
}

// Total returns the number of slots in the grid.
func (s Size) Total() int {
	return s.Cols * s.Rows
}

// ComputeGridSize returns the smallest near-square grid holding itemCount
// items that is at least minCols×minRows. cols*rows >= itemCount always holds.
func ComputeGridSize(itemCount, minCols, minRows int) Size {
	if itemCount < 0 {
		itemCount = 0
	}
	if minCols < 1 {
		minCols = 1
	}
	if minRows < 1 {
		minRows = 1
	}
	cols := max(minCols, int(math.Ceil(math.Sqrt(float64(itemCount)))))
	rows := max(minRows, (itemCount+cols-1)/cols)
	return Size{Cols: cols, Rows: rows}
}

// PositionForSlot maps a slot index to its position on the card plane. Rows
// grow downwards (negative Y).
func PositionForSlot(index, cols int, itemWidth, itemHeight, padding float64) scene.Vec2 {
	row := index / cols
	col := index % cols
	return scene.Vec2{
		X: float64(col) * (itemWidth + padding),
		Y: -float64(row) * (itemHeight + padding),
	}
}

// Slot is a fixed grid coordinate, computed independently of content.
type Slot struct {
	Index    int
	Column   int
	Row      int
	Position scene.Vec2
}

// Grid describes a finite slot grid that repeats in both directions.
type Grid struct {
	size       Size
	itemWidth  float64
	itemHeight float64
	padding    float64
}

// NewGrid creates a grid of the given size and cell geometry.
func NewGrid(size Size, itemWidth, itemHeight, padding float64) Grid {
	if size.Cols <= 0 || size.Rows <= 0 {
		panic("Grid dimensions must be positive")
	}
	return Grid{
		size:       size,
		itemWidth:  itemWidth,
		itemHeight: itemHeight,
		padding:    padding,
	}
}

// Size returns the grid dimensions.
func (g Grid) Size() Size { return g.size }

// Cols returns the number of columns in the grid.
func (g Grid) Cols() int { return g.size.Cols }

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int { return g.size.Rows }

// ItemSize returns the card width and height.
func (g Grid) ItemSize() (float64, float64) { return g.itemWidth, g.itemHeight }

// Padding returns the gap between cards.
func (g Grid) Padding() float64 { return g.padding }

// CellPeriod returns the distance between neighbouring slot origins on each axis.
func (g Grid) CellPeriod() scene.Vec2 {
	return scene.Vec2{X: g.itemWidth + g.padding, Y: g.itemHeight + g.padding}
}

// Period returns the wrap period: the world size after which the tiled
// pattern repeats.
func (g Grid) Period() scene.Vec2 {
	cell := g.CellPeriod()
	return scene.Vec2{X: float64(g.size.Cols) * cell.X, Y: float64(g.size.Rows) * cell.Y}
}

// IsValidIndex checks if a slot index lies inside the grid.
func (g Grid) IsValidIndex(index int) bool {
	return index >= 0 && index < g.size.Total()
}

// SlotAt returns the slot with the given index. ok is false when out of range.
func (g Grid) SlotAt(index int) (Slot, bool) {
	if !g.IsValidIndex(index) {
		return Slot{}, false
	}
	return Slot{
		Index:    index,
		Column:   index % g.size.Cols,
		Row:      index / g.size.Cols,
		Position: PositionForSlot(index, g.size.Cols, g.itemWidth, g.itemHeight, g.padding),
	}, true
}

// ForEachSlot iterates over all slots in index order.
func (g Grid) ForEachSlot(fn func(s Slot)) {
	for i := 0; i < g.size.Total(); i++ {
		s, _ := g.SlotAt(i)
		fn(s)
	}
}

// Slots returns every slot in index order.
func (g Grid) Slots() []Slot {
	slots := make([]Slot, 0, g.size.Total())
	g.ForEachSlot(func(s Slot) {
		slots = append(slots, s)
	})
	return slots
}

// SlotForLattice returns the slot index that repeats at the unbounded lattice
// coordinate (i, j), where world position = (i*cellX, -j*cellY).
func (g Grid) SlotForLattice(i, j int) int {
	col := mod(i, g.size.Cols)
	row := mod(j, g.size.Rows)
	return row*g.size.Cols + col
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
