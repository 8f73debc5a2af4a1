package game

import (
	"fmt"
	"strings"
)

// Grid is a rows×cols block of cells stored contiguously, row-major
type Grid struct {
	rows, cols int
	cells      []Cell
}

// NewGrid allocates a grid with every cell hidden and empty
func NewGrid(rows, cols int) *Grid {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("game: invalid grid dimensions %dx%d", rows, cols))
	}

	grid := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	grid.reset()
	return grid
}

func (grid *Grid) Rows() int {
	return grid.rows
}

func (grid *Grid) Cols() int {
	return grid.cols
}

func (grid *Grid) NumCells() int {
	return len(grid.cells)
}

func (grid *Grid) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < grid.rows && col < grid.cols
}

func (grid *Grid) index(row, col int) int {
	if !grid.InBounds(row, col) {
		panic(fmt.Sprintf("game: cell (%d, %d) outside %dx%d grid", row, col, grid.rows, grid.cols))
	}
	return row*grid.cols + col
}

func (grid *Grid) At(row, col int) Cell {
	return grid.cells[grid.index(row, col)]
}

func (grid *Grid) set(row, col int, cell Cell) {
	grid.cells[grid.index(row, col)] = cell
}

// reset makes every cell hidden, unflagged, mine-free with a zero count
func (grid *Grid) reset() {
	for i := range grid.cells {
		grid.cells[i] = Hidden
	}
}

// Each calls visit for every cell, row by row
func (grid *Grid) Each(visit func(row, col int, cell Cell)) {
	for i, cell := range grid.cells {
		visit(i/grid.cols, i%grid.cols, cell)
	}
}

// Neighbors calls visit for each in-bounds cell of the Moore neighbourhood
// of (row, col)
func (grid *Grid) Neighbors(row, col int, visit func(row, col int)) {
	for _, offset := range neighborOffsets {
		r, c := row+offset[0], col+offset[1]
		if grid.InBounds(r, c) {
			visit(r, c)
		}
	}
}

// Count returns the number of cells carrying any bit of flag
func (grid *Grid) Count(flag Cell) int {
	n := 0
	for _, cell := range grid.cells {
		if cell.Has(flag) != 0 {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid
func (grid *Grid) Clone() *Grid {
	clone := &Grid{
		rows:  grid.rows,
		cols:  grid.cols,
		cells: make([]Cell, len(grid.cells)),
	}
	copy(clone.cells, grid.cells)
	return clone
}

// String renders one line per row using the snapshot glyphs
func (grid *Grid) String() string {
	var b strings.Builder
	b.Grow(len(grid.cells) + grid.rows)
	for row := 0; row < grid.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range grid.cells[row*grid.cols : (row+1)*grid.cols] {
			b.WriteByte(cell.glyph())
		}
	}
	return b.String()
}
