// Package layout maps between grid coordinates and window positions
package layout

import (
	"math"

	"github.com/faiface/pixel"
)

const (
	CellWidth = 20
	CellGap   = 1
)

// Board places a grid with its top-left corner at (0, Top). Rows grow
// downwards.
type Board struct {
	Top float64
}

// CellAt maps a window position to grid coordinates. ok is false when the
// position falls in the gap between cells. The result may lie outside the
// grid; the session ignores such actions.
func (board Board) CellAt(pos pixel.Vec) (row, col int, ok bool) {
	fromTop := board.Top - pos.Y
	row = int(math.Floor(fromTop / CellWidth))
	col = int(math.Floor(pos.X / CellWidth))

	offX := pos.X - float64(col*CellWidth)
	offY := fromTop - float64(row*CellWidth)
	if offX >= CellWidth-CellGap || offY >= CellWidth-CellGap {
		return row, col, false
	}
	return row, col, true
}

// CellRect is the area drawn for a cell, excluding the gap on its right and
// bottom edges
func (board Board) CellRect(row, col int) pixel.Rect {
	minX := float64(col * CellWidth)
	maxY := board.Top - float64(row*CellWidth)
	return pixel.R(minX, maxY-CellWidth+CellGap, minX+CellWidth-CellGap, maxY)
}
