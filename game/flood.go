package game

import "github.com/gammazero/deque"

type position struct {
	row, col int
}

// openCells reveals the cell at (row, col) and, breadth-first, every cell
// reachable through cells with no adjacent mines. Numbered cells and mines are
// revealed but do not propagate. The start cell must be hidden and unflagged.
//
// Neighbours are queued regardless of their state; the hidden check on
// dequeue filters duplicates, so each cell is processed at most once.
func openCells(grid *Grid, row, col int) int {
	var visitQueue deque.Deque
	visitQueue.PushBack(position{row, col})

	opened := 0
	for visitQueue.Len() > 0 {
		pos := visitQueue.PopFront().(position)

		cell := grid.At(pos.row, pos.col)
		if !cell.IsHidden() {
			continue
		}

		// A revealed cell never keeps a flag
		cell = cell.Clear(Hidden | Flag)
		grid.set(pos.row, pos.col, cell)
		opened++

		if !cell.IsMine() && cell.Has(NearMine) == 0 {
			grid.Neighbors(pos.row, pos.col, func(r, c int) {
				visitQueue.PushBack(position{r, c})
			})
		}
	}

	return opened
}
