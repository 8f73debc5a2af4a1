package game

// hasWon reports whether every numbered cell has been revealed and every mine
// is flagged. Hidden cells with no adjacent mines do not block a win.
func hasWon(grid *Grid) bool {
	for _, cell := range grid.cells {
		if cell.IsHidden() && cell.Has(NearMine) != 0 {
			return false
		}
		if cell.IsMine() && !cell.IsFlagged() {
			return false
		}
	}
	return true
}

// revealMines shows every mine for end-of-game display, dropping their flags.
// Non-mine cells are left untouched.
func revealMines(grid *Grid) {
	for i, cell := range grid.cells {
		if cell.IsMine() {
			grid.cells[i] = cell.Clear(Hidden | Flag)
		}
	}
}
