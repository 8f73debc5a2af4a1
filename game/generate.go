package game

import (
	"fmt"
	"math/rand"
)

// generate resets grid and places numMines mines on distinct cells chosen
// uniformly at random, then fills in adjacency counts.
func generate(grid *Grid, numMines int, rng *rand.Rand) {
	if numMines < 0 || numMines > grid.NumCells() {
		panic(fmt.Sprintf("game: cannot place %d mines in %d cells", numMines, grid.NumCells()))
	}

	grid.reset()

	// Store cell indexes, to shuffle and take the first numMines as mines
	cellIndexes := make([]int, grid.NumCells())
	for i := range cellIndexes {
		cellIndexes[i] = i
	}
	rng.Shuffle(len(cellIndexes), func(i, j int) {
		cellIndexes[i], cellIndexes[j] = cellIndexes[j], cellIndexes[i]
	})

	for _, idx := range cellIndexes[:numMines] {
		grid.cells[idx] = grid.cells[idx].Set(Mine)
	}

	countMines(grid)
}

// countMines recomputes the adjacency count of every non-mine cell from the
// current mine positions
func countMines(grid *Grid) {
	for i := range grid.cells {
		grid.cells[i] = grid.cells[i].Clear(NearMine)
	}

	for i, cell := range grid.cells {
		if !cell.IsMine() {
			continue
		}
		grid.Neighbors(i/grid.cols, i%grid.cols, func(row, col int) {
			neighbor := grid.At(row, col)
			if !neighbor.IsMine() {
				grid.set(row, col, neighbor+1)
			}
		})
	}
}
