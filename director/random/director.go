package random

import (
	"math/rand"
	"time"

	"github.com/they4kman/gosweep/game"
)

// Director reveals a random hidden, unflagged cell on each step
type Director struct {
	session *game.Session
	rand    *rand.Rand
}

func New(rng *rand.Rand) *Director {
	return &Director{rand: rng}
}

func (director *Director) Init(session *game.Session) {
	director.session = session
	if director.rand == nil {
		director.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
}

func (director *Director) Act() {
	if director.session == nil || director.session.IsGameOver() {
		return
	}

	if row, col, ok := Pick(director.session.Grid(), director.rand); ok {
		director.session.Dispatch(game.Click(row, col))
	}
}

func (director *Director) End() {
	director.session = nil
}

// Pick chooses a random hidden, unflagged cell of grid
func Pick(grid *game.Grid, rng *rand.Rand) (row, col int, ok bool) {
	var candidates [][2]int
	grid.Each(func(row, col int, cell game.Cell) {
		if cell.IsHidden() && !cell.IsFlagged() {
			candidates = append(candidates, [2]int{row, col})
		}
	})

	if len(candidates) == 0 {
		return 0, 0, false
	}
	pick := candidates[rng.Intn(len(candidates))]
	return pick[0], pick[1], true
}
