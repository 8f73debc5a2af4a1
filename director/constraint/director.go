package constraint

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/they4kman/gosweep/director/random"
	"github.com/they4kman/gosweep/game"
	"github.com/they4kman/gosweep/util/collections"
)

type cellPos struct {
	row, col int
}

// Observation states that exactly numMines of cells are mines
type Observation struct {
	origin   cellPos
	numMines int
	cells    collections.Set[cellPos]
}

func (observation Observation) String() string {
	positions := make([]string, 0, len(observation.cells))
	for cell := range observation.cells {
		positions = append(positions, fmt.Sprintf("(%d, %d)", cell.row, cell.col))
	}
	sort.Strings(positions)

	return fmt.Sprintf("Obs[(%d, %d), %d ε %s]",
		observation.origin.row, observation.origin.col,
		observation.numMines, strings.Join(positions, ", "))
}

// MineProbability is the chance that any one of the observation's cells is a
// mine, ignoring every other observation
func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.cells))
}

// Director flags and reveals cells that follow from the revealed numbers.
// When nothing follows it reveals the bordering cell least likely to be a
// mine, and with no revealed numbers at all it guesses randomly.
type Director struct {
	session  *game.Session
	rand     *rand.Rand
	fallback *random.Director
}

func New(rng *rand.Rand) *Director {
	return &Director{rand: rng}
}

func (director *Director) Init(session *game.Session) {
	director.session = session
	if director.rand == nil {
		director.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	director.fallback = random.New(director.rand)
	director.fallback.Init(session)
}

func (director *Director) Act() {
	if director.session == nil || director.session.IsGameOver() {
		return
	}

	grid := director.session.Grid()
	actions := Deduce(grid)
	if len(actions) > 0 {
		for _, action := range actions {
			director.session.Dispatch(action)
		}
		return
	}

	if row, col, ok := LowestProbability(grid, director.rand); ok {
		director.session.Dispatch(game.Click(row, col))
		return
	}
	director.fallback.Act()
}

func (director *Director) End() {
	if director.fallback != nil {
		director.fallback.End()
	}
	director.session = nil
}

// observe builds one observation per revealed number that still borders
// hidden, unflagged cells
func observe(grid *game.Grid) []Observation {
	var observations []Observation

	grid.Each(func(row, col int, cell game.Cell) {
		if cell.IsHidden() || cell.IsMine() || cell.NumMines() == 0 {
			return
		}

		observation := Observation{
			origin:   cellPos{row, col},
			numMines: cell.NumMines(),
			cells:    collections.NewSet[cellPos](),
		}
		grid.Neighbors(row, col, func(r, c int) {
			neighbor := grid.At(r, c)
			if !neighbor.IsHidden() {
				return
			}
			if neighbor.IsFlagged() {
				observation.numMines--
			} else {
				observation.cells.Add(cellPos{r, c})
			}
		})

		if len(observation.cells) > 0 {
			observations = append(observations, observation)
		}
	})

	return observations
}

// dedupe drops observations covering the same cells as an earlier one
func dedupe(observations []Observation) []Observation {
	var unique []Observation
	for _, observation := range observations {
		duplicate := false
		for _, other := range unique {
			if mayOverlap(observation, other) && observation.cells.Equal(other.cells) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			unique = append(unique, observation)
		}
	}
	return unique
}

func mayOverlap(a, b Observation) bool {
	dr, dc := a.origin.row-b.origin.row, a.origin.col-b.origin.col
	return dr >= -2 && dr <= 2 && dc >= -2 && dc <= 2
}

// Deduce returns the moves that are certain on grid: flags for cells that must
// be mines and reveals for cells that must be safe. Only single observations
// and pairs where one observation's cells are a subset of another's are used.
func Deduce(grid *game.Grid) []game.Action {
	safe := collections.NewSet[cellPos]()
	mines := collections.NewSet[cellPos]()

	conclude := func(observation Observation) {
		switch {
		case len(observation.cells) == 0:
		case observation.numMines == 0:
			for cell := range observation.cells {
				safe.Add(cell)
			}
		case observation.numMines == len(observation.cells):
			for cell := range observation.cells {
				mines.Add(cell)
			}
		}
	}

	observations := dedupe(observe(grid))
	for _, observation := range observations {
		conclude(observation)
	}

	for i, observation := range observations {
		for j, other := range observations {
			if i == j || !mayOverlap(observation, other) || len(observation.cells) >= len(other.cells) {
				continue
			}
			if _, isSubset := observation.cells.IntersectionEx(other.cells); !isSubset {
				continue
			}

			conclude(Observation{
				origin:   other.origin,
				numMines: other.numMines - observation.numMines,
				cells:    other.cells.Difference(observation.cells),
			})
		}
	}

	// Contradictions only arise from misplaced flags; leave those alone
	for cell := range safe.Intersection(mines) {
		safe.Remove(cell)
		mines.Remove(cell)
	}

	actions := make([]game.Action, 0, len(safe)+len(mines))
	for cell := range mines {
		actions = append(actions, game.RightClick(cell.row, cell.col))
	}
	for cell := range safe {
		actions = append(actions, game.Click(cell.row, cell.col))
	}

	sort.Slice(actions, func(i, j int) bool {
		a, b := actions[i], actions[j]
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Col < b.Col
	})
	return actions
}

// LowestProbability picks the hidden cell bordering a revealed number that is
// least likely to be a mine. A cell bordering several numbers takes the
// highest of their probabilities. Ties are broken with rng. ok is false when
// no revealed number borders a hidden, unflagged cell.
func LowestProbability(grid *game.Grid, rng *rand.Rand) (row, col int, ok bool) {
	probabilities := make(map[cellPos]float64)
	for _, observation := range observe(grid) {
		probability := observation.MineProbability()
		for cell := range observation.cells {
			if past, seen := probabilities[cell]; !seen || probability > past {
				probabilities[cell] = probability
			}
		}
	}
	if len(probabilities) == 0 {
		return 0, 0, false
	}

	lowest := math.Inf(1)
	var candidates []cellPos
	for cell, probability := range probabilities {
		switch {
		case probability < lowest:
			lowest = probability
			candidates = append(candidates[:0], cell)
		case probability == lowest:
			candidates = append(candidates, cell)
		}
	}

	// Map order varies between runs; only rng may pick among ties
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].row != candidates[j].row {
			return candidates[i].row < candidates[j].row
		}
		return candidates[i].col < candidates[j].col
	})
	pick := candidates[rng.Intn(len(candidates))]
	return pick.row, pick.col, true
}
