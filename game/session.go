package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Session is one player's game: the grid, its outcome and the configuration
// used to regenerate it. All methods are safe for concurrent use; each holds
// the session lock for its whole duration.
type Session struct {
	mu sync.Mutex

	config Config
	rand   *rand.Rand

	id    string
	grid  *Grid
	state State

	// Mine that ended the game, if any
	losingMine *position
	// Mines minus flags when the game ended; revealMines drops mine flags
	finalRemaining int
}

type Option func(*Session)

// WithRand sets the random source used for mine placement
func WithRand(rng *rand.Rand) Option {
	return func(session *Session) {
		session.rand = rng
	}
}

// NewSession creates a session and generates its first grid. The config must
// already be normalized.
func NewSession(config Config, options ...Option) *Session {
	config.mustBeValid()

	session := &Session{config: config}
	for _, option := range options {
		option(session)
	}
	if session.rand == nil {
		session.rand = defaultRand()
	}

	session.newGame()
	return session
}

func defaultRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func (session *Session) logger() *logrus.Entry {
	return log.WithField("game", session.id)
}

func (session *Session) canPlay() bool {
	return session.state == Playing
}

func (session *Session) newGame() {
	if session.grid == nil {
		session.grid = NewGrid(session.config.Rows, session.config.Cols)
	}
	generate(session.grid, session.config.Mines, session.rand)

	session.id = uuid.NewString()
	session.state = Playing
	session.losingMine = nil

	session.logger().WithFields(logrus.Fields{
		"rows":  session.config.Rows,
		"cols":  session.config.Cols,
		"mines": session.config.Mines,
	}).Info("new game")
}

func (session *Session) win() {
	session.finalRemaining = session.minesRemaining()
	session.state = Won
	revealMines(session.grid)
	session.logger().Info("game won")
}

func (session *Session) lose() {
	session.finalRemaining = session.minesRemaining()
	session.state = Lost
	revealMines(session.grid)
	session.logger().Info("game lost")
}

func (session *Session) checkWin() {
	if hasWon(session.grid) {
		session.win()
	}
}

func (session *Session) reveal(row, col int) {
	cell := session.grid.At(row, col)
	if !session.canPlay() || cell.IsFlagged() {
		return
	}

	if cell.IsMine() {
		session.losingMine = &position{row, col}
		session.logger().WithFields(logrus.Fields{"row": row, "col": col}).Debug("revealed mine")
		session.lose()
		return
	}

	if cell.IsHidden() {
		opened := openCells(session.grid, row, col)
		session.logger().WithFields(logrus.Fields{
			"row":    row,
			"col":    col,
			"opened": opened,
		}).Debug("revealed cells")
		session.checkWin()
	}
}

func (session *Session) toggleFlag(row, col int) {
	cell := session.grid.At(row, col)
	if !session.canPlay() || !cell.IsHidden() {
		return
	}

	session.grid.set(row, col, cell.Toggle(Flag))
	session.logger().WithFields(logrus.Fields{
		"row":     row,
		"col":     col,
		"flagged": !cell.IsFlagged(),
	}).Debug("toggled flag")
	session.checkWin()
}

func (session *Session) chord(row, col int) {
	cell := session.grid.At(row, col)
	if !session.canPlay() || cell.IsHidden() || cell.IsMine() || cell.NumMines() == 0 {
		return
	}

	numFlagged := 0
	session.grid.Neighbors(row, col, func(r, c int) {
		if session.grid.At(r, c).IsFlagged() {
			numFlagged++
		}
	})
	if numFlagged != cell.NumMines() {
		return
	}

	session.grid.Neighbors(row, col, func(r, c int) {
		if session.canPlay() && session.grid.At(r, c).IsHidden() {
			session.reveal(r, c)
		}
	})
}

func (session *Session) abort() {
	if !session.canPlay() {
		return
	}
	session.logger().Debug("aborted")
	session.lose()
}

// NewGame discards the current grid and generates a new one with the same
// configuration. Valid in any state.
func (session *Session) NewGame() {
	session.mu.Lock()
	defer session.mu.Unlock()

	session.newGame()
}

// Reveal opens the cell at (row, col). Revealing a mine loses the game;
// otherwise the flood fill runs and the game is won once every numbered cell
// is open and every mine flagged. Flagged cells and finished games are
// ignored. Panics if (row, col) is outside the grid.
func (session *Session) Reveal(row, col int) {
	session.mu.Lock()
	defer session.mu.Unlock()

	session.reveal(row, col)
}

// ToggleFlag flips the flag of a hidden cell while the game is being played.
// Panics if (row, col) is outside the grid.
func (session *Session) ToggleFlag(row, col int) {
	session.mu.Lock()
	defer session.mu.Unlock()

	session.toggleFlag(row, col)
}

// Chord reveals every hidden, unflagged neighbour of a revealed number whose
// count is matched by flagged neighbours. Panics if (row, col) is outside the
// grid.
func (session *Session) Chord(row, col int) {
	session.mu.Lock()
	defer session.mu.Unlock()

	session.chord(row, col)
}

// Abort ends a game in progress as lost and shows the mines
func (session *Session) Abort() {
	session.mu.Lock()
	defer session.mu.Unlock()

	session.abort()
}

// Dispatch applies an input action. Actions aimed outside the grid are
// ignored.
func (session *Session) Dispatch(action Action) {
	session.mu.Lock()
	defer session.mu.Unlock()

	if action.Type.targetsCell() && !session.grid.InBounds(action.Row, action.Col) {
		session.logger().WithField("action", action).Debug("ignoring action outside grid")
		return
	}

	switch action.Type {
	case ActReveal:
		session.reveal(action.Row, action.Col)
	case ActFlag:
		session.toggleFlag(action.Row, action.Col)
	case ActChord:
		session.chord(action.Row, action.Col)
	case ActNewGame:
		session.newGame()
	case ActAbort:
		session.abort()
	}
}

func (session *Session) State() State {
	session.mu.Lock()
	defer session.mu.Unlock()

	return session.state
}

func (session *Session) IsGameOver() bool {
	return session.State() != Playing
}

func (session *Session) DidWin() bool {
	return session.State() == Won
}

// ID identifies the current game; it changes with every NewGame
func (session *Session) ID() string {
	session.mu.Lock()
	defer session.mu.Unlock()

	return session.id
}

func (session *Session) Config() Config {
	return session.config
}

func (session *Session) Rows() int {
	return session.config.Rows
}

func (session *Session) Cols() int {
	return session.config.Cols
}

// CellAt returns a copy of the cell at (row, col). Panics if (row, col) is
// outside the grid.
func (session *Session) CellAt(row, col int) Cell {
	session.mu.Lock()
	defer session.mu.Unlock()

	return session.grid.At(row, col)
}

// Each calls visit for every cell while holding the session lock. visit must
// not call back into the session.
func (session *Session) Each(visit func(row, col int, cell Cell)) {
	session.mu.Lock()
	defer session.mu.Unlock()

	session.grid.Each(visit)
}

// Grid returns a copy of the current grid
func (session *Session) Grid() *Grid {
	session.mu.Lock()
	defer session.mu.Unlock()

	return session.grid.Clone()
}

func (session *Session) minesRemaining() int {
	if !session.canPlay() {
		return session.finalRemaining
	}
	return session.grid.Count(Mine) - session.grid.Count(Flag)
}

// MinesRemaining is the number of mines minus the number of flags placed. It
// can go negative when too many flags are placed. Once the game is over it
// keeps the value it had when the game ended.
func (session *Session) MinesRemaining() int {
	session.mu.Lock()
	defer session.mu.Unlock()

	return session.minesRemaining()
}

// LosingMine returns the mine whose reveal lost the game
func (session *Session) LosingMine() (row, col int, ok bool) {
	session.mu.Lock()
	defer session.mu.Unlock()

	if session.losingMine == nil {
		return 0, 0, false
	}
	return session.losingMine.row, session.losingMine.col, true
}

// View is a consistent copy of everything needed to draw a session
type View struct {
	Grid           *Grid
	State          State
	MinesRemaining int

	LosingRow, LosingCol int
	HasLosingMine        bool
}

// View captures the grid and its outcome under a single lock
func (session *Session) View() View {
	session.mu.Lock()
	defer session.mu.Unlock()

	view := View{
		Grid:           session.grid.Clone(),
		State:          session.state,
		MinesRemaining: session.minesRemaining(),
	}
	if session.losingMine != nil {
		view.LosingRow, view.LosingCol = session.losingMine.row, session.losingMine.col
		view.HasLosingMine = true
	}
	return view
}
