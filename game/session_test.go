package game

import (
	"math/rand"
	"sync"
	"testing"
)

func TestSingleCellWin(t *testing.T) {
	session := NewSession(Config{Rows: 1, Cols: 1, Mines: 0})
	if session.State() != Playing {
		t.Fatalf("new session state = %v, want playing", session.State())
	}

	session.Reveal(0, 0)
	if !session.DidWin() || !session.IsGameOver() {
		t.Errorf("state after revealing the only cell = %v, want won", session.State())
	}
}

func TestCenterMineWin(t *testing.T) {
	session := mustSession(t, "###\n#O#\n###")

	session.Reveal(0, 0)
	expectBoard(t, session.Grid(), "1##\n#O#\n###")

	session.ToggleFlag(1, 1)
	expectBoard(t, session.Grid(), "1##\n#F#\n###")

	remaining := [][2]int{{0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	for i, pos := range remaining {
		if session.IsGameOver() {
			t.Fatalf("game over after %d of %d reveals: %v", i, len(remaining), session.State())
		}
		session.Reveal(pos[0], pos[1])
	}

	if session.State() != Won {
		t.Fatalf("state = %v, want won", session.State())
	}
	expectBoard(t, session.Grid(), "111\n1*1\n111")
}

func TestRevealMineLoses(t *testing.T) {
	session := mustSession(t, "O#F\n###")

	session.Reveal(0, 0)
	if session.State() != Lost {
		t.Fatalf("state = %v, want lost", session.State())
	}
	expectBoard(t, session.Grid(), "*#*\n###")

	session.Each(func(row, col int, cell Cell) {
		if cell.IsMine() && (cell.IsHidden() || cell.IsFlagged()) {
			t.Errorf("mine (%d, %d) = %#x after losing", row, col, uint8(cell))
		}
	})

	row, col, ok := session.LosingMine()
	if !ok || row != 0 || col != 0 {
		t.Errorf("LosingMine() = (%d, %d, %v), want (0, 0, true)", row, col, ok)
	}
}

func TestFinishedGameIgnoresMoves(t *testing.T) {
	session := mustSession(t, "O##\n###\n###")
	session.Reveal(0, 0)
	before := session.Grid().String()

	session.Reveal(2, 2)
	session.ToggleFlag(1, 1)
	session.Chord(0, 1)
	session.Abort()

	if session.State() != Lost {
		t.Errorf("state = %v, want lost", session.State())
	}
	expectBoard(t, session.Grid(), before)
}

func TestToggleFlag(t *testing.T) {
	session := NewSession(Config{Rows: 5, Cols: 5, Mines: 5}, WithRand(rand.New(rand.NewSource(3))))
	original := session.CellAt(2, 2)

	session.ToggleFlag(2, 2)
	if !session.CellAt(2, 2).IsFlagged() {
		t.Fatalf("cell not flagged after one toggle: %#x", uint8(session.CellAt(2, 2)))
	}
	if got := session.MinesRemaining(); got != 4 {
		t.Errorf("MinesRemaining() = %d, want 4", got)
	}

	session.ToggleFlag(2, 2)
	if got := session.CellAt(2, 2); got != original {
		t.Errorf("cell after two toggles = %#x, want %#x", uint8(got), uint8(original))
	}
}

func TestToggleFlagRevealedIgnored(t *testing.T) {
	session := mustSession(t, "1O")
	session.ToggleFlag(0, 0)
	expectBoard(t, session.Grid(), "1O")
}

func TestRevealFlaggedIgnored(t *testing.T) {
	session := mustSession(t, "fF#")

	session.Reveal(0, 0)
	session.Reveal(0, 1)

	if session.State() != Playing {
		t.Errorf("state = %v, want playing", session.State())
	}
	expectBoard(t, session.Grid(), "fF#")
}

func TestWinByFlagging(t *testing.T) {
	session := mustSession(t, "1O")

	session.ToggleFlag(0, 1)
	if session.State() != Won {
		t.Fatalf("state = %v, want won", session.State())
	}
	expectBoard(t, session.Grid(), "1*")
}

func TestAbort(t *testing.T) {
	session := mustSession(t, "1O\n##")

	session.Abort()
	if session.State() != Lost {
		t.Fatalf("state = %v, want lost", session.State())
	}
	expectBoard(t, session.Grid(), "1*\n##")
	if _, _, ok := session.LosingMine(); ok {
		t.Error("abort reported a losing mine")
	}

	won := mustSession(t, "1O")
	won.ToggleFlag(0, 1)
	won.Abort()
	if won.State() != Won {
		t.Errorf("abort after winning changed state to %v", won.State())
	}
}

func TestNewGame(t *testing.T) {
	session := mustSession(t, "O#F\n###")
	id := session.ID()
	session.Reveal(0, 0)

	session.NewGame()
	if session.State() != Playing {
		t.Errorf("state after NewGame = %v, want playing", session.State())
	}
	if session.ID() == id {
		t.Error("NewGame kept the game id")
	}
	if _, _, ok := session.LosingMine(); ok {
		t.Error("NewGame kept the losing mine")
	}

	grid := session.Grid()
	if grid.Rows() != 2 || grid.Cols() != 3 {
		t.Errorf("new grid is %dx%d, want 2x3", grid.Rows(), grid.Cols())
	}
	if got := grid.Count(Mine); got != 2 {
		t.Errorf("new grid has %d mines, want 2", got)
	}
	if got := grid.Count(Hidden); got != 6 {
		t.Errorf("new grid has %d hidden cells, want 6", got)
	}
	if got := grid.Count(Flag); got != 0 {
		t.Errorf("new grid has %d flags, want 0", got)
	}
}

func TestChord(t *testing.T) {
	session := mustSession(t, "O##\n###\n###")
	session.Reveal(1, 1)

	// Unsatisfied: no flags yet
	session.Chord(1, 1)
	expectBoard(t, session.Grid(), "O##\n#1#\n###")

	session.ToggleFlag(0, 0)
	session.Chord(1, 1)
	if session.State() != Won {
		t.Fatalf("state = %v, want won", session.State())
	}
	expectBoard(t, session.Grid(), "*1.\n11.\n...")
}

func TestChordWrongFlagLoses(t *testing.T) {
	session := mustSession(t, "O##\n###\n###")
	session.Reveal(1, 1)
	session.ToggleFlag(0, 1)

	session.Dispatch(MiddleClick(1, 1))
	if session.State() != Lost {
		t.Fatalf("state = %v, want lost", session.State())
	}
	row, col, ok := session.LosingMine()
	if !ok || row != 0 || col != 0 {
		t.Errorf("LosingMine() = (%d, %d, %v), want (0, 0, true)", row, col, ok)
	}
}

func TestDispatchOutOfBounds(t *testing.T) {
	session := mustSession(t, "O#\n##")
	for _, action := range []Action{Click(-1, 0), Click(0, 2), RightClick(2, 0), MiddleClick(0, -5)} {
		session.Dispatch(action)
	}

	if session.State() != Playing {
		t.Errorf("state = %v, want playing", session.State())
	}
	expectBoard(t, session.Grid(), "O#\n##")
}

func TestDirectOutOfBoundsPanics(t *testing.T) {
	session := mustSession(t, "O#\n##")
	expectPanic(t, "Reveal(2, 0)", func() { session.Reveal(2, 0) })
	expectPanic(t, "ToggleFlag(0, 2)", func() { session.ToggleFlag(0, 2) })
	expectPanic(t, "CellAt(-1, 0)", func() { session.CellAt(-1, 0) })
}

func TestNewSessionInvalidConfig(t *testing.T) {
	expectPanic(t, "too many mines", func() { NewSession(Config{Rows: 2, Cols: 2, Mines: 5}) })
	expectPanic(t, "no rows", func() { NewSession(Config{Rows: 0, Cols: 2, Mines: 0}) })
}

func TestDispatchNewGameAndAbort(t *testing.T) {
	session := NewSession(Config{Rows: 4, Cols: 4, Mines: 3}, WithRand(rand.New(rand.NewSource(9))))

	session.Dispatch(Action{Type: ActAbort})
	if session.State() != Lost {
		t.Fatalf("state after abort = %v, want lost", session.State())
	}

	session.Dispatch(Action{Type: ActNewGame})
	if session.State() != Playing {
		t.Fatalf("state after new game = %v, want playing", session.State())
	}
}

func TestRevealIsMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	session := NewSession(Config{Rows: 8, Cols: 8, Mines: 10}, WithRand(rand.New(rand.NewSource(12))))
	revealed := make(map[[2]int]bool)

	for step := 0; step < 2000; step++ {
		if session.IsGameOver() {
			session.NewGame()
			revealed = make(map[[2]int]bool)
		}

		row, col := rng.Intn(8), rng.Intn(8)
		switch rng.Intn(3) {
		case 0:
			session.Dispatch(Click(row, col))
		case 1:
			session.Dispatch(RightClick(row, col))
		case 2:
			session.Dispatch(MiddleClick(row, col))
		}

		session.Each(func(row, col int, cell Cell) {
			pos := [2]int{row, col}
			if revealed[pos] && cell.IsHidden() {
				t.Fatalf("step %d: cell (%d, %d) was hidden again", step, row, col)
			}
			if cell.IsRevealed() {
				revealed[pos] = true
			}
		})
	}
}

func TestConcurrentDispatch(t *testing.T) {
	session := NewSession(Config{Rows: 12, Cols: 12, Mines: 20})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for step := 0; step < 200; step++ {
				row, col := rng.Intn(12), rng.Intn(12)
				switch rng.Intn(5) {
				case 0:
					session.NewGame()
				case 1:
					session.Dispatch(RightClick(row, col))
				default:
					session.Dispatch(Click(row, col))
				}
				session.Grid()
				session.MinesRemaining()
			}
		}(int64(i))
	}
	wg.Wait()

	if got := session.Grid().Count(Mine); got != 20 {
		t.Errorf("grid has %d mines, want 20", got)
	}
}

func TestMinesRemainingAfterGameEnds(t *testing.T) {
	tests := []struct {
		name   string
		board  string
		action Action
		state  State
		want   int
	}{
		{"won by flagging", "1O\n11", RightClick(0, 1), Won, 0},
		{"lost with one flag placed", "O#F\n###", Click(0, 0), Lost, 1},
		{"lost with a wrong flag", "O#f\n###", Click(0, 0), Lost, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := mustSession(t, tt.board)
			session.Dispatch(tt.action)

			if session.State() != tt.state {
				t.Fatalf("state = %v, want %v", session.State(), tt.state)
			}
			if got := session.MinesRemaining(); got != tt.want {
				t.Errorf("MinesRemaining() = %d, want %d", got, tt.want)
			}

			session.NewGame()
			if got, want := session.MinesRemaining(), session.Config().Mines; got != want {
				t.Errorf("MinesRemaining() after NewGame = %d, want %d", got, want)
			}
		})
	}
}

func TestView(t *testing.T) {
	session := mustSession(t, "O#F\n###")

	view := session.View()
	if view.State != Playing || view.MinesRemaining != 1 || view.HasLosingMine {
		t.Errorf("view before losing = %+v", view)
	}
	expectBoard(t, view.Grid, "O#F\n###")

	session.Reveal(0, 0)
	view = session.View()
	if view.State != Lost || view.MinesRemaining != 1 {
		t.Errorf("view after losing = %+v", view)
	}
	if !view.HasLosingMine || view.LosingRow != 0 || view.LosingCol != 0 {
		t.Errorf("view losing mine = (%d, %d, %v), want (0, 0, true)", view.LosingRow, view.LosingCol, view.HasLosingMine)
	}
	expectBoard(t, view.Grid, "*#*\n###")

	// The view's grid is a copy
	session.NewGame()
	expectBoard(t, view.Grid, "*#*\n###")
}
