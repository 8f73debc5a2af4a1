package game

import "testing"

func TestHasWon(t *testing.T) {
	tests := []struct {
		name  string
		board string
		want  bool
	}{
		{"single hidden empty cell", "#", true},
		{"flagged lone mine", "F", true},
		{"unflagged lone mine", "O", false},
		{"hidden number", "#F", false},
		{"revealed number and flagged mine", "1F", true},
		{"revealed number and hidden mine", "1O", false},
		{"wrong flag on a number", "fF", false},
		{"hidden zero cells do not block", "#2F\n#2F", true},
		{"hidden number beside zero region", "#2F\n#2F\n##1", false},
		{"revealed mine unflagged", "1*", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := mustParseGrid(t, tt.board)
			if got := hasWon(grid); got != tt.want {
				t.Errorf("hasWon(\n%s\n) = %v, want %v", grid, got, tt.want)
			}
		})
	}
}

func TestRevealMines(t *testing.T) {
	grid := mustParseGrid(t, "O#F\nf.#")
	revealMines(grid)

	expectBoard(t, grid, "*#*\nf2#")
}
