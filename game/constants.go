package game

type State int

const (
	Playing State = iota
	Lost
	Won
)

func (state State) String() string {
	switch state {
	case Playing:
		return "playing"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

const (
	DefaultRows = 16
	DefaultCols = 16

	// DefaultMineDensity is the share of cells holding mines when no mine
	// count is configured
	DefaultMineDensity = 0.10
)

// neighborOffsets is the Moore neighbourhood, as (row, col) deltas
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
