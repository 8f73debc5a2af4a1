package game

import "fmt"

type ActionType int

const (
	// ActReveal opens a cell (left click)
	ActReveal ActionType = iota
	// ActFlag toggles the flag on a hidden cell (right click)
	ActFlag
	// ActChord opens the unflagged neighbours of a satisfied number (middle click)
	ActChord
	// ActNewGame starts over with a freshly generated grid
	ActNewGame
	// ActAbort gives up the current game
	ActAbort
)

func (actionType ActionType) String() string {
	switch actionType {
	case ActReveal:
		return "reveal"
	case ActFlag:
		return "flag"
	case ActChord:
		return "chord"
	case ActNewGame:
		return "new-game"
	case ActAbort:
		return "abort"
	default:
		return fmt.Sprintf("ActionType(%d)", int(actionType))
	}
}

// targetsCell reports whether the action carries a meaningful coordinate
func (actionType ActionType) targetsCell() bool {
	return actionType == ActReveal || actionType == ActFlag || actionType == ActChord
}

// Action is a single input event for a Session
type Action struct {
	Type     ActionType
	Row, Col int
}

func (action Action) String() string {
	if action.Type.targetsCell() {
		return fmt.Sprintf("%s(%d, %d)", action.Type, action.Row, action.Col)
	}
	return action.Type.String()
}

func Click(row, col int) Action {
	return Action{Type: ActReveal, Row: row, Col: col}
}

func RightClick(row, col int) Action {
	return Action{Type: ActFlag, Row: row, Col: col}
}

func MiddleClick(row, col int) Action {
	return Action{Type: ActChord, Row: row, Col: col}
}
