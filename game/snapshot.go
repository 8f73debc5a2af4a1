package game

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var ErrInvalidSnapshot = errors.New("invalid board snapshot")

// Snapshot is a textual copy of a board, one character per cell:
//
//	#  hidden          f  flagged safe cell
//	.  revealed, 0     O  hidden mine
//	1-8 revealed count F  flagged mine
//	*  revealed mine
type Snapshot struct {
	State string `yaml:"state,omitempty"`
	Board string `yaml:"board"`
}

func (snapshot *Snapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func LoadSnapshot(in []byte) (*Snapshot, error) {
	var snapshot Snapshot
	if err := yaml.Unmarshal(in, &snapshot); err != nil {
		return nil, errors.Wrap(err, "loading snapshot")
	}
	return &snapshot, nil
}

// ParseGrid decodes a board drawn with snapshot characters. Adjacency counts
// are recomputed from the mine positions, so digits only mark revealed cells.
func ParseGrid(board string) (*Grid, error) {
	rows := strings.Split(strings.TrimSpace(board), "\n")
	for i := range rows {
		rows[i] = strings.TrimSpace(rows[i])
	}

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrap(ErrInvalidSnapshot, "empty board")
	}

	grid := NewGrid(len(rows), len(rows[0]))
	for row, line := range rows {
		if len(line) != grid.cols {
			return nil, errors.Wrapf(ErrInvalidSnapshot, "row %d has %d cells, want %d", row, len(line), grid.cols)
		}
		for col := 0; col < len(line); col++ {
			cell, ok := cellFromGlyph(line[col])
			if !ok {
				return nil, errors.Wrapf(ErrInvalidSnapshot, "unknown cell %q at (%d, %d)", line[col], row, col)
			}
			grid.set(row, col, cell)
		}
	}

	countMines(grid)
	return grid, nil
}

func parseState(s string) (State, error) {
	for _, state := range []State{Playing, Lost, Won} {
		if s == state.String() {
			return state, nil
		}
	}
	if s == "" {
		return Playing, nil
	}
	return Playing, errors.Wrapf(ErrInvalidSnapshot, "unknown state %q", s)
}

// Snapshot captures the current board and outcome
func (session *Session) Snapshot() *Snapshot {
	session.mu.Lock()
	defer session.mu.Unlock()

	return &Snapshot{
		State: session.state.String(),
		Board: session.grid.String(),
	}
}

// NewSessionFromSnapshot restores a session from a snapshot. The session's
// configuration is taken from the board, so NewGame produces boards of the
// same size and mine count.
func NewSessionFromSnapshot(snapshot *Snapshot, options ...Option) (*Session, error) {
	grid, err := ParseGrid(snapshot.Board)
	if err != nil {
		return nil, err
	}
	state, err := parseState(snapshot.State)
	if err != nil {
		return nil, err
	}

	session := &Session{
		config: Config{
			Rows:  grid.Rows(),
			Cols:  grid.Cols(),
			Mines: grid.Count(Mine),
		},
	}
	for _, option := range options {
		option(session)
	}
	if session.rand == nil {
		session.rand = defaultRand()
	}

	session.grid = grid
	session.state = state
	session.finalRemaining = grid.Count(Mine) - grid.Count(Flag)
	session.id = uuid.NewString()

	session.logger().WithFields(logrus.Fields{
		"rows":  grid.Rows(),
		"cols":  grid.Cols(),
		"mines": session.config.Mines,
		"state": state,
	}).Info("loaded snapshot")
	return session, nil
}
