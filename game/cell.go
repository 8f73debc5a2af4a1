package game

import (
	"fmt"

	"github.com/they4kman/gosweep/util/bitflag"
)

// Cell is the packed state of one grid position
//
//	bits 0-3  number of adjacent mines (0-8)
//	bit  4    mine
//	bit  5    flagged
//	bit  6    hidden
type Cell uint8

const (
	NearMine Cell = 0x0F
	Mine     Cell = 0x10
	Flag     Cell = 0x20
	Hidden   Cell = 0x40
)

func (cell Cell) Set(flag Cell) Cell {
	return bitflag.Set(cell, flag)
}

// Has returns the bits of flag present in the cell. With NearMine it yields
// the adjacency count.
func (cell Cell) Has(flag Cell) Cell {
	return bitflag.Has(cell, flag)
}

func (cell Cell) Toggle(flag Cell) Cell {
	return bitflag.Toggle(cell, flag)
}

func (cell Cell) Clear(flag Cell) Cell {
	return bitflag.Clear(cell, flag)
}

func (cell Cell) IsMine() bool {
	return cell.Has(Mine) != 0
}

func (cell Cell) IsFlagged() bool {
	return cell.Has(Flag) != 0
}

func (cell Cell) IsHidden() bool {
	return cell.Has(Hidden) != 0
}

func (cell Cell) IsRevealed() bool {
	return !cell.IsHidden()
}

// NumMines is the number of mines among the cell's neighbours. It is always 0
// for mine cells.
func (cell Cell) NumMines() int {
	return int(cell.Has(NearMine))
}

func (cell Cell) String() string {
	return fmt.Sprintf("Cell(%c)", cell.glyph())
}

// glyph is the single-character snapshot encoding of the cell
func (cell Cell) glyph() byte {
	switch {
	case cell.IsMine():
		switch {
		case cell.IsFlagged():
			return 'F'
		case cell.IsHidden():
			return 'O'
		default:
			return '*'
		}
	case cell.IsFlagged():
		return 'f'
	case cell.IsHidden():
		return '#'
	case cell.NumMines() == 0:
		return '.'
	default:
		return byte('0' + cell.NumMines())
	}
}

// cellFromGlyph decodes a snapshot character. Adjacency counts are not
// trusted; they are recomputed from mine positions after loading.
func cellFromGlyph(c byte) (Cell, bool) {
	switch {
	case c == '*':
		return Mine, true
	case c == 'F':
		return Mine | Flag | Hidden, true
	case c == 'O':
		return Mine | Hidden, true
	case c == 'f':
		return Flag | Hidden, true
	case c == '#':
		return Hidden, true
	case c == '.' || (c >= '1' && c <= '8'):
		return 0, true
	default:
		return 0, false
	}
}
