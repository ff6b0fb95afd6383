package entity

import "fmt"

const BoardSize = 8

type Cell uint8

const (
	EmptyCell Cell = iota
	BlackCell
	WhiteCell
)

type Player uint8

const (
	PlayerBlack Player = iota + 1
	PlayerWhite
)

// Cell returns the cell state occupied by the player's stones.
func (that Player) Cell() Cell {
	if that == PlayerWhite {
		return WhiteCell
	}
	return BlackCell
}

func (that Player) Opponent() Player {
	if that == PlayerBlack {
		return PlayerWhite
	}
	return PlayerBlack
}

func (that Player) String() string {
	switch that {
	case PlayerBlack:
		return "Black"
	case PlayerWhite:
		return "White"
	default:
		return "Unknown"
	}
}

type Position struct {
	Row int
	Col int
}

func (that Position) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

func (that Position) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

type Board struct {
	Grid [BoardSize][BoardSize]Cell
}

// NewBoard - creates the starting layout: white on the main diagonal of the center, black on the other one.
func NewBoard() *Board {
	board := &Board{}
	mid := BoardSize / 2

	board.Grid[mid-1][mid-1], board.Grid[mid][mid] = WhiteCell, WhiteCell
	board.Grid[mid-1][mid], board.Grid[mid][mid-1] = BlackCell, BlackCell

	return board
}

// At returns EmptyCell for positions outside the board.
func (that *Board) At(pos Position) Cell {
	if !pos.InBounds() {
		return EmptyCell
	}
	return that.Grid[pos.Row][pos.Col]
}

func (that *Board) Set(pos Position, cell Cell) {
	that.Grid[pos.Row][pos.Col] = cell
}

func (that *Board) Count(cell Cell) int {
	count := 0
	for _, row := range that.Grid {
		for _, c := range row {
			if c == cell {
				count++
			}
		}
	}
	return count
}
