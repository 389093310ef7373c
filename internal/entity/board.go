package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-match/internal/apperror"
)

const (
	FirstPosition = 1
	LastPosition  = 9
	BoardSize     = LastPosition - FirstPosition + 1
)

// Marker - identifies whose cell it is. The board never interprets its text.
type Marker string

// NoMarker - an empty cell, and the "no winner" result of WinningMarker.
const NoMarker Marker = ""

// WinLines - rows, then columns, then diagonals. The order decides which threat the bot takes first.
var WinLines = [8][3]int{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
	{1, 4, 7},
	{2, 5, 8},
	{3, 6, 9},
	{1, 5, 9},
	{3, 5, 7},
}

type Cell struct {
	Marker Marker `json:"marker"`
}

func (that Cell) IsEmpty() bool {
	return that.Marker == NoMarker
}

// WinningMove - Marker completes a line if it takes Position.
type WinningMove struct {
	Marker   Marker `json:"marker"`
	Position int    `json:"position"`
}

type Board struct {
	cells [BoardSize]Cell
}

func NewBoard() *Board {
	board := &Board{}
	board.Reset()

	return board
}

// Reset - empties all cells.
func (that *Board) Reset() {
	for i := range that.cells {
		that.cells[i] = Cell{Marker: NoMarker}
	}
}

// SetMarker - occupies an empty position. The board is left untouched on error.
func (that *Board) SetMarker(position int, marker Marker) error {
	if !IsValidPosition(position) {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPosition, position)
	}

	if marker == NoMarker {
		return apperror.ErrInvalidMarker
	}

	if !that.cell(position).IsEmpty() {
		return fmt.Errorf("%w: %d", apperror.ErrCellOccupied, position)
	}

	that.cells[position-FirstPosition].Marker = marker

	return nil
}

// MarkerAt - returns NoMarker for empty cells and positions off the board.
func (that *Board) MarkerAt(position int) Marker {
	if !IsValidPosition(position) {
		return NoMarker
	}

	return that.cell(position).Marker
}

// AvailablePositions - empty positions in ascending order.
func (that *Board) AvailablePositions() []int {
	positions := make([]int, 0, BoardSize)
	for position := FirstPosition; position <= LastPosition; position++ {
		if that.cell(position).IsEmpty() {
			positions = append(positions, position)
		}
	}

	return positions
}

func (that *Board) IsFull() bool {
	return len(that.AvailablePositions()) == 0
}

// WinningMarker - the marker holding a full line, or NoMarker.
func (that *Board) WinningMarker() Marker {
	for _, line := range WinLines {
		markers := that.occupiedMarkers(line)
		if len(markers) == len(line) && allEqual(markers) {
			return markers[0]
		}
	}

	return NoMarker
}

func (that *Board) HasWinner() bool {
	return that.WinningMarker() != NoMarker
}

// CurrentWinningMoves - every line with two equal markers and one empty cell, in WinLines order.
func (that *Board) CurrentWinningMoves() []WinningMove {
	var moves []WinningMove

	for _, line := range WinLines {
		markers := that.occupiedMarkers(line)
		if len(markers) != len(line)-1 || !allEqual(markers) {
			continue
		}

		for _, position := range line {
			if that.cell(position).IsEmpty() {
				moves = append(moves, WinningMove{Marker: markers[0], Position: position})
				break
			}
		}
	}

	return moves
}

func (that *Board) cell(position int) Cell {
	return that.cells[position-FirstPosition]
}

func (that *Board) occupiedMarkers(line [3]int) []Marker {
	markers := make([]Marker, 0, len(line))
	for _, position := range line {
		if cell := that.cell(position); !cell.IsEmpty() {
			markers = append(markers, cell.Marker)
		}
	}

	return markers
}

func IsValidPosition(position int) bool {
	return position >= FirstPosition && position <= LastPosition
}

func allEqual(markers []Marker) bool {
	for _, marker := range markers {
		if marker != markers[0] {
			return false
		}
	}

	return true
}
