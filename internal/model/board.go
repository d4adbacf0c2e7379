package model

import (
	"fmt"
	"strings"
)

// Board is a complete game position. It is a plain value: assigning or passing a
// Board copies every array, so a move never disturbs the position it started from.
type Board struct {
	Cells  [BoardSize]Tile `json:"cells"`
	Timers [BoardSize]int  `json:"timers"` // Competitor countdowns, 0 elsewhere
	Bonus  [BoardSize]int  `json:"bonus"`  // Remaining bonus cash per cell
	Score  int             `json:"score"`
	Cash   int             `json:"cash"`
}

// NewBoard returns the starting position: a single rank 1 tile in the center
func NewBoard() Board {
	var b Board
	b.Cells[CenterCell] = NewTile(1)
	b.Score = StartingScore
	b.Cash = StartingCash
	return b
}

// IsValidPosition returns true if pos addresses a cell
func IsValidPosition(pos int) bool {
	return pos >= 0 && pos < BoardSize
}

// At returns the tile at pos
func (b Board) At(pos int) Tile {
	return b.Cells[pos]
}

func (b Board) IsEmpty(pos int) bool      { return b.Cells[pos].IsEmpty() }
func (b Board) IsCompetitor(pos int) bool { return b.Cells[pos].IsCompetitor() }
func (b Board) IsNonProfit(pos int) bool  { return b.Cells[pos].IsNonProfit() }
func (b Board) IsLawsuit(pos int) bool    { return b.Cells[pos].IsLawsuit() }

// IsBankrupt reports the terminal condition: cash below zero
func (b Board) IsBankrupt() bool {
	return b.Cash < 0
}

// CompetitorCount returns the number of competitor tiles, defused ones included
func (b Board) CompetitorCount() int {
	count := 0
	for _, t := range b.Cells {
		if t.IsCompetitor() {
			count++
		}
	}
	return count
}

// CompetitorCosts returns the sum of the negative competitor ranks. Adding it to
// cash collects every competitor's debt.
func (b Board) CompetitorCosts() int {
	total := 0
	for _, t := range b.Cells {
		if t.IsCompetitor() && t.Rank < 0 {
			total += t.Rank
		}
	}
	return total
}

// EmptyCount returns the number of empty cells
func (b Board) EmptyCount() int {
	count := 0
	for _, t := range b.Cells {
		if t.IsEmpty() {
			count++
		}
	}
	return count
}

// WithTile returns a copy of the board with pos set to t. Competitors placed this
// way get a fresh countdown.
func (b Board) WithTile(pos int, t Tile) (Board, error) {
	if !IsValidPosition(pos) {
		return b, fmt.Errorf("%w: %d", ErrInvalidPosition, pos)
	}
	if t.IsCompetitor() {
		b.addCompetitor(pos, t)
	} else {
		b.Cells[pos] = t
		b.Timers[pos] = 0
	}
	return b, nil
}

// WithBonus returns a copy of the board carrying amount bonus cash at pos
func (b Board) WithBonus(pos, amount int) (Board, error) {
	if !IsValidPosition(pos) {
		return b, fmt.Errorf("%w: %d", ErrInvalidPosition, pos)
	}
	if amount < 0 {
		return b, fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}
	b.Bonus[pos] = amount
	return b, nil
}

func (b *Board) addCompetitor(pos int, t Tile) {
	b.Cells[pos] = t
	b.Timers[pos] = CompetitorTimer
}

func (b *Board) clearCell(pos int) {
	b.Cells[pos] = EmptyTile
	b.Timers[pos] = 0
}

// String renders the grid, marking bonus cells with '$'
func (b Board) String() string {
	var sb strings.Builder
	for i, t := range b.Cells {
		if i != 0 && i%BoardWidth == 0 {
			sb.WriteByte('\n')
		}
		cell := t.String()
		if b.Bonus[i] > 0 {
			cell = "$" + cell
		}
		fmt.Fprintf(&sb, "%4s", cell)
	}
	sb.WriteByte('\n')
	return sb.String()
}
