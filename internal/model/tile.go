package model

import (
	"fmt"
	"strconv"
	"strings"
)

// TileCategory distinguishes the kinds of tile that can occupy a cell
type TileCategory int

const (
	CategoryRegular         TileCategory = iota // Fusable company tile, rank 0 means empty
	CategoryNonProfit                           // Charitable deduction, blocks until jumped
	CategoryNegativeLawsuit                     // Lowers whatever it lands on by one
	CategoryPositiveLawsuit                     // Raises whatever it lands on by one
	CategoryCompetitor                          // Rank <= 0, -rank is drained from cash every move
)

// String returns the category name used in logs and JSON output
func (c TileCategory) String() string {
	switch c {
	case CategoryRegular:
		return "regular"
	case CategoryNonProfit:
		return "nonprofit"
	case CategoryNegativeLawsuit:
		return "negative_lawsuit"
	case CategoryPositiveLawsuit:
		return "positive_lawsuit"
	case CategoryCompetitor:
		return "competitor"
	default:
		return "unknown"
	}
}

// Tile is an immutable cell value
type Tile struct {
	Rank     int          `json:"rank"`
	Category TileCategory `json:"category"`
}

// EmptyTile is the value of an unoccupied cell
var EmptyTile = Tile{}

// NewTile returns a regular tile of the given rank
func NewTile(rank int) Tile {
	return Tile{Rank: rank, Category: CategoryRegular}
}

// NewCompetitor returns a competitor carrying the given debt
func NewCompetitor(debt int) Tile {
	return Tile{Rank: -debt, Category: CategoryCompetitor}
}

// NewNonProfit returns a charitable deduction tile of the given rank
func NewNonProfit(rank int) Tile {
	return Tile{Rank: rank, Category: CategoryNonProfit}
}

// NewLawsuit returns a positive or negative lawsuit tile
func NewLawsuit(positive bool) Tile {
	if positive {
		return Tile{Category: CategoryPositiveLawsuit}
	}
	return Tile{Category: CategoryNegativeLawsuit}
}

func (t Tile) IsEmpty() bool        { return t == EmptyTile }
func (t Tile) IsCompetitor() bool   { return t.Category == CategoryCompetitor }
func (t Tile) IsNonProfit() bool    { return t.Category == CategoryNonProfit }
func (t Tile) IsPosLawsuit() bool   { return t.Category == CategoryPositiveLawsuit }
func (t Tile) IsNegLawsuit() bool   { return t.Category == CategoryNegativeLawsuit }
func (t Tile) IsLawsuit() bool      { return t.IsPosLawsuit() || t.IsNegLawsuit() }
func (t Tile) Less(other Tile) bool { return t.Rank < other.Rank }

// Debt returns the amount a competitor drains per move, 0 for anything else
func (t Tile) Debt() int {
	if !t.IsCompetitor() || t.Rank >= 0 {
		return 0
	}
	return -t.Rank
}

// IsHostile reports whether the tile is one the player would rather not have placed
// in a hard to reach cell
func (t Tile) IsHostile() bool {
	return t.IsCompetitor() || t.IsNonProfit()
}

// String renders the tile the way the board display and the banker protocol show it
func (t Tile) String() string {
	switch t.Category {
	case CategoryNonProfit:
		return fmt.Sprintf("%d*", t.Rank)
	case CategoryNegativeLawsuit:
		return "-"
	case CategoryPositiveLawsuit:
		return "+"
	case CategoryCompetitor:
		if t.Debt() > 0 {
			return fmt.Sprintf("-%d", t.Debt())
		}
		return "(0)"
	default:
		return strconv.Itoa(t.Rank)
	}
}

// Token returns the compact command form of the tile, as written to the tile log
func (t Tile) Token() string {
	switch t.Category {
	case CategoryNonProfit:
		return "." + strconv.Itoa(t.Rank)
	case CategoryNegativeLawsuit:
		return "!-"
	case CategoryPositiveLawsuit:
		return "!+"
	default:
		// Competitors are written as their (non-positive) rank
		return strconv.Itoa(t.Rank)
	}
}

// ParseToken is the inverse of Token
func ParseToken(token string) (Tile, error) {
	token = strings.TrimSpace(token)
	switch {
	case token == "!+":
		return NewLawsuit(true), nil
	case token == "!-":
		return NewLawsuit(false), nil
	case strings.HasPrefix(token, "."):
		rank, err := strconv.Atoi(token[1:])
		if err != nil || rank <= 0 {
			return Tile{}, fmt.Errorf("%w: bad deduction token %q", ErrInvalidCommand, token)
		}
		return NewNonProfit(rank), nil
	}

	n, err := strconv.Atoi(token)
	if err != nil {
		return Tile{}, fmt.Errorf("%w: bad tile token %q", ErrInvalidCommand, token)
	}
	return TileFromInt(n), nil
}

// TileFromInt maps a bare integer command to a tile: positive values are regular
// tiles, zero and negative values are competitors of that rank
func TileFromInt(n int) Tile {
	if n > 0 {
		return NewTile(n)
	}
	return Tile{Rank: n, Category: CategoryCompetitor}
}
