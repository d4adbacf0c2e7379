package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SessionID uniquely identifies a game session
type SessionID string

// GameOverReason explains why a session stopped accepting tiles
type GameOverReason string

const (
	ReasonNone        GameOverReason = ""
	ReasonBankrupt    GameOverReason = "bankrupt"      // Cash dropped below zero
	ReasonNoLegalMove GameOverReason = "no_legal_move" // Search found nothing worth playing
)

// Session is a single game being played out, one incoming tile at a time
type Session struct {
	ID     SessionID      `json:"id"`
	Board  Board          `json:"board"`
	Depth  int            `json:"depth"` // Search depth used for every decision
	Turns  int            `json:"turns"` // Tiles processed so far
	Moves  int            `json:"moves"` // Moves executed so far (a turn may take several jumps)
	Reason GameOverReason `json:"reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsOver returns true once the session has hit a terminal state
func (s *Session) IsOver() bool {
	return s.Reason != ReasonNone
}

// TileRecord is one line of the append-only tile log
type TileRecord struct {
	Tile  Tile
	Score int // Score before the tile was played
}

// String renders the record as a tile log line, without the newline
func (r TileRecord) String() string {
	return fmt.Sprintf("%s %d", r.Tile.Token(), r.Score)
}

// ParseTileRecord parses one tile log line
func ParseTileRecord(line string) (TileRecord, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return TileRecord{}, fmt.Errorf("%w: tile log line %q", ErrInvalidCommand, line)
	}
	tile, err := ParseToken(fields[0])
	if err != nil {
		return TileRecord{}, err
	}
	score, err := strconv.Atoi(fields[1])
	if err != nil {
		return TileRecord{}, fmt.Errorf("%w: tile log score %q", ErrInvalidCommand, fields[1])
	}
	return TileRecord{Tile: tile, Score: score}, nil
}
