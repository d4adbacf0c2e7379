package game

import (
	"fmt"
	"time"

	"github.com/mcoot/banker/internal/dependencies/clock"
	"github.com/mcoot/banker/internal/model"
)

// MaxStepsPerTurn bounds the move loop of a single turn. Every jump removes at
// least one tile, so a real turn ends long before this.
const MaxStepsPerTurn = 64

// Chooser picks the next move for a board and incoming tile. ok is false when
// there is nothing worth playing.
type Chooser interface {
	ChooseMove(b model.Board, incoming model.Tile) (m model.Move, value float64, ok bool)
}

// Step is one executed move within a turn
type Step struct {
	Move    model.Move    `json:"move"`
	Value   float64       `json:"value"`
	Elapsed time.Duration `json:"elapsed"`
	Board   model.Board   `json:"board"`
}

// TurnResult is everything that happened while placing one incoming tile
type TurnResult struct {
	Tile     model.Tile           `json:"tile"`
	Steps    []Step               `json:"steps"`
	Board    model.Board          `json:"board"`
	GameOver bool                 `json:"game_over"`
	Reason   model.GameOverReason `json:"reason,omitempty"`
}

// PlayTurn keeps moving with the same incoming tile until a walk consumes it.
// The turn also stops when the board goes bankrupt or the chooser has no move.
func PlayTurn(b model.Board, incoming model.Tile, chooser Chooser, clk clock.Clock) (TurnResult, error) {
	result := TurnResult{Tile: incoming}

	for step := 0; step < MaxStepsPerTurn; step++ {
		if b.IsBankrupt() {
			break
		}

		watch := clock.StartStopwatch(clk)
		m, value, ok := chooser.ChooseMove(b, incoming)
		if !ok {
			result.GameOver = true
			result.Reason = model.ReasonNoLegalMove
			break
		}
		if !b.IsLegal(m) {
			return result, fmt.Errorf("%w: chooser picked %s", model.ErrIllegalMove, m)
		}

		b = b.Apply(m, incoming)
		result.Steps = append(result.Steps, Step{
			Move:    m,
			Value:   value,
			Elapsed: watch.Elapsed(),
			Board:   b,
		})
		if m.IsWalk() {
			break
		}
	}

	if b.IsBankrupt() {
		result.GameOver = true
		result.Reason = model.ReasonBankrupt
	}
	result.Board = b
	return result, nil
}

// Consumed reports whether the incoming tile made it onto the board
func (r TurnResult) Consumed() bool {
	return len(r.Steps) > 0 && r.Steps[len(r.Steps)-1].Move.IsWalk()
}
