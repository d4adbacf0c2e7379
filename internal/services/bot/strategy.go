package bot

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/banker/internal/dependencies/random"
	"github.com/mcoot/banker/internal/model"
	"github.com/mcoot/banker/internal/services/game"
	"github.com/mcoot/banker/internal/services/search"
)

// Strategy defines how a bot chooses moves
type Strategy interface {
	game.Chooser
	// Name returns the strategy identifier
	Name() string
}

// NewStrategy builds the named strategy. Each call returns independent state,
// so strategies can be handed to separate goroutines.
func NewStrategy(name string, rnd random.Random, cfg search.Config, logger *slog.Logger) (Strategy, error) {
	name, err := model.ParseBotStrategy(name)
	if err != nil {
		return nil, err
	}

	switch name {
	case model.BotStrategyRandom:
		return NewRandomStrategy(rnd), nil
	case model.BotStrategyExpectimax:
		engine, err := search.New(cfg, logger)
		if err != nil {
			return nil, err
		}
		return NewExpectimaxStrategy(engine), nil
	default:
		return nil, fmt.Errorf("%w: %q has no implementation", model.ErrUnknownStrategy, name)
	}
}

// RandomStrategy picks uniformly among the legal moves
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

func (s *RandomStrategy) Name() string { return model.BotStrategyRandom }

// ChooseMove returns a random legal move
func (s *RandomStrategy) ChooseMove(b model.Board, incoming model.Tile) (model.Move, float64, bool) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return model.Move{}, 0, false
	}
	return moves[s.random.Intn(len(moves))], 0, true
}

// ExpectimaxStrategy plays the move the search engine rates highest
type ExpectimaxStrategy struct {
	engine *search.Engine
}

// NewExpectimaxStrategy creates a new ExpectimaxStrategy
func NewExpectimaxStrategy(engine *search.Engine) *ExpectimaxStrategy {
	return &ExpectimaxStrategy{engine: engine}
}

func (s *ExpectimaxStrategy) Name() string { return model.BotStrategyExpectimax }

// ChooseMove runs a full depth search
func (s *ExpectimaxStrategy) ChooseMove(b model.Board, incoming model.Tile) (model.Move, float64, bool) {
	res := s.engine.Decide(b, incoming)
	return res.Move, res.Value, res.Found
}

// Engine exposes the underlying search engine, for stats
func (s *ExpectimaxStrategy) Engine() *search.Engine {
	return s.engine
}
