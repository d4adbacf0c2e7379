package board

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/banker/internal/model"
)

// Service validates and applies player supplied board changes
type Service struct {
	logger *slog.Logger
}

// New creates a new BoardService
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger.With(slog.String("component", "board-service")),
	}
}

// ValidateMove checks that source->dest is a legal move on b
func (s *Service) ValidateMove(b model.Board, source, dest int) (model.Move, error) {
	if !model.IsValidPosition(source) || !model.IsValidPosition(dest) {
		return model.Move{}, fmt.Errorf("%w: %d to %d", model.ErrInvalidPosition, source, dest)
	}
	m, err := model.NewMove(source, dest)
	if err != nil {
		return model.Move{}, err
	}
	if !b.IsLegal(m) {
		return model.Move{}, fmt.Errorf("%w: %s", model.ErrIllegalMove, m)
	}
	return m, nil
}

// ApplyMove plays source->dest with the incoming tile
func (s *Service) ApplyMove(b model.Board, source, dest int, incoming model.Tile) (model.Board, model.Move, error) {
	m, err := s.ValidateMove(b, source, dest)
	if err != nil {
		return b, model.Move{}, err
	}
	next := b.Apply(m, incoming)
	s.logger.Debug("move applied",
		slog.String("move", m.String()),
		slog.Bool("walk", m.IsWalk()),
		slog.String("tile", incoming.Token()),
		slog.Int("score", next.Score),
		slog.Int("cash", next.Cash),
	)
	return next, m, nil
}

// PlaceBonus sets a bonus of amount at pos
func (s *Service) PlaceBonus(b model.Board, amount, pos int) (model.Board, error) {
	next, err := b.WithBonus(pos, amount)
	if err != nil {
		return b, err
	}
	s.logger.Debug("bonus placed", slog.Int("position", pos), slog.Int("amount", amount))
	return next, nil
}

// HasLegalMove reports whether any move is available
func (s *Service) HasLegalMove(b model.Board) bool {
	return len(b.LegalMoves()) > 0
}

// Interface for dependency injection
type ServiceInterface interface {
	ValidateMove(b model.Board, source, dest int) (model.Move, error)
	ApplyMove(b model.Board, source, dest int, incoming model.Tile) (model.Board, model.Move, error)
	PlaceBonus(b model.Board, amount, pos int) (model.Board, error)
	HasLegalMove(b model.Board) bool
}

var _ ServiceInterface = (*Service)(nil)
