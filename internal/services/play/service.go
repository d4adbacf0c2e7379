package play

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mcoot/banker/internal/model"
	"github.com/mcoot/banker/internal/services/board"
	"github.com/mcoot/banker/internal/services/tiles"
	"github.com/mcoot/banker/internal/storage"
)

// Outcome summarises a finished protocol game
type Outcome struct {
	Board  model.Board          `json:"board"`
	Turns  int                  `json:"turns"`
	Moves  int                  `json:"moves"`
	Reason model.GameOverReason `json:"reason,omitempty"` // empty when the player hung up
}

// Service hosts a game for an external player over a line protocol. Every
// prompt is four lines:
//
//	the 25 cell tokens, space separated
//	score and cash
//	the legal moves as "source,dest" pairs
//	the incoming tile
//
// The player answers with "source dest". The same tile is offered until a walk
// places it. When the game ends a last prompt is written with tile "0".
type Service struct {
	storage      storage.Storage
	boardService *board.Service
	sampler      *tiles.Sampler
	logger       *slog.Logger
}

// New creates a new play Service
func New(store storage.Storage, boardService *board.Service, sampler *tiles.Sampler, logger *slog.Logger) *Service {
	return &Service{
		storage:      store,
		boardService: boardService,
		sampler:      sampler,
		logger:       logger.With(slog.String("component", "play-service")),
	}
}

// Run plays one game reading moves from in and writing prompts to out
func (s *Service) Run(ctx context.Context, in io.Reader, out io.Writer) (*Outcome, error) {
	scanner := bufio.NewScanner(in)
	outcome := &Outcome{Board: model.NewBoard()}

	for {
		b := outcome.Board
		tile := s.sampler.Draw(b.Score)
		if err := s.storage.AppendTileRecord(ctx, model.TileRecord{Tile: tile, Score: b.Score}); err != nil {
			return nil, err
		}
		outcome.Turns++

		for {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if !s.boardService.HasLegalMove(b) {
				outcome.Reason = model.ReasonNoLegalMove
				return s.finish(out, outcome, b)
			}

			if err := report(out, b, tile); err != nil {
				return nil, err
			}
			if !scanner.Scan() {
				outcome.Board = b
				return outcome, scanner.Err()
			}

			source, dest, err := parseMove(scanner.Text())
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			next, m, err := s.boardService.ApplyMove(b, source, dest, tile)
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}

			b = next
			outcome.Moves++
			if m.IsWalk() {
				break
			}
		}

		outcome.Board = b
		if b.IsBankrupt() {
			outcome.Reason = model.ReasonBankrupt
			return s.finish(out, outcome, b)
		}
	}
}

func (s *Service) finish(out io.Writer, outcome *Outcome, b model.Board) (*Outcome, error) {
	outcome.Board = b
	s.logger.Info("protocol game over",
		slog.String("reason", string(outcome.Reason)),
		slog.Int("score", b.Score),
		slog.Int("turns", outcome.Turns),
	)
	return outcome, report(out, b, model.EmptyTile)
}

func report(out io.Writer, b model.Board, tile model.Tile) error {
	var sb strings.Builder
	for i, t := range b.Cells {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.String())
	}
	sb.WriteByte('\n')

	fmt.Fprintf(&sb, "%d %d\n", b.Score, b.Cash)

	for i, m := range b.LegalMoves() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d,%d", m.Source, m.Dest)
	}
	sb.WriteByte('\n')

	sb.WriteString(tile.String())
	sb.WriteByte('\n')

	_, err := io.WriteString(out, sb.String())
	return err
}

func parseMove(line string) (source, dest int, err error) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: expected \"source dest\", got %q", model.ErrInvalidCommand, line)
	}
	source, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad source %q", model.ErrInvalidCommand, fields[0])
	}
	dest, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad destination %q", model.ErrInvalidCommand, fields[1])
	}
	return source, dest, nil
}
