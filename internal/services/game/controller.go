package game

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/mcoot/banker/internal/dependencies/clock"
	"github.com/mcoot/banker/internal/model"
	"github.com/mcoot/banker/internal/services/board"
	"github.com/mcoot/banker/internal/storage"
)

// Controller runs sessions: one incoming tile at a time, each played out with
// the chooser until it lands on the board
type Controller struct {
	// Serializes turns; the chooser may hold search state that is not goroutine safe
	mu sync.Mutex

	storage      storage.Storage
	boardService *board.Service
	chooser      Chooser
	depth        int
	clock        clock.Clock
	logger       *slog.Logger
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	boardService *board.Service,
	chooser Chooser,
	depth int,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:      storage,
		boardService: boardService,
		chooser:      chooser,
		depth:        depth,
		clock:        clock,
		logger:       logger.With(slog.String("component", "game-controller")),
	}
}

// NewSession starts a session on a fresh board
func (c *Controller) NewSession(ctx context.Context) (*model.Session, error) {
	now := c.clock.Now()
	session := &model.Session{
		ID:        model.SessionID(uuid.NewString()),
		Board:     model.NewBoard(),
		Depth:     c.depth,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(session.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("session created",
		slog.String("session_id", string(session.ID)),
		slog.Int("depth", c.depth),
	)
	return session, nil
}

// GetSession retrieves a session by ID
func (c *Controller) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.storage.GetSession(ctx, id)
}

// ListSessions returns the IDs of all stored sessions
func (c *Controller) ListSessions(ctx context.Context) ([]model.SessionID, error) {
	return c.storage.ListSessions(ctx)
}

// DeleteSession discards a session
func (c *Controller) DeleteSession(ctx context.Context, id model.SessionID) error {
	return c.storage.DeleteSession(ctx, id)
}

// PlayTile records the incoming tile in the tile log and plays it out
func (c *Controller) PlayTile(ctx context.Context, id model.SessionID, tile model.Tile) (*TurnResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.IsOver() {
		return nil, model.ErrGameOver
	}

	record := model.TileRecord{Tile: tile, Score: session.Board.Score}
	if err := c.storage.AppendTileRecord(ctx, record); err != nil {
		return nil, err
	}

	result, err := PlayTurn(session.Board, tile, c.chooser, c.clock)
	if err != nil {
		c.logger.Error("turn failed",
			slog.String("session_id", string(id)),
			slog.String("tile", tile.Token()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	session.Board = result.Board
	session.Turns++
	session.Moves += len(result.Steps)
	session.Reason = result.Reason
	session.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	for _, step := range result.Steps {
		c.logger.Debug("move executed",
			slog.String("session_id", string(id)),
			slog.String("move", step.Move.String()),
			slog.Float64("value", step.Value),
			slog.Duration("elapsed", step.Elapsed),
		)
	}
	if result.GameOver {
		c.logger.Info("session over",
			slog.String("session_id", string(id)),
			slog.String("reason", string(result.Reason)),
			slog.Int("score", result.Board.Score),
			slog.Int("turns", session.Turns),
		)
	}

	return &result, nil
}

// PlaceBonus drops bonus cash on a cell of the session board
func (c *Controller) PlaceBonus(ctx context.Context, id model.SessionID, amount, pos int) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.IsOver() {
		return nil, model.ErrGameOver
	}

	next, err := c.boardService.PlaceBonus(session.Board, amount, pos)
	if err != nil {
		return nil, err
	}
	session.Board = next
	session.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
