package bot

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mcoot/banker/internal/dependencies/clock"
	"github.com/mcoot/banker/internal/dependencies/random"
	"github.com/mcoot/banker/internal/model"
	"github.com/mcoot/banker/internal/services/game"
	"github.com/mcoot/banker/internal/services/search"
	"github.com/mcoot/banker/internal/services/tiles"
	"github.com/mcoot/banker/internal/storage"
)

const (
	// DefaultMaxTurns caps a rollout game that never goes bankrupt
	DefaultMaxTurns = 2000
	// progressEvery is how many finished games pass between progress log lines
	progressEvery = 10
)

// RolloutConfig describes a batch of self-play games
type RolloutConfig struct {
	Games    int
	Workers  int // Games played concurrently, 0 means one per game
	MaxTurns int
	Strategy string
	Search   search.Config
	// Seed makes tile draws and random strategies reproducible. Game i uses
	// Seed+i. Zero draws from crypto/rand.
	Seed uint64
	// RecordTiles appends every drawn tile to the tile log
	RecordTiles bool
}

// GameResult is the outcome of one rollout game
type GameResult struct {
	Index   int                  `json:"index"`
	Score   int                  `json:"score"`
	Cash    int                  `json:"cash"`
	Turns   int                  `json:"turns"`
	Moves   int                  `json:"moves"`
	Reason  model.GameOverReason `json:"reason,omitempty"`
	Elapsed time.Duration        `json:"elapsed"`
	Board   model.Board          `json:"board"`
}

// Summary aggregates a rollout batch
type Summary struct {
	Strategy     string        `json:"strategy"`
	Results      []GameResult  `json:"results"`
	AverageScore float64       `json:"average_score"`
	MaxScore     int           `json:"max_score"`
	Elapsed      time.Duration `json:"elapsed"`
}

// Service plays the game against itself with sampled tiles
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// NewService creates a new bot Service
func NewService(store storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		clock:   clk,
		logger:  logger.With(slog.String("component", "bot-service")),
	}
}

// Rollout plays cfg.Games independent games. Games run in parallel, each with
// its own strategy and sampler; a single game is always sequential.
func (s *Service) Rollout(ctx context.Context, cfg RolloutConfig) (*Summary, error) {
	if cfg.Games <= 0 {
		cfg.Games = 1
	}
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = DefaultMaxTurns
	}
	if cfg.Strategy == "" {
		cfg.Strategy = model.BotStrategyExpectimax
	}
	strategy, err := model.ParseBotStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	cfg.Strategy = strategy

	// Fail fast on a bad search config before any goroutine starts
	if _, err := NewStrategy(cfg.Strategy, random.New(), cfg.Search, s.logger); err != nil {
		return nil, err
	}

	s.logger.Info("rollout started",
		slog.Int("games", cfg.Games),
		slog.String("strategy", cfg.Strategy),
		slog.Int("depth", cfg.Search.Depth),
		slog.Uint64("seed", cfg.Seed),
	)

	watch := clock.StartStopwatch(s.clock)
	results := make([]GameResult, cfg.Games)
	var finished atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	for i := 0; i < cfg.Games; i++ {
		g.Go(func() error {
			res, err := s.playGame(ctx, i, cfg)
			if err != nil {
				return err
			}
			results[i] = res
			if n := finished.Add(1); n%progressEvery == 0 {
				s.logger.Info("rollout progress", slog.Int64("finished", n), slog.Int("games", cfg.Games))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &Summary{
		Strategy: cfg.Strategy,
		Results:  results,
		Elapsed:  watch.Elapsed(),
	}
	total := 0
	for _, r := range results {
		total += r.Score
		if r.Score > summary.MaxScore {
			summary.MaxScore = r.Score
		}
	}
	summary.AverageScore = float64(total) / float64(len(results))

	s.logger.Info("rollout complete",
		slog.Int("games", cfg.Games),
		slog.Float64("average_score", summary.AverageScore),
		slog.Int("max_score", summary.MaxScore),
		slog.Duration("elapsed", summary.Elapsed),
	)
	return summary, nil
}

func (s *Service) playGame(ctx context.Context, index int, cfg RolloutConfig) (GameResult, error) {
	var rnd random.Random = random.New()
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed + uint64(index))
	}

	logger := s.logger.With(slog.Int("game", index))
	strategy, err := NewStrategy(cfg.Strategy, rnd, cfg.Search, logger)
	if err != nil {
		return GameResult{}, err
	}
	sampler := tiles.NewSampler(rnd, logger)

	watch := clock.StartStopwatch(s.clock)
	b := model.NewBoard()
	result := GameResult{Index: index}

	for result.Turns < cfg.MaxTurns {
		if err := ctx.Err(); err != nil {
			return GameResult{}, err
		}

		tile := sampler.Draw(b.Score)
		if cfg.RecordTiles {
			record := model.TileRecord{Tile: tile, Score: b.Score}
			if err := s.storage.AppendTileRecord(ctx, record); err != nil {
				return GameResult{}, err
			}
		}

		turn, err := game.PlayTurn(b, tile, strategy, s.clock)
		if err != nil {
			return GameResult{}, err
		}
		b = turn.Board
		result.Turns++
		result.Moves += len(turn.Steps)
		if turn.GameOver {
			result.Reason = turn.Reason
			break
		}
	}

	result.Score = b.Score
	result.Cash = b.Cash
	result.Board = b
	result.Elapsed = watch.Elapsed()

	logger.Debug("rollout game finished",
		slog.Int("score", result.Score),
		slog.Int("turns", result.Turns),
		slog.String("reason", string(result.Reason)),
	)
	return result, nil
}
