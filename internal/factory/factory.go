package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/banker/internal/dependencies/clock"
	"github.com/mcoot/banker/internal/dependencies/random"
	"github.com/mcoot/banker/internal/services/board"
	"github.com/mcoot/banker/internal/services/bot"
	"github.com/mcoot/banker/internal/services/game"
	"github.com/mcoot/banker/internal/services/play"
	"github.com/mcoot/banker/internal/services/search"
	"github.com/mcoot/banker/internal/services/stats"
	"github.com/mcoot/banker/internal/services/tiles"
	"github.com/mcoot/banker/internal/storage"
	filestorage "github.com/mcoot/banker/internal/storage/file"
	"github.com/mcoot/banker/internal/storage/memory"
	redisstorage "github.com/mcoot/banker/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeFile   = "file"
	StorageTypeRedis  = "redis"
)

// DefaultTileLogPath is where the file backend appends the tile log
const DefaultTileLogPath = "tiles.txt"

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	BoardService   *board.Service
	Sampler        *tiles.Sampler
	Strategy       *bot.ExpectimaxStrategy
	GameController *game.Controller
	BotService     *bot.Service
	StatsService   *stats.Service
	PlayService    *play.Service
}

// Engine returns the search engine behind the session controller
func (a *App) Engine() *search.Engine {
	return a.Strategy.Engine()
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "file" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// TileLogPath is the tile log for the file backend
	// If empty, defaults to DefaultTileLogPath
	TileLogPath string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Search configures the session search engine
	Search search.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeFile:
		path := cfg.TileLogPath
		if path == "" {
			path = DefaultTileLogPath
		}
		store = filestorage.New(path)
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'file' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, cfg.Search, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, searchCfg search.Config, logger *slog.Logger) (*App, error) {
	engine, err := search.New(searchCfg, logger)
	if err != nil {
		return nil, err
	}

	// Create services
	boardService := board.New(logger)
	sampler := tiles.NewSampler(rnd, logger)
	strategy := bot.NewExpectimaxStrategy(engine)
	gameController := game.NewController(store, boardService, strategy, engine.Depth(), clk, logger)
	botService := bot.NewService(store, clk, logger)
	statsService := stats.New(store, logger)
	playService := play.New(store, boardService, sampler, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		BoardService:   boardService,
		Sampler:        sampler,
		Strategy:       strategy,
		GameController: gameController,
		BotService:     botService,
		StatsService:   statsService,
		PlayService:    playService,
	}, nil
}

// Close releases storage connections held by the app
func (a *App) Close() error {
	if c, ok := a.Storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
