package search

import (
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/mcoot/banker/internal/model"
)

// DefaultDepth is the lookahead used when none is configured. Each max node
// and each chance node consumes one level.
const DefaultDepth = 6

// competitorWeight rewards every cell not held by a competitor
const competitorWeight = 25

// Config controls an Engine
type Config struct {
	Depth     int
	CacheSize int // Chance node cache entries, 0 disables caching
}

// Stats counts the work done by an Engine since it was created or last reset
type Stats struct {
	MaxNodes    uint64 `json:"max_nodes"`
	ChanceNodes uint64 `json:"chance_nodes"`
	LeafNodes   uint64 `json:"leaf_nodes"`
	CacheHits   uint64 `json:"cache_hits"`
}

// Result is the outcome of a best move search
type Result struct {
	Move  model.Move
	Value float64
	Found bool // false when the board is terminal or nothing beats the zero baseline
}

type cacheKey struct {
	board model.Board
	depth int
}

// Engine runs expectiminimax over board snapshots. An Engine is not safe for
// concurrent use; parallel callers each need their own.
type Engine struct {
	depth  int
	cache  *lru.Cache[cacheKey, float64]
	stats  Stats
	logger *slog.Logger
}

// New creates a new Engine
func New(cfg Config, logger *slog.Logger) (*Engine, error) {
	depth := cfg.Depth
	if depth <= 0 {
		depth = DefaultDepth
	}
	e := &Engine{
		depth:  depth,
		logger: logger.With(slog.String("component", "search")),
	}
	if cfg.CacheSize > 0 {
		cache, err := lru.New[cacheKey, float64](cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating search cache: %w", err)
		}
		e.cache = cache
	}
	return e, nil
}

// Depth returns the configured lookahead
func (e *Engine) Depth() int {
	return e.depth
}

// Stats returns the counters accumulated so far
func (e *Engine) Stats() Stats {
	return e.stats
}

// ResetStats zeroes the counters; cached values are kept
func (e *Engine) ResetStats() {
	e.stats = Stats{}
}

// Heuristic is the static evaluation of a board
func Heuristic(b model.Board) float64 {
	return float64(b.Score + b.Cash + competitorWeight*(model.BoardSize-b.CompetitorCount()))
}

// Decide searches b for the best move with the incoming tile at the configured depth
func (e *Engine) Decide(b model.Board, incoming model.Tile) Result {
	res := e.BestMove(b, incoming, e.depth)
	e.logger.Debug("search complete",
		slog.String("tile", incoming.Token()),
		slog.Bool("found", res.Found),
		slog.String("move", res.Move.String()),
		slog.Float64("value", res.Value),
		slog.Uint64("max_nodes", e.stats.MaxNodes),
		slog.Uint64("leaf_nodes", e.stats.LeafNodes),
	)
	return res
}

// BestMove is the max node: it picks the legal move whose resulting position has
// the highest expected value. Ties keep the earliest move in enumeration order.
func (e *Engine) BestMove(b model.Board, incoming model.Tile, depth int) Result {
	e.stats.MaxNodes++
	if depth <= 0 || b.IsBankrupt() {
		e.stats.LeafNodes++
		return Result{Value: Heuristic(b)}
	}

	best := Result{}
	for _, m := range b.LegalMoves() {
		if skipCorner(m, incoming) {
			continue
		}
		value := e.Expectiminimax(b.Apply(m, incoming), depth-1)
		if value > best.Value {
			best = Result{Move: m, Value: value, Found: true}
		}
	}

	if !best.Found {
		e.stats.LeafNodes++
		return Result{Value: Heuristic(b)}
	}
	return best
}

// Expectiminimax is the chance node: the probability weighted value of b over
// every tile that could be drawn next
func (e *Engine) Expectiminimax(b model.Board, depth int) float64 {
	e.stats.ChanceNodes++
	if depth <= 0 || b.IsBankrupt() {
		e.stats.LeafNodes++
		return Heuristic(b)
	}

	key := cacheKey{board: b, depth: depth}
	if e.cache != nil {
		if v, ok := e.cache.Get(key); ok {
			e.stats.CacheHits++
			return v
		}
	}

	total := 0.0
	for i, p := range model.Probabilities(b.Score) {
		if p == 0 {
			continue
		}
		total += p * e.BestMove(b, model.TileMenu[i], depth-1).Value
	}

	if e.cache != nil {
		e.cache.Add(key, total)
	}
	return total
}

// skipCorner keeps hostile tiles out of the corners: a corner source would be
// refilled by the incoming tile
func skipCorner(m model.Move, incoming model.Tile) bool {
	return model.IsCorner(m.Source) && incoming.IsHostile()
}
