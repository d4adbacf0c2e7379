package tiles

import (
	"log/slog"

	"github.com/mcoot/banker/internal/dependencies/random"
	"github.com/mcoot/banker/internal/model"
)

// FallbackTile is drawn when rounding walks the cursor past the end of a
// distribution row
var FallbackTile = model.NewTile(1)

// Sampler draws incoming tiles from the score bracketed distribution
type Sampler struct {
	random random.Random
	logger *slog.Logger
}

// NewSampler creates a new Sampler
func NewSampler(rnd random.Random, logger *slog.Logger) *Sampler {
	return &Sampler{
		random: rnd,
		logger: logger.With(slog.String("component", "tile-sampler")),
	}
}

// Draw picks a tile for the given score
func (s *Sampler) Draw(score int) model.Tile {
	tile, ok := Pick(model.Probabilities(score), s.random.Float64())
	if !ok {
		s.logger.Warn("tile sampling overran distribution row",
			slog.Int("score", score),
			slog.Int("row", model.DistributionRow(score)),
			slog.String("fallback", FallbackTile.Token()),
		)
	}
	return tile
}

// Pick walks the menu subtracting weights from p until it goes non-positive.
// ok is false when the row is exhausted first and FallbackTile is returned.
func Pick(row [model.TileTypes]float64, p float64) (tile model.Tile, ok bool) {
	for i, weight := range row {
		if weight <= 0 {
			continue
		}
		p -= weight
		if p <= 0 {
			return model.TileMenu[i], true
		}
	}
	return FallbackTile, false
}
