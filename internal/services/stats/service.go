package stats

import (
	"context"
	"log/slog"
	"sort"

	"github.com/mcoot/banker/internal/model"
	"github.com/mcoot/banker/internal/storage"
)

// TokenFrequency is the observed share of one tile token within a bracket
type TokenFrequency struct {
	Token     string  `json:"token"`
	Count     int     `json:"count"`
	Frequency float64 `json:"frequency"`
}

// Bracket holds the tile frequencies seen at scores in [Index*100, Index*100+100)
type Bracket struct {
	Index  int              `json:"index"`
	Total  int              `json:"total"`
	Tokens []TokenFrequency `json:"tokens"`
}

// Row lays the bracket out in TileMenu order, for comparison with model.Distribution.
// Tokens outside the menu are left out.
func (b Bracket) Row() [model.TileTypes]float64 {
	var row [model.TileTypes]float64
	for i, t := range model.TileMenu {
		for _, tf := range b.Tokens {
			if tf.Token == t.Token() {
				row[i] = tf.Frequency
			}
		}
	}
	return row
}

// Service estimates tile probabilities from the tile log
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new stats Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger.With(slog.String("component", "stats-service")),
	}
}

// Estimate groups the tile log by score/100 and returns the frequency of each
// tile token per bracket, brackets in ascending order
func (s *Service) Estimate(ctx context.Context) ([]Bracket, error) {
	records, err := s.storage.GetTileRecords(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[int]map[string]int)
	for _, r := range records {
		idx := r.Score / 100
		if counts[idx] == nil {
			counts[idx] = make(map[string]int)
		}
		counts[idx][r.Tile.Token()]++
	}

	brackets := make([]Bracket, 0, len(counts))
	for idx, tokens := range counts {
		brackets = append(brackets, newBracket(idx, tokens))
	}
	sort.Slice(brackets, func(i, j int) bool { return brackets[i].Index < brackets[j].Index })

	s.logger.Debug("estimated tile probabilities",
		slog.Int("records", len(records)),
		slog.Int("brackets", len(brackets)),
	)
	return brackets, nil
}

func newBracket(idx int, tokens map[string]int) Bracket {
	b := Bracket{Index: idx}
	for _, n := range tokens {
		b.Total += n
	}
	for token, n := range tokens {
		b.Tokens = append(b.Tokens, TokenFrequency{
			Token:     token,
			Count:     n,
			Frequency: float64(n) / float64(b.Total),
		})
	}
	sort.Slice(b.Tokens, func(i, j int) bool {
		return menuOrder(b.Tokens[i].Token) < menuOrder(b.Tokens[j].Token) ||
			(menuOrder(b.Tokens[i].Token) == menuOrder(b.Tokens[j].Token) && b.Tokens[i].Token < b.Tokens[j].Token)
	})
	return b
}

// menuOrder ranks a token by its TileMenu position; unknown tokens sort last
func menuOrder(token string) int {
	for i, t := range model.TileMenu {
		if t.Token() == token {
			return i
		}
	}
	return model.TileTypes
}
