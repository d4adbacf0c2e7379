package tiles_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/banker/internal/dependencies/mocks"
	"github.com/mcoot/banker/internal/dependencies/random"
	"github.com/mcoot/banker/internal/model"
	"github.com/mcoot/banker/internal/services/tiles"
	"github.com/mcoot/banker/internal/testutil"
)

type SamplerSuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
	sampler    *tiles.Sampler
}

func TestSamplerSuite(t *testing.T) {
	suite.Run(t, new(SamplerSuite))
}

func (s *SamplerSuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
	s.sampler = tiles.NewSampler(s.mockRandom, testutil.NopLogger())
}

func (s *SamplerSuite) TestDrawWalksTheLowBracket() {
	// Row 0: 2=.428, 1=.373, comp0=.175, comp1=.024
	s.mockRandom.QueueFloat64(0, 0.4, 0.5, 0.8, 0.9, 0.99)

	s.Equal(model.NewTile(2), s.sampler.Draw(10))
	s.Equal(model.NewTile(2), s.sampler.Draw(10))
	s.Equal(model.NewTile(1), s.sampler.Draw(10))
	s.Equal(model.NewTile(1), s.sampler.Draw(10))
	s.Equal(model.NewCompetitor(0), s.sampler.Draw(10))
	s.Equal(model.NewCompetitor(1), s.sampler.Draw(10))
}

func (s *SamplerSuite) TestDrawUsesScoreBracket() {
	// Row 3 reaches the rare tiles at the tail of the menu
	s.mockRandom.QueueFloat64(0.983, 0.995)

	s.Equal(model.NewLawsuit(true), s.sampler.Draw(350))
	s.Equal(model.NewLawsuit(false), s.sampler.Draw(350))
}

func (s *SamplerSuite) TestDrawFallsBackOnOverrun() {
	// Row 2 only sums to .995
	logger, logs := testutil.CaptureLogger()
	sampler := tiles.NewSampler(s.mockRandom, logger)

	s.mockRandom.QueueFloat64(0.999)
	s.Equal(tiles.FallbackTile, sampler.Draw(250))
	s.Contains(logs.String(), `"level":"WARN"`)
	s.Contains(logs.String(), "tile sampling overran distribution row")
}

func (s *SamplerSuite) TestPickReportsOverrun() {
	_, ok := tiles.Pick(model.Distribution[2], 0.999)
	s.False(ok)

	tile, ok := tiles.Pick(model.Distribution[0], 0.5)
	s.True(ok)
	s.Equal(model.NewTile(1), tile)
}

func (s *SamplerSuite) TestDrawAlwaysReturnsMenuTile() {
	sampler := tiles.NewSampler(random.NewSeeded(7), testutil.NopLogger())
	menu := make(map[model.Tile]bool)
	for _, t := range model.TileMenu {
		menu[t] = true
	}
	for score := 0; score < 10000; score += 7 {
		tile := sampler.Draw(score)
		s.True(menu[tile], "score %d drew %v", score, tile)
	}
}
