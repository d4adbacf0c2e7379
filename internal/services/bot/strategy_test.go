package bot

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/banker/internal/dependencies/mocks"
	"github.com/mcoot/banker/internal/model"
	"github.com/mcoot/banker/internal/services/search"
	"github.com/mcoot/banker/internal/testutil"
)

type StrategySuite struct {
	suite.Suite
	random *mocks.MockRandom
	board  model.Board
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(StrategySuite))
}

func (s *StrategySuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.board = model.NewBoard()
}

func (s *StrategySuite) TestNewStrategy() {
	for _, name := range model.ValidBotStrategies() {
		strategy, err := NewStrategy(name, s.random, search.Config{Depth: 2}, testutil.NopLogger())
		s.Require().NoError(err)
		s.Equal(name, strategy.Name())
	}

	_, err := NewStrategy("greedy", s.random, search.Config{}, testutil.NopLogger())
	s.ErrorIs(err, model.ErrUnknownStrategy)
}

func (s *StrategySuite) TestRandomStrategyPicksQueuedIndex() {
	strategy := NewRandomStrategy(s.random)
	s.random.QueueIntn(2)

	m, _, ok := strategy.ChooseMove(s.board, model.NewTile(1))
	s.Require().True(ok)
	// Legal moves from the start board: 12->7, 12->11, 12->13, 12->17
	s.Equal(model.Move{Source: 12, Dest: 13, Distance: 1}, m)
}

func (s *StrategySuite) TestRandomStrategyNoMoves() {
	strategy := NewRandomStrategy(s.random)
	s.board.Cells[model.CenterCell] = model.EmptyTile

	_, _, ok := strategy.ChooseMove(s.board, model.NewTile(1))
	s.False(ok)
}

func (s *StrategySuite) TestExpectimaxStrategyFuses() {
	engine, err := search.New(search.Config{Depth: 2}, testutil.NopLogger())
	s.Require().NoError(err)
	strategy := NewExpectimaxStrategy(engine)
	s.board.Cells[13] = model.NewTile(1)

	m, value, ok := strategy.ChooseMove(s.board, model.NewTile(2))
	s.Require().True(ok)
	s.True(s.board.At(m.Dest) == s.board.At(m.Source), "expected a fusion, got %s", m)
	s.Positive(value)
	s.Positive(strategy.Engine().Stats().MaxNodes)
}
