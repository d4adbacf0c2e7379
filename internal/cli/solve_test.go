package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/banker/internal/factory"
	"github.com/mcoot/banker/internal/model"
)

type SolveSuite struct {
	suite.Suite
	app    *factory.TestApp
	out    *bytes.Buffer
	errOut *bytes.Buffer
	ctx    context.Context
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

func (s *SolveSuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.out = &bytes.Buffer{}
	s.errOut = &bytes.Buffer{}
	s.ctx = context.Background()
}

func (s *SolveSuite) solve(input string, id model.SessionID, showStats bool) error {
	output := newOutputTo("text", s.out, s.errOut, true)
	return runSolve(s.ctx, s.app.App, strings.NewReader(input), output, id, showStats)
}

func (s *SolveSuite) onlySession() *model.Session {
	ids, err := s.app.GameController.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(ids, 1)
	session, err := s.app.GameController.GetSession(s.ctx, ids[0])
	s.Require().NoError(err)
	return session
}

func (s *SolveSuite) TestPlaysIncomingTile() {
	s.Require().NoError(s.solve("1\nq\n", "", false))

	s.Contains(s.errOut.String(), "session ")
	s.Contains(s.out.String(), "Move 12->")
	s.Contains(s.out.String(), "(walk)")

	session := s.onlySession()
	s.Equal(1, session.Turns)

	records, err := s.app.Storage.GetTileRecords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.TileRecord{{Tile: model.NewTile(1), Score: model.StartingScore}}, records)
}

func (s *SolveSuite) TestPrintsBoardAndTimers() {
	s.Require().NoError(s.solve("p\nd ct\n", "", false))

	output := s.out.String()
	s.Contains(output, "   0   0   1   0   0\n")
	s.Contains(output, "Score: 10  Cash: 10\n")
	s.Contains(output, "   .   .   .   .   .\n")
}

func (s *SolveSuite) TestBonusCommand() {
	s.Require().NoError(s.solve("$ 25 3\np\n", "", false))

	s.Equal(25, s.onlySession().Board.Bonus[3])
	s.Contains(s.out.String(), "$0")
}

func (s *SolveSuite) TestBadLinesAreReportedAndSkipped() {
	s.Require().NoError(s.solve("banana\n$ 5 99\n1\n", "", false))

	s.Equal(2, strings.Count(s.errOut.String(), "Error: invalid command"))
	s.Equal(1, s.onlySession().Turns)
}

func (s *SolveSuite) TestQuitStopsReading() {
	s.Require().NoError(s.solve("q\n1\n", "", false))
	s.Zero(s.onlySession().Turns)
}

func (s *SolveSuite) TestShowsSearchStats() {
	s.Require().NoError(s.solve("1\n", "", true))
	s.Contains(s.out.String(), "Nodes: ")
}

func (s *SolveSuite) TestResumesSession() {
	session, err := s.app.GameController.NewSession(s.ctx)
	s.Require().NoError(err)

	s.Require().NoError(s.solve("1\n", session.ID, false))

	resumed, err := s.app.GameController.GetSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(1, resumed.Turns)
}

func (s *SolveSuite) TestUnknownSession() {
	err := s.solve("1\n", "missing", false)
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *SolveSuite) TestStopsAtGameOver() {
	session, err := s.app.GameController.NewSession(s.ctx)
	s.Require().NoError(err)
	session.Board.Cash = -1
	s.Require().NoError(s.app.Storage.SaveSession(s.ctx, session))

	s.Require().NoError(s.solve("1\n1\n", session.ID, false))

	s.Contains(s.out.String(), "Game over: bankrupt")
	resumed, err := s.app.GameController.GetSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(1, resumed.Turns)
}
