package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/banker/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.SessionTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func newSession(id string) *model.Session {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	board := model.NewBoard()
	board, _ = board.WithTile(0, model.NewCompetitor(2))
	board, _ = board.WithTile(6, model.NewLawsuit(true))
	board, _ = board.WithBonus(3, 4)
	return &model.Session{
		ID:        model.SessionID(id),
		Board:     board,
		Depth:     6,
		Turns:     3,
		Moves:     4,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	session := newSession("session-1")
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	retrieved, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(session.Board, retrieved.Board)
	s.Equal(session.Turns, retrieved.Turns)
	s.Equal(session.Moves, retrieved.Moves)
	s.True(session.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *StorageSuite) TestSessionKeyAndTTL() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, newSession("session-1")))

	s.True(s.mini.Exists("banker:session:session-1"))
	s.Equal(time.Hour, s.mini.TTL("banker:session:session-1"))
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "missing")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSessionExpires() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, newSession("session-1")))
	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetSession(s.ctx, "session-1")
	s.ErrorIs(err, model.ErrSessionNotFound)

	ids, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Empty(ids)
}

func (s *StorageSuite) TestDeleteSession() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, newSession("session-1")))
	s.Require().NoError(s.storage.DeleteSession(s.ctx, "session-1"))

	_, err := s.storage.GetSession(s.ctx, "session-1")
	s.ErrorIs(err, model.ErrSessionNotFound)

	ids, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Empty(ids)
}

func (s *StorageSuite) TestListSessions() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, newSession("b")))
	s.Require().NoError(s.storage.SaveSession(s.ctx, newSession("a")))

	ids, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.SessionID{"a", "b"}, ids)
}

// Tile log tests

func (s *StorageSuite) TestTileRecordsKeepOrder() {
	records := []model.TileRecord{
		{Tile: model.NewTile(2), Score: 10},
		{Tile: model.NewCompetitor(0), Score: 12},
		{Tile: model.NewNonProfit(3), Score: 340},
		{Tile: model.NewLawsuit(false), Score: 351},
	}
	for _, r := range records {
		s.Require().NoError(s.storage.AppendTileRecord(s.ctx, r))
	}

	got, err := s.storage.GetTileRecords(s.ctx)
	s.Require().NoError(err)
	s.Equal(records, got)

	lines, err := s.mini.List("banker:tiles")
	s.Require().NoError(err)
	s.Equal([]string{"2 10", "0 12", ".3 340", "!- 351"}, lines)
}

func (s *StorageSuite) TestTileRecordsSkipInvalid() {
	_, err := s.mini.Push("banker:tiles", "2 10", "garbage", "1 11")
	s.Require().NoError(err)

	got, err := s.storage.GetTileRecords(s.ctx)
	s.Require().NoError(err)
	s.Len(got, 2)
}
