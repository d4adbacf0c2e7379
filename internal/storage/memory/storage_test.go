package memory

import (
	"context"
	"testing"
	"time"

	"github.com/mcoot/banker/internal/model"
	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func newSession(id string) *model.Session {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return &model.Session{
		ID:        model.SessionID(id),
		Board:     model.NewBoard(),
		Depth:     6,
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
	s.Equal(session, retrieved)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "missing")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSavedSessionIsDetached() {
	session := newSession("session-1")
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	session.Board.Cash = 99
	retrieved, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(model.StartingCash, retrieved.Board.Cash)

	retrieved.Turns = 5
	again, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Zero(again.Turns)
}

func (s *StorageSuite) TestDeleteSession() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, newSession("session-1")))
	s.Require().NoError(s.storage.DeleteSession(s.ctx, "session-1"))

	_, err := s.storage.GetSession(s.ctx, "session-1")
	s.ErrorIs(err, model.ErrSessionNotFound)
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
		{Tile: model.NewCompetitor(1), Score: 12},
		{Tile: model.NewLawsuit(true), Score: 30},
	}
	for _, r := range records {
		s.Require().NoError(s.storage.AppendTileRecord(s.ctx, r))
	}

	got, err := s.storage.GetTileRecords(s.ctx)
	s.Require().NoError(err)
	s.Equal(records, got)
}

func (s *StorageSuite) TestTileRecordsEmpty() {
	got, err := s.storage.GetTileRecords(s.ctx)
	s.Require().NoError(err)
	s.Empty(got)
}
