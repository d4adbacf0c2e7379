package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/banker/internal/model"
	"github.com/mcoot/banker/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	sessions map[model.SessionID]*model.Session
	tiles    []model.TileRecord
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		sessions: make(map[model.SessionID]*model.Session),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Session holds only values, so a shallow copy detaches it from the caller
	stored := *session
	s.sessions[session.ID] = &stored
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	out := *session
	return &out, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *Storage) ListSessions(ctx context.Context) ([]model.SessionID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]model.SessionID, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// Tile log operations

func (s *Storage) AppendTileRecord(ctx context.Context, record model.TileRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tiles = append(s.tiles, record)
	return nil
}

func (s *Storage) GetTileRecords(ctx context.Context) ([]model.TileRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.TileRecord, len(s.tiles))
	copy(out, s.tiles)
	return out, nil
}
