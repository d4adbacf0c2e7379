package storage

import (
	"context"

	"github.com/mcoot/banker/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
	ListSessions(ctx context.Context) ([]model.SessionID, error)

	// Tile log operations. The log is append-only and shared by all sessions.
	AppendTileRecord(ctx context.Context, record model.TileRecord) error
	GetTileRecords(ctx context.Context) ([]model.TileRecord, error)
}
