package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/mcoot/banker/internal/model"
	"github.com/mcoot/banker/internal/storage"
	"github.com/mcoot/banker/internal/storage/memory"
)

// Storage keeps sessions in memory and appends the tile log to a flat text
// file, one "<token> <score>" line per tile
type Storage struct {
	*memory.Storage

	mu   sync.Mutex
	path string
}

// New creates a file backed storage writing the tile log to path. The file is
// created on first append.
func New(path string) *Storage {
	return &Storage{
		Storage: memory.New(),
		path:    path,
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Path returns the tile log location
func (s *Storage) Path() string {
	return s.path
}

func (s *Storage) AppendTileRecord(ctx context.Context, record model.TileRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening tile log: %w", err)
	}
	if _, err := fmt.Fprintln(f, record.String()); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing tile log: %w", err)
	}
	return f.Close()
}

// GetTileRecords reads the whole log. Lines that do not parse, such as bonus
// commands written by hand, are skipped.
func (s *Storage) GetTileRecords(ctx context.Context) ([]model.TileRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []model.TileRecord{}, nil
		}
		return nil, fmt.Errorf("opening tile log: %w", err)
	}
	defer f.Close()

	records := []model.TileRecord{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		record, err := model.ParseTileRecord(scanner.Text())
		if err != nil {
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading tile log: %w", err)
	}
	return records, nil
}
