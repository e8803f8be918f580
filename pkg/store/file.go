package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gridpush/gridpush/pkg/board"
	"github.com/gridpush/gridpush/pkg/errors"
)

// FileStore is a file-based board store for CLI applications.
// Each board is stored as a JSON file named after its ID.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a new file-based board store.
// If baseDir is empty, defaults to the platform config directory, for
// example ~/.config/gridpush/boards on Linux.
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("get config dir: %w", err)
		}
		baseDir = filepath.Join(base, "gridpush", "boards")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create board dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// boardPath converts a board ID to its file path. IDs are validated before
// this is called, so the join cannot escape the base directory.
func (s *FileStore) boardPath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

// Get retrieves a board by ID.
func (s *FileStore) Get(ctx context.Context, id string) (*board.Board, error) {
	if err := errors.ValidateBoardID(id); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.boardPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read board file: %w", err)
	}

	b, err := board.UnmarshalBoard(data)
	if err != nil {
		return nil, fmt.Errorf("parse board %s: %w", id, err)
	}
	return b, nil
}

// Put stores a board.
func (s *FileStore) Put(ctx context.Context, b *board.Board) error {
	if err := errors.ValidateBoardID(b.ID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := board.MarshalBoard(b)
	if err != nil {
		return fmt.Errorf("marshal board %s: %w", b.ID, err)
	}
	if err := os.WriteFile(s.boardPath(b.ID), data, 0o644); err != nil {
		return fmt.Errorf("write board file: %w", err)
	}
	return nil
}

// Delete removes a board.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	if err := errors.ValidateBoardID(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.boardPath(id))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("remove board file: %w", err)
	}
	return nil
}

// List returns all boards sorted by name, then ID.
// Files that can't be parsed as boards are skipped.
func (s *FileStore) List(ctx context.Context) ([]*board.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read board dir: %w", err)
	}

	boards := make([]*board.Board, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		b, err := board.UnmarshalBoard(data)
		if err != nil {
			continue
		}
		boards = append(boards, b)
	}
	sortBoards(boards)
	return boards, nil
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

// Path returns the base directory for board files.
func (s *FileStore) Path() string {
	return s.baseDir
}

var _ Store = (*FileStore)(nil)
