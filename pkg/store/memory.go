package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/gridpush/gridpush/pkg/board"
)

// MemoryStore is an in-memory board store for development and testing.
// It is safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	boards map[string]*board.Board
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{boards: make(map[string]*board.Board)}
}

// Get retrieves a board by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*board.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.boards[id]
	if !ok {
		return nil, ErrNotFound
	}
	return b.Clone(), nil
}

// Put stores a board.
func (s *MemoryStore) Put(ctx context.Context, b *board.Board) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.boards[b.ID] = b.Clone()
	return nil
}

// Delete removes a board.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.boards[id]; !ok {
		return ErrNotFound
	}
	delete(s.boards, id)
	return nil
}

// List returns all boards sorted by name, then ID.
func (s *MemoryStore) List(ctx context.Context) ([]*board.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*board.Board, 0, len(s.boards))
	for _, b := range s.boards {
		out = append(out, b.Clone())
	}
	sortBoards(out)
	return out, nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close() error { return nil }

// sortBoards orders boards by name, then ID for a stable tiebreak.
func sortBoards(boards []*board.Board) {
	slices.SortFunc(boards, func(a, b *board.Board) int {
		return cmp.Or(
			cmp.Compare(a.Name, b.Name),
			cmp.Compare(a.ID, b.ID),
		)
	})
}

var _ Store = (*MemoryStore)(nil)
