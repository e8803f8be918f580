// Package store persists board documents.
//
// This package defines the storage interface for boards, with
// implementations for different backends:
//   - memory: In-memory storage for development/testing
//   - file: File-based storage for CLI applications
//   - mongo: MongoDB-backed storage for server deployments
//
// All implementations share value semantics with the rest of the system:
// boards returned by Get are private copies, and boards passed to Put are
// copied before they are retained. Mutating a board after a store call
// never changes what the store holds.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/gridpush/gridpush/pkg/board"
)

// ErrNotFound is returned when a board does not exist.
var ErrNotFound = errors.New("board not found")

// Store is the interface for board storage backends.
type Store interface {
	// Get retrieves a board by ID.
	// Returns ErrNotFound if the board doesn't exist.
	Get(ctx context.Context, id string) (*board.Board, error)

	// Put stores a board, overwriting any existing board with the same ID.
	Put(ctx context.Context, b *board.Board) error

	// Delete removes a board.
	// Returns ErrNotFound if the board doesn't exist.
	Delete(ctx context.Context, id string) error

	// List returns all boards sorted by name, then ID.
	List(ctx context.Context) ([]*board.Board, error)

	// Close releases any resources held by the backend.
	Close() error
}

// Backend names accepted by [Open].
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendMongo  = "mongo"
)

// Options selects and configures a storage backend.
type Options struct {
	// Backend is one of "memory", "file", or "mongo". Empty means "memory".
	Backend string

	// Dir is the board directory for the file backend.
	Dir string

	// URI is the connection string for the mongo backend, e.g.
	// mongodb://localhost:27017.
	URI string

	// Database is the database name for the mongo backend.
	Database string
}

// Open creates the storage backend selected by opts.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile:
		s, err := NewFileStore(opts.Dir)
		if err != nil {
			return nil, fmt.Errorf("open file store: %w", err)
		}
		return s, nil
	case BackendMongo:
		s, err := NewMongoStore(ctx, opts.URI, opts.Database)
		if err != nil {
			return nil, fmt.Errorf("open mongo store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
}
