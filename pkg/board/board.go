package board

import (
	"time"

	"github.com/google/uuid"

	"github.com/gridpush/gridpush/pkg/grid"
)

// =============================================================================
// Board - Persisted Dashboard Document
// =============================================================================

// Board is one dashboard: a named grid of components plus the grid dimensions
// it was laid out for. JSON field names follow the frontend interchange
// (camelCase); BSON names follow the storage convention (snake_case).
type Board struct {
	ID   string `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`

	// Grid dimensions. Zero values fall back to the engine defaults, so old
	// documents without them keep working.
	Columns            int `json:"columns,omitempty" bson:"columns,omitempty"`
	MaxComponentHeight int `json:"maxComponentHeight,omitempty" bson:"max_component_height,omitempty"`

	Components []grid.Component `json:"components" bson:"components"`

	CreatedAt time.Time `json:"createdAt,omitempty" bson:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" bson:"updated_at,omitempty"`
}

// New creates an empty board with a generated UUID and creation timestamps.
func New(name string) *Board {
	now := time.Now().UTC()
	return &Board{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Config returns the engine configuration for this board's grid.
func (b *Board) Config() grid.Config {
	return grid.Config{Columns: b.Columns, MaxComponentHeight: b.MaxComponentHeight}
}

// Clone returns a deep copy. Stores hand clones out so callers can mutate
// freely without racing each other.
func (b *Board) Clone() *Board {
	out := *b
	out.Components = append([]grid.Component(nil), b.Components...)
	return &out
}

// Touch updates the modification timestamp.
func (b *Board) Touch() {
	b.UpdatedAt = time.Now().UTC()
}
