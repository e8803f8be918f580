package board

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gridpush/gridpush/pkg/grid"
)

// =============================================================================
// Board Serialization API
// =============================================================================

// MarshalBoard converts a board to indented JSON bytes.
func MarshalBoard(b *Board) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeBoardTo(b, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBoard decodes JSON bytes into a board, rejecting empty and
// duplicate component IDs.
func UnmarshalBoard(data []byte) (*Board, error) {
	return readBoardFrom(bytes.NewReader(data))
}

// WriteBoardFile writes a board to a JSON file.
// The file is created with 0644 permissions.
func WriteBoardFile(b *Board, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeBoardTo(b, f)
}

// WriteBoard writes a board as JSON to an io.Writer.
// Use MarshalBoard for in-memory serialization or WriteBoardFile for files.
func WriteBoard(b *Board, w io.Writer) error {
	return writeBoardTo(b, w)
}

// ReadBoardFile reads a JSON file and returns the decoded board.
func ReadBoardFile(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readBoardFrom(f)
}

// ReadBoard decodes a JSON board from an io.Reader.
// Use ReadBoardFile for files or pass bytes.NewReader for in-memory data.
func ReadBoard(r io.Reader) (*Board, error) {
	return readBoardFrom(r)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeBoardTo(b *Board, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readBoardFrom(r io.Reader) (*Board, error) {
	var b Board
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := CheckComponents(b.Components); err != nil {
		return nil, err
	}
	return &b, nil
}

// CheckComponents verifies the identity rules every stored layout must hold:
// component IDs are non-empty and unique. Geometry is the validator's job,
// not the codec's.
func CheckComponents(list []grid.Component) error {
	seen := make(map[string]struct{}, len(list))
	for i, c := range list {
		if c.ID == "" {
			return fmt.Errorf("component %d: %w", i, grid.ErrInvalidComponentID)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("component %q: %w", c.ID, grid.ErrDuplicateComponentID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}
