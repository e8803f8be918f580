package ops

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Operation Serialization API
// =============================================================================

// MarshalOps converts an operation batch to indented JSON bytes.
func MarshalOps(batch []Op) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeOpsTo(batch, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalOps decodes JSON bytes into an operation batch, validating each
// envelope.
func UnmarshalOps(data []byte) ([]Op, error) {
	return readOpsFrom(bytes.NewReader(data))
}

// WriteOpsFile writes an operation batch to a JSON file.
// The file is created with 0644 permissions.
func WriteOpsFile(batch []Op, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeOpsTo(batch, f)
}

// ReadOpsFile reads a JSON file and returns the decoded operation batch.
func ReadOpsFile(path string) ([]Op, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readOpsFrom(f)
}

// ReadOps decodes a JSON operation batch from an io.Reader.
// Use ReadOpsFile for files or pass bytes.NewReader for in-memory data.
func ReadOps(r io.Reader) ([]Op, error) {
	return readOpsFrom(r)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeOpsTo(batch []Op, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(batch); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readOpsFrom(r io.Reader) ([]Op, error) {
	var batch []Op
	if err := json.NewDecoder(r).Decode(&batch); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	for i, op := range batch {
		if err := op.Validate(); err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
	}
	return batch, nil
}
