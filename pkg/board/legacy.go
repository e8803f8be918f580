package board

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gridpush/gridpush/pkg/grid"
)

// =============================================================================
// Legacy Row Format
// =============================================================================

// LegacyComponent is one entry of the pre-grid dashboard format: identity
// only, no geometry. Position came implicitly from the row structure.
type LegacyComponent struct {
	ComponentID   string `json:"componentId"`
	ComponentType string `json:"componentType"`
}

// ParseLegacyRows decodes the legacy JSON document: an array of rows, each an
// array of components.
func ParseLegacyRows(r io.Reader) ([][]LegacyComponent, error) {
	var rows [][]LegacyComponent
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode legacy rows: %w", err)
	}
	return rows, nil
}

// ReadLegacyFile reads a legacy row document from a JSON file.
func ReadLegacyFile(path string) ([][]LegacyComponent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ParseLegacyRows(f)
}

// FromLegacyRows converts legacy rows onto a columns-wide grid. Row i becomes
// grid row y=i with height 1. A row's n components split the width left to
// right: each gets columns/n cells, and the remainder columns go one each to
// the leading components. Empty rows stay empty but still occupy their y.
//
// The conversion is arithmetic only and performs no legality checks; a row
// with more components than columns produces zero-width components. Run
// [grid.Engine.Validate] on the result.
func FromLegacyRows(rows [][]LegacyComponent, columns int) []grid.Component {
	var out []grid.Component
	for y, row := range rows {
		n := len(row)
		if n == 0 {
			continue
		}
		base := columns / n
		rem := columns % n
		x := 0
		for i, lc := range row {
			w := base
			if i < rem {
				w++
			}
			out = append(out, grid.Component{
				ID:     lc.ComponentID,
				Type:   lc.ComponentType,
				X:      x,
				Y:      y,
				Width:  w,
				Height: 1,
			})
			x += w
		}
	}
	return out
}
