package cache

// Keyer generates cache keys for the two cached value types.
// Implementations must be deterministic: the same inputs always produce the
// same key.
type Keyer interface {
	// BoardKey generates a key for a cached board document.
	BoardKey(boardID string) string

	// RenderKey generates a key for a rendered artifact. boardHash is a
	// content hash of the board so edits invalidate the entry implicitly.
	RenderKey(boardHash string, opts RenderKeyOpts) string
}

// RenderKeyOpts carries the render parameters that affect artifact bytes.
// Any option that changes the output must appear here, otherwise two
// different renders would share one cache entry.
type RenderKeyOpts struct {
	Format   string `json:"format"`
	CellSize int    `json:"cell_size"`
	MinRows  int    `json:"min_rows"`
	ShowGrid bool   `json:"show_grid"`
}

// DefaultKeyer is the standard Keyer implementation.
// Board keys stay human-readable for debugging against a live backend;
// render keys are hashed because the options struct doesn't fit in a flat
// string.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// BoardKey generates a key for a cached board document.
func (k *DefaultKeyer) BoardKey(boardID string) string {
	return "board:" + boardID
}

// RenderKey generates a key for a rendered artifact.
func (k *DefaultKeyer) RenderKey(boardHash string, opts RenderKeyOpts) string {
	return hashKey("render", boardHash, opts)
}
