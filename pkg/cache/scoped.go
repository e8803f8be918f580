package cache

// ScopedKeyer wraps a Keyer with a prefix so several deployments can share
// one cache backend without key collisions. This matters for the redis
// backend, where staging and production may point at the same instance.
//
// Example usage:
//
//	// Keys for the staging deployment
//	stagingKeyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
//
//	// Unprefixed keys
//	keyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// BoardKey generates a prefixed key for a cached board document.
func (k *ScopedKeyer) BoardKey(boardID string) string {
	return k.prefix + k.inner.BoardKey(boardID)
}

// RenderKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) RenderKey(boardHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(boardHash, opts)
}
