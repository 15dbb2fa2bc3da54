package cache

// ScopedKeyer wraps a Keyer with a prefix, so that several deployments can
// share one Redis instance without reading each other's entries.
//
// Example usage:
//
//	k := NewScopedKeyer(NewDefaultKeyer(), "balustrade:v1:")
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

// SolveKey generates a prefixed key for solver results.
func (k *ScopedKeyer) SolveKey(span float64, thickness string) string {
	return k.prefix + k.inner.SolveKey(span, thickness)
}
