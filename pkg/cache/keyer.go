package cache

import (
	"strconv"
	"strings"
)

// Keyer builds cache keys for solver results.
type Keyer interface {
	// SolveKey returns the key for a solve of span with the given thickness text.
	SolveKey(span float64, thickness string) string
}

// DefaultKeyer builds unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// SolveKey hashes the span and the trimmed thickness text. The span is
// written with full precision so 42 and 42.0 share an entry.
func (DefaultKeyer) SolveKey(span float64, thickness string) string {
	return hashKey("solve", strconv.FormatFloat(span, 'g', -1, 64), strings.TrimSpace(thickness))
}

var _ Keyer = DefaultKeyer{}
