package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// hashKey returns "kind:<sha256 of parts>". Parts are NUL-separated so that
// ("1", "23") and ("12", "3") never collide.
func hashKey(kind string, parts ...string) string {
	return kind + ":" + Hash([]byte(strings.Join(parts, "\x00")))
}

// Hash returns the hex SHA-256 of data (64 characters). File cache paths
// are sharded on its first two characters.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
