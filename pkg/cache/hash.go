package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Hash returns the SHA-256 of data as a 64-character hex string. Board
// documents are hashed with it to key render artifacts and to build ETags,
// so two byte-identical boards always share cache entries.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey builds a cache key of the form prefix:hash(parts). The parts are
// JSON-marshaled first, which gives option structs a stable key without
// hand-writing a canonical encoding per type.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return fmt.Sprintf("%s:%s", prefix, Hash(data))
}
