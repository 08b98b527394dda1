package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// userKeyLen is the hex length of a storage namespace. 128 bits of the digest
// is plenty for per-user directories and keeps object keys short.
const userKeyLen = 32

// HashUserKey returns a filesystem-safe namespace for a user ID. Guest IDs
// contain a colon prefix, so raw IDs never appear in storage paths.
func HashUserKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:userKeyLen]
}
