// Package hash implements the credential digest used by the user
// directory: a deterministic sha256 over the UTF-8 bytes of the input,
// hex encoded. The scheme is unsalted, so equal inputs always produce
// equal digests. A deployment that needs a slow, salted scheme can swap
// this package for bcrypt without touching callers.
package hash

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Text returns the hex-encoded sha256 digest of plain.
func Text(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether plain hashes to expected.
func Verify(plain, expected string) bool {
	actual := Text(plain)
	return subtle.ConstantTimeCompare([]byte(actual), []byte(expected)) == 1
}
