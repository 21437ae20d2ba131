// Package contenthash computes the stable content digest used to join the
// application's message catalogs with the externally supplied translation
// source. The external source is keyed by the hash of the original message
// text, not by the application's identifiers, so this digest is the only
// join key between the two data sets and must never vary across runs.
package contenthash

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Sum returns the hex-encoded sha256 digest of s after whitespace
// normalization. All whitespace runs (including newlines) collapse to a
// single space and leading/trailing whitespace is trimmed, so formatting
// differences between the application's string literals and the original
// strings in the translation catalog never cause a spurious mismatch.
func Sum(s string) string {
	digest := sha256.Sum256([]byte(Normalize(s)))
	return hex.EncodeToString(digest[:])
}

// Normalize collapses whitespace runs to single spaces and trims the ends.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
