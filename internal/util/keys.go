package util

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// UniqSorted returns a sorted copy of keys with duplicates removed.
func UniqSorted(keys []string) []string {
	s := make([]string, len(keys))
	copy(s, keys)
	sort.Strings(s)
	out := s[:0]
	for i, k := range s {
		if i > 0 && k == s[i-1] {
			continue
		}
		out = append(out, k)
	}
	return out
}

// BulkKey returns prefix + ":" + the first 16 hex chars of a SHA-256 over the
// comma-joined members. Callers pass members through UniqSorted first.
func BulkKey(prefix string, sortedKeys []string) string {
	sum := sha256.Sum256([]byte(strings.Join(sortedKeys, ",")))
	return prefix + ":" + hex.EncodeToString(sum[:8])
}
