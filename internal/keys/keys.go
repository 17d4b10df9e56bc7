package keys

import "strings"

// CardKey produces the canonical lookup key for a catalog name: trimmed,
// lower-cased, inner whitespace collapsed to single underscores. Dataset
// indexes and every name-based lookup go through this function so "Iron
// Sword", "iron sword" and " IRON  SWORD " resolve to the same entry.
func CardKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "_"))
}

// SameCard reports whether two names refer to the same catalog entry.
func SameCard(a, b string) bool {
	k := CardKey(a)
	return k != "" && k == CardKey(b)
}
