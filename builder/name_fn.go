// Package builder provides naming schemes for generated nodes.
package builder

import (
	"strconv"
)

// NameFn generates a raw display name from a zero-based index.
// It must be pure: the same idx always yields the same name.
type NameFn func(idx int) string

// DefaultNameFn returns "Person <idx>", e.g. 0→"Person 0".
func DefaultNameFn(idx int) string {
	return "Person " + strconv.Itoa(idx)
}

// ClubNameFn returns "Club " plus an Excel-style column label, e.g.
// 0→"Club A", 25→"Club Z", 26→"Club AA". Negative indexes are treated as 0.
func ClubNameFn(idx int) string {
	if idx < 0 {
		idx = 0
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return "Club " + string(runes)
}
