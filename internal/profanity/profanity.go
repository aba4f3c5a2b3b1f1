// Package profanity masks a fixed set of words and phrases in free-text
// user input. Matching is case-insensitive and by substring: entries are
// applied longest first, so a longer entry always claims the characters a
// shorter one would have matched inside it.
package profanity

import (
	"sort"
	"strings"
	"unicode"
)

const maskRune = '*'

type Filter struct {
	// entries are lowercased rune slices, sorted by descending length.
	entries [][]rune
}

// New builds a filter over the given entries. Duplicates and empty
// entries are dropped.
func New(words []string) *Filter {
	seen := make(map[string]struct{}, len(words))
	entries := make([][]rune, 0, len(words))
	for _, w := range words {
		lw := lowerRunes(w)
		if len(lw) == 0 {
			continue
		}
		key := string(lw)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		entries = append(entries, lw)
	}
	sort.Slice(entries, func(i, j int) bool {
		if len(entries[i]) != len(entries[j]) {
			return len(entries[i]) > len(entries[j])
		}
		return string(entries[i]) < string(entries[j])
	})
	return &Filter{entries: entries}
}

// Default returns a filter over the built-in word list.
func Default() *Filter {
	return New(badWords)
}

// Contains reports whether any entry occurs in text, ignoring case.
func (f *Filter) Contains(text string) bool {
	lower := string(lowerRunes(text))
	for _, entry := range f.entries {
		if strings.Contains(lower, string(entry)) {
			return true
		}
	}
	return false
}

// Mask replaces every match with an equal-length run of asterisks. Text
// without matches comes back unchanged.
func (f *Filter) Mask(text string) string {
	if !f.Contains(text) {
		return text
	}

	masked := []rune(text)
	lower := lowerRunes(text)
	for _, entry := range f.entries {
		for i := 0; i+len(entry) <= len(lower); i++ {
			if !runesEqual(lower[i:i+len(entry)], entry) {
				continue
			}
			for j := i; j < i+len(entry); j++ {
				masked[j] = maskRune
				lower[j] = maskRune
			}
			i += len(entry) - 1
		}
	}
	return string(masked)
}

// lowerRunes lowercases rune by rune so positions line up with the
// original text regardless of any locale-specific case folding.
func lowerRunes(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

func runesEqual(a, b []rune) bool {
	for i := range b {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
