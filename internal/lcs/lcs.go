// Package lcs finds the longest common prefix and suffix of strings, and the
// closest of a set of words by them.
package lcs

import (
	"slices"
)

// CommonPrefix returns the longest common prefix of the strings in ss.
func CommonPrefix(ss ...string) string {
	if len(ss) == 0 {
		return ""
	}

	// The longest common prefix of the lexicographically smallest and
	// largest strings is the longest common prefix of all.
	first, last := slices.Min(ss), slices.Max(ss)
	for i := range len(first) {
		if first[i] != last[i] {
			return first[:i]
		}
	}
	return first
}

// CommonSuffix returns the longest common suffix of the strings in ss.
func CommonSuffix(ss ...string) string {
	reversed := make([]string, len(ss))
	for i, s := range ss {
		reversed[i] = reverse(s)
	}
	return reverse(CommonPrefix(reversed...))
}

func reverse(s string) string {
	b := []byte(s)
	slices.Reverse(b)
	return string(b)
}

// Closest returns the word sharing the longest prefix or suffix with s. Ties
// go to the earlier word. It returns false unless the overlap is at least
// minLen bytes long.
func Closest(s string, words []string, minLen int) (string, bool) {
	best, bestLen := "", 0
	for _, word := range words {
		n := max(len(CommonPrefix(s, word)), len(CommonSuffix(s, word)))
		if n > bestLen {
			best, bestLen = word, n
		}
	}
	if bestLen < minLen {
		return "", false
	}
	return best, true
}
