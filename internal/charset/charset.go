// Package charset builds the pool of characters words are drawn from.
package charset

import (
	"sort"
	"strings"
)

// Predefined character classes.
const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// Classes selects which predefined character classes to include.
type Classes struct {
	Lower   bool
	Upper   bool
	Digits  bool
	Symbols bool
}

// Build merges the explicit characters with every enabled class, removes
// duplicates, and sorts ascending by code point. The result is deterministic
// regardless of input order; an explicit "ba" comes back as "ab". Word
// enumeration order is defined over this sorted pool, so the sort is part of
// the contract, not cosmetics.
func Build(explicit string, classes Classes) string {
	var pool strings.Builder

	pool.WriteString(explicit)

	if classes.Lower {
		pool.WriteString(Lowercase)
	}

	if classes.Upper {
		pool.WriteString(Uppercase)
	}

	if classes.Digits {
		pool.WriteString(Digits)
	}

	if classes.Symbols {
		pool.WriteString(Symbols)
	}

	return dedupeSorted(pool.String())
}

// dedupeSorted returns the unique characters of s in code point order.
func dedupeSorted(s string) string {
	seen := make(map[rune]struct{}, len(s))
	unique := make([]rune, 0, len(s))

	for _, r := range s {
		if _, ok := seen[r]; ok {
			continue
		}

		seen[r] = struct{}{}
		unique = append(unique, r)
	}

	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })

	return string(unique)
}
