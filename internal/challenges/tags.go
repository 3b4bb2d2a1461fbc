// Package challenges holds the small data-cleaning and aggregation routines
// worked through in the journal's daily challenges: tag cleaning, word
// frequency, student ranking, price cleaning, inventory building, list
// flattening, even-number sums, config merging, and log parsing.
//
// Everything here is pure except WriteErrors.
package challenges

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// TagOptions controls CleanTags.
type TagOptions struct {
	// MinLength is the minimum rune count a cleaned tag must have. Zero means 1.
	MinLength int
	// Sorted returns tags alphabetically instead of first-seen order.
	Sorted bool
}

// CleanTags trims, lowercases and deduplicates raw tags, dropping blanks.
func CleanTags(raw []string, opts TagOptions) []string {
	minLen := opts.MinLength
	if minLen < 1 {
		minLen = 1
	}

	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, tag := range raw {
		clean := normalizeTag(tag)
		if clean == "" || utf8.RuneCountInString(clean) < minLen {
			continue
		}
		if _, dup := seen[clean]; dup {
			continue
		}
		seen[clean] = struct{}{}
		out = append(out, clean)
	}

	if opts.Sorted {
		sort.Strings(out)
	}
	return out
}

// RemovedTags returns the raw entries CleanTags discards: blanks and
// duplicates of an earlier entry, in input order.
func RemovedTags(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	var removed []string
	for _, tag := range raw {
		clean := normalizeTag(tag)
		if clean == "" {
			removed = append(removed, tag)
			continue
		}
		if _, dup := seen[clean]; dup {
			removed = append(removed, tag)
			continue
		}
		seen[clean] = struct{}{}
	}
	return removed
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
