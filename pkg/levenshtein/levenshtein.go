// Package levenshtein computes edit distance with the textbook recursive definition.
//
// The recursion re-derives overlapping subproblems and is exponential in the worst case.
// It exists as a reference for the tabulated implementation in package wagnerfischer;
// inputs beyond MaxLength code points are accepted but may take a very long time.
package levenshtein

import (
	"github.com/bitquark/strdist/pkg/maths"
)

// MaxLength is the practical per-input ceiling (in code points) for the recursive algorithm
const MaxLength = 10

// Distance returns the Levenshtein edit distance between a and b
func Distance(a, b string) int {
	d, _ := Count(a, b)
	return d
}

// Count returns the Levenshtein edit distance between a and b along with the number of
// recursive calls made to compute it (including the top-level call)
func Count(a, b string) (distance, calls int) {
	distance = lev([]rune(a), []rune(b), &calls)
	return distance, calls
}

func lev(a, b []rune, calls *int) int {

	*calls++

	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Matching first symbols cost nothing, so skip straight to the rest
	if a[0] == b[0] {
		return lev(a[1:], b[1:], calls)
	}

	// Deletion, insertion, substitution
	return 1 + maths.Min3(
		lev(a[1:], b, calls),
		lev(a, b[1:], calls),
		lev(a[1:], b[1:], calls),
	)

}
