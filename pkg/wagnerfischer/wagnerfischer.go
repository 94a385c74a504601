// Package wagnerfischer computes Levenshtein edit distance by dynamic programming
package wagnerfischer

import (
	"github.com/bitquark/strdist/pkg/maths"
)

// Matrix returns the full (m+1)x(n+1) edit distance table for s and t, where m and n are
// their lengths in code points; entry [i][j] is the distance between the first i symbols
// of s and the first j symbols of t
func Matrix(s, t string) [][]int {

	rs, rt := []rune(s), []rune(t)
	m, n := len(rs), len(rt)

	// Back every row with one allocation
	cells := make([]int, (m+1)*(n+1))
	d := make([][]int, m+1)
	for i := range d {
		d[i] = cells[i*(n+1) : (i+1)*(n+1)]
	}

	// Distances from and to the empty prefix
	for i := 1; i <= m; i++ {
		d[i][0] = i
	}
	for j := 1; j <= n; j++ {
		d[0][j] = j
	}

	for j := 1; j <= n; j++ {
		for i := 1; i <= m; i++ {
			cost := 1
			if rs[i-1] == rt[j-1] {
				cost = 0
			}
			d[i][j] = maths.Min3(
				d[i-1][j]+1,      // deletion
				d[i][j-1]+1,      // insertion
				d[i-1][j-1]+cost, // substitution
			)
		}
	}

	return d

}

// Distance returns the Levenshtein edit distance between s and t
func Distance(s, t string) int {
	d := Matrix(s, t)
	return d[len(d)-1][len(d[0])-1]
}

// Compact returns the same value as Distance while keeping only the previous and current rows
// of the table, so memory grows with the length of t alone. Use it when scoring many pairs.
func Compact(s, t string) int {

	rs, rt := []rune(s), []rune(t)
	n := len(rt)

	prev := make([]int, n+1)
	cur := make([]int, n+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(rs); i++ {
		cur[0] = i
		for j := 1; j <= n; j++ {
			cost := 1
			if rs[i-1] == rt[j-1] {
				cost = 0
			}
			cur[j] = maths.Min3(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}

	return prev[n]

}
