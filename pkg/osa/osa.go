// Package osa computes the Optimal String Alignment distance, a restricted form of
// Damerau-Levenshtein distance in which adjacent transpositions count as a single edit
// but no substring may be edited more than once
package osa

import (
	"github.com/bitquark/strdist/pkg/maths"
)

// Distance returns the Optimal String Alignment distance between a and b, comparing by
// code point
func Distance(a, b string) int {

	ra, rb := []rune(a), []rune(b)
	m, n := len(ra), len(rb)

	cells := make([]int, (m+1)*(n+1))
	d := make([][]int, m+1)
	for i := range d {
		d[i] = cells[i*(n+1) : (i+1)*(n+1)]
		d[i][0] = i
	}
	for j := 0; j <= n; j++ {
		d[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {

			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			d[i][j] = maths.Min3(d[i-1][j]+1, d[i][j-1]+1, d[i-1][j-1]+cost)

			// Swapped adjacent pair (ab -> ba)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				d[i][j] = maths.Min(d[i][j], d[i-2][j-2]+1)
			}

		}
	}

	return d[m][n]

}
