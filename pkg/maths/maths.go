// Package maths holds small generic numeric helpers shared by the distance packages
package maths

import "cmp"

// Min returns the smaller of two values
func Min[T cmp.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two values
func Max[T cmp.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min3 returns the smallest of three values (the shape of every edit distance recurrence)
func Min3[T cmp.Ordered](a, b, c T) T {
	return Min(Min(a, b), c)
}
