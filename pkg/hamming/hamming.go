// Package hamming compares fixed-width binary vectors written as strings of 0s and 1s
package hamming

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultWidth is the vector width used by Distance
const DefaultWidth = 8

// Parse and comparison errors
var (
	ErrInvalidLength = errors.New("invalid length for bit vector")
	ErrInvalidValue  = errors.New("invalid value for bit vector (elements can only be 0 or 1)")
	ErrWidthMismatch = errors.New("bit vectors have different widths")
)

// BitVec is a fixed-width vector of 0/1 symbols; the zero value has width 0
type BitVec struct {
	elems []byte
}

// Parse builds a BitVec of width n from s, ignoring surrounding whitespace
func Parse(s string, n int) (BitVec, error) {

	// Check the width before looking at individual symbols
	s = strings.TrimSpace(s)
	if len(s) != n {
		return BitVec{}, fmt.Errorf("%w: got %d symbols, want %d", ErrInvalidLength, len(s), n)
	}

	// Store each symbol as its numeric value so XOR yields 0 or 1
	elems := make([]byte, n)
	for i := 0; i < n; i++ {
		switch s[i] {
		case '0':
			elems[i] = 0
		case '1':
			elems[i] = 1
		default:
			return BitVec{}, fmt.Errorf("%w: %q at position %d", ErrInvalidValue, s[i], i)
		}
	}

	return BitVec{elems: elems}, nil

}

// Width returns the number of symbols in the vector
func (v BitVec) Width() int {
	return len(v.elems)
}

// String returns the vector in the same 0/1 form it was parsed from
func (v BitVec) String() string {
	var sb strings.Builder
	sb.Grow(len(v.elems))
	for _, e := range v.elems {
		sb.WriteByte('0' + e)
	}
	return sb.String()
}

// Distance returns the number of positions at which v and o differ
func (v BitVec) Distance(o BitVec) (int, error) {

	if len(v.elems) != len(o.elems) {
		return 0, fmt.Errorf("%w: %d and %d", ErrWidthMismatch, len(v.elems), len(o.elems))
	}

	// Symbols are 0 or 1, so the sum of XORs is the Hamming weight of the difference
	d := 0
	for i := range v.elems {
		d += int(v.elems[i] ^ o.elems[i])
	}

	return d, nil

}

// Distance parses a and b as DefaultWidth vectors and returns their Hamming distance
func Distance(a, b string) (int, error) {
	return DistanceN(a, b, DefaultWidth)
}

// DistanceN parses a and b as width n vectors and returns their Hamming distance
func DistanceN(a, b string, n int) (int, error) {

	va, err := Parse(a, n)
	if err != nil {
		return 0, fmt.Errorf("first vector: %w", err)
	}
	vb, err := Parse(b, n)
	if err != nil {
		return 0, fmt.Errorf("second vector: %w", err)
	}

	return va.Distance(vb)

}
