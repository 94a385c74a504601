// Package bitap implements exact substring search with the Shift-Or (bitap) algorithm.
//
// Matching is byte-oriented: patterns are compared byte for byte and offsets are byte
// offsets into the text.
package bitap

import (
	"errors"
	"fmt"
)

// MaxPatternLength is the longest pattern (in bytes) the match register can encode
const MaxPatternLength = 31

// ErrPatternTooLong is returned for patterns longer than MaxPatternLength
var ErrPatternTooLong = errors.New("pattern too long for bitap search")

// Pattern is a compiled search pattern; it is read-only after Compile and safe for
// concurrent use
type Pattern struct {
	size int
	mask [256]uint64
}

// Compile builds the symbol mask table for pattern
func Compile(pattern string) (*Pattern, error) {

	m := len(pattern)
	if m > MaxPatternLength {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrPatternTooLong, m, MaxPatternLength)
	}

	// Every symbol starts as a mismatch at every position
	p := &Pattern{size: m}
	for i := range p.mask {
		p.mask[i] = ^uint64(0)
	}

	// Clear bit k for the symbol found at pattern position k
	for k := 0; k < m; k++ {
		p.mask[pattern[k]] &^= 1 << k
	}

	return p, nil

}

// Len returns the pattern length in bytes
func (p *Pattern) Len() int {
	return p.size
}

// Index returns the byte offset of the first occurrence of the pattern in text, or -1
func (p *Pattern) Index(text string) int {

	m := p.size
	if m == 0 {
		return 0
	}

	// Bit m of r is clear when the last m bytes of text match the pattern; bit 0 starts
	// clear so a match may begin at the first byte
	r := ^uint64(1)
	for i := 0; i < len(text); i++ {
		r = (r | p.mask[text[i]]) << 1
		if r&(1<<m) == 0 {
			return i - m + 1
		}
	}

	return -1

}

// Index returns the byte offset of the first occurrence of pattern in text, or -1
func Index(text, pattern string) (int, error) {
	p, err := Compile(pattern)
	if err != nil {
		return -1, err
	}
	return p.Index(text), nil
}
