package strdist

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bitquark/strdist/pkg/bitap"
	"github.com/bitquark/strdist/pkg/hamming"
	"github.com/bitquark/strdist/pkg/levenshtein"
	"github.com/bitquark/strdist/pkg/maths"
	"github.com/bitquark/strdist/pkg/osa"
	"github.com/bitquark/strdist/pkg/wagnerfischer"
)

// Algorithm selects one of the distance functions
type Algorithm int

const (
	WagnerFischer Algorithm = iota
	Levenshtein
	Bitap
	Hamming
	OptimalStringAlignment
)

// ErrUnknownAlgorithm is returned when an Algorithm value has no implementation
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Long names, in Algorithm order
var algorithmNames = [...]string{"WagnerFischer", "Levenshtein", "Bitap", "Hamming", "OptimalStringAlignment"}

// Accepted command-line names and abbreviations (lower case)
var algorithmAliases = map[string]Algorithm{
	"wf":                     WagnerFischer,
	"wagnerfischer":          WagnerFischer,
	"wagner-fischer":         WagnerFischer,
	"lev":                    Levenshtein,
	"levenshtein":            Levenshtein,
	"bt":                     Bitap,
	"bitap":                  Bitap,
	"hm":                     Hamming,
	"hamming":                Hamming,
	"osa":                    OptimalStringAlignment,
	"optimalstringalignment": OptimalStringAlignment,
	"optimalstringalinment":  OptimalStringAlignment,
}

// String returns the algorithm's long name
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// ParseAlgorithm looks up an algorithm by name or abbreviation, ignoring case
func ParseAlgorithm(name string) (Algorithm, bool) {
	a, ok := algorithmAliases[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}

// Options tunes algorithms that take extra parameters
type Options struct {
	Width int // Hamming vector width; 0 means hamming.DefaultWidth
}

// Compute runs alg over a and b. For Bitap, a is the text and b the pattern and the result is
// the byte offset of the first match or -1; every other algorithm returns a distance.
func Compute(alg Algorithm, a, b string, opts Options) (int, error) {

	switch alg {
	case WagnerFischer:
		return wagnerfischer.Distance(a, b), nil
	case Levenshtein:
		return levenshtein.Distance(a, b), nil
	case OptimalStringAlignment:
		return osa.Distance(a, b), nil
	case Bitap:
		return bitap.Index(a, b)
	case Hamming:
		w := opts.Width
		if w == 0 {
			w = hamming.DefaultWidth
		}
		return hamming.DistanceN(a, b, w)
	}

	return 0, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)

}

// Ratio scales distance d between a and b to [0, 1] by the longer input's length in code
// points; two empty inputs have ratio 0
func Ratio(d int, a, b string) float32 {
	l := maths.Max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if l == 0 {
		return 0
	}
	return float32(d) / float32(l)
}
