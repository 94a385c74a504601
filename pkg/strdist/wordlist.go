package strdist

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bitquark/strdist/pkg/bitap"
	"github.com/bitquark/strdist/pkg/hamming"
	"github.com/bitquark/strdist/pkg/levenshtein"
	"github.com/bitquark/strdist/pkg/wagnerfischer"
	log "github.com/sirupsen/logrus"
)

// Match is a wordlist entry and its score against the query word
type Match struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// LoadWordlist reads one word per line, skipping blank lines and comments
func LoadWordlist(r io.Reader) ([]string, error) {

	var words []string
	s := bufio.NewScanner(r)
	for s.Scan() {

		// Trim whitespace and skip blank lines and comments
		w := strings.TrimSpace(s.Text())
		if len(w) == 0 || w[0] == '#' {
			continue
		}

		words = append(words, w)

	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading wordlist: %w", err)
	}

	return words, nil

}

// Rank scores every word in words against word and returns the best top matches (all of them
// when top is 0), lowest score first. For Bitap, word is the pattern searched for in each
// candidate and candidates without a match are dropped; for Hamming, candidates that are not
// valid vectors are dropped; for Levenshtein, candidates longer than levenshtein.MaxLength
// are dropped.
func Rank(alg Algorithm, word string, words []string, top int, opts Options) ([]Match, error) {

	// Reject a query word the algorithm can never accept before touching the wordlist
	var pattern *bitap.Pattern
	switch alg {
	case Bitap:
		p, err := bitap.Compile(word)
		if err != nil {
			return nil, err
		}
		pattern = p
	case Hamming:
		w := opts.Width
		if w == 0 {
			w = hamming.DefaultWidth
		}
		if _, err := hamming.Parse(word, w); err != nil {
			return nil, fmt.Errorf("query word: %w", err)
		}
	}

	// Score each candidate
	var ms []Match
	skipped := 0
	for _, c := range words {

		var d int
		switch {
		case pattern != nil:
			if d = pattern.Index(c); d < 0 {
				continue
			}
		case alg == WagnerFischer:
			d = wagnerfischer.Compact(word, c)
		case alg == Levenshtein && utf8.RuneCountInString(c) > levenshtein.MaxLength:
			log.WithFields(log.Fields{"word": c, "max": levenshtein.MaxLength}).Debug("Skipping wordlist entry too long for recursive Levenshtein")
			skipped++
			continue
		default:
			var err error
			if d, err = Compute(alg, word, c, opts); err != nil {
				log.WithFields(log.Fields{"word": c, "err": err}).Trace("Skipping wordlist entry")
				continue
			}
		}

		ms = append(ms, Match{Word: c, Score: d})

	}
	if skipped > 0 {
		log.WithFields(log.Fields{"skipped": skipped, "max": levenshtein.MaxLength}).Warn("Skipped wordlist entries too long for recursive Levenshtein")
	}

	// Best score first, ties broken alphabetically so output is stable
	sort.Slice(ms, func(i, j int) bool {
		if ms[i].Score != ms[j].Score {
			return ms[i].Score < ms[j].Score
		}
		return ms[i].Word < ms[j].Word
	})

	if top > 0 && len(ms) > top {
		ms = ms[:top]
	}

	return ms, nil

}
