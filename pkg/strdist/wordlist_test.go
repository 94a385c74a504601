package strdist

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitquark/strdist/pkg/bitap"
	"github.com/bitquark/strdist/pkg/hamming"
)

func TestLoadWordlist(t *testing.T) {
	t.Parallel()

	in := "# common misspellings\nreceive\n\n  believe  \n#ignored\nseparate\n"
	words, err := LoadWordlist(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"receive", "believe", "separate"}, words)

	words, err = LoadWordlist(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, words)
}

var dictionary = []string{"sitting", "kitten", "mitten", "smitten", "bitten", "written", "kitchen"}

func TestRank(t *testing.T) {
	t.Parallel()

	ms, err := Rank(WagnerFischer, "kitten", dictionary, 3, Options{})
	require.NoError(t, err)
	assert.Equal(t, []Match{
		{Word: "kitten", Score: 0},
		{Word: "bitten", Score: 1},
		{Word: "mitten", Score: 1},
	}, ms)

	// Zero keeps everything, still sorted
	ms, err = Rank(WagnerFischer, "kitten", dictionary, 0, Options{})
	require.NoError(t, err)
	require.Len(t, ms, len(dictionary))
	for i := 1; i < len(ms); i++ {
		assert.LessOrEqual(t, ms[i-1].Score, ms[i].Score)
	}
}

func TestRankTransposition(t *testing.T) {
	t.Parallel()

	words := []string{"toe", "then", "the"}
	ms, err := Rank(OptimalStringAlignment, "teh", words, 1, Options{})
	require.NoError(t, err)
	assert.Equal(t, []Match{{Word: "the", Score: 1}}, ms)

	// Without transpositions the swap costs two edits and ties with the others
	ms, err = Rank(WagnerFischer, "teh", words, 0, Options{})
	require.NoError(t, err)
	assert.Equal(t, []Match{
		{Word: "the", Score: 2},
		{Word: "then", Score: 2},
		{Word: "toe", Score: 2},
	}, ms)
}

func TestRankBitap(t *testing.T) {
	t.Parallel()

	ms, err := Rank(Bitap, "itt", dictionary, 0, Options{})
	require.NoError(t, err)
	assert.Equal(t, []Match{
		{Word: "bitten", Score: 1},
		{Word: "kitten", Score: 1},
		{Word: "mitten", Score: 1},
		{Word: "sitting", Score: 1},
		{Word: "smitten", Score: 2},
		{Word: "written", Score: 2},
	}, ms)

	// Candidates that start with the pattern match at offset 0
	ms, err = Rank(Bitap, "kit", dictionary, 0, Options{})
	require.NoError(t, err)
	assert.Equal(t, []Match{
		{Word: "kitchen", Score: 0},
		{Word: "kitten", Score: 0},
	}, ms)

	_, err = Rank(Bitap, strings.Repeat("x", 40), dictionary, 0, Options{})
	require.ErrorIs(t, err, bitap.ErrPatternTooLong)
}

func TestRankScoresMatchCompute(t *testing.T) {
	t.Parallel()

	ms, err := Rank(WagnerFischer, "kitten", dictionary, 0, Options{})
	require.NoError(t, err)
	require.Len(t, ms, len(dictionary))
	for _, m := range ms {
		d, err := Compute(WagnerFischer, "kitten", m.Word, Options{})
		require.NoError(t, err)
		assert.Equal(t, d, m.Score, m.Word)
	}
}

func TestRankLevenshteinSkipsLongWords(t *testing.T) {
	t.Parallel()

	words := []string{"kitten", "sitting", "kittenkittenkitten", "abcdefghijklmnopqrstuvwxyz"}
	ms, err := Rank(Levenshtein, "kitten", words, 0, Options{})
	require.NoError(t, err)
	assert.Equal(t, []Match{
		{Word: "kitten", Score: 0},
		{Word: "sitting", Score: 3},
	}, ms)

	// The same entries are kept by the tabulated algorithm
	ms, err = Rank(WagnerFischer, "kitten", words, 0, Options{})
	require.NoError(t, err)
	assert.Len(t, ms, len(words))
}

func TestRankHamming(t *testing.T) {
	t.Parallel()

	words := []string{"00000001", "0000", "11111111", "0000000x", "00000000"}
	ms, err := Rank(Hamming, "00000000", words, 0, Options{})
	require.NoError(t, err)
	assert.Equal(t, []Match{
		{Word: "00000000", Score: 0},
		{Word: "00000001", Score: 1},
		{Word: "11111111", Score: 8},
	}, ms)

	_, err = Rank(Hamming, "2", words, 0, Options{})
	require.ErrorIs(t, err, hamming.ErrInvalidLength)
}

func TestPrintMatches(t *testing.T) {
	args = arguments{Output: "human"}
	defer func() { args = arguments{} }()

	var buf bytes.Buffer
	printMatches(&buf, WagnerFischer, "kitten", []Match{{Word: "kitten", Score: 0}, {Word: "mitten", Score: 1}})
	out := strings.ToLower(buf.String())
	assert.Contains(t, out, "distance")
	assert.Contains(t, out, "kitten")
	assert.Contains(t, out, "mitten")
	assert.Contains(t, out, "total")

	buf.Reset()
	args.Raw = true
	printMatches(&buf, Bitap, "itt", []Match{{Word: "bitten", Score: 1}})
	assert.Equal(t, "1\tbitten\n", buf.String())
}

func TestPrintResult(t *testing.T) {
	defer func() { args = arguments{} }()

	var buf bytes.Buffer
	args = arguments{Output: "human", Algorithm: "osa", Raw: true}
	printResult(&buf, OptimalStringAlignment, "ab", "ba", 1)
	assert.Equal(t, "osa: OptimalStringAlignment\n1\n", buf.String())

	buf.Reset()
	args = arguments{Output: "human", Algorithm: "bt", Raw: true}
	printResult(&buf, Bitap, "abc", "xyz", -1)
	assert.Equal(t, "bt: Bitap\n-1\n", buf.String())

	buf.Reset()
	args = arguments{Output: "json", Algorithm: "wf"}
	printResult(&buf, WagnerFischer, "kitten", "sitting", 3)
	assert.JSONEq(t, `{"type":"result","algorithm":"WagnerFischer","first":"kitten","second":"sitting","result":3,"ratio":0.42857143}`, buf.String())
}
