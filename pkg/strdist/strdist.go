// ------------------------------------------------------
// Strdist
// A string distance calculator by bitquark
// ------------------------------------------------------
// Docs and code: https://github.com/bitquark/strdist
// ------------------------------------------------------

package strdist

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alexflint/go-arg"
	"github.com/bitquark/strdist/pkg/levenshtein"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	log "github.com/sirupsen/logrus"
)

type resultOutput struct {
	Type      string   `json:"type"`
	Algorithm string   `json:"algorithm"`
	First     string   `json:"first"`
	Second    string   `json:"second"`
	Result    int      `json:"result"`
	Ratio     *float32 `json:"ratio,omitempty"`
}

type matchOutput struct {
	Type      string `json:"type"`
	Algorithm string `json:"algorithm"`
	Query     string `json:"query"`
	Rank      int    `json:"rank"`
	Match
}

type timingOutput struct {
	Type         string `json:"type"`
	Microseconds int64  `json:"microseconds"`
}

// Version
const version = "0.1.0"

// Command-line arguments and help
type arguments struct {
	Words     []string `arg:"positional" help:"two words to compare, or one word to look up with --wordlist" placeholder:"WORD"`
	Algorithm string   `arg:"-a" help:"algorithm to use (see below)" default:"wf"`
	Wordlist  string   `arg:"-w" help:"rank every word in this file against the first word" placeholder:"FILE"`
	Top       int      `arg:"-n" help:"number of wordlist matches to show (0 = all)" default:"10"`
	Width     int      `arg:"--width" help:"vector width for Hamming distance" default:"8"`
	Raw       bool     `arg:"-r" help:"plain output for scripts (no banner, colour or timing)" default:"false"`
	Output    string   `arg:"-o" help:"output format (human = human readable; json = JSON)" placeholder:"format" default:"human"`
	Verbosity int      `arg:"-v" help:"how much noise to make (0 = quiet; 1 = debug; 2 = trace)" default:"0"`
}

func (arguments) Version() string {
	return getBanner()
}

func (arguments) Epilogue() string {
	return "Algorithms:\n" +
		"  lev  ->  Levenshtein distance (recursive)\n" +
		"  wf   ->  Wagner-Fischer distance\n" +
		"  bt   ->  Bitap search (first word is the text, second the pattern)\n" +
		"  hm   ->  Hamming distance\n" +
		"  osa  ->  Optimal String Alignment distance"
}

var args arguments

// getBanner returns the main banner
func getBanner() string {
	return color.New(color.FgBlue, color.Bold).Sprint("📏 Strdist v"+version) + " · " + color.New(color.FgWhite, color.Bold).Sprint("a string distance calculator by bitquark")
}

// printHuman prints human readable output unless JSON output or raw mode is in use
func printHuman(s ...any) {
	if args.Output == "human" && !args.Raw {
		fmt.Println(s...)
	}
}

// printJSON prints a JSON object if JSON output is in use
func printJSON(o any) {
	if args.Output == "json" {
		j, _ := json.Marshal(o)
		fmt.Println(string(j))
	}
}

// printResult prints a single result in the selected format
func printResult(w io.Writer, alg Algorithm, a, b string, r int) {

	if args.Output == "json" {
		o := resultOutput{Type: "result", Algorithm: alg.String(), First: a, Second: b, Result: r}
		if alg != Bitap {
			lp := Ratio(r, a, b)
			o.Ratio = &lp
		}
		j, _ := json.Marshal(o)
		fmt.Fprintln(w, string(j))
		return
	}

	// Raw mode keeps the algorithm line and the bare number, without colour
	if args.Raw {
		fmt.Fprintln(w, args.Algorithm+":", alg)
		fmt.Fprintln(w, r)
		return
	}

	label := color.New(color.FgWhite, color.Bold).Sprint(args.Algorithm + ":")
	fmt.Fprintln(w, label, alg)
	if alg == Bitap && r < 0 {
		fmt.Fprintln(w, color.HiBlackString("no match"))
	} else if alg == Bitap {
		fmt.Fprintln(w, color.HiGreenString("%d", r))
	} else {
		fmt.Fprintln(w, color.HiGreenString("%d", r), color.HiBlackString("(ratio %.3f)", Ratio(r, a, b)))
	}

}

// printMatches prints ranked wordlist matches in the selected format
func printMatches(w io.Writer, alg Algorithm, word string, ms []Match) {

	if args.Output == "json" {
		for i, m := range ms {
			printJSON(matchOutput{Type: "match", Algorithm: alg.String(), Query: word, Rank: i + 1, Match: m})
		}
		return
	}

	if args.Raw {
		for _, m := range ms {
			fmt.Fprintf(w, "%d\t%s\n", m.Score, m.Word)
		}
		return
	}

	score := "Distance"
	if alg == Bitap {
		score = "Offset"
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"#", "Word", score})
	for i, m := range ms {
		tbl.AppendRow(table.Row{i + 1, m.Word, m.Score})
	}
	tbl.AppendFooter(table.Row{"", "Total", len(ms)})
	tbl.Render()

}

// Run is the main entry point for computing distances from the command line
func Run() {

	// Parse and validate command-line arguments
	p := arg.MustParse(&args)
	args.Output = strings.ToLower(args.Output)
	if args.Output != "human" && args.Output != "json" {
		p.Fail("output must be one of: human, json")
	}
	if args.Top < 0 {
		p.Fail("top must not be negative")
	}
	if args.Width < 1 {
		p.Fail("width must be at least 1")
	}

	// Two words are needed, or one with a wordlist
	if len(args.Words) == 0 || (len(args.Words) < 2 && args.Wordlist == "") {
		fmt.Println(getBanner())
		p.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	// Set up logging
	log.SetFormatter(&log.TextFormatter{
		DisableLevelTruncation: true,
		DisableTimestamp:       true,
	})
	if args.Verbosity > 1 {
		log.SetLevel(log.TraceLevel)
	} else if args.Verbosity > 0 {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	// Say hello
	printHuman(getBanner())

	// Extra words are ignored rather than treated as an error
	if n := len(args.Words); n > 2 || (n > 1 && args.Wordlist != "") {
		log.WithFields(log.Fields{"words": n}).Warn("Too many words, extra input ignored")
	}

	// Pick the algorithm, falling back to Wagner-Fischer for names we don't know
	alg, ok := ParseAlgorithm(args.Algorithm)
	if !ok {
		log.WithFields(log.Fields{"algorithm": args.Algorithm}).Warn("Unknown algorithm, using Wagner-Fischer")
		alg = WagnerFischer
	}
	log.WithFields(log.Fields{"algorithm": alg}).Debug("Selected algorithm")
	opts := Options{Width: args.Width}

	// Warn about inputs the recursive algorithm will struggle with
	if alg == Levenshtein {
		for _, w := range args.Words {
			if n := utf8.RuneCountInString(w); n > levenshtein.MaxLength {
				log.WithFields(log.Fields{"word": w, "length": n, "max": levenshtein.MaxLength}).Warn("Input is long for recursive Levenshtein, this may take a while")
			}
		}
	}

	// Wordlist mode
	if args.Wordlist != "" {

		fh, err := os.Open(args.Wordlist)
		if err != nil {
			log.WithFields(log.Fields{"err": err}).Fatal("Unable to open wordlist")
		}
		words, err := LoadWordlist(fh)
		fh.Close()
		if err != nil {
			log.WithFields(log.Fields{"err": err}).Fatal("Unable to read wordlist")
		}
		log.WithFields(log.Fields{"file": args.Wordlist, "words": humanize.Comma(int64(len(words)))}).Info("Loaded wordlist")

		start := time.Now()
		ms, err := Rank(alg, args.Words[0], words, args.Top, opts)
		if err != nil {
			log.WithFields(log.Fields{"algorithm": alg, "word": args.Words[0], "err": err}).Fatal("Unable to rank wordlist")
		}
		elapsed := time.Since(start)

		printMatches(os.Stdout, alg, args.Words[0], ms)
		printTiming(elapsed, len(words))
		return

	}

	// Single comparison
	a, b := args.Words[0], args.Words[1]
	start := time.Now()
	r, err := Compute(alg, a, b, opts)
	elapsed := time.Since(start)
	if err != nil {
		log.WithFields(log.Fields{"algorithm": alg, "first": a, "second": b, "err": err}).Fatal("Unable to compute result")
	}

	printResult(os.Stdout, alg, a, b, r)
	printTiming(elapsed, 1)

}

// printTiming reports how long the computation took unless raw mode is in use
func printTiming(d time.Duration, n int) {

	if args.Raw {
		return
	}

	printJSON(timingOutput{Type: "timing", Microseconds: d.Microseconds()})
	if n > 1 {
		printHuman(fmt.Sprintf("Took %d microseconds for %s words", d.Microseconds(), humanize.Comma(int64(n))))
	} else {
		printHuman(fmt.Sprintf("Took %d microseconds", d.Microseconds()))
	}

}
