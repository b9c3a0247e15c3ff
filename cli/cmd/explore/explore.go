// Package explore is an interactive terminal view of URL tokenization.
//
// The user types a URL and sees, on every keystroke, the arguments it
// encodes or the decode error that stops it. Tab completes the segment
// under the cursor from a vocabulary of flag and command names, ranked by
// fuzzy match. Enter prints the result above the prompt and records the URL
// in a history file.
//
// The view needs a terminal, so in a js/wasm build [Run] fails with
// [pkg.ErrUnsupported].
package explore

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/wekong/urlargs"
)

// Config configures a session.
type Config struct {
	URL     string   // initial input
	Words   []string // completion vocabulary
	History string   // history file; empty disables history
}

// result is the tokenization of one input.
type result struct {
	tokens []string
	err    error
}

func tokenize(input string) result {
	args := urlargs.New(input)

	var r result

	for tok := range args.All() {
		r.tokens = append(r.tokens, tok)
	}

	r.err = args.Err()

	return r
}

// segment returns the query segment containing cursor and its byte bounds.
// The path, anything after '#', and a cursor before the query yield ok
// false.
func segment(input string, cursor int) (word string, start, end int, ok bool) {
	cursor = min(max(cursor, 0), len(input))

	q := strings.IndexByte(input, '?')
	if q < 0 || cursor <= q {
		return "", 0, 0, false
	}

	if h := strings.IndexByte(input, '#'); h >= 0 && h < cursor {
		return "", 0, 0, false
	}

	start = q + 1
	if i := strings.LastIndexByte(input[:cursor], '&'); i >= start {
		start = i + 1
	}

	end = len(input)
	if i := strings.IndexAny(input[cursor:], "&#"); i >= 0 {
		end = cursor + i
	}

	return input[start:end], start, end, true
}

// suggest ranks words against the segment being typed, best first.
// An empty segment suggests nothing.
func suggest(word string, words []string) fuzzy.Matches {
	if word == "" || len(words) == 0 {
		return nil
	}

	return fuzzy.Find(word, words)
}

// replace substitutes input[start:end] with word and returns the new input
// with the cursor placed after word.
func replace(input string, start, end int, word string) (string, int) {
	return input[:start] + word + input[end:], start + len(word)
}
