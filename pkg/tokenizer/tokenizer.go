// Package tokenizer normalizes raw text into word tokens for frequency analysis.
package tokenizer

import (
	"fmt"
	"regexp"
	"strings"
)

// asciiPunctuation is the fixed set of punctuation characters stripped
// before word extraction. Underscore is included, so "foo_bar" tokenizes
// as "foobar" rather than surviving as a single identifier-style word.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// wordPattern matches maximal runs of Unicode letters, digits and
// underscore. Underscores never survive normalization, but keeping them
// in the class keeps the pattern aligned with the usual \w semantics.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

var punctReplacer = func() *strings.Replacer {
	pairs := make([]string, 0, len(asciiPunctuation)*2)
	for _, r := range asciiPunctuation {
		pairs = append(pairs, string(r), "")
	}
	return strings.NewReplacer(pairs...)
}()

// TokenizationError reports an unexpected failure while normalizing text.
// The tokenizer recovers from it internally and returns an empty token
// sequence; callers decide whether an empty sequence is fatal.
type TokenizationError struct {
	Cause error
}

func (e *TokenizationError) Error() string {
	return fmt.Sprintf("tokenization failed: %v", e.Cause)
}

func (e *TokenizationError) Unwrap() error { return e.Cause }

// Tokenize converts text into an ordered sequence of normalized word
// tokens: lowercased, ASCII punctuation removed, then maximal word-character
// runs extracted. Empty input yields an empty slice and a nil error.
// An unexpected failure is reported as a *TokenizationError alongside an
// empty slice, never as a panic.
func Tokenize(text string) (tokens []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			tokens = nil
			err = &TokenizationError{Cause: fmt.Errorf("%v", r)}
		}
	}()

	if text == "" {
		return nil, nil
	}

	normalized := punctReplacer.Replace(strings.ToLower(text))
	return wordPattern.FindAllString(normalized, -1), nil
}

// TokenizeFiltered is Tokenize with common stopwords removed. Used by the
// --skip-common mode; the default pipeline counts every token.
func TokenizeFiltered(text string) ([]string, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return tokens, err
	}

	filtered := tokens[:0]
	for _, tok := range tokens {
		if IsStopword(tok) {
			continue
		}
		filtered = append(filtered, tok)
	}
	return filtered, nil
}
