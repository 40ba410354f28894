package diff

import (
	"strings"
	"unicode"
)

// splitLines splits text into line tokens for diffing. A final newline does
// not produce a trailing empty token, so "a\nb\n" and "a\nb" tokenize
// identically.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// splitWords splits text into word tokens for inline diffing. Each token is
// a maximal run of non-whitespace together with the whitespace run that
// follows it, so "hello world" becomes ["hello ", "world"]. Leading
// whitespace forms a token of its own. The tokens partition the input
// exactly, which is what makes word diffs reconstruct their inputs.
func splitWords(text string) []string {
	var tokens []string
	runes := []rune(text)
	for i := 0; i < len(runes); {
		start := i
		for i < len(runes) && !unicode.IsSpace(runes[i]) {
			i++
		}
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		tokens = append(tokens, string(runes[start:i]))
	}
	return tokens
}
