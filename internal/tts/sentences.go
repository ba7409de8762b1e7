package tts

import (
	"regexp"
	"strings"
)

var sentenceEndRegex = regexp.MustCompile(`\n\s*|[.?!]+(\s+|$)`)

// SplitIntoSentences splits text after runs of punctuation marks and at line breaks.
// A dot within a word such as "example.org" does not end a sentence.
func SplitIntoSentences(text string) []string {
	var sentences []string

	pos := 0

	for _, idx := range sentenceEndRegex.FindAllStringIndex(text, -1) {
		sentences = appendSentence(sentences, text[pos:idx[1]])
		pos = idx[1]
	}

	return appendSentence(sentences, text[pos:])
}

func appendSentence(sentences []string, s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return sentences
	}

	return append(sentences, s)
}
