package wakeword

import (
	"fmt"
	"regexp"
	"strings"
)

// Detector reports whether an utterance contains one of its words.
// By default a word matches as a plain substring, so "assistant" is also
// found within "assistants". WholeWord restricts matches to word boundaries.
type Detector struct {
	words     []string
	wholeWord *regexp.Regexp
}

func New(words ...string) *Detector {
	d := &Detector{}

	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			d.words = append(d.words, w)
		}
	}

	return d
}

// WholeWord returns a detector that only matches complete words.
func (d *Detector) WholeWord() *Detector {
	if len(d.words) == 0 {
		return d
	}

	quoted := make([]string, len(d.words))
	for i, w := range d.words {
		quoted[i] = regexp.QuoteMeta(w)
	}

	return &Detector{
		words:     d.words,
		wholeWord: regexp.MustCompile(fmt.Sprintf(`(?i)(^|[^\w])(%s)($|[^\w])`, strings.Join(quoted, "|"))),
	}
}

func (d *Detector) Words() []string {
	return append([]string(nil), d.words...)
}

// Detect returns true if the text contains any of the words.
func (d *Detector) Detect(text string) bool {
	if d.wholeWord != nil {
		return d.wholeWord.MatchString(text)
	}

	text = strings.ToLower(text)

	for _, w := range d.words {
		if strings.Contains(text, w) {
			return true
		}
	}

	return false
}
