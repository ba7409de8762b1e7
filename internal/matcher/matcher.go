package matcher

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/mgoltzsche/echo-vui/internal/catalog"
)

// DefaultCutoff is the minimum similarity ratio a fuzzy match must reach.
const DefaultCutoff = 0.6

// Matcher selects a response for free text from a catalog.
type Matcher struct {
	catalog *catalog.Catalog
	Cutoff  float64
}

func New(c *catalog.Catalog) *Matcher {
	return &Matcher{
		catalog: c,
		Cutoff:  DefaultCutoff,
	}
}

// Match returns the response and the canonical question it was resolved through.
// Keywords are tested as plain substrings in declaration order, so a short
// trigger also matches inside longer words ("ai" within "said").
// When no keyword matches, the closest canonical question with a similarity
// of at least Cutoff is used. Otherwise the not_found response is returned.
func (m *Matcher) Match(input string) (response, key string) {
	input = catalog.Normalize(input)

	for _, k := range m.catalog.Keywords() {
		if strings.Contains(input, k.Trigger) {
			return m.catalog.Response(k.Question), k.Question
		}
	}

	if q, _, ok := m.Closest(input); ok {
		return m.catalog.Response(q), q
	}

	return m.catalog.Response(catalog.NotFoundKey), catalog.NotFoundKey
}

// Respond resolves the response of a canonical question.
func (m *Matcher) Respond(key string) string {
	return m.catalog.Response(key)
}

// Closest returns the canonical question most similar to the input.
// Equal scores resolve to the lexicographically greatest question.
func (m *Matcher) Closest(input string) (question string, score float64, ok bool) {
	sm := difflib.NewMatcher(nil, chars(input))

	for _, q := range m.catalog.Questions() {
		sm.SetSeq1(chars(q))

		if sm.RealQuickRatio() < m.Cutoff || sm.QuickRatio() < m.Cutoff {
			continue
		}

		r := sm.Ratio()
		if r < m.Cutoff {
			continue
		}

		if !ok || r > score || (r == score && q > question) {
			question, score, ok = q, r, true
		}
	}

	return question, score, ok
}

// Similarity returns the Ratcliff/Obershelp ratio of the two strings.
func Similarity(a, b string) float64 {
	return difflib.NewMatcher(chars(a), chars(b)).Ratio()
}

func chars(s string) []string {
	r := []rune(s)
	out := make([]string, len(r))

	for i, c := range r {
		out[i] = string(c)
	}

	return out
}
