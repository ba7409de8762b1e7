package catalog

import (
	"errors"
	"fmt"
	"strings"
)

const (
	ActivationKey = "activation"
	GoodbyeKey    = "goodbye"
	NotFoundKey   = "not_found"
)

var ErrUnknownQuestion = errors.New("unknown canonical question")

// Response is either a static text or a text computed when it is looked up.
type Response struct {
	text    string
	compute func() string
}

func Static(text string) Response {
	return Response{text: text}
}

func Computed(fn func() string) Response {
	return Response{compute: fn}
}

func (r Response) IsComputed() bool {
	return r.compute != nil
}

// Resolve returns the response text.
func (r Response) Resolve() string {
	if r.compute != nil {
		return r.compute()
	}

	return r.text
}

type Entry struct {
	Question string
	Response Response
}

// Keyword maps a trigger substring to a canonical question.
type Keyword struct {
	Trigger  string
	Question string
}

// Catalog is the immutable response table plus the ordered keyword table.
type Catalog struct {
	responses map[string]Response
	questions []string
	keywords  []Keyword
}

func New(entries []Entry, keywords []Keyword) (*Catalog, error) {
	c := &Catalog{
		responses: make(map[string]Response, len(entries)),
		questions: make([]string, 0, len(entries)),
		keywords:  make([]Keyword, 0, len(keywords)),
	}

	for _, e := range entries {
		q := Normalize(e.Question)
		if q == "" {
			return nil, fmt.Errorf("catalog entry with empty question")
		}

		if _, ok := c.responses[q]; ok {
			return nil, fmt.Errorf("duplicate catalog question %q", q)
		}

		c.responses[q] = e.Response
		c.questions = append(c.questions, q)
	}

	if _, ok := c.responses[NotFoundKey]; !ok {
		return nil, fmt.Errorf("catalog has no %q response", NotFoundKey)
	}

	for _, k := range keywords {
		trigger := Normalize(k.Trigger)
		if trigger == "" {
			return nil, fmt.Errorf("keyword for question %q has an empty trigger", k.Question)
		}

		q := Normalize(k.Question)
		if _, ok := c.responses[q]; !ok {
			return nil, fmt.Errorf("keyword %q: %w %q", trigger, ErrUnknownQuestion, q)
		}

		c.keywords = append(c.keywords, Keyword{Trigger: trigger, Question: q})
	}

	return c, nil
}

func MustNew(entries []Entry, keywords []Keyword) *Catalog {
	c, err := New(entries, keywords)
	if err != nil {
		panic(err)
	}

	return c
}

// Lookup resolves the response of the given canonical question.
func (c *Catalog) Lookup(question string) (string, bool) {
	r, ok := c.responses[Normalize(question)]
	if !ok {
		return "", false
	}

	return r.Resolve(), true
}

// Response returns the text for a key that New guarantees or falls back to not_found.
func (c *Catalog) Response(question string) string {
	if text, ok := c.Lookup(question); ok {
		return text
	}

	return c.responses[NotFoundKey].Resolve()
}

// Questions returns the canonical questions in declaration order.
func (c *Catalog) Questions() []string {
	return append([]string(nil), c.questions...)
}

// Keywords returns the keyword table in declaration (priority) order.
func (c *Catalog) Keywords() []Keyword {
	return append([]Keyword(nil), c.keywords...)
}

func (c *Catalog) Len() int {
	return len(c.questions)
}

func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
