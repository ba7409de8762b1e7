package catalog

import (
	"fmt"
	"time"

	"github.com/mgoltzsche/echo-vui/pkg/config"
)

// ComputedTime refers to the live clock answer within a catalog file.
const ComputedTime = "time"

type fileCatalog struct {
	Responses []fileResponse `json:"responses"`
	Keywords  []fileKeyword  `json:"keywords,omitempty"`
}

type fileResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
	Computed string `json:"computed,omitempty"`
}

type fileKeyword struct {
	Trigger  string `json:"trigger"`
	Question string `json:"question"`
}

// FromFile loads a catalog from a YAML file.
// Lists are used instead of maps since the keyword order is significant.
func FromFile(path string, now func() time.Time) (*Catalog, error) {
	var f fileCatalog

	err := config.DecodeYAMLFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	entries := make([]Entry, len(f.Responses))

	for i, r := range f.Responses {
		switch r.Computed {
		case "":
			entries[i] = Entry{Question: r.Question, Response: Static(r.Answer)}
		case ComputedTime:
			entries[i] = Entry{Question: r.Question, Response: Computed(TimeAnswer(now))}
		default:
			return nil, fmt.Errorf("read catalog at %s: question %q: unsupported computed answer %q", path, r.Question, r.Computed)
		}
	}

	keywords := make([]Keyword, len(f.Keywords))
	for i, k := range f.Keywords {
		keywords[i] = Keyword{Trigger: k.Trigger, Question: k.Question}
	}

	c, err := New(entries, keywords)
	if err != nil {
		return nil, fmt.Errorf("load catalog at %s: %w", path, err)
	}

	return c, nil
}
