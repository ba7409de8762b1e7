package convlog

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mgoltzsche/echo-vui/internal/model"
)

// Log is the append-only conversation log file.
type Log struct {
	Path  string
	Now   func() time.Time
	mutex sync.Mutex
}

func New(path string) *Log {
	return &Log{
		Path: path,
		Now:  time.Now,
	}
}

// Append writes the query/response pair with a single write call
// so that a concurrent reader never observes only one of both lines.
func (l *Log) Append(query, response string) error {
	r := model.Record{
		Time:     l.Now(),
		Query:    query,
		Response: response,
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	f, err := os.OpenFile(l.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open conversation log: %w", err)
	}

	_, err = f.WriteString(r.Lines())
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("write conversation log: %w", err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("close conversation log: %w", err)
	}

	return nil
}
