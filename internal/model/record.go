package model

import (
	"fmt"
	"time"
)

const TimestampFormat = time.DateTime

// Record is a single answered query.
type Record struct {
	Time     time.Time
	Query    string
	Response string
}

// Lines formats the record the way it is appended to the conversation log.
func (r Record) Lines() string {
	ts := r.Time.Format(TimestampFormat)
	return fmt.Sprintf("[%[1]s] USER: %[2]s\n[%[1]s] ASSISTANT: %[3]s\n", ts, r.Query, r.Response)
}
