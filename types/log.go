package types

import "time"

// LogEntry represents a log entry to be stored in the database
type LogEntry struct {
	Method       string
	URL          string
	RequestBody  string
	ResponseBody string
	StatusCode   int
	CreatedAt    time.Time
}
