// Package parser turns raw log lines into structured entries.
package parser

import "time"

// Entry is a single successfully parsed log line.
type Entry struct {
	// Timestamp is the parsed timestamp, second precision.
	Timestamp time.Time

	// Stamp is the exact timestamp substring as it appeared in the line.
	// Retained for format-consistency checks.
	Stamp string

	// Level is the upper-cased level token following the timestamp.
	// Empty when the line carries nothing after the timestamp.
	Level string

	// Message is everything after the level token. May be empty.
	Message string

	// LineNum is the 1-based line number in the source file.
	LineNum int

	// Raw is the original line content.
	Raw string
}

// InvalidEntry records a line that could not be parsed.
type InvalidEntry struct {
	LineNum int    `json:"line_number"`
	Content string `json:"content"`
	Reason  string `json:"error"`
}

// ScanResult holds the classified contents of one log file.
// Every input line lands in exactly one of Entries or Invalid,
// so len(Entries)+len(Invalid) == TotalLines always.
type ScanResult struct {
	Entries    []*Entry
	Invalid    []InvalidEntry
	TotalLines int
	TotalChars int
}

// Empty reports whether the file had no lines at all.
func (r *ScanResult) Empty() bool {
	return r.TotalLines == 0
}
