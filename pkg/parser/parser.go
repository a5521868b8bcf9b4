package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// timestampPattern matches the date and time portions separately so that
// runs of whitespace between them survive a strict time.Parse.
var timestampPattern = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})\s+(\d{2}:\d{2}:\d{2})`)

// TimestampLayout is the Go layout of the timestamp prefix every entry
// must carry.
const TimestampLayout = "2006-01-02 15:04:05"

// Sentinel parse failures. Both statistics and pattern detection rely on
// the same parser, so the two analyses always agree on which lines count.
var (
	// ErrNoTimestamp means the line carries no YYYY-MM-DD HH:MM:SS prefix.
	ErrNoTimestamp = errors.New("no valid timestamp found")

	// ErrInvalidTimestamp means the prefix matched structurally but is not
	// a real calendar time (month 13, second 61, ...).
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// ParseLine parses a single log line into an Entry.
//
// The first substring shaped like a timestamp anchors the parse; the token
// after it becomes the level (upper-cased) and the rest the message.
// Lines without a parseable timestamp return one of the sentinel errors
// above, wrapped with context.
func ParseLine(line string) (*Entry, error) {
	m := timestampPattern.FindStringSubmatchIndex(line)
	if m == nil {
		return nil, ErrNoTimestamp
	}

	stamp := line[m[0]:m[1]]
	date := line[m[2]:m[3]]
	clock := line[m[4]:m[5]]

	ts, err := time.Parse(TimestampLayout, date+" "+clock)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimestamp, stamp)
	}

	// Split the remainder once: first token is the level, the rest is the
	// message, kept verbatim.
	rest := strings.TrimSpace(line[m[1]:])
	level, message, _ := strings.Cut(rest, " ")

	return &Entry{
		Timestamp: ts,
		Stamp:     stamp,
		Level:     strings.ToUpper(level),
		Message:   message,
		Raw:       line,
	}, nil
}
