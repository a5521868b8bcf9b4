// Package normalize reduces log messages to canonical shapes so that
// messages differing only in variable tokens compare equal.
package normalize

import (
	"regexp"
	"strings"
)

// Substitution order matters. IP addresses and UUIDs must be rewritten
// before bare numbers, and URLs before file paths, because the later
// patterns also match inside the earlier ones.
var substitutions = []struct {
	pattern     *regexp.Regexp
	placeholder string
}{
	{regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`), "IP_ADDRESS"},
	{regexp.MustCompile(`\b[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\b`), "UUID"},
	{regexp.MustCompile(`\b\d+\b`), "NUMBER"},
	{regexp.MustCompile(`https?://[^\s]+`), "URL"},
	{regexp.MustCompile(`/[^\s]*`), "FILE_PATH"},
}

// Message replaces variable tokens in a log message with placeholders
// and collapses whitespace runs. It is idempotent: applying it to its
// own output returns the same string.
func Message(s string) string {
	for _, sub := range substitutions {
		s = sub.pattern.ReplaceAllString(s, sub.placeholder)
	}
	return strings.Join(strings.Fields(s), " ")
}
