package parser

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// ScanFile reads a log file fully into memory, classifying every line as
// a parsed Entry or an InvalidEntry. Only file-level problems (missing
// file, read failure, cancellation) surface as errors; per-line parse
// failures are collected in the result.
func ScanFile(ctx context.Context, path string) (*ScanResult, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	defer f.Close()

	result := &ScanResult{}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		raw := scanner.Text()
		result.TotalLines++
		result.TotalChars += len(raw)

		line := strings.TrimSpace(raw)
		entry, err := ParseLine(line)
		if err != nil {
			result.Invalid = append(result.Invalid, InvalidEntry{
				LineNum: result.TotalLines,
				Content: line,
				Reason:  err.Error(),
			})
			continue
		}

		entry.LineNum = result.TotalLines
		result.Entries = append(result.Entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return result, nil
}
