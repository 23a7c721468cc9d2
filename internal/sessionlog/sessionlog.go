// Package sessionlog reads timestamped events from line-delimited JSON
// session files.
package sessionlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/carlrannaberg/claudekit/internal/timeutil"
)

const defaultScannerBufferSize = 1024 * 1024

// Entry is a single session log record. Only the timestamp is of
// interest; every other field in the raw record is ignored.
type Entry struct {
	Timestamp string `json:"timestamp"`
}

// ReadTimestamps extracts event timestamps from the session file at path
// in source order. Lines that are not valid JSON records, or whose
// timestamp is missing or unparseable, are skipped. A non-zero start or
// end bounds the returned sequence to the [start, end] window.
func ReadTimestamps(path string, start, end time.Time) ([]time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening session file: %w", err)
	}
	defer f.Close()

	var timestamps []time.Time

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, defaultScannerBufferSize), math.MaxInt)

	for scanner.Scan() {
		var entry Entry

		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			continue
		}

		if entry.Timestamp == "" {
			continue
		}

		ts, err := timeutil.ParseTimestamp(entry.Timestamp)
		if err != nil {
			continue
		}

		if !start.IsZero() && ts.Before(start) {
			continue
		}

		if !end.IsZero() && ts.After(end) {
			continue
		}

		timestamps = append(timestamps, ts)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading session file: %w", err)
	}

	return timestamps, nil
}
