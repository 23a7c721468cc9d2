// Package discovery locates the session file whose recorded time range
// contains a target instant.
package discovery

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/carlrannaberg/claudekit/internal/apperr"
	"github.com/carlrannaberg/claudekit/internal/sessionlog"
	"github.com/carlrannaberg/claudekit/internal/timeutil"
)

// tailReadBytes bounds how far back the locator reads when approximating
// the last record of a candidate file. A record larger than this window
// can cause the true last line to be missed; the tolerance is accepted to
// avoid scanning whole files.
const tailReadBytes = 1000

var (
	ErrDirNotFound = &apperr.Error{
		Message: "session directory not found: %s",
	}

	ErrNoMatch = &apperr.Error{
		Message: "no session file found containing timestamp %s",
	}
)

// SessionDir returns the directory holding session files for the
// project, derived from the project path by replacing path separators
// with dashes.
func SessionDir(baseDir, projectPath string) string {
	encoded := "-" + strings.ReplaceAll(projectPath, string(filepath.Separator), "-")

	return filepath.Join(baseDir, encoded)
}

// FindSessionFile scans the project's session directory and returns the
// file whose first and last record timestamps bracket target. Candidates
// whose first or last record cannot be parsed are skipped.
func FindSessionFile(
	baseDir, projectPath string,
	target time.Time,
) (string, error) {
	dir := SessionDir(baseDir, projectPath)

	if _, err := os.Stat(dir); err != nil {
		return "", ErrDirNotFound.Fmt(dir)
	}

	candidates, err := filepath.Glob(filepath.Join(dir, "*.jsonl"))
	if err != nil {
		return "", err
	}

	for _, path := range candidates {
		first, last, err := recordRange(path)
		if err != nil {
			continue
		}

		if !target.Before(first) && !target.After(last) {
			return path, nil
		}
	}

	return "", ErrNoMatch.Fmt(target.Format(time.RFC3339))
}

// recordRange reads the timestamp of the first record and of the last
// complete record within the trailing bytes of the file.
func recordRange(path string) (first, last time.Time, err error) {
	f, err := os.Open(path)
	if err != nil {
		return first, last, err
	}
	defer f.Close()

	firstLine, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return first, last, err
	}

	first, err = recordTimestamp(firstLine)
	if err != nil {
		return first, last, err
	}

	info, err := f.Stat()
	if err != nil {
		return first, last, err
	}

	offset := info.Size() - tailReadBytes
	if offset < 0 {
		offset = 0
	}

	tail := make([]byte, info.Size()-offset)

	_, err = f.ReadAt(tail, offset)
	if err != nil && !errors.Is(err, io.EOF) {
		return first, last, err
	}

	lines := strings.Split(strings.TrimRight(string(tail), "\n"), "\n")

	lastLine := lines[len(lines)-1]
	if strings.TrimSpace(lastLine) == "" {
		lastLine = firstLine
	}

	last, err = recordTimestamp(lastLine)

	return first, last, err
}

func recordTimestamp(line string) (time.Time, error) {
	var entry sessionlog.Entry

	err := json.Unmarshal([]byte(strings.TrimSpace(line)), &entry)
	if err != nil {
		return time.Time{}, err
	}

	return timeutil.ParseTimestamp(entry.Timestamp)
}
