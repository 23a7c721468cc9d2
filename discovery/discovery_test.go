package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()

	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	return ts
}

// writeSessionFile writes a session file with one record per timestamp.
func writeSessionFile(t *testing.T, dir, name string, timestamps ...string) {
	t.Helper()

	var builder strings.Builder

	for _, ts := range timestamps {
		builder.WriteString(
			fmt.Sprintf(`{"timestamp":%q,"type":"user"}`+"\n", ts),
		)
	}

	err := os.WriteFile(
		filepath.Join(dir, name),
		[]byte(builder.String()),
		0o644,
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func projectDir(t *testing.T, baseDir, projectPath string) string {
	t.Helper()

	dir := SessionDir(baseDir, projectPath)

	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	return dir
}

func TestSessionDirEncoding(t *testing.T) {
	got := SessionDir("/base", "/home/user/project")
	want := filepath.Join("/base", "--home-user-project")

	if got != want {
		t.Errorf("Expected session dir %s, but got: %s", want, got)
	}
}

func TestFindSessionFile(t *testing.T) {
	baseDir := t.TempDir()
	project := "/home/user/project"
	dir := projectDir(t, baseDir, project)

	writeSessionFile(t, dir, "morning.jsonl",
		"2024-03-01T09:00:00Z",
		"2024-03-01T09:30:00Z",
		"2024-03-01T10:00:00Z",
	)
	writeSessionFile(t, dir, "noon.jsonl",
		"2024-03-01T11:00:00Z",
		"2024-03-01T11:30:00Z",
		"2024-03-01T12:00:00Z",
	)

	cases := []struct {
		name     string
		target   string
		expected string
		wantErr  error
	}{
		{
			name:     "target in first file",
			target:   "2024-03-01T09:15:00Z",
			expected: "morning.jsonl",
		},
		{
			name:     "target in second file",
			target:   "2024-03-01T11:30:00Z",
			expected: "noon.jsonl",
		},
		{
			name:     "range bounds are inclusive",
			target:   "2024-03-01T12:00:00Z",
			expected: "noon.jsonl",
		},
		{
			name:    "target before all sessions",
			target:  "2024-03-01T08:00:00Z",
			wantErr: ErrNoMatch,
		},
		{
			name:    "target between sessions",
			target:  "2024-03-01T10:30:00Z",
			wantErr: ErrNoMatch,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FindSessionFile(
				baseDir,
				project,
				mustParse(t, tc.target),
			)

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Expected %v, but got: %v", tc.wantErr, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if filepath.Base(got) != tc.expected {
				t.Errorf(
					"Expected %s, but got: %s",
					tc.expected,
					filepath.Base(got),
				)
			}
		})
	}
}

func TestFindSessionFileMissingDirectory(t *testing.T) {
	_, err := FindSessionFile(
		t.TempDir(),
		"/no/such/project",
		mustParse(t, "2024-03-01T09:00:00Z"),
	)
	if !errors.Is(err, ErrDirNotFound) {
		t.Fatalf("Expected ErrDirNotFound, but got: %v", err)
	}
}

func TestFindSessionFileSkipsCorruptCandidates(t *testing.T) {
	baseDir := t.TempDir()
	project := "/home/user/project"
	dir := projectDir(t, baseDir, project)

	// A corrupt candidate must not fail the whole search
	err := os.WriteFile(
		filepath.Join(dir, "corrupt.jsonl"),
		[]byte("garbage first line\n"),
		0o644,
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	writeSessionFile(t, dir, "valid.jsonl",
		"2024-03-01T09:00:00Z",
		"2024-03-01T10:00:00Z",
	)

	got, err := FindSessionFile(
		baseDir,
		project,
		mustParse(t, "2024-03-01T09:30:00Z"),
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if filepath.Base(got) != "valid.jsonl" {
		t.Errorf("Expected valid.jsonl, but got: %s", filepath.Base(got))
	}
}

func TestFindSessionFileTailRead(t *testing.T) {
	baseDir := t.TempDir()
	project := "/home/user/project"
	dir := projectDir(t, baseDir, project)

	// Enough records to push the last one well past the tail window
	timestamps := make([]string, 0, 200)
	start := mustParse(t, "2024-03-01T09:00:00Z")

	for i := range 200 {
		ts := start.Add(time.Duration(i) * time.Minute)
		timestamps = append(timestamps, ts.Format(time.RFC3339))
	}

	writeSessionFile(t, dir, "long.jsonl", timestamps...)

	got, err := FindSessionFile(
		baseDir,
		project,
		mustParse(t, "2024-03-01T11:45:00Z"),
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if filepath.Base(got) != "long.jsonl" {
		t.Errorf("Expected long.jsonl, but got: %s", filepath.Base(got))
	}
}
