package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pterm/pterm"

	"github.com/carlrannaberg/claudekit/stats"
)

func init() {
	pterm.DisableColor()
	pterm.DisableStyling()
}

func computeMetrics(t *testing.T, values ...string) *stats.Metrics {
	t.Helper()

	timestamps := make([]time.Time, 0, len(values))

	for _, v := range values {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		timestamps = append(timestamps, ts)
	}

	m, err := stats.Compute(timestamps, stats.Opts{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	return m
}

func TestRender(t *testing.T) {
	m := computeMetrics(t,
		"2024-03-01T10:00:00Z",
		"2024-03-01T10:02:00Z",
		"2024-03-01T10:40:00Z",
	)

	var buf bytes.Buffer

	Render(&buf, m)

	output := buf.String()

	expected := []string{
		"Session overview",
		"Start: 2024-03-01T10:00:00Z",
		"End: 2024-03-01T10:40:00Z",
		"Duration: 40 minutes",
		"Total events: 3",
		"Events/hour: 4.5",
		"Active events/minute: 1.5",
		"Active time: 2 minutes (5.0%)",
		"Idle time: 38 minutes",
		"Short gaps (<5 min): 1",
		"Long gaps (>=30 min): 1",
		"Longest gap: 38.0 minutes",
		"Peak hours",
		"10:00",
		"Performance scores",
		"Efficiency: 1/100",
		"Endurance: 5/100",
		"Overall: 3/100",
		"Room for improvement",
	}

	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("Expected report to contain %q, but it did not", want)
		}
	}
}

func TestRenderOmitsEmptySections(t *testing.T) {
	m := computeMetrics(t, "2024-03-01T14:00:00Z")

	var buf bytes.Buffer

	Render(&buf, m)

	output := buf.String()

	if strings.Contains(output, "Avg moderate gap") {
		t.Error("Expected no moderate gap line for a single event")
	}

	if !strings.Contains(output, "14:00") {
		t.Error("Expected the single hour bucket to be present")
	}
}

func TestRenderHighScores(t *testing.T) {
	// A dense burst with no idle time scores 100 on endurance
	m := computeMetrics(t,
		"2024-03-01T09:00:00.0Z",
		"2024-03-01T09:00:00.2Z",
		"2024-03-01T09:00:00.4Z",
		"2024-03-01T09:00:00.6Z",
		"2024-03-01T09:00:00.8Z",
		"2024-03-01T09:00:01.0Z",
	)

	var buf bytes.Buffer

	Render(&buf, m)

	output := buf.String()

	if !strings.Contains(output, "Endurance: 100/100") {
		t.Error("Expected a full endurance score")
	}

	if !strings.Contains(output, "Efficiency: 100/100") {
		t.Error("Expected a capped efficiency score")
	}

	if !strings.Contains(output, "Exceptional performance!") {
		t.Error("Expected the exceptional assessment tier")
	}
}
