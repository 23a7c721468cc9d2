// Package report renders session metrics as a human-readable report.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"github.com/pterm/pterm"

	"github.com/carlrannaberg/claudekit/internal/timeutil"
	"github.com/carlrannaberg/claudekit/internal/ui"
	"github.com/carlrannaberg/claudekit/stats"
)

const barChartChar = "▇"

// Assessment tiers for the overall score.
const (
	exceptionalScore = 90
	excellentScore   = 80
	solidScore       = 70
)

// Render writes the full session analysis report to w.
func Render(w io.Writer, m *stats.Metrics) {
	output := fmt.Sprint(
		getHeader(m),
		getOverview(m),
		getProductivity(m),
		getActivity(m),
		getBreakPatterns(m),
		getPeakHours(m),
		getHourlyChart(m),
		getScores(m),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))
}

func getHeader(m *stats.Metrics) string {
	title := "Session: " + m.SessionStart.Format("January 02, 2006") +
		" - " + m.SessionEnd.Format("January 02, 2006")

	return pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln("%s", title)
}

func getOverview(m *stats.Metrics) string {
	header := fmt.Sprintf("%s\n", ui.Blue("Session overview"))

	start := fmt.Sprintf(
		"Start: %s\n",
		ui.Green(m.SessionStart.Format(time.RFC3339)),
	)

	end := fmt.Sprintf(
		"End: %s\n",
		ui.Green(m.SessionEnd.Format(time.RFC3339)),
	)

	duration := fmt.Sprintf(
		"Duration: %s\n",
		ui.Green(formatSeconds(m.TotalDurationSeconds)),
	)

	return header + start + end + duration
}

func getProductivity(m *stats.Metrics) string {
	header := fmt.Sprintf("\n%s\n", ui.Blue("Productivity"))

	total := fmt.Sprintf(
		"Total events: %s\n",
		ui.Green(humanize.Comma(int64(m.TotalEvents))),
	)

	perHour := fmt.Sprintf(
		"Events/hour: %s\n",
		ui.Green(fmt.Sprintf("%.1f", m.EventsPerHour)),
	)

	perMinute := fmt.Sprintf(
		"Events/minute: %s\n",
		ui.Green(fmt.Sprintf("%.1f", m.EventsPerMinute)),
	)

	activePerMinute := fmt.Sprintf(
		"Active events/minute: %s\n",
		ui.Green(fmt.Sprintf("%.1f", m.ActiveEventsPerMinute)),
	)

	return header + total + perHour + perMinute + activePerMinute
}

func getActivity(m *stats.Metrics) string {
	header := fmt.Sprintf("\n%s\n", ui.Blue("Activity"))

	active := fmt.Sprintf(
		"Active time: %s (%.1f%%)\n",
		ui.Green(formatSeconds(m.ActiveMinutes*60)),
		m.ActivityPercentage,
	)

	idle := fmt.Sprintf(
		"Idle time: %s\n",
		ui.Green(formatSeconds(m.IdleMinutes*60)),
	)

	return header + active + idle
}

func getBreakPatterns(m *stats.Metrics) string {
	ga := m.GapAnalysis

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("\n%s\n", ui.Blue("Break patterns")))
	builder.WriteString(
		fmt.Sprintln("Short gaps (<5 min):", ui.Green(ga.ShortGaps)),
	)
	builder.WriteString(
		fmt.Sprintln("Moderate gaps (5-30 min):", ui.Green(ga.ModerateGaps)),
	)
	builder.WriteString(
		fmt.Sprintln("Long gaps (>=30 min):", ui.Green(ga.LongGaps)),
	)

	if ga.ModerateGaps > 0 {
		builder.WriteString(fmt.Sprintf(
			"Avg moderate gap: %s\n",
			ui.Green(fmt.Sprintf("%.1f minutes", ga.AvgModerateGap)),
		))
	}

	builder.WriteString(fmt.Sprintf(
		"Longest gap: %s\n",
		ui.Green(fmt.Sprintf("%.1f minutes", ga.LongestGap)),
	))

	return builder.String()
}

func getPeakHours(m *stats.Metrics) string {
	if len(m.PeakHours) == 0 {
		return ""
	}

	data := [][]string{{"Hour", "Events", "% of total"}}

	for _, peak := range m.PeakHours {
		share := float64(peak.Events) / float64(m.TotalEvents) * 100

		data = append(data, []string{
			fmt.Sprintf("%02d:00", peak.Hour),
			fmt.Sprintf("%d", peak.Events),
			fmt.Sprintf("%.1f%%", share),
		})
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("\n%s\n", ui.Blue("Peak hours")))
	ui.PrintTable(data, &builder)

	return builder.String()
}

func getHourlyChart(m *stats.Metrics) string {
	if len(m.HourlyActivity) == 0 {
		return ""
	}

	header := ui.Blue("\nHourly breakdown (events)")

	var bars pterm.Bars

	for _, hc := range m.HourlyActivity {
		bars = append(bars, pterm.Bar{
			Value: hc.Events,
			Label: fmt.Sprintf("%02d:00", hc.Hour),
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

func getScores(m *stats.Metrics) string {
	header := fmt.Sprintf("\n%s\n", ui.Blue("Performance scores"))

	efficiency := fmt.Sprintln(
		"Efficiency:",
		ui.Green(fmt.Sprintf("%d/100", timeutil.Round(m.EfficiencyScore))),
	)

	endurance := fmt.Sprintln(
		"Endurance:",
		ui.Green(fmt.Sprintf("%d/100", timeutil.Round(m.EnduranceScore))),
	)

	overall := fmt.Sprintln(
		"Overall:",
		ui.Green(fmt.Sprintf("%d/100", timeutil.Round(m.OverallScore))),
	)

	return header + efficiency + endurance + overall +
		assessment(m.OverallScore) + "\n"
}

// assessment maps the overall score to a one-line verdict.
func assessment(score float64) string {
	switch {
	case score >= exceptionalScore:
		return ui.Green("Exceptional performance!")
	case score >= excellentScore:
		return ui.Green("Excellent work!")
	case score >= solidScore:
		return ui.Cyan("Solid productivity")
	default:
		return ui.Magenta("Room for improvement")
	}
}

// formatSeconds expresses a duration in seconds as e.g. "1 hour 32 minutes".
func formatSeconds(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second))

	//nolint:gomnd // limit to first 2 units
	return durafmt.Parse(d.Truncate(time.Second)).LimitFirstN(2).String()
}
