// Package stats computes productivity metrics from a session's event
// timestamps.
package stats

import (
	"encoding/json"
	"errors"
	"sort"
	"time"
)

// ErrNoEvents is reported when the filtered timestamp sequence contains
// no events to analyze.
var ErrNoEvents = errors.New(
	"no events found in the specified time range",
)

const (
	secondsInAnHour  = 3600
	secondsInAMinute = 60
	maxPeakHours     = 3
	maxScore         = 100
)

// Opts configures the metrics computation. Zero values fall back to the
// package defaults.
type Opts struct {
	ShortGapMins          float64
	LongGapMins           float64
	BaselineEventsPerHour float64
}

func (o *Opts) setDefaults() {
	if o.ShortGapMins == 0 {
		o.ShortGapMins = DefaultShortGapMins
	}

	if o.LongGapMins == 0 {
		o.LongGapMins = DefaultLongGapMins
	}

	if o.BaselineEventsPerHour == 0 {
		o.BaselineEventsPerHour = DefaultBaselineEventsPerHour
	}
}

// HourCount is the number of events observed within one hour of the day.
type HourCount struct {
	Hour   int `json:"hour"`
	Events int `json:"events"`
}

// GapAnalysis summarizes the distribution of inter-event gaps.
type GapAnalysis struct {
	ShortGaps      int     `json:"short_gaps"`
	ModerateGaps   int     `json:"moderate_gaps"`
	LongGaps       int     `json:"long_gaps"`
	AvgModerateGap float64 `json:"avg_moderate_gap"`
	LongestGap     float64 `json:"longest_gap"`
}

// Metrics is the productivity report for a single session.
type Metrics struct {
	SessionStart          time.Time   `json:"session_start"`
	SessionEnd            time.Time   `json:"session_end"`
	TotalDurationSeconds  float64     `json:"total_duration_seconds"`
	TotalEvents           int         `json:"total_events"`
	EventsPerHour         float64     `json:"events_per_hour"`
	EventsPerMinute       float64     `json:"events_per_minute"`
	ActiveEventsPerMinute float64     `json:"active_events_per_minute"`
	ActiveMinutes         float64     `json:"active_minutes"`
	IdleMinutes           float64     `json:"idle_minutes"`
	ActivityPercentage    float64     `json:"activity_percentage"`
	GapAnalysis           GapAnalysis `json:"gap_analysis"`
	HourlyActivity        []HourCount `json:"hourly_activity"`
	PeakHours             []HourCount `json:"peak_hours"`
	EfficiencyScore       float64     `json:"efficiency_score"`
	EnduranceScore        float64     `json:"endurance_score"`
	OverallScore          float64     `json:"overall_score"`
}

// ToJSON serializes the metrics for machine consumption.
func (m *Metrics) ToJSON() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// Compute derives session metrics from an ordered sequence of event
// timestamps. The sequence must already be filtered to the reporting
// window; an empty sequence yields ErrNoEvents.
func Compute(timestamps []time.Time, opts Opts) (*Metrics, error) {
	if len(timestamps) == 0 {
		return nil, ErrNoEvents
	}

	opts.setDefaults()

	m := &Metrics{
		SessionStart: timestamps[0],
		SessionEnd:   timestamps[len(timestamps)-1],
		TotalEvents:  len(timestamps),
	}

	m.TotalDurationSeconds = m.SessionEnd.Sub(m.SessionStart).Seconds()

	gaps := Gaps(timestamps)
	m.GapAnalysis = classifyGaps(gaps, opts)

	totalMinutes := m.TotalDurationSeconds / secondsInAMinute

	m.IdleMinutes = sumLongGaps(gaps, opts.LongGapMins)
	m.ActiveMinutes = totalMinutes - m.IdleMinutes

	if m.TotalDurationSeconds > 0 {
		m.EventsPerHour = float64(m.TotalEvents) /
			(m.TotalDurationSeconds / secondsInAnHour)
		m.EventsPerMinute = float64(m.TotalEvents) / totalMinutes
		m.ActivityPercentage = m.ActiveMinutes / totalMinutes * maxScore
	}

	if m.ActiveMinutes > 0 {
		m.ActiveEventsPerMinute = float64(m.TotalEvents) / m.ActiveMinutes
	}

	m.HourlyActivity = hourlyActivity(timestamps)
	m.PeakHours = peakHours(m.HourlyActivity)

	m.EfficiencyScore = min(
		maxScore,
		m.EventsPerHour/opts.BaselineEventsPerHour*maxScore,
	)
	m.EnduranceScore = min(maxScore, m.ActivityPercentage)
	m.OverallScore = (m.EfficiencyScore + m.EnduranceScore) / 2

	return m, nil
}

// classifyGaps partitions gaps into short, moderate, and long buckets and
// records the mean moderate gap and the single longest gap.
func classifyGaps(gaps []float64, opts Opts) GapAnalysis {
	var ga GapAnalysis

	var moderateSum float64

	for _, gap := range gaps {
		switch {
		case gap < opts.ShortGapMins:
			ga.ShortGaps++
		case gap < opts.LongGapMins:
			ga.ModerateGaps++
			moderateSum += gap
		default:
			ga.LongGaps++
		}

		if gap > ga.LongestGap {
			ga.LongestGap = gap
		}
	}

	if ga.ModerateGaps > 0 {
		ga.AvgModerateGap = moderateSum / float64(ga.ModerateGaps)
	}

	return ga
}

func sumLongGaps(gaps []float64, longGapMins float64) float64 {
	var idle float64

	for _, gap := range gaps {
		if gap >= longGapMins {
			idle += gap
		}
	}

	return idle
}

// hourlyActivity counts events per hour of the day, reading the hour
// directly from each instant's recorded offset. Only hours with at least
// one event are present, in ascending hour order.
func hourlyActivity(timestamps []time.Time) []HourCount {
	var counts [24]int

	for _, ts := range timestamps {
		counts[ts.Hour()]++
	}

	var hourly []HourCount

	for hour, events := range counts {
		if events > 0 {
			hourly = append(hourly, HourCount{Hour: hour, Events: events})
		}
	}

	return hourly
}

// peakHours returns up to three hours with the highest event counts,
// descending by count. Ties keep their ascending-hour order.
func peakHours(hourly []HourCount) []HourCount {
	peaks := make([]HourCount, len(hourly))
	copy(peaks, hourly)

	sort.SliceStable(peaks, func(i, j int) bool {
		return peaks[i].Events > peaks[j].Events
	})

	if len(peaks) > maxPeakHours {
		peaks = peaks[:maxPeakHours]
	}

	return peaks
}
