package stats

import "time"

// Gap thresholds in minutes. Gaps below the short limit reflect
// continuous work, while gaps at or above the long limit count as idle
// time rather than active time.
const (
	DefaultShortGapMins = 5
	DefaultLongGapMins  = 30
)

// DefaultBaselineEventsPerHour is the event rate that corresponds to a
// perfect efficiency score.
const DefaultBaselineEventsPerHour = 400

// Gaps returns the elapsed minutes between each pair of chronologically
// adjacent timestamps. A sequence of N timestamps yields N-1 gaps; fewer
// than two timestamps yield none.
func Gaps(timestamps []time.Time) []float64 {
	if len(timestamps) < 2 {
		return nil
	}

	gaps := make([]float64, 0, len(timestamps)-1)

	for i := 1; i < len(timestamps); i++ {
		gaps = append(gaps, timestamps[i].Sub(timestamps[i-1]).Minutes())
	}

	return gaps
}
