// Package series builds the year-long hourly input series the dispatch loop
// consumes: solar and wind capacity factors, the normalized demand shape and
// the seasonal hydro envelope.
package series

// HoursPerYear is the fixed length of every hourly series in a run.
const HoursPerYear = 8760

// DayOfHour returns the zero-based day of year for an hour index.
func DayOfHour(h int) int { return h / 24 }

// HourOfDay returns the hour within the day for an hour index.
func HourOfDay(h int) int { return h % 24 }

// MonthOfDay maps a zero-based day of year onto a 12-bucket month using the
// fixed 30.5-day approximation. Boundary days can land one bucket off; that
// is intentional and kept stable because downstream rollups depend on it.
func MonthOfDay(day int) int {
	return int(float64(day)/30.5) % 12
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
