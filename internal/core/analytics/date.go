package analytics

import (
	"fmt"
	"time"
)

// WeeklyRanges returns n consecutive seven-day windows starting at start (midnight)
func WeeklyRanges(start time.Time, n int) []DateRange {
	ranges := []DateRange{}
	current := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	for i := 0; i < n; i++ {
		weekEnd := current.AddDate(0, 0, 6)
		weekEnd = time.Date(weekEnd.Year(), weekEnd.Month(), weekEnd.Day(), 23, 59, 59, 999999999, weekEnd.Location())

		ranges = append(ranges, DateRange{
			Start: current,
			End:   weekEnd,
		})

		current = current.AddDate(0, 0, 7)
	}

	return ranges
}

// CohortLabel renders a cohort window: "Week 1 (Jan 1-7)", "Week 5 (Jan 29-Feb 4)"
func CohortLabel(index int, r DateRange) string {
	if r.Start.Month() == r.End.Month() {
		return fmt.Sprintf("Week %d (%s %d-%d)", index, r.Start.Format("Jan"), r.Start.Day(), r.End.Day())
	}
	return fmt.Sprintf("Week %d (%s %d-%s %d)", index, r.Start.Format("Jan"), r.Start.Day(), r.End.Format("Jan"), r.End.Day())
}

// DayLabels returns "Day 1" .. "Day n"
func DayLabels(n int) []string {
	if n < 0 {
		n = 0
	}
	labels := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		labels = append(labels, fmt.Sprintf("Day %d", i))
	}
	return labels
}

// HourLabels returns "0:00" .. "23:00"
func HourLabels() []string {
	labels := make([]string, 0, 24)
	for h := 0; h < 24; h++ {
		labels = append(labels, fmt.Sprintf("%d:00", h))
	}
	return labels
}
