// Package activity produces the contribution heat-map data: one year of
// daily counts ending today, either normalized from the external calendar
// source or synthesized, plus the derived streak statistics.
package activity

import "time"

// Day is a single calendar day of contribution activity. Level is the
// coarse 0-4 bucket used for heat-map coloring.
type Day struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
	Level int       `json:"level"`
}

// Placeholder reports whether this Day is a leading calendar pad cell
// rather than a real day.
func (d Day) Placeholder() bool {
	return d.Date.IsZero()
}

// LevelFor buckets a daily count into a heat-map level:
// 0 -> 0, 1-2 -> 1, 3-4 -> 2, 5-6 -> 3, 7+ -> 4.
func LevelFor(count int) int {
	switch {
	case count == 0:
		return 0
	case count <= 2:
		return 1
	case count <= 4:
		return 2
	case count <= 6:
		return 3
	default:
		return 4
	}
}

// Weeks groups days into week-columns of 7, left-padding the first week
// with placeholder cells so the first real day lands on its weekday column
// (Sunday = row 0).
func Weeks(days []Day) [][]Day {
	if len(days) == 0 {
		return nil
	}

	var weeks [][]Day
	week := make([]Day, 0, 7)

	for i := 0; i < int(days[0].Date.Weekday()); i++ {
		week = append(week, Day{})
	}

	for _, d := range days {
		week = append(week, d)
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = make([]Day, 0, 7)
		}
	}
	if len(week) > 0 {
		weeks = append(weeks, week)
	}

	return weeks
}
