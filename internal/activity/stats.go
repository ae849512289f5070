package activity

// Stats are the derived contribution statistics for a day sequence.
type Stats struct {
	// Total is the sum of all daily counts.
	Total int `json:"total"`

	// LongestStreak is the longest run of consecutive days with nonzero
	// counts anywhere in the sequence.
	LongestStreak int `json:"longest_streak"`

	// CurrentStreak is the run of nonzero days ending at the most recent
	// day, zero if the most recent day itself has no activity.
	CurrentStreak int `json:"current_streak"`

	// AveragePerDay is Total divided by 365.
	AveragePerDay float64 `json:"average_per_day"`
}

// ComputeStats derives totals and streaks from a day sequence ordered by
// date ascending.
func ComputeStats(days []Day) Stats {
	var stats Stats

	run := 0
	atEnd := true
	for i := len(days) - 1; i >= 0; i-- {
		stats.Total += days[i].Count

		if days[i].Count > 0 {
			run++
			if run > stats.LongestStreak {
				stats.LongestStreak = run
			}
		} else {
			if atEnd {
				stats.CurrentStreak = run
				atEnd = false
			}
			run = 0
		}
	}
	if atEnd {
		// No zero day encountered; the whole sequence is one streak.
		stats.CurrentStreak = run
	}

	stats.AveragePerDay = float64(stats.Total) / 365

	return stats
}
