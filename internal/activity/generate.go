package activity

import (
	"math/rand"
	"time"
)

// Base probabilities of a day having any activity. Weekdays are busier
// than weekends.
const (
	weekdayActiveChance = 0.7
	weekendActiveChance = 0.3
	maxGeneratedCount   = 6
)

// Generate synthesizes a plausible year of contribution days, from one
// year before now through today inclusive. Active days draw a count
// uniformly from 1 to 6.
func Generate(now time.Time, rng *rand.Rand) []Day {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := today.AddDate(-1, 0, 0)

	var days []Day
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		chance := weekdayActiveChance
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			chance = weekendActiveChance
		}

		count := 0
		if rng.Float64() < chance {
			count = rng.Intn(maxGeneratedCount) + 1
		}

		days = append(days, Day{Date: d, Count: count, Level: LevelFor(count)})
	}

	return days
}
