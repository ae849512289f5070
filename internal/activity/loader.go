package activity

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/likhithlanka/pulse/internal/github"
)

// Source fetches raw contribution days for a user. Satisfied by
// *github.Client.
type Source interface {
	Contributions(ctx context.Context, username string) ([]github.ContributionDay, error)
}

// Loader produces the year of activity days, preferring the real
// contribution calendar and synthesizing data when the fetch fails or
// real data is not requested.
type Loader struct {
	source Source
	now    func() time.Time
	rng    *rand.Rand
}

// NewLoader creates a Loader over the given source with the wall clock
// and a time-seeded generator.
func NewLoader(source Source) *Loader {
	return &Loader{
		source: source,
		now:    time.Now,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewLoaderAt creates a Loader with an injected clock and generator,
// used by tests.
func NewLoaderAt(source Source, now func() time.Time, rng *rand.Rand) *Loader {
	return &Loader{source: source, now: now, rng: rng}
}

// Load returns the day sequence and its derived stats. With useReal set
// it fetches the contribution calendar and falls back to synthesized
// data on any failure; otherwise it synthesizes directly.
func (l *Loader) Load(ctx context.Context, username string, useReal bool) ([]Day, Stats) {
	var days []Day

	if useReal && l.source != nil {
		raw, err := l.source.Contributions(ctx, username)
		if err != nil {
			log.Printf("contribution fetch failed, using synthesized data: %v", err)
		} else {
			days = Normalize(raw)
		}
	}

	if days == nil {
		days = Generate(l.now(), l.rng)
	}

	return days, ComputeStats(days)
}

// Normalize converts raw contribution days to Days, recomputing the
// heat-map level from the count and dropping days whose dates do not
// parse.
func Normalize(raw []github.ContributionDay) []Day {
	days := make([]Day, 0, len(raw))
	for _, r := range raw {
		date, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			log.Printf("skipping contribution day with bad date %q: %v", r.Date, err)
			continue
		}
		days = append(days, Day{Date: date, Count: r.Count, Level: LevelFor(r.Count)})
	}
	if len(days) == 0 {
		return nil
	}
	return days
}
