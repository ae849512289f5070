package activity

import (
	"math/rand"
	"testing"
	"time"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{6, 3},
		{7, 4},
		{20, 4},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.count); got != tt.want {
			t.Errorf("LevelFor(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}

// daysWithCounts builds a sequence of consecutive days starting at start,
// one per count.
func daysWithCounts(start time.Time, counts ...int) []Day {
	days := make([]Day, len(counts))
	for i, c := range counts {
		days[i] = Day{
			Date:  start.AddDate(0, 0, i),
			Count: c,
			Level: LevelFor(c),
		}
	}
	return days
}

func TestCurrentStreakCountsTrailingRun(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	days := daysWithCounts(start, 2, 0, 1, 4, 3)

	stats := ComputeStats(days)
	if stats.CurrentStreak != 3 {
		t.Errorf("expected current streak of 3, got %d", stats.CurrentStreak)
	}
	if stats.LongestStreak != 3 {
		t.Errorf("expected longest streak of 3, got %d", stats.LongestStreak)
	}
	if stats.Total != 10 {
		t.Errorf("expected total of 10, got %d", stats.Total)
	}
}

func TestCurrentStreakZeroWhenLatestDayIdle(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	days := daysWithCounts(start, 1, 2, 3, 0)

	stats := ComputeStats(days)
	if stats.CurrentStreak != 0 {
		t.Errorf("expected no current streak, got %d", stats.CurrentStreak)
	}
	if stats.LongestStreak != 3 {
		t.Errorf("expected longest streak of 3, got %d", stats.LongestStreak)
	}
}

func TestStatsAllZeroYear(t *testing.T) {
	start := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)
	days := daysWithCounts(start, make([]int, 365)...)

	stats := ComputeStats(days)
	if stats.Total != 0 || stats.CurrentStreak != 0 || stats.LongestStreak != 0 {
		t.Errorf("expected all-zero stats, got %+v", stats)
	}
	if stats.AveragePerDay != 0 {
		t.Errorf("expected zero average, got %f", stats.AveragePerDay)
	}
}

func TestStatsFullyActiveSequence(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	days := daysWithCounts(start, 1, 1, 1, 1, 1)

	stats := ComputeStats(days)
	if stats.CurrentStreak != 5 {
		t.Errorf("expected current streak of 5, got %d", stats.CurrentStreak)
	}
	if stats.LongestStreak != 5 {
		t.Errorf("expected longest streak of 5, got %d", stats.LongestStreak)
	}
}

func TestWeeksPadsFirstWeekToWeekday(t *testing.T) {
	// 2026-09-02 is a Wednesday, so the first column needs 3 pad cells.
	start := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	days := daysWithCounts(start, 1, 2, 3, 4, 5, 6, 7, 1, 2, 3)

	weeks := Weeks(days)
	if len(weeks) != 2 {
		t.Fatalf("expected 2 weeks, got %d", len(weeks))
	}
	for i := 0; i < 3; i++ {
		if !weeks[0][i].Placeholder() {
			t.Errorf("cell %d of week 0 should be a placeholder", i)
		}
	}
	if weeks[0][3].Placeholder() {
		t.Error("cell 3 of week 0 should be the first real day")
	}
	if got := weeks[0][3].Date; !got.Equal(start) {
		t.Errorf("first real cell has date %v, want %v", got, start)
	}
	if len(weeks[1]) != 6 {
		t.Errorf("expected 6 days in the trailing week, got %d", len(weeks[1]))
	}
}

func TestWeeksStartingSundayHasNoPadding(t *testing.T) {
	// 2026-08-30 is a Sunday.
	start := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	days := daysWithCounts(start, 1, 2, 3)

	weeks := Weeks(days)
	if len(weeks) != 1 {
		t.Fatalf("expected 1 week, got %d", len(weeks))
	}
	if weeks[0][0].Placeholder() {
		t.Error("Sunday start should not be padded")
	}
}

func TestGenerateCoversFullYear(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC)
	days := Generate(now, rand.New(rand.NewSource(1)))

	if len(days) != 366 {
		t.Fatalf("expected 366 days (year boundary inclusive), got %d", len(days))
	}
	first := days[0].Date
	last := days[len(days)-1].Date
	if want := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC); !first.Equal(want) {
		t.Errorf("first day %v, want %v", first, want)
	}
	if want := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC); !last.Equal(want) {
		t.Errorf("last day %v, want %v", last, want)
	}

	for _, d := range days {
		if d.Count < 0 || d.Count > maxGeneratedCount {
			t.Fatalf("day %v has count %d outside [0, %d]", d.Date, d.Count, maxGeneratedCount)
		}
		if d.Level != LevelFor(d.Count) {
			t.Fatalf("day %v has level %d, want %d", d.Date, d.Level, LevelFor(d.Count))
		}
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	a := Generate(now, rand.New(rand.NewSource(42)))
	b := Generate(now, rand.New(rand.NewSource(42)))

	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("day %d differs between identical seeds: %+v vs %+v", i, a[i], b[i])
		}
	}
}
