package score

import (
	"sort"
	"time"

	"github.com/rsweeney/sleepaid/internal/domain"
)

// Streaks computes the current and longest runs of consecutive logged
// days from a set of per-day log dates. The current streak counts back
// from the newest logged day; any gap larger than one day ends it.
// Unparsable dates are skipped rather than breaking a run.
func Streaks(logs []domain.SleepLog) (current, longest int) {
	dates := make([]time.Time, 0, len(logs))
	seen := make(map[string]struct{}, len(logs))
	for i := range logs {
		if _, dup := seen[logs[i].Date]; dup {
			continue
		}
		d, err := time.Parse(domain.DateLayout, logs[i].Date)
		if err != nil {
			continue
		}
		seen[logs[i].Date] = struct{}{}
		dates = append(dates, d)
	}
	if len(dates) == 0 {
		return 0, 0
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	current = 1
	for i := 1; i < len(dates); i++ {
		gap := dates[i-1].Sub(dates[i]).Hours() / 24
		if gap > 1 {
			break
		}
		current++
	}

	longest = 1
	run := 1
	for i := 1; i < len(dates); i++ {
		gap := dates[i-1].Sub(dates[i]).Hours() / 24
		if gap == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return current, longest
}

// MilestoneHit returns the milestone matched exactly by the current
// streak, or 0 when the streak is not a milestone.
func MilestoneHit(current int) int {
	for _, m := range domain.StreakMilestones {
		if current == m {
			return m
		}
	}
	return 0
}

// ChangePercent is the integer percent change from prev to today. A rise
// from zero reports 100.
func ChangePercent(today, prev int) int {
	if prev == 0 {
		if today > 0 {
			return 100
		}
		return 0
	}
	return int(float64(today-prev) / float64(prev) * 100)
}
