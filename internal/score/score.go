// Package score computes the nightly sleep score and logging streaks.
// Everything here is pure: no I/O, no clocks, deterministic outputs.
package score

import (
	"math"
	"time"

	"github.com/rsweeney/sleepaid/internal/domain"
)

// Factor weights. They sum to 1.0 so the score lands on a 0-100 scale.
const (
	WeightDuration    = 0.25
	WeightLatency     = 0.15
	WeightWakeups     = 0.10
	WeightEnergy      = 0.10
	WeightConsistency = 0.10
	WeightEfficiency  = 0.15
	WeightEnvironment = 0.10
	WeightStress      = 0.05
)

// environmentTagCap is the tag count that earns a full environment score.
const environmentTagCap = 5

// GoalRange is the target sleep-duration interval in hours.
type GoalRange struct {
	Min float64
	Max float64
}

var durationGoalRanges = map[string]GoalRange{
	"<6 hours":  {0, 6},
	"6-7 hours": {6, 7},
	"7-8 hours": {7, 8},
	"8+ hours":  {8, 24},
}

// DurationGoalRange resolves a profile's duration-goal label to an hour
// range, falling back to 7-8 hours for unknown labels.
func DurationGoalRange(label string) GoalRange {
	if r, ok := durationGoalRanges[label]; ok {
		return r
	}
	return GoalRange{7, 8}
}

// Score computes the weighted 0-100 sleep score for one night against the
// user's profile. fallbackConsistency is the bedtime delta in minutes used
// for the consistency factor when either clock time fails to parse.
func Score(log *domain.SleepLog, profile *domain.UserProfile, fallbackConsistency float64) int {
	total := WeightDuration*durationScore(log.HoursSlept, profile.SleepPatterns.SleepDurationGoal) +
		WeightLatency*latencyScore(log.TimeToFallAsleep, profile.SleepPatterns.TimeToFallAsleep) +
		WeightWakeups*wakeupScore(log.WokeUpTimes, profile.SleepPatterns.WakesUpAtNight, profile.SleepPatterns.WakeUpCount) +
		WeightEnergy*energyScore(log.WokeUpFeeling) +
		WeightConsistency*consistencyScore(log.BedTime, profile.SleepPatterns.UsualBedtime, fallbackConsistency) +
		WeightEfficiency*efficiencyScore(log.HoursSlept, log.TimeInBed) +
		WeightEnvironment*environmentScore(log.SleepEnvironment) +
		WeightStress*stressScore(log.MentalState)

	return int(math.Min(total, 100))
}

// durationScore buckets hours slept against the goal range: inside the
// range scores 100, then 75 within half an hour, 50 within an hour, 20
// beyond that.
func durationScore(hours float64, goalLabel string) float64 {
	goal := DurationGoalRange(goalLabel)
	switch {
	case hours >= goal.Min && hours <= goal.Max:
		return 100
	case hours >= goal.Min-0.5 && hours <= goal.Max+0.5:
		return 75
	case hours >= goal.Min-1 && hours <= goal.Max+1:
		return 50
	default:
		return 20
	}
}

func latencyScore(minutes, goalMinutes int) float64 {
	if goalMinutes <= 0 {
		goalMinutes = domain.DefaultLatencyGoal
	}
	switch {
	case minutes <= goalMinutes:
		return 100
	case minutes <= goalMinutes+10:
		return 70
	default:
		return 30
	}
}

// wakeupScore grades against the habitual count when the user normally
// wakes at night, otherwise against zero.
func wakeupScore(times int, habitual bool, habitualCount int) float64 {
	if habitual {
		diff := times - habitualCount
		if diff < 0 {
			diff = -diff
		}
		switch diff {
		case 0:
			return 100
		case 1:
			return 70
		default:
			return 30
		}
	}
	switch {
	case times == 0:
		return 100
	case times == 1:
		return 70
	default:
		return 30
	}
}

// energyScore reads only the first morning tag; an empty list counts as
// feeling okay.
func energyScore(feelings domain.TagList) float64 {
	feeling := domain.FeelingOkay
	if len(feelings) > 0 {
		feeling = feelings[0]
	}
	switch feeling {
	case domain.FeelingEnergized, domain.FeelingRefreshed, domain.FeelingMotivated:
		return 100
	case domain.FeelingOkay, domain.FeelingMeh:
		return 70
	default:
		return 30
	}
}

// consistencyScore buckets the minute gap between the night's bedtime and
// the usual one. When either clock value fails to parse, the caller's
// fallback delta stands in for the gap and runs through the same buckets.
func consistencyScore(bedTime, usualBedtime string, fallback float64) float64 {
	diff := fallback
	bed, bedErr := time.Parse(domain.ClockLayout, bedTime)
	usual, usualErr := time.Parse(domain.ClockLayout, usualBedtime)
	if bedErr == nil && usualErr == nil {
		diff = math.Abs(bed.Sub(usual).Minutes())
	}
	switch {
	case diff <= 15:
		return 100
	case diff <= 30:
		return 70
	default:
		return 30
	}
}

func efficiencyScore(hours, timeInBed float64) float64 {
	if timeInBed <= 0 {
		timeInBed = hours
		if timeInBed <= 0 {
			timeInBed = 8
		}
	}
	if timeInBed == 0 {
		return 30
	}
	efficiency := hours / timeInBed * 100
	switch {
	case efficiency >= 90:
		return 100
	case efficiency >= 75:
		return 70
	default:
		return 30
	}
}

func environmentScore(tags domain.TagList) float64 {
	n := len(tags)
	if n > environmentTagCap {
		n = environmentTagCap
	}
	return float64(n) / environmentTagCap * 100
}

// stressScore reads only the first mental-state tag; an empty list counts
// as neutral.
func stressScore(states domain.TagList) float64 {
	state := domain.MentalNeutral
	if len(states) > 0 {
		state = states[0]
	}
	switch state {
	case domain.MentalRelaxed:
		return 100
	case domain.MentalNeutral:
		return 60
	default:
		return 20
	}
}
