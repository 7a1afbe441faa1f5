package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rsweeney/sleepaid/internal/domain"
	"github.com/rsweeney/sleepaid/internal/repository"
	"github.com/rsweeney/sleepaid/internal/score"
)

const (
	// RecentWindowDays is the trend and averages window.
	RecentWindowDays = 7
	// maxDriftPairs caps how many adjacent-night pairs feed the drift
	// averages.
	maxDriftPairs = 6
)

// InsightsService computes the dashboard snapshot and the weekly insights.
type InsightsService interface {
	Dashboard(ctx context.Context, userID uuid.UUID) (*domain.DashboardResponse, error)
	Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
}

type insightsService struct {
	sleepLogRepo repository.SleepLogRepository
	profileRepo  repository.ProfileRepository
	userRepo     repository.UserRepository
	now          func() time.Time
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(
	sleepLogRepo repository.SleepLogRepository,
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
) InsightsService {
	return &insightsService{
		sleepLogRepo: sleepLogRepo,
		profileRepo:  profileRepo,
		userRepo:     userRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *insightsService) Dashboard(ctx context.Context, userID uuid.UUID) (*domain.DashboardResponse, error) {
	profile, logs, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := s.now().Format(domain.DateLayout)

	response := &domain.DashboardResponse{
		FirstName: profile.PersonalInfo.FirstName,
	}

	// logs come newest first; today's entry, when present, is the head
	if len(logs) > 0 {
		latest := logs[0].ToResponse()
		response.LatestLog = &latest
	}

	// Bedtime delta between the two newest logs backs the consistency
	// factor when the night's own bedtime cannot be parsed. Earlier
	// nights score with a zero delta.
	latestDelta := 0.0
	if len(logs) > 1 {
		if d, err := clockDiffMinutes(logs[0].BedTime, logs[1].BedTime); err == nil {
			latestDelta = d
		}
	}

	prevScore := 0
	prevFound := false
	for i := range logs {
		if logs[i].Date == today {
			response.TodayScore = score.Score(&logs[i], profile, latestDelta)
			response.LoggedToday = true
			continue
		}
		if logs[i].Date < today && !prevFound {
			prevScore = score.Score(&logs[i], profile, 0)
			prevFound = true
		}
	}
	response.ChangePercent = score.ChangePercent(response.TodayScore, prevScore)

	response.CurrentStreak, response.LongestStreak = score.Streaks(logs)
	response.Milestone = score.MilestoneHit(response.CurrentStreak)

	return response, nil
}

func (s *insightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	tracer := otel.Tracer("sleepaid-api/insights")
	ctx, span := tracer.Start(ctx, "InsightsService.Generate",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
		))
	defer span.End()

	profile, logs, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("logs.count", len(logs)))

	today := s.now()
	response := &domain.InsightsResponse{}

	// Per-day scores across the whole history; the trend picks out the
	// last seven calendar days, missing days stay at zero.
	scores := make(map[string]int, len(logs))
	for i := range logs {
		scores[logs[i].Date] = score.Score(&logs[i], profile, 0)
	}

	response.Trend = make([]domain.TrendDay, 0, RecentWindowDays)
	for offset := RecentWindowDays - 1; offset >= 0; offset-- {
		day := today.AddDate(0, 0, -offset)
		date := day.Format(domain.DateLayout)
		sc, logged := scores[date]
		response.Trend = append(response.Trend, domain.TrendDay{
			Date:   date,
			Label:  day.Weekday().String()[:3],
			Score:  sc,
			Logged: logged,
		})
	}

	response.AverageScore, response.BestScore, response.LowestScore = trendStats(response.Trend)

	recent := logs
	if len(recent) > RecentWindowDays {
		recent = recent[:RecentWindowDays]
	}
	response.BedTimeDriftMin, response.WakeTimeDriftMin = clockDrift(recent)
	response.GoalProgress = goalProgress(recent, profile.SleepPatterns.SleepDurationGoal)
	response.AvgHoursSlept, response.AvgTimeToSleepMin, response.AvgWakeups = recentAverages(recent)
	response.CommonFeeling = commonFeeling(recent)

	if outputJSON, err := json.Marshal(response); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return response, nil
}

func (s *insightsService) load(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, []domain.SleepLog, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if !exists {
		return nil, nil, domain.ErrNotFound
	}

	profile, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, nil, domain.ErrOnboardingIncomplete
		}
		return nil, nil, err
	}
	if !profile.OnboardingComplete {
		return nil, nil, domain.ErrOnboardingIncomplete
	}

	logs, err := s.sleepLogRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return profile, logs, nil
}

// trendStats averages only the logged days; a week with no logs reports
// all zeroes.
func trendStats(trend []domain.TrendDay) (avg, best, lowest int) {
	sum, count := 0, 0
	for _, day := range trend {
		if day.Score <= 0 {
			continue
		}
		sum += day.Score
		count++
		if day.Score > best {
			best = day.Score
		}
		if lowest == 0 || day.Score < lowest {
			lowest = day.Score
		}
	}
	if count == 0 {
		return 0, 0, 0
	}
	return sum / count, best, lowest
}

// clockDrift averages the absolute bed-time and wake-time differences
// between adjacent nights, newest first. Malformed clock values skip the
// pair rather than failing the whole computation.
func clockDrift(logs []domain.SleepLog) (bedDrift, wakeDrift int) {
	pairs := len(logs) - 1
	if pairs > maxDriftPairs {
		pairs = maxDriftPairs
	}
	if pairs <= 0 {
		return 0, 0
	}

	var bedDiffs, wakeDiffs []float64
	for i := 1; i <= pairs; i++ {
		if d, err := clockDiffMinutes(logs[i-1].BedTime, logs[i].BedTime); err == nil {
			bedDiffs = append(bedDiffs, d)
		}
		if d, err := clockDiffMinutes(logs[i-1].WakeTime, logs[i].WakeTime); err == nil {
			wakeDiffs = append(wakeDiffs, d)
		}
	}
	return int(mean(bedDiffs)), int(mean(wakeDiffs))
}

func clockDiffMinutes(a, b string) (float64, error) {
	ta, err := time.Parse(domain.ClockLayout, a)
	if err != nil {
		return 0, err
	}
	tb, err := time.Parse(domain.ClockLayout, b)
	if err != nil {
		return 0, err
	}
	return math.Abs(ta.Sub(tb).Minutes()), nil
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// goalProgress is the percentage of recent nights whose hours slept land
// inside the duration-goal range.
func goalProgress(logs []domain.SleepLog, goalLabel string) int {
	if len(logs) == 0 {
		return 0
	}
	goal := score.DurationGoalRange(goalLabel)
	inGoal := 0
	for i := range logs {
		if logs[i].HoursSlept >= goal.Min && logs[i].HoursSlept <= goal.Max {
			inGoal++
		}
	}
	return int(float64(inGoal) / float64(len(logs)) * 100)
}

func recentAverages(logs []domain.SleepLog) (hours, latency, wakeups float64) {
	if len(logs) == 0 {
		return 0, 0, 0
	}
	for i := range logs {
		hours += logs[i].HoursSlept
		latency += float64(logs[i].TimeToFallAsleep)
		wakeups += float64(logs[i].WokeUpTimes)
	}
	n := float64(len(logs))
	return hours / n, latency / n, wakeups / n
}

// commonFeeling finds the most frequent first morning tag. Ties go to
// the feeling seen first in the newest-first scan, so repeated calls
// over the same data always agree.
func commonFeeling(logs []domain.SleepLog) string {
	counts := make(map[string]int)
	order := make([]string, 0)
	for i := range logs {
		if len(logs[i].WokeUpFeeling) == 0 {
			continue
		}
		feeling := logs[i].WokeUpFeeling[0]
		if _, seen := counts[feeling]; !seen {
			order = append(order, feeling)
		}
		counts[feeling]++
	}

	best := ""
	bestCount := 0
	for _, feeling := range order {
		if counts[feeling] > bestCount {
			best = feeling
			bestCount = counts[feeling]
		}
	}
	return best
}
