package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rsweeney/sleepaid/internal/domain"
)

type coachFixture struct {
	svc       *coachService
	llmClient *MockSuggestionLLM
	usageRepo *MockUsageRepository
	userID    uuid.UUID
}

func newCoachFixture(t *testing.T, withLog bool) *coachFixture {
	t.Helper()
	userRepo := NewMockUserRepository()
	profileRepo := NewMockProfileRepository()
	logRepo := NewMockSleepLogRepository()
	usageRepo := NewMockUsageRepository()
	llmClient := NewMockSuggestionLLM("Dim the lights an hour before bed.")

	user := &domain.User{Email: "night.owl@example.com", PasswordHash: "x"}
	if err := userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	profileRepo.Save(context.Background(), user.ID, onboardedProfile())

	if withLog {
		log := nightOf("2024-01-15")
		log.UserID = user.ID
		logRepo.Upsert(context.Background(), log)
	}

	svc := &coachService{
		llmClient:    llmClient,
		systemPrompt: DefaultCoachPrompt,
		sleepLogRepo: logRepo,
		profileRepo:  profileRepo,
		userRepo:     userRepo,
		usageRepo:    usageRepo,
		now: func() time.Time {
			return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
		},
	}
	return &coachFixture{svc: svc, llmClient: llmClient, usageRepo: usageRepo, userID: user.ID}
}

func TestCoachService_Suggest(t *testing.T) {
	f := newCoachFixture(t, true)

	resp, err := f.svc.Suggest(context.Background(), f.userID)
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if resp.Source != SuggestionSourceAI {
		t.Errorf("Source = %q, want %q", resp.Source, SuggestionSourceAI)
	}
	if resp.Suggestion != "Dim the lights an hour before bed." {
		t.Errorf("Suggestion = %q", resp.Suggestion)
	}
	if resp.MessagesUsed != 1 {
		t.Errorf("MessagesUsed = %d, want 1", resp.MessagesUsed)
	}

	used, _ := f.usageRepo.MessagesUsed(context.Background(), f.userID, "2024-01")
	if used != 1 {
		t.Errorf("usage counter = %d, want 1", used)
	}
}

func TestCoachService_SuggestAtMonthlyLimit(t *testing.T) {
	f := newCoachFixture(t, true)
	f.usageRepo.Seed(f.userID, "2024-01", MonthlyMessageLimit)

	resp, err := f.svc.Suggest(context.Background(), f.userID)
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if resp.Source != SuggestionSourceRule {
		t.Errorf("Source = %q, want rule", resp.Source)
	}
	if resp.Suggestion != limitMessage {
		t.Errorf("Suggestion = %q, want limit message", resp.Suggestion)
	}
	if f.llmClient.Calls() != 0 {
		t.Errorf("model called %d times at the limit, want 0", f.llmClient.Calls())
	}

	used, _ := f.usageRepo.MessagesUsed(context.Background(), f.userID, "2024-01")
	if used != MonthlyMessageLimit {
		t.Errorf("usage counter = %d, limit reply must not increment", used)
	}
}

func TestCoachService_SuggestModelFailure(t *testing.T) {
	f := newCoachFixture(t, true)
	f.llmClient.SetError(errors.New("rate limited"))

	resp, err := f.svc.Suggest(context.Background(), f.userID)
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if resp.Source != SuggestionSourceRule {
		t.Errorf("Source = %q, want rule", resp.Source)
	}
	if !strings.Contains(resp.Suggestion, "AI suggestion unavailable") {
		t.Errorf("Suggestion = %q", resp.Suggestion)
	}

	used, _ := f.usageRepo.MessagesUsed(context.Background(), f.userID, "2024-01")
	if used != 0 {
		t.Errorf("usage counter = %d, failed call must not increment", used)
	}
}

func TestCoachService_SuggestWithoutLogs(t *testing.T) {
	f := newCoachFixture(t, false)

	resp, err := f.svc.Suggest(context.Background(), f.userID)
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if resp.Source != SuggestionSourceRule {
		t.Errorf("Source = %q, want rule", resp.Source)
	}
	if resp.Score != 0 {
		t.Errorf("Score = %d, want 0 without logs", resp.Score)
	}
	if f.llmClient.Calls() != 0 {
		t.Errorf("model called %d times without a log, want 0", f.llmClient.Calls())
	}
}

func TestCoachService_SuggestNoModelConfigured(t *testing.T) {
	f := newCoachFixture(t, true)
	f.svc.llmClient = nil

	resp, err := f.svc.Suggest(context.Background(), f.userID)
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	// A great night earns the top canned message
	if resp.Suggestion != "Excellent! Maintain your routine and avoid screens before bed." {
		t.Errorf("Suggestion = %q", resp.Suggestion)
	}
}

func TestCoachService_SuggestRequiresOnboarding(t *testing.T) {
	f := newCoachFixture(t, true)
	f.svc.profileRepo = NewMockProfileRepository()

	_, err := f.svc.Suggest(context.Background(), f.userID)
	if err != domain.ErrOnboardingIncomplete {
		t.Errorf("Suggest() error = %v, want ErrOnboardingIncomplete", err)
	}
}

func TestCannedSuggestion(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{95, "Excellent! Maintain your routine and avoid screens before bed."},
		{90, "Excellent! Maintain your routine and avoid screens before bed."},
		{80, "Good! Try to sleep a bit earlier for even better rest."},
		{75, "Good! Try to sleep a bit earlier for even better rest."},
		{50, "You might benefit from cutting late-night screen time or adjusting your sleep schedule."},
		{0, "You might benefit from cutting late-night screen time or adjusting your sleep schedule."},
	}
	for _, tt := range tests {
		if got := cannedSuggestion(tt.score); got != tt.want {
			t.Errorf("cannedSuggestion(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
