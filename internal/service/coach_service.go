package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rsweeney/sleepaid/internal/domain"
	"github.com/rsweeney/sleepaid/internal/langfuse"
	"github.com/rsweeney/sleepaid/internal/llm"
	"github.com/rsweeney/sleepaid/internal/repository"
	"github.com/rsweeney/sleepaid/internal/score"
)

const (
	// MonthlyMessageLimit caps model-generated suggestions per user per
	// calendar month.
	MonthlyMessageLimit = 100

	// monthLayout keys the usage counter by calendar month.
	monthLayout = "2006-01"

	// SuggestionSourceAI marks model-generated suggestions.
	SuggestionSourceAI = "ai"
	// SuggestionSourceRule marks built-in fallback suggestions.
	SuggestionSourceRule = "rule"
)

// DefaultCoachPrompt is the embedded system prompt, used when no managed
// prompt can be loaded.
const DefaultCoachPrompt = "You are a helpful sleep coach."

const limitMessage = "(AI suggestion unavailable: message limit reached.)"

const userPromptTemplate = `User's sleep score: %d
User's main sleep goal: %s
User's biggest struggle: %s
Sleep log summary: %s
Write a short, friendly, and practical suggestion (1-2 sentences) to help the user improve their sleep, referencing their score, goal, and struggle.`

// CoachService produces one coaching suggestion per request, falling back
// to built-in advice when the model is unavailable or the budget is spent.
type CoachService interface {
	// Suggest never fails over to an error for model problems; only
	// storage errors propagate.
	Suggest(ctx context.Context, userID uuid.UUID) (*domain.SuggestionResponse, error)
}

type coachService struct {
	llmClient    llm.SuggestionLLM
	langfuse     langfuse.Client
	systemPrompt string
	sleepLogRepo repository.SleepLogRepository
	profileRepo  repository.ProfileRepository
	userRepo     repository.UserRepository
	usageRepo    repository.UsageRepository
	now          func() time.Time
}

func NewCoachService(
	llmClient llm.SuggestionLLM,
	langfuseClient langfuse.Client,
	systemPrompt string,
	sleepLogRepo repository.SleepLogRepository,
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	usageRepo repository.UsageRepository,
) CoachService {
	if systemPrompt == "" {
		systemPrompt = DefaultCoachPrompt
	}
	return &coachService{
		llmClient:    llmClient,
		langfuse:     langfuseClient,
		systemPrompt: systemPrompt,
		sleepLogRepo: sleepLogRepo,
		profileRepo:  profileRepo,
		userRepo:     userRepo,
		usageRepo:    usageRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *coachService) Suggest(ctx context.Context, userID uuid.UUID) (*domain.SuggestionResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	profile, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrOnboardingIncomplete
		}
		return nil, err
	}
	if !profile.OnboardingComplete {
		return nil, domain.ErrOnboardingIncomplete
	}

	logs, err := s.sleepLogRepo.ListRecent(ctx, userID, 1)
	if err != nil {
		return nil, err
	}

	var latest *domain.SleepLog
	nightScore := 0
	if len(logs) > 0 {
		latest = &logs[0]
		nightScore = score.Score(latest, profile, 0)
	}

	month := s.now().Format(monthLayout)
	used, err := s.usageRepo.MessagesUsed(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	response := &domain.SuggestionResponse{
		Score:        nightScore,
		Source:       SuggestionSourceRule,
		MessagesUsed: used,
	}

	// No model, no log, or spent budget: answer from the rule table
	// without touching the counter.
	if used >= MonthlyMessageLimit {
		response.Suggestion = limitMessage
		return response, nil
	}
	if s.llmClient == nil || latest == nil {
		response.Suggestion = cannedSuggestion(nightScore)
		return response, nil
	}

	logSummary, _ := json.Marshal(latest.ToResponse())
	userPrompt := fmt.Sprintf(userPromptTemplate,
		nightScore,
		profile.GoalLabel(),
		profile.StruggleLabel(),
		logSummary,
	)

	suggestion, err := s.llmClient.Suggest(ctx, s.systemPrompt, userPrompt)
	if err != nil {
		response.Suggestion = fmt.Sprintf("(AI suggestion unavailable: %v)", err)
		return response, nil
	}

	if err := s.usageRepo.Increment(ctx, userID, month); err != nil {
		return nil, err
	}

	response.Suggestion = suggestion
	response.Source = SuggestionSourceAI
	response.MessagesUsed = used + 1

	if s.langfuse != nil && s.langfuse.IsEnabled() {
		traceID, err := s.langfuse.CreateTrace(ctx, langfuse.TraceInput{
			UserID: userID.String(),
			Name:   "sleep-coach",
			Input:  userPrompt,
			Output: suggestion,
			Tags:   []string{"coach"},
			Metadata: map[string]any{
				"score": nightScore,
			},
		})
		if err == nil {
			response.TraceID = traceID
		}
	}

	return response, nil
}

// cannedSuggestion is the rule-based fallback, bucketed by score.
func cannedSuggestion(nightScore int) string {
	switch {
	case nightScore >= 90:
		return "Excellent! Maintain your routine and avoid screens before bed."
	case nightScore >= 75:
		return "Good! Try to sleep a bit earlier for even better rest."
	default:
		return "You might benefit from cutting late-night screen time or adjusting your sleep schedule."
	}
}
