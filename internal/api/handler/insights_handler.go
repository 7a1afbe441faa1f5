package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rsweeney/sleepaid/internal/api/validation"
	"github.com/rsweeney/sleepaid/internal/domain"
	"github.com/rsweeney/sleepaid/internal/langfuse"
	"github.com/rsweeney/sleepaid/internal/service"
	"github.com/rsweeney/sleepaid/pkg/problem"
)

// InsightsHandler handles dashboard, insights, and coaching endpoints.
type InsightsHandler struct {
	insightsService service.InsightsService
	coachService    service.CoachService
	langfuseClient  langfuse.Client
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(
	insightsService service.InsightsService,
	coachService service.CoachService,
	langfuseClient langfuse.Client,
) *InsightsHandler {
	return &InsightsHandler{
		insightsService: insightsService,
		coachService:    coachService,
		langfuseClient:  langfuseClient,
	}
}

// GetDashboard handles GET /v1/users/{userId}/dashboard
// @Summary Get the dashboard snapshot
// @Description Today's score, change against the previous night, and logging streaks.
// @Tags insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.DashboardResponse "Dashboard snapshot"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 403 {object} problem.Problem "Onboarding not complete"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/dashboard [get]
func (h *InsightsHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	result, err := h.insightsService.Dashboard(r.Context(), userID)
	if err != nil {
		writeInsightsError(w, err, "Failed to build dashboard")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetInsights handles GET /v1/users/{userId}/insights
// @Summary Get weekly insights
// @Description Seven-day score trend, averages, schedule drift, and goal progress.
// @Tags insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.InsightsResponse "Weekly insights"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 403 {object} problem.Problem "Onboarding not complete"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/insights [get]
func (h *InsightsHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	result, err := h.insightsService.Generate(r.Context(), userID)
	if err != nil {
		writeInsightsError(w, err, "Failed to generate insights")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetSuggestion handles GET /v1/users/{userId}/suggestion
// @Summary Get a coaching suggestion
// @Description One coaching message for the latest night. Falls back to built-in advice when the model is unavailable or the monthly budget is spent.
// @Tags insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.SuggestionResponse "Coaching suggestion"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 403 {object} problem.Problem "Onboarding not complete"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/suggestion [get]
func (h *InsightsHandler) GetSuggestion(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	result, err := h.coachService.Suggest(r.Context(), userID)
	if err != nil {
		writeInsightsError(w, err, "Failed to generate suggestion")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// PostSuggestionFeedback handles POST /v1/users/{userId}/suggestion/feedback
// @Summary Rate a coaching suggestion
// @Description Submit a rating tied to a suggestion's trace ID.
// @Tags insights
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param body body domain.SuggestionFeedbackRequest true "Feedback"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Router /users/{userId}/suggestion/feedback [post]
func (h *InsightsHandler) PostSuggestionFeedback(w http.ResponseWriter, r *http.Request) {
	if _, err := uuid.Parse(chi.URLParam(r, "userId")); err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.SuggestionFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	// Errors are logged inside the client; feedback is accepted either way
	_ = h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "user_rating",
		Value:   req.Value,
		Comment: req.Comment,
	})

	w.WriteHeader(http.StatusNoContent)
}

func writeInsightsError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, domain.ErrNotFound) {
		problem.NotFound("User not found").Write(w)
		return
	}
	if errors.Is(err, domain.ErrOnboardingIncomplete) {
		problem.Forbidden("Complete onboarding first").Write(w)
		return
	}
	problem.InternalError(fallback).Write(w)
}
