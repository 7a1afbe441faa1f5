package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rsweeney/sleepaid/internal/api/validation"
	"github.com/rsweeney/sleepaid/internal/domain"
	"github.com/rsweeney/sleepaid/internal/service"
	"github.com/rsweeney/sleepaid/pkg/problem"
)

type SleepLogHandler struct {
	service       service.SleepLogService
	exportService service.ExportService
}

func NewSleepLogHandler(service service.SleepLogService, exportService service.ExportService) *SleepLogHandler {
	return &SleepLogHandler{
		service:       service,
		exportService: exportService,
	}
}

// Create handles POST /v1/users/{userId}/sleep-logs
// @Summary Record a night
// @Description Log one night of sleep, keyed by date. Logging the same date again overwrites the earlier entry; 200 signals an overwrite, 201 a new entry.
// @Tags sleep-logs
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.CreateSleepLogRequest true "Night data"
// @Success 201 {object} domain.SleepLogResponse "New entry created"
// @Success 200 {object} domain.SleepLogResponse "Existing entry for the date overwritten"
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 403 {object} problem.Problem "Onboarding not complete"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-logs [post]
func (h *SleepLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateSleepLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	log, replaced, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrOnboardingIncomplete) {
			problem.Forbidden("Complete onboarding before logging sleep").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid bed or wake time").Write(w)
			return
		}
		problem.InternalError("Failed to record sleep log").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if replaced {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusCreated)
	}
	json.NewEncoder(w).Encode(log.ToResponse())
}

// List handles GET /v1/users/{userId}/sleep-logs
// @Summary List sleep history
// @Description Fetch paginated sleep history, newest date first. Filter by date range.
// @Tags sleep-logs
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param from query string false "Inclusive lower date bound" format(date) example(2024-01-01)
// @Param to query string false "Inclusive upper date bound" format(date) example(2024-01-31)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.SleepLogListResponse "Sleep logs with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-logs [get]
func (h *SleepLogHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list sleep logs").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Export handles GET /v1/users/{userId}/sleep-logs/export
// @Summary Export sleep history
// @Description Download the full sleep history as CSV (default) or PDF.
// @Tags sleep-logs
// @Produce text/csv
// @Produce application/pdf
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param format query string false "Export format" Enums(csv, pdf) default(csv)
// @Success 200 {file} file "Exported history"
// @Failure 400 {object} problem.Problem "Unknown format"
// @Failure 403 {object} problem.Problem "Onboarding not complete"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-logs/export [get]
func (h *SleepLogHandler) Export(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	format := r.URL.Query().Get("format")
	data, contentType, filename, err := h.exportService.Export(r.Context(), userID, format)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrOnboardingIncomplete) {
			problem.Forbidden("Complete onboarding before exporting").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Unknown export format").Write(w)
			return
		}
		problem.InternalError("Failed to export sleep history").Write(w)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}

func parseListFilter(r *http.Request) (domain.SleepLogFilter, []problem.FieldError) {
	var filter domain.SleepLogFilter
	var fieldErrors []problem.FieldError

	if from := r.URL.Query().Get("from"); from != "" {
		if _, err := time.Parse(domain.DateLayout, from); err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a date in YYYY-MM-DD form",
			})
		} else {
			filter.From = from
		}
	}

	if to := r.URL.Query().Get("to"); to != "" {
		if _, err := time.Parse(domain.DateLayout, to); err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a date in YYYY-MM-DD form",
			})
		} else {
			filter.To = to
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = r.URL.Query().Get("cursor")

	if fieldErrors != nil {
		return domain.SleepLogFilter{}, fieldErrors
	}
	return filter, nil
}
