package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rsweeney/sleepaid/internal/domain"
	"github.com/rsweeney/sleepaid/internal/repository"
	"github.com/rsweeney/sleepaid/pkg/pagination"
)

// SleepLogService records nights and lists log history.
type SleepLogService interface {
	// Create records one night. Returns (log, replaced, error); replaced
	// is true when an existing entry for the same date was overwritten.
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepLogRequest) (*domain.SleepLog, bool, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SleepLogFilter) (*domain.SleepLogListResponse, error)
}

type sleepLogService struct {
	repo        repository.SleepLogRepository
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

func NewSleepLogService(
	repo repository.SleepLogRepository,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
) SleepLogService {
	return &sleepLogService{
		repo:        repo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

func (s *sleepLogService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepLogRequest) (*domain.SleepLog, bool, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if !exists {
		return nil, false, domain.ErrNotFound
	}

	// Logging is gated behind finished onboarding
	profile, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, false, domain.ErrOnboardingIncomplete
		}
		return nil, false, err
	}
	if !profile.OnboardingComplete {
		return nil, false, domain.ErrOnboardingIncomplete
	}

	date := req.Date
	if date == "" {
		date = time.Now().UTC().Format(domain.DateLayout)
	}

	efficiency, err := domain.ComputeEfficiency(req.HoursSlept, req.BedTime, req.WakeTime)
	if err != nil {
		return nil, false, domain.ErrInvalidInput
	}

	wakeups := domain.CollapseWakeups(req.WokeUpTimes)

	replaced := false
	if _, err := s.repo.GetByDate(ctx, userID, date); err == nil {
		replaced = true
	} else if err != domain.ErrNotFound {
		return nil, false, err
	}

	log := &domain.SleepLog{
		UserID:           userID,
		Date:             date,
		HoursSlept:       req.HoursSlept,
		TimeInBed:        req.TimeInBed,
		TimeToFallAsleep: req.TimeToFallAsleep,
		BedTime:          req.BedTime,
		WakeTime:         req.WakeTime,
		SleepEfficiency:  efficiency,
		WokeUpFeeling:    domain.TagList(req.WokeUpFeeling),
		WokeUpNight:      wakeups > 0,
		WokeUpTimes:      wakeups,
		QualityRating:    req.QualityRating,
		SleepEnvironment: domain.TagList(req.SleepEnvironment),
		MentalState:      domain.TagList(req.MentalState),
		Notes:            req.Notes,
	}

	if err := s.repo.Upsert(ctx, log); err != nil {
		return nil, false, err
	}

	// Read back so the caller sees the stored row, including the id of a
	// replaced entry, instead of the transient insert value.
	stored, err := s.repo.GetByDate(ctx, userID, date)
	if err != nil {
		return nil, false, err
	}
	return stored, replaced, nil
}

func (s *sleepLogService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepLogFilter) (*domain.SleepLogListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	logs, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(logs) > limit
	if hasMore {
		logs = logs[:limit]
	}

	response := &domain.SleepLogListResponse{
		Data: make([]domain.SleepLogResponse, 0, len(logs)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	for i := range logs {
		response.Data = append(response.Data, logs[i].ToResponse())
	}
	if hasMore && len(logs) > 0 {
		last := logs[len(logs)-1]
		cursor := pagination.Cursor{ID: last.ID, Date: last.Date}
		response.Pagination.NextCursor = cursor.Encode()
	}
	return response, nil
}
