package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rsweeney/sleepaid/internal/domain"
	"github.com/rsweeney/sleepaid/internal/repository"
	"github.com/rsweeney/sleepaid/internal/score"
)

// ProfileService manages the onboarding profile.
type ProfileService interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.ProfileResponse, error)
	Save(ctx context.Context, userID uuid.UUID, req *domain.UpdateProfileRequest) (*domain.ProfileResponse, error)
}

type profileService struct {
	profileRepo  repository.ProfileRepository
	userRepo     repository.UserRepository
	sleepLogRepo repository.SleepLogRepository
}

func NewProfileService(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	sleepLogRepo repository.SleepLogRepository,
) ProfileService {
	return &profileService{
		profileRepo:  profileRepo,
		userRepo:     userRepo,
		sleepLogRepo: sleepLogRepo,
	}
}

func (s *profileService) Get(ctx context.Context, userID uuid.UUID) (*domain.ProfileResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	profile, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.buildResponse(ctx, userID, profile)
}

// Save replaces the stored profile with a complete three-section document
// and marks onboarding done. Legacy shapes never survive a save.
func (s *profileService) Save(ctx context.Context, userID uuid.UUID, req *domain.UpdateProfileRequest) (*domain.ProfileResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	// The custom goal choice needs its free text
	if req.SleepPatterns.Goal == domain.GoalCustomLabel && req.SleepPatterns.GoalCustom == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC().Format(time.RFC3339)
	profile := &domain.UserProfile{
		PersonalInfo:       req.PersonalInfo,
		SleepPatterns:      req.SleepPatterns,
		LifestyleSupport:   req.LifestyleSupport,
		OnboardingComplete: true,
		UpdatedAt:          now,
	}
	if existing, err := s.profileRepo.Get(ctx, userID); err == nil && existing.CreatedAt != "" {
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.CreatedAt = now
	}

	if err := s.profileRepo.Save(ctx, userID, profile); err != nil {
		return nil, err
	}

	// Read back through the repository so the response reflects the same
	// normalization every later read will see.
	saved, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.buildResponse(ctx, userID, saved)
}

func (s *profileService) buildResponse(ctx context.Context, userID uuid.UUID, profile *domain.UserProfile) (*domain.ProfileResponse, error) {
	logs, err := s.sleepLogRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := 0
	for i := range logs {
		total += score.Score(&logs[i], profile, 0)
	}
	avg := 0
	if len(logs) > 0 {
		avg = total / len(logs)
	}

	return &domain.ProfileResponse{
		UserProfile:   *profile,
		GoalLabel:     profile.GoalLabel(),
		StruggleLabel: profile.StruggleLabel(),
		AverageScore:  avg,
		SleepsLogged:  len(logs),
	}, nil
}
