package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/rsweeney/sleepaid/internal/domain"
)

func newSleepLogFixture(t *testing.T) (SleepLogService, *MockSleepLogRepository, uuid.UUID) {
	t.Helper()
	userRepo := NewMockUserRepository()
	profileRepo := NewMockProfileRepository()
	logRepo := NewMockSleepLogRepository()

	user := &domain.User{Email: "night.owl@example.com", PasswordHash: "x"}
	if err := userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	profileRepo.Save(context.Background(), user.ID, onboardedProfile())

	return NewSleepLogService(logRepo, userRepo, profileRepo), logRepo, user.ID
}

func validCreateRequest(date string) *domain.CreateSleepLogRequest {
	return &domain.CreateSleepLogRequest{
		Date:             date,
		HoursSlept:       7.5,
		TimeInBed:        8,
		TimeToFallAsleep: 15,
		BedTime:          "23:00",
		WakeTime:         "07:00",
		WokeUpFeeling:    []string{domain.FeelingRefreshed},
		WokeUpTimes:      1,
		QualityRating:    8,
	}
}

func TestSleepLogService_Create(t *testing.T) {
	svc, _, userID := newSleepLogFixture(t)

	log, replaced, err := svc.Create(context.Background(), userID, validCreateRequest("2024-01-15"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if replaced {
		t.Error("Create() replaced = true for a fresh date")
	}
	if log.Date != "2024-01-15" {
		t.Errorf("Create() date = %q", log.Date)
	}
	// 7.5h asleep of an 8h bed window
	if log.SleepEfficiency != 93.75 {
		t.Errorf("Create() efficiency = %v, want 93.75", log.SleepEfficiency)
	}
	if !log.WokeUpNight {
		t.Error("Create() WokeUpNight = false with one wakeup")
	}
}

func TestSleepLogService_CreateOverwritesSameDate(t *testing.T) {
	svc, _, userID := newSleepLogFixture(t)

	first, _, err := svc.Create(context.Background(), userID, validCreateRequest("2024-01-15"))
	if err != nil {
		t.Fatalf("first Create() error = %v", err)
	}

	req := validCreateRequest("2024-01-15")
	req.HoursSlept = 6
	req.TimeInBed = 7.5

	second, replaced, err := svc.Create(context.Background(), userID, req)
	if err != nil {
		t.Fatalf("second Create() error = %v", err)
	}
	if !replaced {
		t.Error("Create() replaced = false when overwriting a date")
	}
	if second.ID != first.ID {
		t.Errorf("overwrite changed id: %v -> %v", first.ID, second.ID)
	}
	if second.HoursSlept != 6 {
		t.Errorf("overwrite hours = %v, want 6", second.HoursSlept)
	}
}

func TestSleepLogService_CreateCollapsesWakeups(t *testing.T) {
	svc, _, userID := newSleepLogFixture(t)

	req := validCreateRequest("2024-01-15")
	req.WokeUpTimes = 7

	log, _, err := svc.Create(context.Background(), userID, req)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if log.WokeUpTimes != domain.MaxWakeups {
		t.Errorf("WokeUpTimes = %d, want %d", log.WokeUpTimes, domain.MaxWakeups)
	}
}

func TestSleepLogService_CreateRolloverEfficiency(t *testing.T) {
	svc, _, userID := newSleepLogFixture(t)

	// Bed at 22:00, wake at 06:00 the next day: 480 minutes in bed
	req := validCreateRequest("2024-01-15")
	req.BedTime = "22:00"
	req.WakeTime = "06:00"
	req.HoursSlept = 6
	req.TimeInBed = 8

	log, _, err := svc.Create(context.Background(), userID, req)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if log.SleepEfficiency != 75 {
		t.Errorf("efficiency = %v, want 75", log.SleepEfficiency)
	}
}

func TestSleepLogService_CreateRequiresOnboarding(t *testing.T) {
	userRepo := NewMockUserRepository()
	profileRepo := NewMockProfileRepository()
	logRepo := NewMockSleepLogRepository()
	svc := NewSleepLogService(logRepo, userRepo, profileRepo)

	user := &domain.User{Email: "new@example.com", PasswordHash: "x"}
	userRepo.Create(context.Background(), user)

	_, _, err := svc.Create(context.Background(), user.ID, validCreateRequest("2024-01-15"))
	if err != domain.ErrOnboardingIncomplete {
		t.Errorf("Create() error = %v, want ErrOnboardingIncomplete", err)
	}

	incomplete := onboardedProfile()
	incomplete.OnboardingComplete = false
	profileRepo.Save(context.Background(), user.ID, incomplete)

	_, _, err = svc.Create(context.Background(), user.ID, validCreateRequest("2024-01-15"))
	if err != domain.ErrOnboardingIncomplete {
		t.Errorf("Create() error = %v, want ErrOnboardingIncomplete", err)
	}
}

func TestSleepLogService_CreateUnknownUser(t *testing.T) {
	svc, _, _ := newSleepLogFixture(t)

	_, _, err := svc.Create(context.Background(), uuid.New(), validCreateRequest("2024-01-15"))
	if err != domain.ErrNotFound {
		t.Errorf("Create() error = %v, want ErrNotFound", err)
	}
}

func TestSleepLogService_List(t *testing.T) {
	svc, _, userID := newSleepLogFixture(t)

	for _, date := range []string{"2024-01-13", "2024-01-14", "2024-01-15"} {
		if _, _, err := svc.Create(context.Background(), userID, validCreateRequest(date)); err != nil {
			t.Fatalf("Create(%s) error = %v", date, err)
		}
	}

	resp, err := svc.List(context.Background(), userID, domain.SleepLogFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(resp.Data) != 3 {
		t.Fatalf("List() returned %d logs, want 3", len(resp.Data))
	}
	if resp.Data[0].Date != "2024-01-15" {
		t.Errorf("List() first date = %q, want newest first", resp.Data[0].Date)
	}
	if resp.Pagination.HasMore {
		t.Error("List() HasMore = true for a single page")
	}

	filtered, err := svc.List(context.Background(), userID, domain.SleepLogFilter{From: "2024-01-14", To: "2024-01-14"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(filtered.Data) != 1 || filtered.Data[0].Date != "2024-01-14" {
		t.Errorf("List() filter result = %+v", filtered.Data)
	}
}
