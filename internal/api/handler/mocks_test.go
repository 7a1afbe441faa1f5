package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/rsweeney/sleepaid/internal/domain"
	"github.com/rsweeney/sleepaid/internal/langfuse"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	signupFunc func(ctx context.Context, req *domain.SignupRequest) (*domain.AuthResponse, error)
	loginFunc  func(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error)
}

func (m *MockUserService) Signup(ctx context.Context, req *domain.SignupRequest) (*domain.AuthResponse, error) {
	if m.signupFunc != nil {
		return m.signupFunc(ctx, req)
	}
	return &domain.AuthResponse{UserID: uuid.New(), Email: req.Email}, nil
}

func (m *MockUserService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, req)
	}
	return &domain.AuthResponse{UserID: uuid.New(), Email: req.Email, OnboardingComplete: true}, nil
}

// MockProfileService is a mock implementation of ProfileService
type MockProfileService struct {
	getFunc  func(ctx context.Context, userID uuid.UUID) (*domain.ProfileResponse, error)
	saveFunc func(ctx context.Context, userID uuid.UUID, req *domain.UpdateProfileRequest) (*domain.ProfileResponse, error)
}

func (m *MockProfileService) Get(ctx context.Context, userID uuid.UUID) (*domain.ProfileResponse, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID)
	}
	return &domain.ProfileResponse{}, nil
}

func (m *MockProfileService) Save(ctx context.Context, userID uuid.UUID, req *domain.UpdateProfileRequest) (*domain.ProfileResponse, error) {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, userID, req)
	}
	return &domain.ProfileResponse{}, nil
}

// MockSleepLogService is a mock implementation of SleepLogService
type MockSleepLogService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepLogRequest) (*domain.SleepLog, bool, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.SleepLogFilter) (*domain.SleepLogListResponse, error)
}

func (m *MockSleepLogService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepLogRequest) (*domain.SleepLog, bool, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.SleepLog{
		ID:         uuid.New(),
		UserID:     userID,
		Date:       req.Date,
		HoursSlept: req.HoursSlept,
		TimeInBed:  req.TimeInBed,
		BedTime:    req.BedTime,
		WakeTime:   req.WakeTime,
	}, false, nil
}

func (m *MockSleepLogService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepLogFilter) (*domain.SleepLogListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.SleepLogListResponse{
		Data:       []domain.SleepLogResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockExportService is a mock implementation of ExportService
type MockExportService struct {
	exportFunc func(ctx context.Context, userID uuid.UUID, format string) ([]byte, string, string, error)
}

func (m *MockExportService) Export(ctx context.Context, userID uuid.UUID, format string) ([]byte, string, string, error) {
	if m.exportFunc != nil {
		return m.exportFunc(ctx, userID, format)
	}
	return []byte("date\n"), "text/csv", "sleep-history.csv", nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	dashboardFunc func(ctx context.Context, userID uuid.UUID) (*domain.DashboardResponse, error)
	generateFunc  func(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
}

func (m *MockInsightsService) Dashboard(ctx context.Context, userID uuid.UUID) (*domain.DashboardResponse, error) {
	if m.dashboardFunc != nil {
		return m.dashboardFunc(ctx, userID)
	}
	return &domain.DashboardResponse{}, nil
}

func (m *MockInsightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID)
	}
	return &domain.InsightsResponse{}, nil
}

// MockCoachService is a mock implementation of CoachService
type MockCoachService struct {
	suggestFunc func(ctx context.Context, userID uuid.UUID) (*domain.SuggestionResponse, error)
}

func (m *MockCoachService) Suggest(ctx context.Context, userID uuid.UUID) (*domain.SuggestionResponse, error) {
	if m.suggestFunc != nil {
		return m.suggestFunc(ctx, userID)
	}
	return &domain.SuggestionResponse{Score: 80, Suggestion: "ok", Source: "rule"}, nil
}

// MockLangfuseClient records scores for assertions
type MockLangfuseClient struct {
	scores []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool {
	return true
}

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return "trace-id", nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return nil
}
