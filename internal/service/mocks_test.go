package service

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/rsweeney/sleepaid/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// MockProfileRepository is a mock implementation of ProfileRepository
type MockProfileRepository struct {
	profiles map[uuid.UUID]*domain.UserProfile
	err      error
}

func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		profiles: make(map[uuid.UUID]*domain.UserProfile),
	}
}

func (m *MockProfileRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	if m.err != nil {
		return nil, m.err
	}
	profile, ok := m.profiles[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return profile, nil
}

func (m *MockProfileRepository) Save(ctx context.Context, userID uuid.UUID, profile *domain.UserProfile) error {
	if m.err != nil {
		return m.err
	}
	m.profiles[userID] = profile
	return nil
}

func (m *MockProfileRepository) SetError(err error) {
	m.err = err
}

// MockSleepLogRepository is a mock implementation of SleepLogRepository
type MockSleepLogRepository struct {
	logs map[uuid.UUID]map[string]*domain.SleepLog
	err  error
}

func NewMockSleepLogRepository() *MockSleepLogRepository {
	return &MockSleepLogRepository{
		logs: make(map[uuid.UUID]map[string]*domain.SleepLog),
	}
}

func (m *MockSleepLogRepository) Upsert(ctx context.Context, log *domain.SleepLog) error {
	if m.err != nil {
		return m.err
	}
	byDate, ok := m.logs[log.UserID]
	if !ok {
		byDate = make(map[string]*domain.SleepLog)
		m.logs[log.UserID] = byDate
	}
	if existing, ok := byDate[log.Date]; ok {
		log.ID = existing.ID
	} else if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	byDate[log.Date] = log
	return nil
}

func (m *MockSleepLogRepository) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	log, ok := m.logs[userID][date]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return log, nil
}

func (m *MockSleepLogRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SleepLogFilter) ([]domain.SleepLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	logs, err := m.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	filtered := logs[:0]
	for _, log := range logs {
		if filter.From != "" && log.Date < filter.From {
			continue
		}
		if filter.To != "" && log.Date > filter.To {
			continue
		}
		filtered = append(filtered, log)
	}
	return filtered, nil
}

func (m *MockSleepLogRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SleepLog, error) {
	logs, err := m.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(logs) > limit {
		logs = logs[:limit]
	}
	return logs, nil
}

func (m *MockSleepLogRepository) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.SleepLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var logs []domain.SleepLog
	for _, log := range m.logs[userID] {
		logs = append(logs, *log)
	}
	// Newest date first, matching the real repository
	sort.Slice(logs, func(i, j int) bool { return logs[i].Date > logs[j].Date })
	return logs, nil
}

func (m *MockSleepLogRepository) SetError(err error) {
	m.err = err
}

// MockUsageRepository is a mock implementation of UsageRepository
type MockUsageRepository struct {
	counts map[string]int
	err    error
}

func NewMockUsageRepository() *MockUsageRepository {
	return &MockUsageRepository{
		counts: make(map[string]int),
	}
}

func (m *MockUsageRepository) MessagesUsed(ctx context.Context, userID uuid.UUID, month string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.counts[userID.String()+"/"+month], nil
}

func (m *MockUsageRepository) Increment(ctx context.Context, userID uuid.UUID, month string) error {
	if m.err != nil {
		return m.err
	}
	m.counts[userID.String()+"/"+month]++
	return nil
}

func (m *MockUsageRepository) Seed(userID uuid.UUID, month string, count int) {
	m.counts[userID.String()+"/"+month] = count
}

// MockSuggestionLLM is a mock implementation of llm.SuggestionLLM
type MockSuggestionLLM struct {
	response string
	err      error
	calls    int
}

func NewMockSuggestionLLM(response string) *MockSuggestionLLM {
	return &MockSuggestionLLM{response: response}
}

func (m *MockSuggestionLLM) Suggest(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *MockSuggestionLLM) SetError(err error) {
	m.err = err
}

func (m *MockSuggestionLLM) Calls() int {
	return m.calls
}

// Helpers shared across service tests

func onboardedProfile() *domain.UserProfile {
	return &domain.UserProfile{
		PersonalInfo: domain.PersonalInfo{
			FirstName: "Riley",
			Age:       31,
			Timezone:  "UTC",
		},
		SleepPatterns: domain.SleepPatterns{
			Struggle:          "Falling asleep",
			Goal:              "Go to bed before 11pm",
			SleepDurationGoal: "7-8 hours",
			TimeToFallAsleep:  20,
			UsualBedtime:      "23:00",
			UsualWakeTime:     "07:00",
		},
		OnboardingComplete: true,
	}
}

func nightOf(date string) *domain.SleepLog {
	return &domain.SleepLog{
		ID:               uuid.New(),
		Date:             date,
		HoursSlept:       7.5,
		TimeInBed:        8,
		TimeToFallAsleep: 10,
		BedTime:          "23:00",
		WakeTime:         "07:00",
		WokeUpFeeling:    domain.TagList{domain.FeelingRefreshed},
		QualityRating:    8,
		SleepEnvironment: domain.TagList{"Dark", "Quiet", "Cool", "Comfortable bed", "No screens"},
		MentalState:      domain.TagList{domain.MentalRelaxed},
	}
}
