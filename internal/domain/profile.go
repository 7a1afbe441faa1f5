package domain

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Profile defaults applied during normalization.
const (
	DefaultUsualBedtime  = "23:00"
	DefaultUsualWakeTime = "07:00"
	DefaultDurationGoal  = "7-8 hours"
	DefaultLatencyGoal   = 20
	DefaultTimezone      = "UTC"
)

// GoalCustomLabel is the goal choice that requires free-text input.
const GoalCustomLabel = "Custom goal"

// PersonalInfo is the who-are-you section of a profile.
type PersonalInfo struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	Age       int    `json:"age" validate:"required,min=1,max=120"`
	Gender    string `json:"gender,omitempty" validate:"omitempty,oneof=Male Female Other"`
	Timezone  string `json:"timezone" validate:"required,timezone"`
}

// SleepPatterns captures habits, struggles, and goals.
type SleepPatterns struct {
	Struggle string `json:"struggle" validate:"required"`
	Goal     string `json:"goal" validate:"required"`
	// Free text, required only when Goal is the custom choice
	GoalCustom string `json:"goal_custom,omitempty" validate:"max=200"`
	// One of "<6 hours", "6-7 hours", "7-8 hours", "8+ hours"
	SleepDurationGoal string `json:"sleep_duration_goal,omitempty"`
	// Target minutes to fall asleep; 0 means the default of 20
	TimeToFallAsleep int    `json:"time_to_fall_asleep,omitempty" validate:"min=0,max=180"`
	WakesUpAtNight   bool   `json:"wakes_up_at_night"`
	WakeUpCount      int    `json:"wake_up_count,omitempty" validate:"min=0,max=10"`
	UsualBedtime     string `json:"usual_bedtime" validate:"required,hhmm"`
	UsualWakeTime    string `json:"usual_wake_time" validate:"required,hhmm"`
}

// LifestyleSupport holds lifestyle factors and coaching preferences.
type LifestyleSupport struct {
	Workout      string `json:"workout,omitempty" validate:"omitempty,oneof=Yes No"`
	WorkoutFreq  int    `json:"workout_freq,omitempty" validate:"min=0,max=14"`
	Caffeine     string `json:"caffeine,omitempty" validate:"omitempty,oneof=Yes No"`
	CaffeineTime string `json:"caffeine_time,omitempty" validate:"omitempty,hhmm"`
	PhoneUse     string `json:"phone_use,omitempty" validate:"omitempty,oneof=Yes No"`
	SupportPref  string `json:"support_pref,omitempty" validate:"max=500"`
}

// UserProfile is the three-section profile document. A stored profile is
// either fully absent or carries all three sections; legacy flat shapes
// are normalized on read and never written back.
type UserProfile struct {
	PersonalInfo       PersonalInfo     `json:"personal_info"`
	SleepPatterns      SleepPatterns    `json:"sleep_patterns"`
	LifestyleSupport   LifestyleSupport `json:"lifestyle_support"`
	OnboardingComplete bool             `json:"onboarding_complete"`
	CreatedAt          string           `json:"created_at,omitempty"`
	UpdatedAt          string           `json:"updated_at,omitempty"`
}

// ProfileRecord is the persisted row: one JSONB document per user,
// mirroring the original per-user profile document.
type ProfileRecord struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Doc       []byte    `gorm:"type:jsonb;not null" json:"doc"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ProfileRecord) TableName() string {
	return "user_profiles"
}

// UpdateProfileRequest is the request body for onboarding completion and
// profile edits. Saving always yields a complete three-section profile.
// @Description Full profile payload; replaces the stored profile.
type UpdateProfileRequest struct {
	PersonalInfo     PersonalInfo     `json:"personal_info" validate:"required"`
	SleepPatterns    SleepPatterns    `json:"sleep_patterns" validate:"required"`
	LifestyleSupport LifestyleSupport `json:"lifestyle_support"`
}

// ProfileResponse is the response body for profile endpoints.
// @Description Normalized profile with derived display labels.
type ProfileResponse struct {
	UserProfile
	// Display label for the selected goal (custom text when applicable)
	GoalLabel string `json:"goal_label"`
	// Display label for the selected struggle
	StruggleLabel string `json:"struggle_label"`
	// Average sleep score over all logged nights
	AverageScore int `json:"average_score"`
	// Number of nights logged
	SleepsLogged int `json:"sleeps_logged"`
}

// Legacy key-to-label maps carried over from the first onboarding flow,
// which stored machine keys instead of display strings.
var (
	legacyGoalLabels = map[string]string{
		"7+_hours":        "Sleep 7+ hours",
		"no_caffeine":     "No caffeine after 6pm",
		"log_daily":       "Log my sleep daily",
		"bed_before_11":   "Go to bed before 11pm",
		"wake_consistent": "Wake up at the same time",
		"custom":          GoalCustomLabel,
	}
	legacyStruggleLabels = map[string]string{
		"falling_asleep": "Falling asleep",
		"waking_up":      "Waking up during the night",
		"waking_early":   "Waking up too early",
		"consistency":    "Staying consistent",
	}
)

// GoalLabel resolves the display label for the profile's goal, preferring
// the custom text when the custom goal is selected.
func (p *UserProfile) GoalLabel() string {
	goal := p.SleepPatterns.Goal
	if goal == GoalCustomLabel || goal == "custom" {
		if p.SleepPatterns.GoalCustom != "" {
			return p.SleepPatterns.GoalCustom
		}
		return GoalCustomLabel
	}
	if label, ok := legacyGoalLabels[goal]; ok {
		return label
	}
	if goal == "" {
		return "improve sleep"
	}
	return goal
}

// StruggleLabel resolves the display label for the profile's struggle.
func (p *UserProfile) StruggleLabel() string {
	struggle := p.SleepPatterns.Struggle
	if label, ok := legacyStruggleLabels[struggle]; ok {
		return label
	}
	return struggle
}

// ParseProfileDocument decodes a stored profile document, migrating legacy
// flat shapes (a single "onboarding" map, or side-car "sleep_habits" and
// "night_patterns" maps) into the three-section form. Missing fields get
// defaults so downstream scoring never re-derives them.
func ParseProfileDocument(doc []byte) (*UserProfile, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, err
	}

	var profile UserProfile
	_, hasPersonal := raw["personal_info"]
	_, hasPatterns := raw["sleep_patterns"]
	_, hasLifestyle := raw["lifestyle_support"]

	if hasPersonal && hasPatterns && hasLifestyle {
		if err := json.Unmarshal(doc, &profile); err != nil {
			return nil, err
		}
	} else {
		legacy := decodeLooseMap(raw["onboarding"])
		profile.PersonalInfo = PersonalInfo{
			FirstName: looseString(legacy, "first_name", ""),
			Age:       looseInt(legacy, "age", 0),
			Gender:    looseString(legacy, "gender", ""),
			Timezone:  looseString(legacy, "timezone", DefaultTimezone),
		}
		profile.SleepPatterns = SleepPatterns{
			Struggle:      looseString(legacy, "struggle", ""),
			Goal:          looseString(legacy, "goal", ""),
			GoalCustom:    looseString(legacy, "goal_custom", ""),
			UsualBedtime:  looseString(legacy, "usual_bedtime", DefaultUsualBedtime),
			UsualWakeTime: looseString(legacy, "usual_wake_time", DefaultUsualWakeTime),
		}
		profile.LifestyleSupport = LifestyleSupport{
			Workout:      looseString(legacy, "workout", ""),
			WorkoutFreq:  looseInt(legacy, "workout_freq", 0),
			Caffeine:     looseString(legacy, "caffeine", ""),
			CaffeineTime: looseString(legacy, "caffeine_time", ""),
			PhoneUse:     looseString(legacy, "phone_use", ""),
			SupportPref:  looseString(legacy, "support_pref", ""),
		}
		if complete, ok := decodeBool(raw["onboarding_complete"]); ok {
			profile.OnboardingComplete = complete
		}
	}

	// Legacy side-car sections override whatever the main shape carried.
	if habits := decodeLooseMap(raw["sleep_habits"]); habits != nil {
		if v := looseString(habits, "sleep_duration_goal", ""); v != "" {
			profile.SleepPatterns.SleepDurationGoal = v
		}
		if v := looseInt(habits, "time_to_fall_asleep", 0); v > 0 {
			profile.SleepPatterns.TimeToFallAsleep = v
		}
		if v := looseString(habits, "usual_bedtime", ""); v != "" {
			profile.SleepPatterns.UsualBedtime = v
		}
	}
	if night := decodeLooseMap(raw["night_patterns"]); night != nil {
		if v, ok := night["wakes_up_at_night"].(bool); ok {
			profile.SleepPatterns.WakesUpAtNight = v
		}
		profile.SleepPatterns.WakeUpCount = looseInt(night, "wake_up_count", profile.SleepPatterns.WakeUpCount)
	}

	profile.applyDefaults()
	return &profile, nil
}

func (p *UserProfile) applyDefaults() {
	if p.PersonalInfo.Timezone == "" {
		p.PersonalInfo.Timezone = DefaultTimezone
	}
	if p.SleepPatterns.UsualBedtime == "" {
		p.SleepPatterns.UsualBedtime = DefaultUsualBedtime
	}
	if p.SleepPatterns.UsualWakeTime == "" {
		p.SleepPatterns.UsualWakeTime = DefaultUsualWakeTime
	}
	if p.SleepPatterns.SleepDurationGoal == "" {
		p.SleepPatterns.SleepDurationGoal = DefaultDurationGoal
	}
	if p.SleepPatterns.TimeToFallAsleep <= 0 {
		p.SleepPatterns.TimeToFallAsleep = DefaultLatencyGoal
	}
}

func decodeLooseMap(raw json.RawMessage) map[string]any {
	if raw == nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}

func decodeBool(raw json.RawMessage) (bool, bool) {
	if raw == nil {
		return false, false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, false
	}
	return b, true
}

func looseString(m map[string]any, key, fallback string) string {
	if m == nil {
		return fallback
	}
	if v, ok := m[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// looseInt tolerates the legacy store's habit of keeping numbers as
// strings (ages and wakeup counts both appeared as "27" and "1").
func looseInt(m map[string]any, key string, fallback int) int {
	if m == nil {
		return fallback
	}
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
