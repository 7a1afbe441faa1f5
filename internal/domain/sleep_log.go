package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	// DateLayout is the calendar-date form used as the per-day log key.
	DateLayout = "2006-01-02"
	// ClockLayout is the 24-hour time-of-day form for bed/wake times.
	ClockLayout = "15:04"

	// MaxWakeups collapses "3 or more" wakeups into a single bucket.
	MaxWakeups = 3
)

// Morning-energy tags for woke_up_feeling.
const (
	FeelingExhausted = "Exhausted"
	FeelingMeh       = "Meh"
	FeelingOkay      = "Okay"
	FeelingRefreshed = "Refreshed"
	FeelingEnergized = "Energized"
	FeelingMotivated = "Motivated"
)

// Pre-bed mental-state tags.
const (
	MentalRelaxed  = "Relaxed"
	MentalNeutral  = "Neutral"
	MentalStressed = "Stressed"
)

// TagList is a set of enumerated tags stored as a JSONB array.
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		t = TagList{}
	}
	return json.Marshal(t)
}

func (t *TagList) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return errors.New("unsupported tag list source type")
	}
}

func (TagList) GormDataType() string {
	return "jsonb"
}

// SleepLog is one night's entry. The (user, date) pair is the natural key:
// logging the same date again overwrites the earlier entry.
type SleepLog struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_sleep_logs_user_date" json:"user_id"`
	Date             string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_sleep_logs_user_date" json:"date"`
	HoursSlept       float64   `gorm:"not null" json:"hours_slept"`
	TimeInBed        float64   `gorm:"not null" json:"time_in_bed"`
	TimeToFallAsleep int       `gorm:"type:smallint;not null" json:"time_to_fall_asleep"`
	BedTime          string    `gorm:"type:varchar(5);not null" json:"bed_time"`
	WakeTime         string    `gorm:"type:varchar(5);not null" json:"wake_time"`
	SleepEfficiency  float64   `gorm:"not null" json:"sleep_efficiency"`
	WokeUpFeeling    TagList   `json:"woke_up_feeling"`
	WokeUpNight      bool      `gorm:"not null;default:false" json:"woke_up_night"`
	WokeUpTimes      int       `gorm:"type:smallint;not null" json:"woke_up_times"`
	QualityRating    int       `gorm:"type:smallint;not null" json:"quality_rating"`
	SleepEnvironment TagList   `json:"sleep_environment"`
	MentalState      TagList   `json:"mental_state"`
	Notes            string    `gorm:"type:text" json:"notes"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SleepLog) TableName() string {
	return "sleep_logs"
}

// CreateSleepLogRequest is the request body for logging a night.
// @Description Request payload for recording one night of sleep.
type CreateSleepLogRequest struct {
	// Calendar date of the night (defaults to today when omitted)
	Date string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-01-15"`
	// Total hours of actual sleep
	HoursSlept float64 `json:"hours_slept" validate:"required,gt=0,lte=24" example:"7.5"`
	// Total hours spent in bed (must be at least hours_slept)
	TimeInBed float64 `json:"time_in_bed" validate:"required,lte=24,gtefield=HoursSlept" example:"8"`
	// Minutes needed to fall asleep
	TimeToFallAsleep int `json:"time_to_fall_asleep" validate:"min=0,max=180" example:"15"`
	// Time of going to bed, 24h clock
	BedTime string `json:"bed_time" validate:"required,hhmm" example:"23:00"`
	// Time of waking up, 24h clock (may be earlier than bed_time, meaning next day)
	WakeTime string `json:"wake_time" validate:"required,hhmm" example:"07:00"`
	// Morning mood tags (possibly empty)
	WokeUpFeeling []string `json:"woke_up_feeling,omitempty" example:"Refreshed"`
	// Night wakeup count; 3 means "3 or more"
	WokeUpTimes int `json:"woke_up_times" validate:"min=0" example:"1"`
	// Self-reported quality from 1 (poor) to 10 (excellent)
	QualityRating int `json:"quality_rating" validate:"required,min=1,max=10" example:"7"`
	// Sleep environment tags
	SleepEnvironment []string `json:"sleep_environment,omitempty" example:"Dark"`
	// Mental state before bed tags
	MentalState []string `json:"mental_state,omitempty" example:"Relaxed"`
	// Free-text notes
	Notes string `json:"notes,omitempty" validate:"max=2000"`
}

// SleepLogResponse is the response body for sleep log endpoints.
// @Description One night's sleep record.
type SleepLogResponse struct {
	ID               uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID           uuid.UUID `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	Date             string    `json:"date" example:"2024-01-15"`
	HoursSlept       float64   `json:"hours_slept" example:"7.5"`
	TimeInBed        float64   `json:"time_in_bed" example:"8"`
	TimeToFallAsleep int       `json:"time_to_fall_asleep" example:"15"`
	BedTime          string    `json:"bed_time" example:"23:00"`
	WakeTime         string    `json:"wake_time" example:"07:00"`
	SleepEfficiency  float64   `json:"sleep_efficiency" example:"93.75"`
	WokeUpFeeling    []string  `json:"woke_up_feeling"`
	WokeUpNight      bool      `json:"woke_up_night"`
	WokeUpTimes      int       `json:"woke_up_times" example:"1"`
	QualityRating    int       `json:"quality_rating" example:"7"`
	SleepEnvironment []string  `json:"sleep_environment"`
	MentalState      []string  `json:"mental_state"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at" example:"2024-01-16T07:05:00Z"`
}

func (s *SleepLog) ToResponse() SleepLogResponse {
	return SleepLogResponse{
		ID:               s.ID,
		UserID:           s.UserID,
		Date:             s.Date,
		HoursSlept:       s.HoursSlept,
		TimeInBed:        s.TimeInBed,
		TimeToFallAsleep: s.TimeToFallAsleep,
		BedTime:          s.BedTime,
		WakeTime:         s.WakeTime,
		SleepEfficiency:  s.SleepEfficiency,
		WokeUpFeeling:    s.WokeUpFeeling,
		WokeUpNight:      s.WokeUpNight,
		WokeUpTimes:      s.WokeUpTimes,
		QualityRating:    s.QualityRating,
		SleepEnvironment: s.SleepEnvironment,
		MentalState:      s.MentalState,
		Notes:            s.Notes,
		CreatedAt:        s.CreatedAt,
	}
}

// SleepLogListResponse is the response body for listing sleep logs.
// @Description Paginated list of sleep logs, newest date first.
type SleepLogListResponse struct {
	Data       []SleepLogResponse `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// SleepLogFilter contains filter parameters for listing sleep logs.
type SleepLogFilter struct {
	From   string // inclusive YYYY-MM-DD lower bound
	To     string // inclusive YYYY-MM-DD upper bound
	Limit  int
	Cursor string
}

// MinutesInBed computes elapsed minutes from bed time to wake time.
// A wake time at or before the bed time rolls over to the next day.
func MinutesInBed(bedTime, wakeTime string) (float64, error) {
	bed, err := time.Parse(ClockLayout, bedTime)
	if err != nil {
		return 0, err
	}
	wake, err := time.Parse(ClockLayout, wakeTime)
	if err != nil {
		return 0, err
	}
	if !wake.After(bed) {
		wake = wake.AddDate(0, 0, 1)
	}
	return wake.Sub(bed).Minutes(), nil
}

// ComputeEfficiency derives the stored sleep_efficiency percentage from
// hours slept and the bed->wake interval. A zero-length interval yields 0.
func ComputeEfficiency(hoursSlept float64, bedTime, wakeTime string) (float64, error) {
	minutes, err := MinutesInBed(bedTime, wakeTime)
	if err != nil {
		return 0, err
	}
	if minutes <= 0 {
		return 0, nil
	}
	return hoursSlept * 60 / minutes * 100, nil
}

// CollapseWakeups maps a raw wakeup count into the 0..3 scale, where 3
// stands for "3 or more".
func CollapseWakeups(count int) int {
	if count < 0 {
		return 0
	}
	if count > MaxWakeups {
		return MaxWakeups
	}
	return count
}
