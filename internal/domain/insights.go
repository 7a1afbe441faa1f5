package domain

// StreakMilestones are the celebrated current-streak lengths.
var StreakMilestones = []int{3, 7, 14, 30, 100}

// DashboardResponse is the response body for the dashboard endpoint.
// @Description Today-centric snapshot: score, change, and streaks.
type DashboardResponse struct {
	// First name for the greeting, empty if onboarding skipped it
	FirstName string `json:"first_name" example:"Riley"`
	// Today's sleep score, 0 when nothing is logged today
	TodayScore int `json:"today_score" example:"84"`
	// True when a log exists for today
	LoggedToday bool `json:"logged_today" example:"true"`
	// Percent change of today's score against the previous logged night
	ChangePercent int `json:"change_percent" example:"12"`
	// Consecutive logged days ending today or yesterday
	CurrentStreak int `json:"current_streak" example:"5"`
	// Longest run of consecutive logged days ever
	LongestStreak int `json:"longest_streak" example:"14"`
	// Milestone hit by the current streak, 0 if none
	Milestone int `json:"milestone,omitempty" example:"7"`
	// Latest logged night, if any
	LatestLog *SleepLogResponse `json:"latest_log,omitempty"`
}

// TrendDay is one day of the seven-day score trend, oldest first.
type TrendDay struct {
	Date string `json:"date" example:"2024-01-15"`
	// Short weekday label for chart axes
	Label string `json:"label" example:"Mon"`
	Score int    `json:"score" example:"78"`
	// False when no log exists for the day (score is then 0)
	Logged bool `json:"logged"`
}

// InsightsResponse is the response body for the insights endpoint.
// @Description Seven-day trend, averages, consistency, and goal progress.
type InsightsResponse struct {
	Trend []TrendDay `json:"trend"`
	// Average of the window's nonzero scores, 0 when none
	AverageScore int `json:"average_score" example:"76"`
	// Best nonzero score in the window
	BestScore int `json:"best_score" example:"92"`
	// Lowest nonzero score in the window
	LowestScore int `json:"lowest_score" example:"55"`
	// Mean absolute bed-time drift in minutes between adjacent nights
	BedTimeDriftMin int `json:"bed_time_drift_min" example:"22"`
	// Mean absolute wake-time drift in minutes between adjacent nights
	WakeTimeDriftMin int `json:"wake_time_drift_min" example:"15"`
	// Percent of recent nights inside the duration goal range
	GoalProgress int `json:"goal_progress" example:"71"`
	// Averages over the recent window
	AvgHoursSlept      float64 `json:"avg_hours_slept" example:"7.1"`
	AvgTimeToSleepMin  float64 `json:"avg_time_to_sleep_min" example:"18.5"`
	AvgWakeups         float64 `json:"avg_wakeups" example:"0.8"`
	// Most frequent morning feeling in the window
	CommonFeeling string `json:"common_feeling" example:"Refreshed"`
}

// SuggestionResponse is the response body for the coaching endpoint.
// @Description One coaching suggestion with its provenance.
type SuggestionResponse struct {
	// Score the suggestion was generated for
	Score int `json:"score" example:"84"`
	// The suggestion text itself
	Suggestion string `json:"suggestion"`
	// "ai" when model-generated, "rule" for the built-in fallback
	Source string `json:"source" example:"ai"`
	// Trace identifier for scoring the suggestion via feedback
	TraceID string `json:"trace_id,omitempty" example:"32e51f0ed9fc375cf255c60d12b3eb9c"`
	// Coaching messages used so far this month
	MessagesUsed int `json:"messages_used" example:"42"`
}

// SuggestionFeedbackRequest is the request body for rating a suggestion.
// @Description Thumbs-style rating tied to a suggestion trace.
type SuggestionFeedbackRequest struct {
	TraceID string  `json:"trace_id" validate:"required" example:"32e51f0ed9fc375cf255c60d12b3eb9c"`
	Value   float64 `json:"value" validate:"min=0,max=1" example:"1"`
	Comment string  `json:"comment,omitempty" validate:"max=1000"`
}
