package models

import "time"

// DayFormat is the calendar-day key format used throughout the app.
const DayFormat = "2006-01-02"

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// ValidFrequency reports whether s is one of the known frequency values.
func ValidFrequency(s string) bool {
	switch Frequency(s) {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// Habit represents a recurring practice to track. Frequency is informational
// only; it does not change how streaks or rates are computed.
type Habit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Frequency Frequency `json:"frequency"`
	Color     string    `json:"color"`
	Theme     string    `json:"theme,omitempty"`
	Pattern   string    `json:"pattern"`
	CreatedAt time.Time `json:"createdAt"`
	Archived  bool      `json:"archived"`
}
