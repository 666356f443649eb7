// Package stats derives streaks, completion rates and calendar buckets from a
// single habit's check-in history. Everything here is a pure function of its
// inputs: "today" is always passed in, never read from the clock, so results
// are reproducible against a fixed date.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/julianstephens/habittrack/internal/models"
)

// DefaultWeeks is the heatmap window: 16 trailing weeks (about four months).
const DefaultWeeks = 16

// Summary aggregates the headline numbers for one habit.
type Summary struct {
	TotalCompletions int
	DaysTracked      int
	CompletionRate   int // integer percentage
	CurrentStreak    int
	LongestStreak    int
}

// Summarize computes all summary statistics for a habit as of today.
func Summarize(habit models.Habit, days map[string]models.CheckIn, today time.Time) Summary {
	return Summary{
		TotalCompletions: TotalCompletions(days, today),
		DaysTracked:      DaysTracked(habit.CreatedAt, today),
		CompletionRate:   CompletionRate(days, habit.CreatedAt, today),
		CurrentStreak:    CurrentStreak(days, habit.CreatedAt, today),
		LongestStreak:    LongestStreak(days, today),
	}
}

// TotalCompletions counts completed days up to and including today. Stray
// records dated after today never count.
func TotalCompletions(days map[string]models.CheckIn, today time.Time) int {
	return len(completedDates(days, today))
}

// DaysTracked is the number of whole calendar days since the habit was
// created, inclusive of the creation day, floor-clamped to zero.
func DaysTracked(createdAt, today time.Time) int {
	n := daysBetween(createdAt, today) + 1
	if n < 0 {
		return 0
	}
	return n
}

// CompletionRate is the completed share of tracked days as a rounded integer
// percentage, or 0 when no days have been tracked.
func CompletionRate(days map[string]models.CheckIn, createdAt, today time.Time) int {
	tracked := DaysTracked(createdAt, today)
	if tracked <= 0 {
		return 0
	}
	total := TotalCompletions(days, today)
	return int(math.Round(100 * float64(total) / float64(tracked)))
}

// LongestStreak is the longest run of calendar-consecutive completed days.
func LongestStreak(days map[string]models.CheckIn, today time.Time) int {
	dates := completedDates(days, today)
	if len(dates) == 0 {
		return 0
	}
	sort.Strings(dates)

	longest, run := 1, 1
	prev, err := time.Parse(models.DayFormat, dates[0])
	if err != nil {
		return 0
	}
	for _, d := range dates[1:] {
		curr, err := time.Parse(models.DayFormat, d)
		if err != nil {
			continue
		}
		if prev.AddDate(0, 0, 1).Equal(curr) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = curr
	}
	return longest
}

// CurrentStreak walks backward day by day from today, counting consecutive
// completed days. Today not being checked in yet does not break the streak:
// the walk then starts at yesterday. The walk stops at the first gap, or once
// it passes the habit's creation day, so it terminates even on corrupted data.
func CurrentStreak(days map[string]models.CheckIn, createdAt, today time.Time) int {
	cursor := startOfDay(today)
	if !days[cursor.Format(models.DayFormat)].Completed {
		cursor = cursor.AddDate(0, 0, -1)
	}

	horizon := startOfDay(createdAt).AddDate(0, 0, -1)
	streak := 0
	for cursor.After(horizon) {
		if !days[cursor.Format(models.DayFormat)].Completed {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// Day is one heatmap cell. Future days carry their raw record flags but must
// be treated as inert by renderers.
type Day struct {
	Date      string
	Weekday   time.Weekday
	Today     bool
	Future    bool
	Exists    bool
	Completed bool
	Value     int
	Note      string
	HasNote   bool
}

// Week is an ordered bucket of seven days starting on the configured weekday.
type Week struct {
	Days [7]Day
}

// CalendarWeeks buckets a habit's history into the trailing window of weeks
// ending on the week containing today. weekStart selects the display mode
// (Sunday- or Monday-first). The result depends only on the inputs.
func CalendarWeeks(days map[string]models.CheckIn, today time.Time, weeks int, weekStart time.Weekday) []Week {
	if weeks <= 0 {
		weeks = DefaultWeeks
	}

	todayDay := startOfDay(today)
	start := startOfWeek(todayDay, weekStart).AddDate(0, 0, -7*(weeks-1))

	out := make([]Week, weeks)
	cursor := start
	for w := 0; w < weeks; w++ {
		for d := 0; d < 7; d++ {
			date := cursor.Format(models.DayFormat)
			c, exists := days[date]
			out[w].Days[d] = Day{
				Date:      date,
				Weekday:   cursor.Weekday(),
				Today:     cursor.Equal(todayDay),
				Future:    cursor.After(todayDay),
				Exists:    exists,
				Completed: c.Completed,
				Value:     c.Value,
				Note:      c.Note,
				HasNote:   c.Note != "",
			}
			cursor = cursor.AddDate(0, 0, 1)
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func startOfWeek(day time.Time, weekStart time.Weekday) time.Time {
	diff := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -diff)
}

func daysBetween(a, b time.Time) int {
	return int(math.Round(startOfDay(b).Sub(startOfDay(a)).Hours() / 24))
}

func completedDates(days map[string]models.CheckIn, today time.Time) []string {
	cutoff := startOfDay(today).Format(models.DayFormat)
	var dates []string
	for day, c := range days {
		if c.Completed && day <= cutoff {
			dates = append(dates, day)
		}
	}
	return dates
}
