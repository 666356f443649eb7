package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habittrack/internal/models"
	"github.com/julianstephens/habittrack/internal/stats"
	"github.com/julianstephens/habittrack/internal/themes"
)

type LogCmd struct {
	Habit  string `arg:"" optional:"" help:"Show log for a specific habit only."`
	Weeks  int    `help:"Number of trailing weeks to show." default:"16"`
	Monday bool   `help:"Start weeks on Monday instead of Sunday."`
}

// intensity ramp for terminal output, by value bucket
var rampGlyphs = [5]string{"·", "░", "▒", "▓", "█"}

func (c *LogCmd) Run(ctx *Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}

	habits := s.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	var selected []models.Habit
	if c.Habit != "" {
		h, err := findHabit(s, c.Habit)
		if err != nil {
			return err
		}
		selected = []models.Habit{h}
	} else {
		selected = habits
	}

	weekStart := time.Sunday
	if c.Monday {
		weekStart = time.Monday
	}
	today := time.Now()

	for i, habit := range selected {
		if i > 0 {
			fmt.Println()
		}
		days := s.HabitCheckIns(habit.ID)
		summary := stats.Summarize(habit, days, today)
		fmt.Printf("%s — %d day streak, %d%% completion\n\n", habit.Name, summary.CurrentStreak, summary.CompletionRate)
		printHeatmap(stats.CalendarWeeks(days, today, c.Weeks, weekStart))
	}

	return nil
}

// printHeatmap renders weeks as columns and weekdays as rows, GitHub style.
func printHeatmap(weeks []stats.Week) {
	for row := 0; row < 7; row++ {
		label := weeks[0].Days[row].Weekday.String()[:3]
		var b strings.Builder
		b.WriteString(label)
		b.WriteString(" ")
		for _, week := range weeks {
			day := week.Days[row]
			b.WriteString(" ")
			b.WriteString(logCell(day))
		}
		fmt.Println(b.String())
	}
}

func logCell(day stats.Day) string {
	if day.Future {
		return " "
	}
	if !day.Completed {
		return rampGlyphs[0]
	}
	return rampGlyphs[themes.IntensityBucket(day.Value)]
}
