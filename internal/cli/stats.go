package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/habittrack/internal/models"
	"github.com/julianstephens/habittrack/internal/stats"
)

type StatsCmd struct {
	Habit string `arg:"" optional:"" help:"Show stats for a specific habit only."`
}

func (c *StatsCmd) Run(ctx *Context) error {
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

	today := time.Now()
	for i, habit := range selected {
		if i > 0 {
			fmt.Println()
		}
		summary := stats.Summarize(habit, s.HabitCheckIns(habit.ID), today)
		fmt.Printf("%s\n", habit.Name)
		fmt.Printf("  Total completions: %d\n", summary.TotalCompletions)
		fmt.Printf("  Completion rate:   %d%%\n", summary.CompletionRate)
		fmt.Printf("  Current streak:    %d\n", summary.CurrentStreak)
		fmt.Printf("  Best streak:       %d\n", summary.LongestStreak)
		fmt.Printf("  Tracked since:     %s (%d days)\n",
			habit.CreatedAt.Format(models.DayFormat), summary.DaysTracked)
	}

	return nil
}
