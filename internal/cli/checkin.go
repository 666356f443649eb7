package cli

import (
	"fmt"

	"github.com/julianstephens/habittrack/internal/constants"
)

type CheckCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *CheckCmd) Run(ctx *Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}

	habit, err := findHabit(s, c.Name)
	if err != nil {
		return err
	}

	day, err := parseDay(c.Date)
	if err != nil {
		return err
	}

	s.ToggleCheckIn(habit.ID, day)

	if s.HabitCheckIns(habit.ID)[day].Completed {
		fmt.Printf("Checked in %q for %s\n", c.Name, day)
	} else {
		fmt.Printf("Unchecked %q for %s\n", c.Name, day)
	}
	return nil
}

type SetCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Value int    `arg:"" help:"Repetition count for the day (0 clears the check-in)."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *SetCmd) Run(ctx *Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}

	habit, err := findHabit(s, c.Name)
	if err != nil {
		return err
	}

	day, err := parseDay(c.Date)
	if err != nil {
		return err
	}

	s.SetCheckInValue(habit.ID, day, c.Value)

	if c.Value > 0 {
		fmt.Printf("Set %q to %d for %s\n", c.Name, c.Value, day)
	} else {
		fmt.Printf("Cleared %q for %s\n", c.Name, day)
	}
	return nil
}

type NoteCmd struct {
	Name string `arg:"" help:"Habit name."`
	Text string `arg:"" optional:"" help:"Note text (empty clears the note)."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *NoteCmd) Run(ctx *Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}

	habit, err := findHabit(s, c.Name)
	if err != nil {
		return err
	}

	day, err := parseDay(c.Date)
	if err != nil {
		return err
	}

	if len(c.Text) > constants.MaxNoteLen {
		return fmt.Errorf("note too long: %d characters (max %d)", len(c.Text), constants.MaxNoteLen)
	}

	s.UpdateNote(habit.ID, day, c.Text)

	if c.Text == "" {
		fmt.Printf("Cleared note on %q for %s\n", c.Name, day)
	} else {
		fmt.Printf("Noted %q for %s\n", c.Name, day)
	}
	return nil
}
