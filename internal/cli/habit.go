package cli

import (
	"fmt"

	"github.com/julianstephens/habittrack/internal/models"
	"github.com/julianstephens/habittrack/internal/store"
	"github.com/julianstephens/habittrack/internal/themes"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits in display order."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit an existing habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and all its check-ins."`
	Move   HabitMoveCmd   `cmd:"" help:"Move a habit to a new position in the display order."`
}

type HabitAddCmd struct {
	Name      string `arg:"" help:"Habit name."`
	Frequency string `help:"Goal frequency: daily, weekly or monthly." default:"daily"`
	Theme     string `help:"Color theme (blue, green, purple, orange, pink, indigo)." default:""`
	Pattern   string `help:"Fill pattern for completed days." default:"none"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}

	if c.Name == "" {
		return fmt.Errorf("habit name must not be empty")
	}
	if _, ok := s.HabitByName(c.Name); ok {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}
	if !models.ValidFrequency(c.Frequency) {
		return fmt.Errorf("invalid frequency %q (expected daily, weekly or monthly)", c.Frequency)
	}
	if c.Theme != "" && !themes.Valid(c.Theme) {
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	if !themes.ValidPattern(c.Pattern) {
		return fmt.Errorf("unknown pattern %q", c.Pattern)
	}

	h := s.AddHabit(store.HabitInput{
		Name:      c.Name,
		Frequency: models.Frequency(c.Frequency),
		Theme:     c.Theme,
		Pattern:   c.Pattern,
	})

	fmt.Printf("Added habit: %s (%s, %s)\n", h.Name, h.Frequency, h.Theme)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}

	habits := s.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for i, h := range habits {
		status := ""
		if h.Archived {
			status = " [ARCHIVED]"
		}
		fmt.Printf("%d. %s (%s, %s)%s\n", i+1, h.Name, h.Frequency, h.Theme, status)
	}

	return nil
}

type HabitEditCmd struct {
	Name      string `arg:"" help:"Habit name to edit."`
	Rename    string `help:"New habit name." default:""`
	Frequency string `help:"New goal frequency." default:""`
	Theme     string `help:"New color theme." default:""`
	Pattern   string `help:"New fill pattern." default:""`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}

	h, err := findHabit(s, c.Name)
	if err != nil {
		return err
	}

	var patch store.HabitPatch
	if c.Rename != "" {
		if other, ok := s.HabitByName(c.Rename); ok && other.ID != h.ID {
			return fmt.Errorf("habit with name %q already exists", c.Rename)
		}
		patch.Name = &c.Rename
	}
	if c.Frequency != "" {
		if !models.ValidFrequency(c.Frequency) {
			return fmt.Errorf("invalid frequency %q (expected daily, weekly or monthly)", c.Frequency)
		}
		freq := models.Frequency(c.Frequency)
		patch.Frequency = &freq
	}
	if c.Theme != "" {
		if !themes.Valid(c.Theme) {
			return fmt.Errorf("unknown theme %q", c.Theme)
		}
		patch.Theme = &c.Theme
	}
	if c.Pattern != "" {
		if !themes.ValidPattern(c.Pattern) {
			return fmt.Errorf("unknown pattern %q", c.Pattern)
		}
		patch.Pattern = &c.Pattern
	}

	s.UpdateHabit(h.ID, patch)
	fmt.Printf("Updated habit: %s\n", c.Name)
	return nil
}

type HabitDeleteCmd struct {
	Name  string `arg:"" help:"Habit name to delete."`
	Force bool   `help:"Skip confirmation."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}

	h, err := findHabit(s, c.Name)
	if err != nil {
		return err
	}

	if !c.Force {
		fmt.Printf("Delete habit %q and all its check-ins? This cannot be undone. [y/N] ", c.Name)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	s.DeleteHabit(h.ID)
	fmt.Printf("Deleted habit: %s\n", c.Name)
	return nil
}

type HabitMoveCmd struct {
	Name     string `arg:"" help:"Habit name to move."`
	Position int    `arg:"" help:"Target position (1-based)."`
}

func (c *HabitMoveCmd) Run(ctx *Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}

	h, err := findHabit(s, c.Name)
	if err != nil {
		return err
	}

	habits := s.Habits()
	if c.Position < 1 || c.Position > len(habits) {
		return fmt.Errorf("position must be between 1 and %d", len(habits))
	}

	order := make([]string, 0, len(habits))
	for _, other := range habits {
		if other.ID != h.ID {
			order = append(order, other.ID)
		}
	}
	idx := c.Position - 1
	order = append(order[:idx], append([]string{h.ID}, order[idx:]...)...)

	if err := s.ReorderHabits(order); err != nil {
		return err
	}

	fmt.Printf("Moved habit %q to position %d\n", c.Name, c.Position)
	return nil
}
