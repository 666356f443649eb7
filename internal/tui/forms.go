package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habittrack/internal/constants"
	"github.com/julianstephens/habittrack/internal/models"
	"github.com/julianstephens/habittrack/internal/themes"
)

func newHabitForm(fm *HabitFormModel) *huh.Form {
	themeOptions := make([]huh.Option[string], 0, len(themes.Names()))
	for _, name := range themes.Names() {
		themeOptions = append(themeOptions, huh.NewOption(themes.Get(name).Name, name))
	}

	patternOptions := make([]huh.Option[string], 0, len(themes.PatternNames()))
	for _, name := range themes.PatternNames() {
		patternOptions = append(patternOptions, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", string(models.FrequencyDaily)),
					huh.NewOption("Weekly", string(models.FrequencyWeekly)),
					huh.NewOption("Monthly", string(models.FrequencyMonthly)),
				).
				Value(&fm.Frequency),
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOptions...).
				Value(&fm.Theme),
			huh.NewSelect[string]().
				Title("Pattern").
				Options(patternOptions...).
				Value(&fm.Pattern),
		),
	).WithTheme(huh.ThemeDracula())
}

func newNoteForm(fm *NoteFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Note").
				CharLimit(constants.MaxNoteLen).
				Value(&fm.Text),
		),
	).WithTheme(huh.ThemeDracula())
}
