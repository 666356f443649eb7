package heatmap

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habittrack/internal/models"
	"github.com/julianstephens/habittrack/internal/stats"
	"github.com/julianstephens/habittrack/internal/themes"
)

var (
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// Model renders one habit's trailing-weeks heatmap with a movable day cursor.
// Weeks are columns, weekdays are rows.
type Model struct {
	habit models.Habit
	weeks []stats.Week
	today time.Time

	weekIdx int
	dayIdx  int
}

func New() Model {
	return Model{}
}

// SetHabit points the heatmap at a habit and rebuilds its buckets, placing
// the cursor on today.
func (m *Model) SetHabit(habit models.Habit, days map[string]models.CheckIn, today time.Time) {
	m.habit = habit
	m.today = today
	m.weeks = stats.CalendarWeeks(days, today, stats.DefaultWeeks, time.Sunday)
	for w, week := range m.weeks {
		for d, day := range week.Days {
			if day.Today {
				m.weekIdx, m.dayIdx = w, d
			}
		}
	}
}

// Refresh re-buckets the current habit after a mutation, keeping the cursor.
func (m *Model) Refresh(days map[string]models.CheckIn) {
	if len(m.weeks) == 0 {
		return
	}
	m.weeks = stats.CalendarWeeks(days, m.today, stats.DefaultWeeks, time.Sunday)
}

func (m Model) Habit() models.Habit {
	return m.habit
}

// Selected returns the day under the cursor.
func (m Model) Selected() (stats.Day, bool) {
	if len(m.weeks) == 0 {
		return stats.Day{}, false
	}
	return m.weeks[m.weekIdx].Days[m.dayIdx], true
}

// Cursor movement clamps to the window and never lands on a future day.
func (m *Model) MoveLeft()  { m.moveTo(m.weekIdx-1, m.dayIdx) }
func (m *Model) MoveRight() { m.moveTo(m.weekIdx+1, m.dayIdx) }
func (m *Model) MoveUp()    { m.moveTo(m.weekIdx, m.dayIdx-1) }
func (m *Model) MoveDown()  { m.moveTo(m.weekIdx, m.dayIdx+1) }

func (m *Model) moveTo(week, day int) {
	if len(m.weeks) == 0 {
		return
	}
	if week < 0 || week >= len(m.weeks) || day < 0 || day > 6 {
		return
	}
	if m.weeks[week].Days[day].Future {
		return
	}
	m.weekIdx, m.dayIdx = week, day
}

func (m Model) View() string {
	if len(m.weeks) == 0 {
		return mutedStyle.Render("No habit selected.")
	}

	theme := themes.Get(m.habit.Theme)
	glyph := string(themes.PatternGlyph(m.habit.Pattern))

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(m.habit.Name))
	b.WriteString("\n\n")

	for row := 0; row < 7; row++ {
		b.WriteString(labelStyle.Render(m.weeks[0].Days[row].Weekday.String()[:3]))
		b.WriteString(" ")
		for w := range m.weeks {
			day := m.weeks[w].Days[row]
			cell := m.renderCell(day, theme, glyph)
			if w == m.weekIdx && row == m.dayIdx {
				cell = cursorStyle.Render(stripStyles(day, glyph))
			}
			b.WriteString(cell)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderDetail())
	return b.String()
}

func (m Model) renderCell(day stats.Day, theme themes.Theme, glyph string) string {
	if day.Future {
		return " "
	}
	if !day.Completed {
		if day.HasNote {
			return noteStyle.Render("·")
		}
		return mutedStyle.Render("·")
	}
	bucket := themes.IntensityBucket(day.Value)
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Intensity[bucket]))
	return style.Render(glyph)
}

// stripStyles returns the plain cell content for the cursor highlight.
func stripStyles(day stats.Day, glyph string) string {
	if day.Future {
		return " "
	}
	if !day.Completed {
		return "·"
	}
	return glyph
}

func (m Model) renderDetail() string {
	day, ok := m.Selected()
	if !ok {
		return ""
	}

	parts := []string{day.Date}
	switch {
	case day.Completed && day.Value > 1:
		parts = append(parts, fmt.Sprintf("%d reps", day.Value))
	case day.Completed:
		parts = append(parts, "completed")
	default:
		parts = append(parts, "not completed")
	}
	line := labelStyle.Render(strings.Join(parts, " — "))
	if day.HasNote {
		line += "\n" + noteStyle.Render("✎ "+day.Note)
	}
	return line
}
