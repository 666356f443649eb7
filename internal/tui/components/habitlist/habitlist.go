package habitlist

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
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	nameStyle     = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	streakStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	noStreakStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Model renders the habit overview: one row per habit with its current streak
// and a strip of the last seven days.
type Model struct {
	habits   []models.Habit
	checkIns models.CheckInsMap
	today    time.Time
	cursor   int
	width    int
	height   int
}

func New(habits []models.Habit, checkIns models.CheckInsMap, today time.Time, width, height int) Model {
	return Model{
		habits:   habits,
		checkIns: checkIns,
		today:    today,
		width:    width,
		height:   height,
	}
}

// SetData replaces the rendered state, keeping the cursor in range.
func (m *Model) SetData(habits []models.Habit, checkIns models.CheckInsMap, today time.Time) {
	m.habits = habits
	m.checkIns = checkIns
	m.today = today
	if m.cursor >= len(habits) {
		m.cursor = len(habits) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *Model) CursorDown() {
	if m.cursor < len(m.habits)-1 {
		m.cursor++
	}
}

// Selected returns the habit under the cursor.
func (m Model) Selected() (models.Habit, bool) {
	if len(m.habits) == 0 {
		return models.Habit{}, false
	}
	return m.habits[m.cursor], true
}

func (m Model) View() string {
	if len(m.habits) == 0 {
		return mutedStyle.Render("No habits yet. Press 'a' to add one.")
	}

	var b strings.Builder
	for i, h := range m.habits {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderHabit(h, i == m.cursor))
	}
	return b.String()
}

func (m Model) renderHabit(h models.Habit, selected bool) string {
	marker := "  "
	if selected {
		marker = cursorStyle.Render("> ")
	}

	days := m.checkIns[h.ID]
	streak := stats.CurrentStreak(days, h.CreatedAt, m.today)

	name := h.Name
	if selected {
		name = nameStyle.Render(name)
	}

	streakText := "no streak"
	style := noStreakStyle
	if streak > 0 {
		streakText = fmt.Sprintf("%d day streak", streak)
		style = streakStyle
	}

	return marker + name + "  " + style.Render(streakText) + "\n    " + m.renderWeekStrip(h, days)
}

// renderWeekStrip shows the trailing seven days, oldest first.
func (m Model) renderWeekStrip(h models.Habit, days map[string]models.CheckIn) string {
	theme := themes.Get(h.Theme)
	done := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.PrimaryColor))

	var cells []string
	for i := 6; i >= 0; i-- {
		d := m.today.AddDate(0, 0, -i)
		c := days[d.Format(models.DayFormat)]
		label := strings.ToLower(d.Weekday().String()[:1])
		if c.Completed {
			cells = append(cells, done.Render(label))
		} else {
			cells = append(cells, mutedStyle.Render(label))
		}
	}
	return strings.Join(cells, " ")
}
