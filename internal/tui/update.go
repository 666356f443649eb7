package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habittrack/internal/models"
	"github.com/julianstephens/habittrack/internal/store"
	"github.com/julianstephens/habittrack/internal/themes"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = ws.Width
		m.height = ws.Height
		m.help.Width = ws.Width
		m.habitList.SetSize(ws.Width, ws.Height-4)
	}

	switch m.state {
	case StateAddHabit, StateEditHabit:
		return m.updateHabitForm(msg)
	case StateNote:
		return m.updateNoteForm(msg)
	case StateConfirmDelete:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			return m.updateConfirmDelete(keyMsg)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(keyMsg, m.keys.Tab), key.Matches(keyMsg, m.keys.ShiftTab):
		if m.state == StateHabits {
			if h, ok := m.habitList.Selected(); ok {
				m.openHistory(h.ID)
			}
		} else {
			m.state = StateHabits
		}
		return m, nil
	}

	switch m.state {
	case StateHabits:
		return m.updateHabits(keyMsg)
	case StateHistory:
		return m.updateHistory(keyMsg)
	}

	return m, nil
}

func (m Model) updateHabits(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.habitList.CursorUp()

	case key.Matches(msg, m.keys.Down):
		m.habitList.CursorDown()

	case key.Matches(msg, m.keys.Enter):
		if h, ok := m.habitList.Selected(); ok {
			m.openHistory(h.ID)
		}

	case key.Matches(msg, m.keys.Toggle):
		if h, ok := m.habitList.Selected(); ok {
			m.store.ToggleCheckIn(h.ID, time.Now().Format(models.DayFormat))
			m.refresh()
		}

	case key.Matches(msg, m.keys.Add):
		m.habitForm = &HabitFormModel{
			Frequency: string(models.FrequencyDaily),
			Theme:     themes.Default,
			Pattern:   themes.PatternNone,
		}
		m.form = newHabitForm(m.habitForm)
		m.editingHabitID = ""
		m.state = StateAddHabit
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Edit):
		if h, ok := m.habitList.Selected(); ok {
			m.habitForm = &HabitFormModel{
				Name:      h.Name,
				Frequency: string(h.Frequency),
				Theme:     h.Theme,
				Pattern:   h.Pattern,
			}
			m.form = newHabitForm(m.habitForm)
			m.editingHabitID = h.ID
			m.state = StateEditHabit
			return m, m.form.Init()
		}

	case key.Matches(msg, m.keys.Delete):
		if h, ok := m.habitList.Selected(); ok {
			m.habitToDeleteID = h.ID
			m.state = StateConfirmDelete
		}

	case key.Matches(msg, m.keys.Note):
		if h, ok := m.habitList.Selected(); ok {
			return m.openNoteForm(h.ID, time.Now().Format(models.DayFormat), StateHabits)
		}

	case key.Matches(msg, m.keys.MoveUp):
		m.moveSelected(-1)

	case key.Matches(msg, m.keys.MoveDown):
		m.moveSelected(1)
	}

	return m, nil
}

func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.heatmap.MoveLeft()

	case key.Matches(msg, m.keys.Right):
		m.heatmap.MoveRight()

	case key.Matches(msg, m.keys.Up):
		m.heatmap.MoveUp()

	case key.Matches(msg, m.keys.Down):
		m.heatmap.MoveDown()

	case key.Matches(msg, m.keys.Back):
		m.state = StateHabits

	case key.Matches(msg, m.keys.Toggle):
		if day, ok := m.heatmap.Selected(); ok && !day.Future {
			m.store.ToggleCheckIn(m.heatmap.Habit().ID, day.Date)
			m.refresh()
		}

	case key.Matches(msg, m.keys.Note):
		if day, ok := m.heatmap.Selected(); ok && !day.Future {
			return m.openNoteForm(m.heatmap.Habit().ID, day.Date, StateHistory)
		}
	}

	return m, nil
}

func (m Model) openNoteForm(habitID, date string, returnTo SessionState) (tea.Model, tea.Cmd) {
	existing := m.store.HabitCheckIns(habitID)[date]
	m.noteForm = &NoteFormModel{Text: existing.Note}
	m.form = newNoteForm(m.noteForm)
	m.noteHabitID = habitID
	m.noteDate = date
	m.noteReturnState = returnTo
	m.state = StateNote
	return m, m.form.Init()
}

func (m Model) updateHabitForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = StateHabits
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		name := strings.TrimSpace(m.habitForm.Name)
		if m.editingHabitID == "" {
			m.store.AddHabit(store.HabitInput{
				Name:      name,
				Frequency: models.Frequency(m.habitForm.Frequency),
				Theme:     m.habitForm.Theme,
				Pattern:   m.habitForm.Pattern,
			})
		} else {
			freq := models.Frequency(m.habitForm.Frequency)
			m.store.UpdateHabit(m.editingHabitID, store.HabitPatch{
				Name:      &name,
				Frequency: &freq,
				Theme:     &m.habitForm.Theme,
				Pattern:   &m.habitForm.Pattern,
			})
			// Habit presentation may have changed; re-point the heatmap
			if m.heatmap.Habit().ID == m.editingHabitID {
				m.openHistory(m.editingHabitID)
			}
		}
		m.habitList.SetData(m.store.Habits(), m.store.CheckIns(), time.Now())
		m.state = StateHabits
	case huh.StateAborted:
		m.state = StateHabits
	}

	return m, cmd
}

func (m Model) updateNoteForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = m.noteReturnState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.store.UpdateNote(m.noteHabitID, m.noteDate, m.noteForm.Text)
		m.refresh()
		m.state = m.noteReturnState
	case huh.StateAborted:
		m.state = m.noteReturnState
	}

	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.store.DeleteHabit(m.habitToDeleteID)
		m.habitToDeleteID = ""
		m.habitList.SetData(m.store.Habits(), m.store.CheckIns(), time.Now())
		m.state = StateHabits
	case "n", "N", "esc":
		m.habitToDeleteID = ""
		m.state = StateHabits
	}
	return m, nil
}

// moveSelected shifts the selected habit by delta in the display order.
func (m *Model) moveSelected(delta int) {
	h, ok := m.habitList.Selected()
	if !ok {
		return
	}
	habits := m.store.Habits()
	idx := -1
	for i, other := range habits {
		if other.ID == h.ID {
			idx = i
			break
		}
	}
	target := idx + delta
	if idx < 0 || target < 0 || target >= len(habits) {
		return
	}

	order := make([]string, len(habits))
	for i, other := range habits {
		order[i] = other.ID
	}
	order[idx], order[target] = order[target], order[idx]

	if err := m.store.ReorderHabits(order); err != nil {
		return
	}
	m.habitList.SetData(m.store.Habits(), m.store.CheckIns(), time.Now())
	if delta < 0 {
		m.habitList.CursorUp()
	} else {
		m.habitList.CursorDown()
	}
}
