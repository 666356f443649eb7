package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habittrack/internal/store"
	"github.com/julianstephens/habittrack/internal/tui/components/habitlist"
	"github.com/julianstephens/habittrack/internal/tui/components/heatmap"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateHistory
	StateAddHabit
	StateEditHabit
	StateNote
	StateConfirmDelete
)

// HabitFormModel backs the huh add/edit habit form.
type HabitFormModel struct {
	Name      string
	Frequency string
	Theme     string
	Pattern   string
}

// NoteFormModel backs the huh note form.
type NoteFormModel struct {
	Text string
}

type Model struct {
	store *store.Store
	state SessionState
	keys  KeyMap
	help  help.Model

	habitList habitlist.Model
	heatmap   heatmap.Model

	form      *huh.Form
	habitForm *HabitFormModel
	noteForm  *NoteFormModel

	editingHabitID  string // set while editing (empty while adding)
	noteHabitID     string
	noteDate        string
	noteReturnState SessionState
	habitToDeleteID string

	quitting bool
	width    int
	height   int
}

func NewModel(s *store.Store) Model {
	today := time.Now()
	return Model{
		store:     s,
		state:     StateHabits,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		habitList: habitlist.New(s.Habits(), s.CheckIns(), today, 0, 0),
		heatmap:   heatmap.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh re-reads the store into both components after a check-in mutation,
// keeping the heatmap cursor in place.
func (m *Model) refresh() {
	m.habitList.SetData(m.store.Habits(), m.store.CheckIns(), time.Now())
	if h := m.heatmap.Habit(); h.ID != "" {
		m.heatmap.Refresh(m.store.HabitCheckIns(h.ID))
	}
}

// openHistory points the heatmap at a habit and switches to the history tab.
func (m *Model) openHistory(habitID string) {
	if h, ok := m.store.Habit(habitID); ok {
		m.heatmap.SetHabit(h, m.store.HabitCheckIns(h.ID), time.Now())
		m.state = StateHistory
	}
}
