package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habittrack/internal/logger"
	"github.com/julianstephens/habittrack/internal/models"
	"github.com/julianstephens/habittrack/internal/themes"
)

// Persister receives the full state after every mutation. Save failures are
// logged but never surfaced: store operations themselves cannot fail.
type Persister interface {
	Save(models.State) error
}

// Store owns the canonical habit and check-in collections. All mutation goes
// through its methods; collaborators only ever see copies of the state. It is
// written for a single logical writer (the UI event loop) and holds no locks.
type Store struct {
	state   models.State
	now     func() time.Time
	newID   func() string
	persist Persister
}

type Option func(*Store)

// WithClock injects the reference clock. Defaults to time.Now.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.now = fn }
}

// WithIDGenerator injects the habit ID generator. Defaults to uuid.NewString.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithPersister injects the save-on-mutation port.
func WithPersister(p Persister) Option {
	return func(s *Store) { s.persist = p }
}

// New creates a store seeded with the given initial state.
func New(initial models.State, opts ...Option) *Store {
	s := &Store{
		state: initial.Clone(),
		now:   time.Now,
		newID: uuid.NewString,
	}
	if s.state.CheckIns == nil {
		s.state.CheckIns = models.CheckInsMap{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HabitInput carries the caller-supplied habit fields. ID, CreatedAt and
// Archived are always assigned by the store.
type HabitInput struct {
	Name      string
	Frequency models.Frequency
	Color     string
	Theme     string
	Pattern   string
}

// HabitPatch is a partial habit update; nil fields are left unchanged.
type HabitPatch struct {
	Name      *string
	Frequency *models.Frequency
	Color     *string
	Theme     *string
	Pattern   *string
	Archived  *bool
}

// AddHabit appends a new habit and returns it. Insertion order is the display
// order. Theme defaults when absent and the color is derived from the theme.
func (s *Store) AddHabit(in HabitInput) models.Habit {
	theme := in.Theme
	if theme == "" {
		theme = themes.Default
	}
	h := models.Habit{
		ID:        s.newID(),
		Name:      in.Name,
		Frequency: in.Frequency,
		Color:     in.Color,
		Theme:     theme,
		Pattern:   in.Pattern,
		CreatedAt: s.now(),
	}
	if h.Frequency == "" {
		h.Frequency = models.FrequencyDaily
	}
	if h.Pattern == "" {
		h.Pattern = themes.PatternNone
	}
	// Theme wins over any caller-supplied color; the color field is kept in
	// sync for older export files that only understand colors.
	if in.Theme != "" || in.Color == "" {
		h.Color = themes.Get(theme).PrimaryColor
	}

	s.state.Habits = append(s.state.Habits, h)
	s.save()
	return h
}

// UpdateHabit merges the patch into the matching habit. Unknown IDs are a
// silent no-op and the method reports whether a habit was updated.
func (s *Store) UpdateHabit(id string, patch HabitPatch) bool {
	for i := range s.state.Habits {
		if s.state.Habits[i].ID != id {
			continue
		}
		h := &s.state.Habits[i]
		if patch.Name != nil {
			h.Name = *patch.Name
		}
		if patch.Frequency != nil {
			h.Frequency = *patch.Frequency
		}
		if patch.Color != nil {
			h.Color = *patch.Color
		}
		if patch.Theme != nil {
			h.Theme = *patch.Theme
			h.Color = themes.Get(*patch.Theme).PrimaryColor
		}
		if patch.Pattern != nil {
			h.Pattern = *patch.Pattern
		}
		if patch.Archived != nil {
			h.Archived = *patch.Archived
		}
		s.save()
		return true
	}
	return false
}

// DeleteHabit removes the habit and its entire check-in sub-map in one step.
// Unknown IDs are a silent no-op.
func (s *Store) DeleteHabit(id string) bool {
	for i := range s.state.Habits {
		if s.state.Habits[i].ID != id {
			continue
		}
		s.state.Habits = append(s.state.Habits[:i], s.state.Habits[i+1:]...)
		delete(s.state.CheckIns, id)
		s.save()
		return true
	}
	return false
}

// ReorderHabits replaces the display order with the given ID sequence. The
// sequence must be an exact permutation of the current habit IDs; anything
// else is rejected and the stored order is left unchanged.
func (s *Store) ReorderHabits(order []string) error {
	if len(order) != len(s.state.Habits) {
		return fmt.Errorf("reorder: expected %d habit ids, got %d", len(s.state.Habits), len(order))
	}
	byID := make(map[string]models.Habit, len(s.state.Habits))
	for _, h := range s.state.Habits {
		byID[h.ID] = h
	}
	next := make([]models.Habit, 0, len(order))
	for _, id := range order {
		h, ok := byID[id]
		if !ok {
			return fmt.Errorf("reorder: unknown or duplicate habit id %q", id)
		}
		delete(byID, id)
		next = append(next, h)
	}
	s.state.Habits = next
	s.save()
	return nil
}

// ToggleCheckIn flips a day's completion. Checking on sets value 1, checking
// off sets value 0; the note is preserved either way.
func (s *Store) ToggleCheckIn(habitID, day string) {
	if !s.hasHabit(habitID) {
		return
	}
	cur := s.state.CheckIns[habitID][day]
	next := models.CheckIn{
		Note:      cur.Note,
		Timestamp: s.now().UnixMilli(),
	}
	if !cur.Completed {
		next.Completed = true
		next.Value = 1
	}
	s.setCheckIn(habitID, day, next)
	s.save()
}

// SetCheckInValue records a numeric value for the day; completion is derived
// from it. Negative input clamps to 0.
func (s *Store) SetCheckInValue(habitID, day string, value int) {
	if !s.hasHabit(habitID) {
		return
	}
	if value < 0 {
		value = 0
	}
	cur := s.state.CheckIns[habitID][day]
	s.setCheckIn(habitID, day, models.CheckIn{
		Completed: value > 0,
		Value:     value,
		Note:      cur.Note,
		Timestamp: s.now().UnixMilli(),
	})
	s.save()
}

// UpdateNote sets the day's note, creating an otherwise-empty record when
// needed. A note alone keeps a record alive; clearing the note on an
// incomplete day removes it.
func (s *Store) UpdateNote(habitID, day, note string) {
	if !s.hasHabit(habitID) {
		return
	}
	cur := s.state.CheckIns[habitID][day]
	cur.Note = note
	cur.Timestamp = s.now().UnixMilli()
	s.setCheckIn(habitID, day, cur)
	s.save()
}

// ImportData replaces both collections wholesale. Structural validation is the
// caller's job (see the export package).
func (s *Store) ImportData(habits []models.Habit, checkIns models.CheckInsMap) {
	next := models.State{Habits: habits, CheckIns: checkIns}.Clone()
	if next.CheckIns == nil {
		next.CheckIns = models.CheckInsMap{}
	}
	s.state = next
	s.save()
}

// ResetData empties both collections. Irreversible.
func (s *Store) ResetData() {
	s.state = models.State{CheckIns: models.CheckInsMap{}}
	s.save()
}

// Habits returns the habits in display order.
func (s *Store) Habits() []models.Habit {
	out := make([]models.Habit, len(s.state.Habits))
	copy(out, s.state.Habits)
	return out
}

// Habit looks up a habit by ID.
func (s *Store) Habit(id string) (models.Habit, bool) {
	for _, h := range s.state.Habits {
		if h.ID == id {
			return h, true
		}
	}
	return models.Habit{}, false
}

// HabitByName looks up a habit by display name.
func (s *Store) HabitByName(name string) (models.Habit, bool) {
	for _, h := range s.state.Habits {
		if h.Name == name {
			return h, true
		}
	}
	return models.Habit{}, false
}

// CheckIns returns a copy of the full check-in map.
func (s *Store) CheckIns() models.CheckInsMap {
	return s.state.CheckIns.Clone()
}

// HabitCheckIns returns a copy of one habit's day map. The result is never
// nil, so callers can index it without guarding.
func (s *Store) HabitCheckIns(habitID string) map[string]models.CheckIn {
	days := s.state.CheckIns[habitID]
	out := make(map[string]models.CheckIn, len(days))
	for day, c := range days {
		out[day] = c
	}
	return out
}

// State returns a snapshot of the full persisted unit.
func (s *Store) State() models.State {
	return s.state.Clone()
}

func (s *Store) hasHabit(id string) bool {
	for _, h := range s.state.Habits {
		if h.ID == id {
			return true
		}
	}
	return false
}

// setCheckIn applies the tombstone-by-absence rule: an empty record deletes
// the key (and prunes an emptied inner map), anything else is stored.
func (s *Store) setCheckIn(habitID, day string, c models.CheckIn) {
	if c.Empty() {
		if days, ok := s.state.CheckIns[habitID]; ok {
			delete(days, day)
			if len(days) == 0 {
				delete(s.state.CheckIns, habitID)
			}
		}
		return
	}
	days := s.state.CheckIns[habitID]
	if days == nil {
		days = make(map[string]models.CheckIn)
		s.state.CheckIns[habitID] = days
	}
	days[day] = c
}

func (s *Store) save() {
	if s.persist == nil {
		return
	}
	if err := s.persist.Save(s.state.Clone()); err != nil {
		logger.Warn("failed to persist state", "error", err)
	}
}
